package main

import (
	"fmt"
	"os"

	"github.com/diillson/netusage-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/netusage-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/netusage-dashboard-go/internal/adapter/driven/payload"
	"github.com/diillson/netusage-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/netusage-dashboard-go/internal/application/usecase"
	"github.com/diillson/netusage-dashboard-go/pkg/console"
	"github.com/diillson/netusage-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	datasetRepo := payload.NewPayloadRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		datasetRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetDashboardUseCase(dashboardUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
