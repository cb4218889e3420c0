package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/diillson/netusage-dashboard-go/pkg/version"

	"github.com/diillson/netusage-dashboard-go/internal/application/usecase"
	"github.com/diillson/netusage-dashboard-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "netusage-dashboard",
		Short:   "Net Usage Dashboard CLI",
		Version: formattedVersion, // Use a versão formatada
		RunE:    app.runCommand,
	}

	// Personaliza a template para incluir mais informações de versão
	rootCmd.SetVersionTemplate(`{{printf "Net Usage Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("data-file", "f", "", "Path to the bandwidth usage JSON dataset")
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("view", "v", "", "Report view: overview, monthly, quarterly, or a user name")
	rootCmd.PersistentFlags().String("start", "", "Start of the date range (YYYY-MM-DD, Gregorian)")
	rootCmd.PersistentFlags().String("end", "", "End of the date range (YYYY-MM-DD, Gregorian)")
	rootCmd.PersistentFlags().StringP("preset", "P", "", "Date range preset: this-week, this-month, last-3-months, last-6-months, entire-range")
	rootCmd.PersistentFlags().Int("sort-usage", 0, "Number of clicks on the usage column header (cycles asc, desc, default)")
	rootCmd.PersistentFlags().Bool("chart-split", false, "Show separate download/upload bars instead of a single total bar")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("print", false, "Print the report rows to stdout in delimited form")
	rootCmd.PersistentFlags().Bool("persian-digits", false, "Render numerals with Persian digits")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	dataFile, _ := app.rootCmd.Flags().GetString("data-file")
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	view, _ := app.rootCmd.Flags().GetString("view")
	startDate, _ := app.rootCmd.Flags().GetString("start")
	endDate, _ := app.rootCmd.Flags().GetString("end")
	preset, _ := app.rootCmd.Flags().GetString("preset")
	sortClicks, _ := app.rootCmd.Flags().GetInt("sort-usage")
	chartSplit, _ := app.rootCmd.Flags().GetBool("chart-split")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	printReport, _ := app.rootCmd.Flags().GetBool("print")
	persianDigits, _ := app.rootCmd.Flags().GetBool("persian-digits")

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		// Convert to absolute path
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		DataFile:      dataFile,
		ConfigFile:    configFile,
		View:          view,
		StartDate:     startDate,
		EndDate:       endDate,
		Preset:        preset,
		SortClicks:    sortClicks,
		ChartSplit:    chartSplit,
		ReportName:    reportName,
		ReportType:    reportType,
		Dir:           dir,
		Print:         printReport,
		PersianDigits: persianDigits,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Executa o dashboard
	ctx := context.Background()
	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}
