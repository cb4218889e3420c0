package cli

import (
	"fmt"

	"github.com/diillson/netusage-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$   /$$             /$$     /$$   /$$
        | $$$ | $$            | $$    | $$  | $$
        | $$$$| $$  /$$$$$$  /$$$$$$  | $$  | $$  /$$$$$$$  /$$$$$$   /$$$$$$
        | $$ $$ $$ /$$__  $$|_  $$_/  | $$  | $$ /$$_____/ |____  $$ /$$__  $$
        | $$  $$$$| $$$$$$$$  | $$    | $$  | $$|  $$$$$$   /$$$$$$$| $$  \ $$
        | $$\  $$$| $$_____/  | $$ /$$| $$  | $$ \____  $$ /$$__  $$| $$  | $$
        | $$ \  $$|  $$$$$$$  |  $$$$/|  $$$$$$/ /$$$$$$$/|  $$$$$$$|  $$$$$$$
        |__/  \__/ \_______/   \___/   \______/ |_______/  \_______/ \____  $$
                                                                     /$$  \ $$
                                                                    |  $$$$$$/
                                                                     \______/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Net Usage Dashboard CLI (v%s)", formattedVersion)))
}

// checkLatestVersion verifica se uma versão mais recente está disponível.
func checkLatestVersion(currentVersion string) {
	// Usa a função do pacote version para verificar por atualizações
	version.CheckLatestVersion(currentVersion)
}
