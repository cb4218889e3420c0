package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/diillson/netusage-dashboard-go/internal/shared/types"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// Cores predefinidas para uso consistente
var (
	BrightYellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightRed    = color.New(color.FgRed, color.Bold).SprintFunc()
)

// ShowAdvisory apresenta um aviso transitório. Avisos bloqueantes ganham o
// tom de erro; os demais, de atenção.
func (c *Console) ShowAdvisory(message string, blocking bool) {
	if blocking {
		pterm.Error.Printfln("%s", BrightRed(message))
		return
	}
	pterm.Warning.Printfln("%s", BrightYellow(message))
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	// Convertemos cada célula para string
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayUsageBars exibe gráficos de barras para o consumo por período.
// Em modo dividido, download e upload ganham barras separadas; caso
// contrário, uma única barra com o uso total.
func (c *Console) DisplayUsageBars(points []types.UsagePoint, split bool) {
	// Encontra o valor máximo para escala
	maxUsage := 0.0
	for _, p := range points {
		if p.TotalMB > maxUsage {
			maxUsage = p.TotalMB
		}
	}

	if maxUsage == 0 {
		pterm.Warning.Println("All usage is 0.00 MB for this period")
		return
	}

	var tableData pterm.TableData
	if split {
		tableData = pterm.TableData{{"Period", "Download (MB)", "", "Upload (MB)", ""}}
	} else {
		tableData = pterm.TableData{{"Period", "Total (MB)", ""}}
	}

	bar := func(value float64, style pterm.Color) string {
		barLength := int((value / maxUsage) * 40)
		return style.Sprint(strings.Repeat("█", barLength))
	}

	for _, p := range points {
		if split {
			tableData = append(tableData, []string{
				p.Label,
				fmt.Sprintf("%.2f", p.DownloadMB),
				bar(p.DownloadMB, pterm.FgGreen),
				fmt.Sprintf("%.2f", p.UploadMB),
				bar(p.UploadMB, pterm.FgMagenta),
			})
		} else {
			tableData = append(tableData, []string{
				p.Label,
				fmt.Sprintf("%.2f", p.TotalMB),
				bar(p.TotalMB, pterm.FgBlue),
			})
		}
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.
		WithTitle("Bandwidth Usage").
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(renderedTable)

	fmt.Println("\n" + panel)
}
