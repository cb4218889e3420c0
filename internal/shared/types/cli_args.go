package types

// CLIArgs represents the command-line arguments.
// Cada campo corresponde a um evento de apresentação do relatório: seleção
// de visão, intervalo encenado + aplicação, preset, cliques de ordenação,
// alternância do modo de gráfico e pedidos de exportação/impressão.
type CLIArgs struct {
	DataFile      string
	ConfigFile    string
	View          string
	StartDate     string
	EndDate       string
	Preset        string
	SortClicks    int
	ChartSplit    bool
	ReportName    string
	ReportType    []string
	Dir           string
	Print         bool
	PersianDigits bool
}
