package entity

// ViewKind enumera as visões do relatório.
type ViewKind int

const (
	ViewOverview ViewKind = iota
	ViewMonthly
	ViewQuarterly
	ViewUserDetail
)

// View identifica a visão ativa; UserName só é preenchido em ViewUserDetail.
type View struct {
	Kind     ViewKind
	UserName string
}

// SortColumn identifica a única coluna ordenável do relatório.
type SortColumn string

const (
	// SortColumnNone é o estado padrão: ordenação por identificador de
	// usuário, ascendente, lexicográfica.
	SortColumnNone  SortColumn = ""
	SortColumnUsage SortColumn = "totalUsage"
)

// SortDirection é a direção do ciclo de ordenação de três estados.
type SortDirection int

const (
	SortUnset SortDirection = iota
	SortAscending
	SortDescending
)

// SortOrder combina coluna e direção ativas.
type SortOrder struct {
	Column    SortColumn
	Direction SortDirection
}

// ChartMode controla a apresentação das barras de uso.
type ChartMode int

const (
	// ChartTotal desenha uma barra por período com o uso total.
	ChartTotal ChartMode = iota
	// ChartSplit desenha download e upload separados.
	ChartSplit
)

// RangePreset enumera os intervalos predefinidos, computados com âncoras do
// calendário Shamsi contra a data de hoje.
type RangePreset string

const (
	PresetThisWeek    RangePreset = "this-week"
	PresetThisMonth   RangePreset = "this-month"
	PresetLast3Months RangePreset = "last-3-months"
	PresetLast6Months RangePreset = "last-6-months"
	PresetEntireRange RangePreset = "entire-range"
)

// Advisory é um aviso transitório e não fatal exibido ao usuário, distinto
// de um erro. Avisos bloqueantes impedem a ação que os gerou (ex.: exportar
// uma visão sem linhas).
type Advisory struct {
	Message  string `json:"message"`
	Blocking bool   `json:"blocking"`
}

// ReportTable é a primitiva tabular de exportação: título e linhas com
// células já prontas para exibição (localizadas pelo chamador).
type ReportTable struct {
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}
