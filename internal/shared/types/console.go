package types

// ConsoleInterface define a interface para saída no console. É o contrato do
// adaptador de apresentação: consome as visões derivadas já agregadas e as
// exibe como tabelas, barras e avisos.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplayUsageBars(points []UsagePoint, split bool)

	// ShowAdvisory apresenta um aviso transitório (não fatal) ao usuário.
	ShowAdvisory(message string, blocking bool)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// UsagePoint representa o consumo de um período, usado nos gráficos de barras.
type UsagePoint struct {
	Label      string  `json:"label"`
	DownloadMB float64 `json:"download"`
	UploadMB   float64 `json:"upload"`
	TotalMB    float64 `json:"totalUsage"`
}
