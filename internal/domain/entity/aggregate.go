package entity

// MonthlyAggregate é o resumo de um mês gregoriano, rotulado com o mês
// Shamsi correspondente ao primeiro dia do mês. Recomputado por inteiro a
// cada mudança de intervalo.
type MonthlyAggregate struct {
	PeriodKey              string  `json:"periodKey"`   // "YYYY-MM" gregoriano
	PeriodLabel            string  `json:"periodLabel"` // nome do mês Shamsi
	DaysCount              int     `json:"daysCount"`   // dias distintos com dados
	Totals                 Totals  `json:"totals"`
	HighestConsumerName    string  `json:"highestConsumerName"`
	HighestConsumerUsageMB float64 `json:"highestConsumerUsage"`
}

// QuarterlyAggregate é o resumo de um trimestre Shamsi (ano Shamsi +
// trimestre fixo de 3 meses).
type QuarterlyAggregate struct {
	PeriodKey              string  `json:"periodKey"`   // "anoShamsi-trimestre"
	PeriodLabel            string  `json:"periodLabel"` // estação + ano Shamsi
	ShamsiYear             int     `json:"shamsiYear"`
	Quarter                int     `json:"quarter"` // 1-4
	DaysCount              int     `json:"daysCount"`
	Totals                 Totals  `json:"totals"`
	HighestConsumerName    string  `json:"highestConsumerName"`
	HighestConsumerUsageMB float64 `json:"highestConsumerUsage"`
}
