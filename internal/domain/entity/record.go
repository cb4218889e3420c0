package entity

// DailyRecord representa o consumo de banda de um usuário em um único dia.
// Os valores são em MB, arredondados a 2 casas pelo exportador; a invariante
// TotalMB == DownloadMB+UploadMB vale com tolerância de 0.01.
type DailyRecord struct {
	UserID      string  `json:"userId"`
	DisplayName string  `json:"name"`
	Day         string  `json:"day"` // gregoriano, "yyyy-MM-dd"
	DownloadMB  float64 `json:"download"`
	UploadMB    float64 `json:"upload"`
	TotalMB     float64 `json:"totalUsage"`
}

// Totals agrega download, upload e uso total em MB. Sempre derivado,
// nunca mutado de forma independente.
type Totals struct {
	TotalDownloadMB float64 `json:"totalDownload"`
	TotalUploadMB   float64 `json:"totalUpload"`
	TotalUsageMB    float64 `json:"totalUsage"`
}

// Accumulate soma o registro diário ao total corrente.
func (t *Totals) Accumulate(r DailyRecord) {
	t.TotalDownloadMB += r.DownloadMB
	t.TotalUploadMB += r.UploadMB
	t.TotalUsageMB += r.TotalMB
}

// UserRecord agrupa o histórico diário de um usuário com seu total acumulado.
// DailyData chega ordenado por dia decrescente e é imutável após a carga.
type UserRecord struct {
	UserID      string        `json:"userId"`
	DisplayName string        `json:"name"`
	DailyData   []DailyRecord `json:"dailyData"`
	Summary     Totals        `json:"summary"`
}
