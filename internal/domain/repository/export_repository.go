package repository

import (
	"github.com/diillson/netusage-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	// RenderDelimited produz o blob delimitado da tabela: BOM UTF-8,
	// separador ";", quebras CRLF e aspas duplicadas para células com
	// separador, aspas ou quebra de linha.
	RenderDelimited(table entity.ReportTable) []byte

	ExportTableToCSV(table entity.ReportTable, filename string, outputDir string) (string, error)
	ExportTableToJSON(table entity.ReportTable, filename string, outputDir string) (string, error)
	ExportTableToPDF(table entity.ReportTable, filename string, outputDir string) (string, error)
}
