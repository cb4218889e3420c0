package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/goccy/go-json"
	"github.com/jung-kurt/gofpdf"

	"github.com/diillson/netusage-dashboard-go/internal/domain/entity"
	"github.com/diillson/netusage-dashboard-go/internal/domain/repository"
	"github.com/diillson/netusage-dashboard-go/internal/shared/types"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// utf8BOM prefixa os exports delimitados para que planilhas reconheçam UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// RenderDelimited produz o blob delimitado da tabela: BOM, título,
// cabeçalho e linhas com campos separados por ";", quebras CRLF e aspas
// duplicadas para células contendo separador, aspas ou quebra de linha.
func (r *ExportRepositoryImpl) RenderDelimited(table entity.ReportTable) []byte {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	writer := csv.NewWriter(&buf)
	writer.Comma = ';'
	writer.UseCRLF = true

	if table.Title != "" {
		writer.Write([]string{table.Title})
	}
	if len(table.Headers) > 0 {
		writer.Write(cleanRow(table.Headers))
	}
	for _, row := range table.Rows {
		writer.Write(cleanRow(row))
	}
	writer.Flush()

	return buf.Bytes()
}

func (r *ExportRepositoryImpl) ExportTableToCSV(table entity.ReportTable, filename, outputDir string) (string, error) {
	if len(table.Rows) == 0 {
		return "", types.ErrNoExportRows
	}

	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputFilename, r.RenderDelimited(table), 0644); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportTableToJSON(table entity.ReportTable, filename, outputDir string) (string, error) {
	if len(table.Rows) == 0 {
		return "", types.ErrNoExportRows
	}

	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	clean := entity.ReportTable{
		Title:   table.Title,
		Headers: cleanRow(table.Headers),
	}
	for _, row := range table.Rows {
		clean.Rows = append(clean.Rows, cleanRow(row))
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(clean); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportTableToPDF(table entity.ReportTable, filename, outputDir string) (string, error) {
	if len(table.Rows) == 0 {
		return "", types.ErrNoExportRows
	}

	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()

	// Cabeçalho do relatório
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", table.Title)), "", 1, "L", true, 0, "")
	pdf.Ln(6)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right
	colWidth := usable / float64(len(table.Headers))

	// Linha de cabeçalho da tabela
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	for _, h := range table.Headers {
		pdf.CellFormat(colWidth, 8, tr(cleanRichTags(h)), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range table.Rows {
		for i := 0; i < len(table.Headers); i++ {
			cell := ""
			if i < len(row) {
				cell = cleanRichTags(row[i])
			}
			pdf.CellFormat(colWidth, 7, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	// Rodapé
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by Net Usage Dashboard (Go) | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}

func cleanRow(row []string) []string {
	cleaned := make([]string, len(row))
	for i, cell := range row {
		cleaned[i] = cleanRichTags(cell)
	}
	return cleaned
}
