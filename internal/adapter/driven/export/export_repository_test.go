package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/netusage-dashboard-go/internal/domain/entity"
	"github.com/diillson/netusage-dashboard-go/internal/shared/types"
)

func sampleTable() entity.ReportTable {
	return entity.ReportTable{
		Title:   "Monthly Usage Report",
		Headers: []string{"User", "Total (MB)"},
		Rows: [][]string{
			{"alice", "100.00"},
			{"bob;junior", "50.00"},
			{`say "hi"`, "0.00"},
		},
	}
}

func TestRenderDelimited(t *testing.T) {
	repo := &ExportRepositoryImpl{}
	blob := repo.RenderDelimited(sampleTable())

	// Prefixado com o BOM UTF-8.
	require.True(t, bytes.HasPrefix(blob, utf8BOM))

	body := string(blob[len(utf8BOM):])
	lines := strings.Split(body, "\r\n")
	require.GreaterOrEqual(t, len(lines), 5)

	assert.Equal(t, "Monthly Usage Report", lines[0])
	assert.Equal(t, "User;Total (MB)", lines[1])
	assert.Equal(t, "alice;100.00", lines[2])
	// Célula contendo o separador é citada.
	assert.Equal(t, `"bob;junior";50.00`, lines[3])
	// Aspas internas são duplicadas.
	assert.Equal(t, `"say ""hi""";0.00`, lines[4])
}

func TestRenderDelimitedStripsRichTags(t *testing.T) {
	repo := &ExportRepositoryImpl{}
	table := entity.ReportTable{
		Headers: []string{"[red]User[/red]"},
		Rows:    [][]string{{"\x1B[31malice\x1B[0m"}},
	}

	body := string(repo.RenderDelimited(table))
	assert.Contains(t, body, "User")
	assert.Contains(t, body, "alice")
	assert.NotContains(t, body, "[red]")
	assert.NotContains(t, body, "\x1B")
}

func TestExportTableToCSV(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportTableToCSV(sampleTable(), "usage_report", dir)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, ".csv", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, utf8BOM))
	assert.Contains(t, string(data), "alice;100.00\r\n")
}

func TestExportTableToJSON(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportTableToJSON(sampleTable(), "usage_report", dir)
	require.NoError(t, err)
	assert.Equal(t, ".json", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded entity.ReportTable
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Monthly Usage Report", decoded.Title)
	assert.Equal(t, []string{"User", "Total (MB)"}, decoded.Headers)
	require.Len(t, decoded.Rows, 3)
	assert.Equal(t, []string{"alice", "100.00"}, decoded.Rows[0])
}

func TestExportTableToPDF(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportTableToPDF(sampleTable(), "usage_report", dir)
	require.NoError(t, err)
	assert.Equal(t, ".pdf", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportEmptyTable(t *testing.T) {
	repo := NewExportRepository()
	empty := entity.ReportTable{Title: "x", Headers: []string{"User"}}

	_, err := repo.ExportTableToCSV(empty, "r", t.TempDir())
	assert.True(t, errors.Is(err, types.ErrNoExportRows))

	_, err = repo.ExportTableToJSON(empty, "r", t.TempDir())
	assert.True(t, errors.Is(err, types.ErrNoExportRows))

	_, err = repo.ExportTableToPDF(empty, "r", t.TempDir())
	assert.True(t, errors.Is(err, types.ErrNoExportRows))
}
