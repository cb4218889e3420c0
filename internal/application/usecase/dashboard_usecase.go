package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/diillson/netusage-dashboard-go/internal/domain/entity"
	"github.com/diillson/netusage-dashboard-go/internal/domain/repository"
	"github.com/diillson/netusage-dashboard-go/internal/shared/types"
	"github.com/diillson/netusage-dashboard-go/pkg/solarcal"
)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	datasetRepo repository.DatasetRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	datasetRepo repository.DatasetRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		datasetRepo: datasetRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
	}
}

// RunDashboard executa a funcionalidade principal do dashboard: carrega o
// payload, reproduz os eventos de apresentação vindos da CLI através do
// redutor de estado e apresenta/exporta a visão ativa.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	cfg := uc.loadConfig(args)

	status := uc.console.Status("Loading usage dataset...")
	dataset, err := uc.datasetRepo.LoadDataset(args.DataFile, cfg)
	status.Stop()
	if err != nil {
		// Estado "not ready": nenhuma computação é tentada.
		return err
	}

	if err := validateViewName(dataset, args.View); err != nil {
		return err
	}

	state := NewReportState(dataset, uc.stateOptions(args)...)
	uc.replayEvents(state, args)

	localize := uc.localizer(cfg, args)
	table, points := BuildViewTable(state, localize)

	uc.console.Printf("\n%s\n", table.Title)
	uc.console.Print(uc.renderTable(table))
	if len(points) > 0 {
		uc.console.DisplayUsageBars(points, state.ChartMode == entity.ChartSplit)
	}

	if advisory := state.Advisories.Active(); advisory != nil {
		uc.console.ShowAdvisory(advisory.Message, advisory.Blocking)
	}

	if args.Print {
		// Pedido de impressão: o blob delimitado vai direto para a saída.
		uc.console.Print(string(uc.exportRepo.RenderDelimited(table)))
	}

	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportView(state, table, args)
	}

	return nil
}

// loadConfig carrega o arquivo de configuração quando informado e preenche
// os argumentos ausentes com os valores do arquivo. Falha de carga degrada
// para os padrões com um aviso, nunca aborta a sessão.
func (uc *DashboardUseCase) loadConfig(args *types.CLIArgs) *types.Config {
	cfg := &types.Config{}
	if args.ConfigFile != "" {
		loaded, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			uc.console.LogWarning("Could not load config file: %s", err)
		} else {
			cfg = loaded
		}
	}

	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}
	if args.Preset == "" {
		args.Preset = cfg.DefaultPreset
	}
	return cfg
}

// stateOptions traduz o preset inicial de config/flags em opções de estado.
func (uc *DashboardUseCase) stateOptions(args *types.CLIArgs) []StateOption {
	var opts []StateOption
	if args.Preset != "" {
		opts = append(opts, WithPreset(entity.RangePreset(args.Preset)))
	}
	return opts
}

// replayEvents reproduz os eventos de apresentação na ordem em que a
// interface os emitiria: intervalo encenado + aplicação, cliques de
// ordenação, alternância de gráfico e por fim a seleção de visão.
func (uc *DashboardUseCase) replayEvents(state *ReportState, args *types.CLIArgs) {
	if args.StartDate != "" || args.EndDate != "" {
		Reduce(state, StageDateRange{Start: args.StartDate, End: args.EndDate})
		Reduce(state, ApplyDateRange{Start: args.StartDate, End: args.EndDate})
	}
	for i := 0; i < args.SortClicks; i++ {
		Reduce(state, ToggleSort{Column: entity.SortColumnUsage})
	}
	if args.ChartSplit {
		Reduce(state, ToggleChartMode{})
	}
	if args.View != "" {
		Reduce(state, SelectView{Name: args.View})
	}
}

// localizer devolve a função de localização das células: dígitos persas
// quando habilitado, identidade caso contrário.
func (uc *DashboardUseCase) localizer(cfg *types.Config, args *types.CLIArgs) func(string) string {
	if args.PersianDigits || cfg.PersianDigits {
		return solarcal.ToPersianDigits
	}
	return func(s string) string { return s }
}

// renderTable materializa a ReportTable na tabela do console.
func (uc *DashboardUseCase) renderTable(table entity.ReportTable) string {
	t := uc.console.CreateTable()
	for _, h := range table.Headers {
		t.AddColumn(h)
	}
	for _, row := range table.Rows {
		cells := make([]interface{}, len(row))
		for i, c := range row {
			cells[i] = c
		}
		t.AddRow(cells...)
	}
	return t.Render()
}

// exportView exporta a visão ativa nos formatos pedidos. Visão sem linhas é
// um aviso bloqueante: nenhum arquivo é produzido.
func (uc *DashboardUseCase) exportView(state *ReportState, table entity.ReportTable, args *types.CLIArgs) {
	if len(table.Rows) == 0 {
		state.Advisories.Raise(entity.Advisory{Message: types.ErrNoExportRows.Error(), Blocking: true})
		uc.console.ShowAdvisory(types.ErrNoExportRows.Error(), true)
		return
	}

	for _, reportType := range args.ReportType {
		switch strings.ToLower(reportType) {
		case "csv":
			csvPath, err := uc.exportRepo.ExportTableToCSV(table, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportTableToJSON(table, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportTableToPDF(table, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s', skipping", reportType)
		}
	}
}

// validateViewName confere se o nome de visão pedido na CLI existe: um menu
// fixo ou o nome de exibição de um usuário do dataset.
func validateViewName(ds *entity.Dataset, name string) error {
	switch name {
	case "", "home", "overview", "monthly", "quarterly":
		return nil
	}
	if _, ok := ds.UserByName(name); ok {
		return nil
	}
	return fmt.Errorf("%w: %s", types.ErrUnknownView, name)
}

// BuildViewTable monta a primitiva tabular da visão ativa com células já
// localizadas, e a série de pontos consumida pelo gráfico de barras.
func BuildViewTable(state *ReportState, localize func(string) string) (entity.ReportTable, []types.UsagePoint) {
	mb := func(v float64) string { return localize(fmt.Sprintf("%.2f", v)) }

	switch state.View.Kind {
	case entity.ViewMonthly:
		table := entity.ReportTable{
			Title:   "Monthly Usage Report",
			Headers: []string{"Month", "Period", "Days", "Download (MB)", "Upload (MB)", "Total (MB)", "Highest Consumer", "Highest Usage (MB)"},
		}
		points := make([]types.UsagePoint, 0, len(state.Monthly))
		for _, m := range state.Monthly {
			table.Rows = append(table.Rows, []string{
				m.PeriodLabel,
				localize(m.PeriodKey),
				localize(fmt.Sprintf("%d", m.DaysCount)),
				mb(m.Totals.TotalDownloadMB),
				mb(m.Totals.TotalUploadMB),
				mb(m.Totals.TotalUsageMB),
				m.HighestConsumerName,
				mb(m.HighestConsumerUsageMB),
			})
			points = append(points, types.UsagePoint{
				Label:      m.PeriodLabel,
				DownloadMB: m.Totals.TotalDownloadMB,
				UploadMB:   m.Totals.TotalUploadMB,
				TotalMB:    m.Totals.TotalUsageMB,
			})
		}
		return table, points

	case entity.ViewQuarterly:
		table := entity.ReportTable{
			Title:   "Quarterly Usage Report",
			Headers: []string{"Quarter", "Period", "Days", "Download (MB)", "Upload (MB)", "Total (MB)", "Highest Consumer", "Highest Usage (MB)"},
		}
		points := make([]types.UsagePoint, 0, len(state.Quarterly))
		for _, q := range state.Quarterly {
			table.Rows = append(table.Rows, []string{
				localize(q.PeriodLabel),
				localize(q.PeriodKey),
				localize(fmt.Sprintf("%d", q.DaysCount)),
				mb(q.Totals.TotalDownloadMB),
				mb(q.Totals.TotalUploadMB),
				mb(q.Totals.TotalUsageMB),
				q.HighestConsumerName,
				mb(q.HighestConsumerUsageMB),
			})
			points = append(points, types.UsagePoint{
				Label:      q.PeriodLabel,
				DownloadMB: q.Totals.TotalDownloadMB,
				UploadMB:   q.Totals.TotalUploadMB,
				TotalMB:    q.Totals.TotalUsageMB,
			})
		}
		return table, points

	case entity.ViewUserDetail:
		table := entity.ReportTable{
			Title:   fmt.Sprintf("Usage Detail: %s", state.View.UserName),
			Headers: []string{"Date", "Weekday", "Download (MB)", "Upload (MB)", "Total (MB)"},
		}
		user, ok := state.Filtered.UserByName(state.View.UserName)
		if !ok {
			return table, nil
		}
		points := make([]types.UsagePoint, 0, len(user.DailyData))
		for _, r := range user.DailyData {
			shamsiDay := localize(solarcal.FormatShamsi(r.Day))
			table.Rows = append(table.Rows, []string{
				shamsiDay,
				weekdayLabel(r.Day),
				mb(r.DownloadMB),
				mb(r.UploadMB),
				mb(r.TotalMB),
			})
			points = append(points, types.UsagePoint{
				Label:      shamsiDay,
				DownloadMB: r.DownloadMB,
				UploadMB:   r.UploadMB,
				TotalMB:    r.TotalMB,
			})
		}
		return table, points

	default: // visão geral
		rng := state.Filtered.DateRange
		table := entity.ReportTable{
			Title: fmt.Sprintf("Bandwidth Usage Overview (%s - %s)",
				localize(solarcal.FormatShamsi(rng.StartDate)),
				localize(solarcal.FormatShamsi(rng.EndDate))),
			Headers: []string{"User", "Download (MB)", "Upload (MB)", "Total (MB)"},
		}
		users := state.SortedUsers()
		points := make([]types.UsagePoint, 0, len(users))
		for _, u := range users {
			table.Rows = append(table.Rows, []string{
				u.DisplayName,
				mb(u.Summary.TotalDownloadMB),
				mb(u.Summary.TotalUploadMB),
				mb(u.Summary.TotalUsageMB),
			})
			points = append(points, types.UsagePoint{
				Label:      u.DisplayName,
				DownloadMB: u.Summary.TotalDownloadMB,
				UploadMB:   u.Summary.TotalUploadMB,
				TotalMB:    u.Summary.TotalUsageMB,
			})
		}
		return table, points
	}
}

// weekdayLabel devolve o nome Shamsi do dia da semana de "yyyy-MM-dd";
// data malformada devolve "".
func weekdayLabel(day string) string {
	t, err := solarcal.ParseDay(day)
	if err != nil {
		return ""
	}
	return solarcal.WeekdayName(t)
}
