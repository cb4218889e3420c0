package usecase

import (
	"sort"
	"time"

	"github.com/diillson/netusage-dashboard-go/internal/domain/entity"
	"github.com/diillson/netusage-dashboard-go/pkg/solarcal"
)

// noDataMessage é o aviso transitório de visão vazia após a filtragem.
const noDataMessage = "no usage data in the selected date range"

// Action é uma transição do estado do relatório. As transições são
// disparadas por ações do usuário e processadas de forma síncrona, uma por
// vez; nenhum estado é terminal.
type Action interface {
	isAction()
}

// SelectView seleciona uma visão: "home" (visão geral), "monthly",
// "quarterly" ou o nome de exibição de um usuário do dataset.
type SelectView struct{ Name string }

// StageDateRange encena uma edição de intervalo ainda não aplicada.
type StageDateRange struct{ Start, End string }

// ApplyDateRange aplica um intervalo de datas explícito.
type ApplyDateRange struct{ Start, End string }

// SelectPreset aplica imediatamente o intervalo computado do preset.
type SelectPreset struct{ Preset entity.RangePreset }

// ToggleSort avança o ciclo de ordenação da coluna.
type ToggleSort struct{ Column entity.SortColumn }

// ToggleChartMode alterna entre barras de uso total e download/upload.
type ToggleChartMode struct{}

// DismissAdvisory descarta explicitamente o aviso ativo.
type DismissAdvisory struct{}

func (SelectView) isAction()      {}
func (StageDateRange) isAction()  {}
func (ApplyDateRange) isAction()  {}
func (SelectPreset) isAction()    {}
func (ToggleSort) isAction()      {}
func (ToggleChartMode) isAction() {}
func (DismissAdvisory) isAction() {}

// ReportState é o estado de sessão do relatório: seleção de visão,
// intervalo aplicado e encenado, preset, ordenação, modo de gráfico e as
// visões derivadas (dataset filtrado + agregados mensal/trimestral).
// Mutado exclusivamente por Reduce; derivados recomputados juntos a cada
// mudança de visão, intervalo ou ordenação. Sem persistência.
type ReportState struct {
	Dataset *entity.Dataset

	View         entity.View
	AppliedRange entity.DateRange
	StagedRange  entity.DateRange
	Preset       entity.RangePreset
	Sort         entity.SortOrder
	ChartMode    entity.ChartMode

	Filtered  *entity.Dataset
	Monthly   []entity.MonthlyAggregate
	Quarterly []entity.QuarterlyAggregate

	Advisories *AdvisoryCenter

	aggregator Aggregator
	now        func() time.Time
}

// StateOption configura a construção do ReportState.
type StateOption func(*ReportState)

// WithClock injeta o relógio usado pelos presets (testes).
func WithClock(now func() time.Time) StateOption {
	return func(s *ReportState) { s.now = now }
}

// WithPreset define o preset inicial em vez do mês Shamsi corrente.
func WithPreset(p entity.RangePreset) StateOption {
	return func(s *ReportState) { s.Preset = p }
}

// NewReportState inicializa o estado quando o dataset carrega: visão geral,
// intervalo padrão igual ao mês Shamsi corrente recortado ao intervalo do
// dataset, ordenação padrão.
func NewReportState(ds *entity.Dataset, opts ...StateOption) *ReportState {
	s := &ReportState{
		Dataset:    ds,
		View:       entity.View{Kind: entity.ViewOverview},
		Preset:     entity.PresetThisMonth,
		Advisories: NewAdvisoryCenter(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.AppliedRange = s.presetRange(s.Preset)
	s.refresh()
	return s
}

// Reduce aplica uma ação ao estado e recomputa sincronamente as visões
// derivadas: (estado, ação) -> estado'. Não depende de nenhum mecanismo de
// apresentação.
func Reduce(s *ReportState, action Action) {
	switch a := action.(type) {
	case SelectView:
		s.selectView(a.Name)
	case StageDateRange:
		s.StagedRange = entity.DateRange{StartDate: a.Start, EndDate: a.End}
	case ApplyDateRange:
		s.applyRange(a.Start, a.End)
	case SelectPreset:
		s.Preset = a.Preset
		s.StagedRange = entity.DateRange{}
		s.AppliedRange = s.presetRange(a.Preset)
		s.refresh()
	case ToggleSort:
		s.toggleSort(a.Column)
	case ToggleChartMode:
		if s.ChartMode == entity.ChartTotal {
			s.ChartMode = entity.ChartSplit
		} else {
			s.ChartMode = entity.ChartTotal
		}
	case DismissAdvisory:
		s.Advisories.Dismiss()
	}
}

// selectView transita a máquina de visões. Nome desconhecido (nem menu, nem
// usuário do dataset) é ignorado.
func (s *ReportState) selectView(name string) {
	switch name {
	case "", "home", "overview":
		s.View = entity.View{Kind: entity.ViewOverview}
	case "monthly":
		s.View = entity.View{Kind: entity.ViewMonthly}
	case "quarterly":
		s.View = entity.View{Kind: entity.ViewQuarterly}
	default:
		if _, ok := s.Dataset.UserByName(name); !ok {
			return
		}
		s.View = entity.View{Kind: entity.ViewUserDetail, UserName: name}
	}
	s.checkNoData()
}

// applyRange valida início <= fim. Intervalo inválido ou incompleto descarta
// a edição e reverte ao preset corrente recomputado contra hoje — caminho de
// recuperação, não erro visível.
func (s *ReportState) applyRange(start, end string) {
	if !validRange(start, end) {
		s.StagedRange = entity.DateRange{}
		s.AppliedRange = s.presetRange(s.Preset)
		s.refresh()
		return
	}
	s.AppliedRange = entity.DateRange{StartDate: start, EndDate: end}
	s.StagedRange = entity.DateRange{}
	s.refresh()
}

func validRange(start, end string) bool {
	if start == "" || end == "" {
		return false
	}
	st, errS := time.ParseInLocation(solarcal.DateLayout, start, time.UTC)
	en, errE := time.ParseInLocation(solarcal.DateLayout, end, time.UTC)
	return errS == nil && errE == nil && !en.Before(st)
}

// refresh refiltra e recomputa mensal e trimestral juntos, sempre — trocar
// de visão nunca encontra agregados velhos.
func (s *ReportState) refresh() {
	s.Filtered = s.aggregator.FilterByDateRange(s.Dataset, s.AppliedRange.StartDate, s.AppliedRange.EndDate)
	s.Monthly = ComputeMonthlyAggregates(s.Filtered)
	s.Quarterly = ComputeQuarterlyAggregates(s.Filtered)
	s.checkNoData()
}

// checkNoData levanta o aviso transitório quando a visão ativa ficou sem
// dados; o AdvisoryCenter suprime repetições da mesma mensagem.
func (s *ReportState) checkNoData() {
	if s.activeViewEmpty() {
		s.Advisories.Raise(entity.Advisory{Message: noDataMessage})
	}
}

func (s *ReportState) activeViewEmpty() bool {
	switch s.View.Kind {
	case entity.ViewMonthly:
		return len(s.Monthly) == 0
	case entity.ViewQuarterly:
		return len(s.Quarterly) == 0
	case entity.ViewUserDetail:
		u, ok := s.Filtered.UserByName(s.View.UserName)
		return !ok || len(u.DailyData) == 0
	default:
		return s.Filtered.Empty()
	}
}

// toggleSort avança o ciclo de três estados na coluna de uso
// (nada -> asc -> desc -> nada); trocar de coluna reinicia em ascendente.
func (s *ReportState) toggleSort(col entity.SortColumn) {
	if s.Sort.Column != col {
		s.Sort = entity.SortOrder{Column: col, Direction: entity.SortAscending}
		return
	}
	switch s.Sort.Direction {
	case entity.SortAscending:
		s.Sort.Direction = entity.SortDescending
	case entity.SortDescending:
		s.Sort = entity.SortOrder{}
	default:
		s.Sort.Direction = entity.SortAscending
	}
}

// SortedUsers devolve os usuários filtrados na ordem corrente: pelo uso
// total quando a coluna está ativa, senão pela ordenação padrão
// (identificador de usuário, ascendente, lexicográfica).
func (s *ReportState) SortedUsers() []entity.UserRecord {
	users := make([]entity.UserRecord, len(s.Filtered.Users))
	copy(users, s.Filtered.Users)

	switch {
	case s.Sort.Column == entity.SortColumnUsage && s.Sort.Direction == entity.SortAscending:
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].Summary.TotalUsageMB < users[j].Summary.TotalUsageMB
		})
	case s.Sort.Column == entity.SortColumnUsage && s.Sort.Direction == entity.SortDescending:
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].Summary.TotalUsageMB > users[j].Summary.TotalUsageMB
		})
	default:
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].UserID < users[j].UserID
		})
	}
	return users
}

// presetRange computa o intervalo do preset contra a data de hoje, com
// âncoras do calendário Shamsi, e o recorta ao intervalo do dataset. Quando
// a interseção é vazia (dados muito antigos), cai para o intervalo inteiro
// do dataset.
func (s *ReportState) presetRange(p entity.RangePreset) entity.DateRange {
	today := s.now().UTC().Format(solarcal.DateLayout)

	var start string
	switch p {
	case entity.PresetThisWeek:
		start = solarcal.StartOfShamsiWeek(s.now())
	case entity.PresetThisMonth:
		start = solarcal.StartOfShamsiMonth(s.now())
	case entity.PresetLast3Months:
		start = solarcal.StartOfShamsiMonthsAgo(s.now(), 3)
	case entity.PresetLast6Months:
		start = solarcal.StartOfShamsiMonthsAgo(s.now(), 6)
	case entity.PresetEntireRange:
		return s.Dataset.DateRange
	default:
		start = solarcal.StartOfShamsiMonth(s.now())
	}

	return clampRange(entity.DateRange{StartDate: start, EndDate: today}, s.Dataset.DateRange)
}

// clampRange intersecta o intervalo pedido com os limites do dataset.
func clampRange(rng, bounds entity.DateRange) entity.DateRange {
	if bounds.IsZero() {
		return rng
	}
	if rng.StartDate < bounds.StartDate {
		rng.StartDate = bounds.StartDate
	}
	if rng.EndDate > bounds.EndDate {
		rng.EndDate = bounds.EndDate
	}
	if rng.StartDate > rng.EndDate {
		return bounds
	}
	return rng
}
