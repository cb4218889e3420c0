package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/netusage-dashboard-go/internal/domain/entity"
)

// fixtureDataset monta um dataset pequeno cruzando a virada do ano Shamsi
// (Nowruz 1403 = 2024-03-20): alice com 100 MB em março, bob com 25 MB em
// março e 25 MB em abril.
func fixtureDataset() *entity.Dataset {
	alice := entity.UserRecord{
		UserID:      "u1",
		DisplayName: "alice",
		DailyData: []entity.DailyRecord{
			{UserID: "u1", DisplayName: "alice", Day: "2024-03-01", DownloadMB: 40, UploadMB: 10, TotalMB: 50},
			{UserID: "u1", DisplayName: "alice", Day: "2024-03-15", DownloadMB: 30, UploadMB: 20, TotalMB: 50},
		},
		Summary: entity.Totals{TotalDownloadMB: 70, TotalUploadMB: 30, TotalUsageMB: 100},
	}
	bob := entity.UserRecord{
		UserID:      "u2",
		DisplayName: "bob",
		DailyData: []entity.DailyRecord{
			{UserID: "u2", DisplayName: "bob", Day: "2024-03-10", DownloadMB: 20, UploadMB: 5, TotalMB: 25},
			{UserID: "u2", DisplayName: "bob", Day: "2024-04-02", DownloadMB: 20, UploadMB: 5, TotalMB: 25},
		},
		Summary: entity.Totals{TotalDownloadMB: 40, TotalUploadMB: 10, TotalUsageMB: 50},
	}
	rng := entity.DateRange{StartDate: "2024-03-01", EndDate: "2024-04-02"}
	return entity.NewDataset([]entity.UserRecord{alice, bob}, rng, nil)
}

func TestFilterByDateRange(t *testing.T) {
	ds := fixtureDataset()
	var agg Aggregator

	filtered := agg.FilterByDateRange(ds, "2024-03-01", "2024-03-31")

	require.Len(t, filtered.Users, 2)
	alice, ok := filtered.UserByName("alice")
	require.True(t, ok)
	assert.Len(t, alice.DailyData, 2)
	assert.InDelta(t, 100, alice.Summary.TotalUsageMB, 0.01)

	bob, ok := filtered.UserByName("bob")
	require.True(t, ok)
	assert.Len(t, bob.DailyData, 1)
	assert.InDelta(t, 25, bob.Summary.TotalUsageMB, 0.01)

	// O intervalo reportado é o min/max real dos dados retidos.
	assert.Equal(t, entity.DateRange{StartDate: "2024-03-01", EndDate: "2024-03-15"}, filtered.DateRange)
}

func TestFilterByDateRangeIdempotent(t *testing.T) {
	ds := fixtureDataset()
	var first, second Aggregator

	once := first.FilterByDateRange(ds, "2024-03-01", "2024-03-31")
	twice := second.FilterByDateRange(once, "2024-03-01", "2024-03-31")

	assert.Equal(t, once.Users, twice.Users)
	assert.Equal(t, once.DateRange, twice.DateRange)
}

func TestFilterByDateRangeMemo(t *testing.T) {
	ds := fixtureDataset()
	var agg Aggregator

	a := agg.FilterByDateRange(ds, "2024-03-01", "2024-03-31")
	b := agg.FilterByDateRange(ds, "2024-03-01", "2024-03-31")
	assert.Same(t, a, b)

	c := agg.FilterByDateRange(ds, "2024-03-01", "2024-04-30")
	assert.NotSame(t, a, c)
}

func TestFilterByDateRangeEmpty(t *testing.T) {
	ds := fixtureDataset()
	var agg Aggregator

	filtered := agg.FilterByDateRange(ds, "2025-01-01", "2025-01-31")

	assert.True(t, filtered.Empty())
	// Sem dados retidos, os limites pedidos passam adiante.
	assert.Equal(t, entity.DateRange{StartDate: "2025-01-01", EndDate: "2025-01-31"}, filtered.DateRange)
}

func TestFilterByDateRangeBoundariesInclusive(t *testing.T) {
	ds := fixtureDataset()
	var agg Aggregator

	filtered := agg.FilterByDateRange(ds, "2024-03-01", "2024-03-01")
	alice, ok := filtered.UserByName("alice")
	require.True(t, ok)
	assert.Len(t, alice.DailyData, 1)
	assert.Equal(t, "2024-03-01", alice.DailyData[0].Day)
}

func TestComputeMonthlyAggregates(t *testing.T) {
	ds := fixtureDataset()

	monthly := ComputeMonthlyAggregates(ds)
	require.Len(t, monthly, 2)

	march := monthly[0]
	assert.Equal(t, "2024-03", march.PeriodKey)
	assert.Equal(t, 3, march.DaysCount)
	assert.InDelta(t, 125, march.Totals.TotalUsageMB, 0.01)
	assert.InDelta(t, 90, march.Totals.TotalDownloadMB, 0.01)
	assert.InDelta(t, 35, march.Totals.TotalUploadMB, 0.01)
	assert.Equal(t, "alice", march.HighestConsumerName)
	assert.InDelta(t, 100, march.HighestConsumerUsageMB, 0.01)
	// 2024-03-01 cai em Esfand.
	assert.Equal(t, "اسفند", march.PeriodLabel)

	april := monthly[1]
	assert.Equal(t, "2024-04", april.PeriodKey)
	assert.Equal(t, 1, april.DaysCount)
	assert.InDelta(t, 25, april.Totals.TotalUsageMB, 0.01)
	assert.Equal(t, "bob", april.HighestConsumerName)
	assert.Equal(t, "فروردین", april.PeriodLabel)
}

func TestMonthlyAggregatesCompleteness(t *testing.T) {
	ds := fixtureDataset()

	monthly := ComputeMonthlyAggregates(ds)

	var monthsSum, usersSum float64
	for _, m := range monthly {
		monthsSum += m.Totals.TotalUsageMB
	}
	for _, u := range ds.Users {
		usersSum += u.Summary.TotalUsageMB
	}
	assert.InDelta(t, usersSum, monthsSum, 0.01)
}

func TestMonthlyHighestConsumerFallback(t *testing.T) {
	users := fixtureDataset().Users
	rng := entity.DateRange{StartDate: "2024-03-01", EndDate: "2024-04-02"}
	// Mapa presente porém sem entradas: nenhum campeão registrado.
	ds := entity.NewDataset(users, rng, map[string]entity.HighestConsumer{})

	monthly := ComputeMonthlyAggregates(ds)
	require.NotEmpty(t, monthly)
	for _, m := range monthly {
		assert.Equal(t, "unknown", m.HighestConsumerName)
		assert.Zero(t, m.HighestConsumerUsageMB)
	}
}

func TestDeriveMonthlyHighestConsumersTieBreak(t *testing.T) {
	users := []entity.UserRecord{
		{
			UserID:      "u9",
			DisplayName: "zed",
			DailyData: []entity.DailyRecord{
				{UserID: "u9", DisplayName: "zed", Day: "2024-03-05", TotalMB: 60},
			},
		},
		{
			UserID:      "u1",
			DisplayName: "amir",
			DailyData: []entity.DailyRecord{
				{UserID: "u1", DisplayName: "amir", Day: "2024-03-06", TotalMB: 60},
			},
		},
	}

	highest := entity.DeriveMonthlyHighestConsumers(users)
	require.Contains(t, highest, "2024-03")
	assert.Equal(t, "amir", highest["2024-03"].UserName)
	assert.InDelta(t, 60, highest["2024-03"].TotalUsageMB, 0.01)
}

func TestComputeQuarterlyAggregates(t *testing.T) {
	ds := fixtureDataset()

	quarterly := ComputeQuarterlyAggregates(ds)
	require.Len(t, quarterly, 2)

	// Março de 2024 (antes de Nowruz) cai no inverno de 1402.
	winter := quarterly[0]
	assert.Equal(t, 1402, winter.ShamsiYear)
	assert.Equal(t, 4, winter.Quarter)
	assert.Equal(t, "1402-4", winter.PeriodKey)
	assert.Equal(t, "زمستان 1402", winter.PeriodLabel)
	assert.Equal(t, 3, winter.DaysCount)
	assert.InDelta(t, 125, winter.Totals.TotalUsageMB, 0.01)
	assert.Equal(t, "alice", winter.HighestConsumerName)
	assert.InDelta(t, 100, winter.HighestConsumerUsageMB, 0.01)

	// 2024-04-02 já é Farvardin de 1403: primavera.
	spring := quarterly[1]
	assert.Equal(t, 1403, spring.ShamsiYear)
	assert.Equal(t, 1, spring.Quarter)
	assert.Equal(t, "بهار 1403", spring.PeriodLabel)
	assert.Equal(t, 1, spring.DaysCount)
	assert.InDelta(t, 25, spring.Totals.TotalUsageMB, 0.01)
	assert.Equal(t, "bob", spring.HighestConsumerName)
}
