package usecase

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/diillson/netusage-dashboard-go/internal/domain/entity"
	"github.com/diillson/netusage-dashboard-go/pkg/solarcal"
)

// round2 arredonda para 2 casas, a precisão de todo o dataset (MB).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Aggregator reexecuta as agregações derivadas a cada mudança de intervalo.
// Cada passada é O(total de registros diários); entradas idênticas (mesmo
// dataset + mesmo intervalo) reaproveitam o último resultado dentro de um
// ciclo de renderização.
type Aggregator struct {
	memoDataset *entity.Dataset
	memoStart   string
	memoEnd     string
	memoResult  *entity.Dataset
}

// FilterByDateRange filtra os registros diários pelo intervalo inclusivo
// [startDate, endDate] e devolve um novo Dataset com os totais por usuário
// recomputados sobre o subconjunto retido. Usuários sem registros no
// intervalo são descartados. Quando resta algum dado, o DateRange reportado
// é o min/max real presente; caso contrário, os limites pedidos passam
// adiante e o resultado com zero usuários é um estado válido de "sem dados".
func (a *Aggregator) FilterByDateRange(ds *entity.Dataset, startDate, endDate string) *entity.Dataset {
	if a.memoResult != nil && a.memoDataset == ds && a.memoStart == startDate && a.memoEnd == endDate {
		return a.memoResult
	}

	result := filterByDateRange(ds, startDate, endDate)

	a.memoDataset = ds
	a.memoStart = startDate
	a.memoEnd = endDate
	a.memoResult = result
	return result
}

func filterByDateRange(ds *entity.Dataset, startDate, endDate string) *entity.Dataset {
	requested := entity.DateRange{StartDate: startDate, EndDate: endDate}

	// Limites comparados como datas de calendário em UTC: meia-noite no
	// início e fim de dia no fim, evitando exclusão de fronteira.
	startT, errS := time.ParseInLocation(solarcal.DateLayout, startDate, time.UTC)
	endT, errE := time.ParseInLocation(solarcal.DateLayout, endDate, time.UTC)
	if errS != nil || errE != nil {
		return &entity.Dataset{
			Users:                   nil,
			DateRange:               requested,
			MonthlyHighestConsumers: ds.MonthlyHighestConsumers,
		}
	}
	endT = endT.Add(24*time.Hour - time.Second)

	var users []entity.UserRecord
	var minDay, maxDay string

	for _, u := range ds.Users {
		kept := lo.Filter(u.DailyData, func(r entity.DailyRecord, _ int) bool {
			day, err := time.ParseInLocation(solarcal.DateLayout, r.Day, time.UTC)
			return err == nil && !day.Before(startT) && !day.After(endT)
		})
		if len(kept) == 0 {
			continue
		}

		var summary entity.Totals
		for _, r := range kept {
			summary.Accumulate(r)
			if minDay == "" || r.Day < minDay {
				minDay = r.Day
			}
			if r.Day > maxDay {
				maxDay = r.Day
			}
		}
		summary.TotalDownloadMB = round2(summary.TotalDownloadMB)
		summary.TotalUploadMB = round2(summary.TotalUploadMB)
		summary.TotalUsageMB = round2(summary.TotalUsageMB)

		users = append(users, entity.UserRecord{
			UserID:      u.UserID,
			DisplayName: u.DisplayName,
			DailyData:   kept,
			Summary:     summary,
		})
	}

	rng := requested
	if len(users) > 0 {
		rng = entity.DateRange{StartDate: minDay, EndDate: maxDay}
	}

	return &entity.Dataset{
		Users:                   users,
		DateRange:               rng,
		MonthlyHighestConsumers: ds.MonthlyHighestConsumers,
	}
}

// periodBucket acumula uma passada de agregação por período.
type periodBucket struct {
	totals  entity.Totals
	days    map[string]struct{}
	byUser  map[string]float64
	shamsiY int
	quarter int
}

func newPeriodBucket() *periodBucket {
	return &periodBucket{
		days:   map[string]struct{}{},
		byUser: map[string]float64{},
	}
}

func (b *periodBucket) add(userName string, r entity.DailyRecord) {
	b.totals.Accumulate(r)
	b.days[r.Day] = struct{}{}
	b.byUser[userName] += r.TotalMB
}

// roundedTotals devolve os totais do balde arredondados a 2 casas.
func (b *periodBucket) roundedTotals() entity.Totals {
	return entity.Totals{
		TotalDownloadMB: round2(b.totals.TotalDownloadMB),
		TotalUploadMB:   round2(b.totals.TotalUploadMB),
		TotalUsageMB:    round2(b.totals.TotalUsageMB),
	}
}

// highest devolve o maior consumidor do balde, com empate resolvido pelo
// menor nome de exibição.
func (b *periodBucket) highest() entity.HighestConsumer {
	if len(b.byUser) == 0 {
		return entity.UnknownConsumer
	}
	names := lo.Keys(b.byUser)
	sort.Strings(names)
	best := entity.HighestConsumer{UserName: names[0], TotalUsageMB: b.byUser[names[0]]}
	for _, name := range names[1:] {
		if b.byUser[name] > best.TotalUsageMB {
			best = entity.HighestConsumer{UserName: name, TotalUsageMB: b.byUser[name]}
		}
	}
	best.TotalUsageMB = round2(best.TotalUsageMB)
	return best
}

// ComputeMonthlyAggregates agrupa todos os registros diários por mês
// gregoriano ("YYYY-MM"), contando dias distintos com dados. O maior
// consumidor de cada mês vem do mapa pré-computado do dataset (sentinela
// "unknown" quando ausente) e o rótulo é o nome do mês Shamsi derivado do
// primeiro dia do mês gregoriano. Saída ordenada pela chave ascendente.
func ComputeMonthlyAggregates(ds *entity.Dataset) []entity.MonthlyAggregate {
	buckets := map[string]*periodBucket{}
	for _, u := range ds.Users {
		for _, r := range u.DailyData {
			if len(r.Day) < 7 {
				continue
			}
			key := r.Day[:7]
			b, ok := buckets[key]
			if !ok {
				b = newPeriodBucket()
				buckets[key] = b
			}
			b.add(u.DisplayName, r)
		}
	}

	keys := lo.Keys(buckets)
	sort.Strings(keys)

	aggregates := make([]entity.MonthlyAggregate, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		hc := ds.HighestConsumerFor(key)
		aggregates = append(aggregates, entity.MonthlyAggregate{
			PeriodKey:              key,
			PeriodLabel:            shamsiMonthLabel(key),
			DaysCount:              len(b.days),
			Totals:                 b.roundedTotals(),
			HighestConsumerName:    hc.UserName,
			HighestConsumerUsageMB: hc.TotalUsageMB,
		})
	}
	return aggregates
}

// shamsiMonthLabel devolve o nome do mês Shamsi correspondente ao primeiro
// dia do mês gregoriano "YYYY-MM"; chave malformada devolve "".
func shamsiMonthLabel(monthKey string) string {
	t, err := time.ParseInLocation(solarcal.DateLayout, monthKey+"-01", time.UTC)
	if err != nil {
		return ""
	}
	_, sm, _ := solarcal.ToShamsi(t.Year(), int(t.Month()), t.Day())
	return solarcal.MonthName(sm)
}

// Tabela fixa mês Shamsi (1-12) -> trimestre (1-4). Não é agnóstica de
// calendário: os trimestres seguem as estações do calendário solar.
var shamsiMonthQuarter = [12]int{1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4}

// ComputeQuarterlyAggregates converte cada registro diário para o calendário
// Shamsi, mapeia o mês para um dos 4 trimestres fixos e agrupa por
// (ano Shamsi, trimestre), acumulando totais e dias distintos. Saída
// ordenada pela chave composta ascendente.
func ComputeQuarterlyAggregates(ds *entity.Dataset) []entity.QuarterlyAggregate {
	type quarterKey struct {
		year    int
		quarter int
	}
	buckets := map[quarterKey]*periodBucket{}

	for _, u := range ds.Users {
		for _, r := range u.DailyData {
			t, err := time.ParseInLocation(solarcal.DateLayout, r.Day, time.UTC)
			if err != nil {
				continue
			}
			sy, sm, _ := solarcal.ToShamsi(t.Year(), int(t.Month()), t.Day())
			key := quarterKey{year: sy, quarter: shamsiMonthQuarter[sm-1]}
			b, ok := buckets[key]
			if !ok {
				b = newPeriodBucket()
				b.shamsiY = sy
				b.quarter = key.quarter
				buckets[key] = b
			}
			b.add(u.DisplayName, r)
		}
	}

	keys := lo.Keys(buckets)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].quarter < keys[j].quarter
	})

	aggregates := make([]entity.QuarterlyAggregate, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		hc := b.highest()
		aggregates = append(aggregates, entity.QuarterlyAggregate{
			PeriodKey:              fmt.Sprintf("%d-%d", key.year, key.quarter),
			PeriodLabel:            fmt.Sprintf("%s %d", solarcal.QuarterName(key.quarter), key.year),
			ShamsiYear:             key.year,
			Quarter:                key.quarter,
			DaysCount:              len(b.days),
			Totals:                 b.roundedTotals(),
			HighestConsumerName:    hc.UserName,
			HighestConsumerUsageMB: hc.TotalUsageMB,
		})
	}
	return aggregates
}
