package solarcal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToShamsiKnownDates(t *testing.T) {
	tests := []struct {
		gy, gm, gd int
		sy, sm, sd int
	}{
		{2024, 3, 20, 1403, 1, 1},   // Nowruz
		{2024, 3, 19, 1402, 12, 29}, // véspera de Nowruz
		{2024, 2, 29, 1402, 12, 10}, // dia bissexto gregoriano
		{2025, 3, 20, 1403, 12, 30}, // Esfand 30 em ano Shamsi bissexto
		{2025, 3, 21, 1404, 1, 1},
		{1979, 2, 11, 1357, 11, 22},
		{2000, 1, 1, 1378, 10, 11},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%04d-%02d-%02d", tc.gy, tc.gm, tc.gd), func(t *testing.T) {
			sy, sm, sd := ToShamsi(tc.gy, tc.gm, tc.gd)
			assert.Equal(t, [3]int{tc.sy, tc.sm, tc.sd}, [3]int{sy, sm, sd})

			gy, gm, gd := ToGregorian(tc.sy, tc.sm, tc.sd)
			assert.Equal(t, [3]int{tc.gy, tc.gm, tc.gd}, [3]int{gy, gm, gd})
		})
	}
}

func TestRoundTripCentury(t *testing.T) {
	start := time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2050, 12, 31, 0, 0, 0, 0, time.UTC)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		sy, sm, sd := ToShamsi(day.Year(), int(day.Month()), day.Day())

		require.GreaterOrEqual(t, sm, 1, "month out of range for %s", day.Format(DateLayout))
		require.LessOrEqual(t, sm, 12, "month out of range for %s", day.Format(DateLayout))
		require.GreaterOrEqual(t, sd, 1, "day out of range for %s", day.Format(DateLayout))
		require.LessOrEqual(t, sd, ShamsiMonthLength(sy, sm), "day exceeds month length for %s", day.Format(DateLayout))

		gy, gm, gd := ToGregorian(sy, sm, sd)
		require.Equal(t,
			[3]int{day.Year(), int(day.Month()), day.Day()},
			[3]int{gy, gm, gd},
			"round-trip mismatch via %04d/%02d/%02d", sy, sm, sd)
	}
}

func TestIsShamsiLeap(t *testing.T) {
	tests := []struct {
		sy   int
		leap bool
	}{
		{1399, true},
		{1402, false},
		{1403, true},
		{1404, false},
		{1407, false},
		{1408, true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.leap, IsShamsiLeap(tc.sy), "year %d", tc.sy)
	}
}

func TestShamsiMonthLength(t *testing.T) {
	assert.Equal(t, 31, ShamsiMonthLength(1402, 1))
	assert.Equal(t, 31, ShamsiMonthLength(1402, 6))
	assert.Equal(t, 30, ShamsiMonthLength(1402, 7))
	assert.Equal(t, 30, ShamsiMonthLength(1402, 11))
	assert.Equal(t, 29, ShamsiMonthLength(1402, 12))
	assert.Equal(t, 30, ShamsiMonthLength(1403, 12))
}

func TestStartOfShamsiWeek(t *testing.T) {
	// 2024-03-20 é quarta-feira; a semana Shamsi começou no sábado 03-16.
	ref := time.Date(2024, 3, 20, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-16", StartOfShamsiWeek(ref))

	// Sábado é o próprio início da semana.
	sat := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-16", StartOfShamsiWeek(sat))
}

func TestStartOfShamsiMonth(t *testing.T) {
	// 2024-04-10 = 1403/01/22; o mês começou em Nowruz, 2024-03-20.
	ref := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-20", StartOfShamsiMonth(ref))

	// O próprio primeiro dia do mês.
	nowruz := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-20", StartOfShamsiMonth(nowruz))
}

func TestStartOfShamsiMonthsAgo(t *testing.T) {
	ref := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC) // 1403/01/22

	// 3 meses antes de Farvardin 1403 -> Dey 1402, cruzando o ano Shamsi.
	assert.Equal(t, "2023-12-22", StartOfShamsiMonthsAgo(ref, 3))

	// 0 meses atrás é o início do mês corrente.
	assert.Equal(t, "2024-03-20", StartOfShamsiMonthsAgo(ref, 0))
}

func TestFormatShamsi(t *testing.T) {
	assert.Equal(t, "1403/01/01", FormatShamsi("2024-03-20"))
	assert.Equal(t, "1402/12/10", FormatShamsi("2024-02-29"))
	assert.Equal(t, "", FormatShamsi(""))
	assert.Equal(t, "", FormatShamsi("2024-13-99"))
	assert.Equal(t, "", FormatShamsi("not-a-date"))
}

func TestToPersianDigits(t *testing.T) {
	assert.Equal(t, "۱۴۰۳/۰۱/۰۱", ToPersianDigits("1403/01/01"))
	assert.Equal(t, "۱۲۳.۴۵", ToPersianDigits("123.45"))
	assert.Equal(t, "abc", ToPersianDigits("abc"))
	assert.Equal(t, "", ToPersianDigits(""))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "فروردین", MonthName(1))
	assert.Equal(t, "اسفند", MonthName(12))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))

	assert.Equal(t, "بهار", QuarterName(1))
	assert.Equal(t, "زمستان", QuarterName(4))
	assert.Equal(t, "", QuarterName(5))

	sat := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "شنبه", WeekdayName(sat))
	fri := time.Date(2024, 3, 22, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "جمعه", WeekdayName(fri))
}
