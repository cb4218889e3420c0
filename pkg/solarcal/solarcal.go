// Package solarcal implementa a conversão entre os calendários Gregoriano e
// Shamsi (solar persa) usando aritmética pura de contagem de dias. Todas as
// funções são determinísticas, sem estado e sem I/O.
package solarcal

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout é o formato de data usado em todo o dataset ("yyyy-MM-dd").
const DateLayout = "2006-01-02"

// Dias acumulados antes de cada mês gregoriano (ano não bissexto).
var gregorianDaysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// IsGregorianLeap informa se um ano gregoriano é bissexto
// (divisível por 4, exceto séculos não divisíveis por 400).
func IsGregorianLeap(gy int) bool {
	return (gy%4 == 0 && gy%100 != 0) || gy%400 == 0
}

// IsShamsiLeap informa se um ano Shamsi é bissexto segundo o ciclo de 33 anos
// (8 anos bissextos por ciclo; Esfand tem 30 dias nesses anos).
func IsShamsiLeap(sy int) bool {
	r := (sy + 1595) % 33
	return r%4 == 0 && r != 32
}

// ShamsiMonthLength devolve o número de dias do mês Shamsi informado.
func ShamsiMonthLength(sy, sm int) int {
	switch {
	case sm <= 6:
		return 31
	case sm <= 11:
		return 30
	case IsShamsiLeap(sy):
		return 30
	default:
		return 29
	}
}

// ToShamsi converte uma data gregoriana para o calendário Shamsi.
// A entrada é assumida válida; a correção é garantida pelo round-trip
// exato com ToGregorian em toda a faixa operacional (multi-século).
func ToShamsi(gy, gm, gd int) (sy, sm, sd int) {
	gy2 := gy
	if gm > 2 {
		gy2 = gy + 1
	}
	days := 355666 + 365*gy + (gy2+3)/4 - (gy2+99)/100 + (gy2+399)/400 +
		gd + gregorianDaysBeforeMonth[gm-1]

	sy = -1595 + 33*(days/12053)
	days %= 12053
	sy += 4 * (days / 1461)
	days %= 1461
	if days > 365 {
		sy += (days - 1) / 365
		days = (days - 1) % 365
	}
	if days < 186 {
		return sy, 1 + days/31, 1 + days%31
	}
	return sy, 7 + (days-186)/30, 1 + (days-186)%30
}

// ToGregorian converte uma data Shamsi para o calendário gregoriano.
// É a inversa exata de ToShamsi.
func ToGregorian(sy, sm, sd int) (gy, gm, gd int) {
	jy := sy + 1595
	days := -355668 + 365*jy + (jy/33)*8 + (jy%33+3)/4 + sd
	if sm < 7 {
		days += (sm - 1) * 31
	} else {
		days += (sm-7)*30 + 186
	}

	gy = 400 * (days / 146097)
	days %= 146097
	if days > 36524 {
		days--
		gy += 100 * (days / 36524)
		days %= 36524
		if days >= 365 {
			days++
		}
	}
	gy += 4 * (days / 1461)
	days %= 1461
	if days > 365 {
		gy += (days - 1) / 365
		days = (days - 1) % 365
	}
	gd = days + 1

	monthLengths := [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if IsGregorianLeap(gy) {
		monthLengths[1] = 29
	}
	gm = 1
	for gm <= 12 && gd > monthLengths[gm-1] {
		gd -= monthLengths[gm-1]
		gm++
	}
	return gy, gm, gd
}

// FormatShamsi formata uma data gregoriana "yyyy-MM-dd" como string Shamsi
// "YYYY/MM/DD" com zero à esquerda. Entrada vazia ou malformada devolve ""
// em vez de erro, para que um registro ruim degrade só o campo formatado.
func FormatShamsi(gregorianDate string) string {
	if gregorianDate == "" {
		return ""
	}
	t, err := time.ParseInLocation(DateLayout, gregorianDate, time.UTC)
	if err != nil {
		return ""
	}
	sy, sm, sd := ToShamsi(t.Year(), int(t.Month()), t.Day())
	return fmt.Sprintf("%04d/%02d/%02d", sy, sm, sd)
}

// ParseDay interpreta uma data "yyyy-MM-dd" como meia-noite UTC.
func ParseDay(day string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, day, time.UTC)
}

// truncateUTC normaliza o instante para a meia-noite UTC do mesmo dia de
// calendário, tornando a aritmética de âncoras insensível a hora e fuso.
func truncateUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfShamsiWeek devolve, como data gregoriana "yyyy-MM-dd", o sábado que
// inicia a semana Shamsi contendo a data de referência.
func StartOfShamsiWeek(ref time.Time) string {
	day := truncateUTC(ref)
	// Dias decorridos desde o sábado (time.Saturday == 6).
	offset := (int(day.Weekday()) + 1) % 7
	return day.AddDate(0, 0, -offset).Format(DateLayout)
}

// StartOfShamsiMonth devolve, como data gregoriana "yyyy-MM-dd", o primeiro
// dia do mês Shamsi contendo a data de referência.
func StartOfShamsiMonth(ref time.Time) string {
	day := truncateUTC(ref)
	sy, sm, _ := ToShamsi(day.Year(), int(day.Month()), day.Day())
	gy, gm, gd := ToGregorian(sy, sm, 1)
	return time.Date(gy, time.Month(gm), gd, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// StartOfShamsiMonthsAgo devolve o primeiro dia do mês Shamsi n meses antes
// do mês contendo a data de referência, retrocedendo o ano quando o mês
// estoura abaixo de 1.
func StartOfShamsiMonthsAgo(ref time.Time, n int) string {
	day := truncateUTC(ref)
	sy, sm, _ := ToShamsi(day.Year(), int(day.Month()), day.Day())
	sm -= n
	for sm < 1 {
		sm += 12
		sy--
	}
	gy, gm, gd := ToGregorian(sy, sm, 1)
	return time.Date(gy, time.Month(gm), gd, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// Glifos persas para os dígitos ASCII 0-9.
var persianDigits = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}

// ToPersianDigits substitui cada dígito ASCII pelo glifo persa equivalente.
// Caracteres não numéricos passam inalterados; entrada vazia devolve "".
func ToPersianDigits(s string) string {
	if s == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return persianDigits[r-'0']
		}
		return r
	}, s)
}

// Nomes dos meses Shamsi, indexados por mês-1.
var shamsiMonthNames = [12]string{
	"فروردین", "اردیبهشت", "خرداد",
	"تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر",
	"دی", "بهمن", "اسفند",
}

// Nomes das estações, usados como rótulos dos trimestres Shamsi.
var shamsiQuarterNames = [4]string{"بهار", "تابستان", "پاییز", "زمستان"}

// Nomes dos dias da semana Shamsi, indexados a partir do sábado.
var shamsiWeekdayNames = [7]string{
	"شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنجشنبه", "جمعه",
}

// MonthName devolve o nome do mês Shamsi (1-12); fora da faixa devolve "".
func MonthName(sm int) string {
	if sm < 1 || sm > 12 {
		return ""
	}
	return shamsiMonthNames[sm-1]
}

// QuarterName devolve o nome do trimestre Shamsi (1-4); fora da faixa devolve "".
func QuarterName(q int) string {
	if q < 1 || q > 4 {
		return ""
	}
	return shamsiQuarterNames[q-1]
}

// WeekdayName devolve o nome Shamsi do dia da semana da data informada.
func WeekdayName(t time.Time) string {
	return shamsiWeekdayNames[(int(t.UTC().Weekday())+1)%7]
}
