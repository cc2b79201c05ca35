package utils

import (
	"fmt"
	"math"
	"time"
)

// Minute thresholds for the distance buckets, matching the usual "time ago" rules
// used by the donor page.
const (
	minutesInDay           = 1440
	minutesInAlmostTwoDays = 2520
	minutesInMonth         = 43200
	minutesInTwoMonths     = 86400
)

type unitWords struct {
	one   string
	other string // %d placeholder for the count
}

type relativeLocale struct {
	lessThanXMinutes unitWords
	xMinutes         unitWords
	aboutXHours      unitWords
	xDays            unitWords
	aboutXMonths     unitWords
	xMonths          unitWords
	aboutXYears      unitWords
	overXYears       unitWords
	almostXYears     unitWords
	past             string
	future           string
}

var ptBR = relativeLocale{
	lessThanXMinutes: unitWords{"menos de um minuto", "menos de %d minutos"},
	xMinutes:         unitWords{"1 minuto", "%d minutos"},
	aboutXHours:      unitWords{"cerca de 1 hora", "cerca de %d horas"},
	xDays:            unitWords{"1 dia", "%d dias"},
	aboutXMonths:     unitWords{"cerca de 1 mês", "cerca de %d meses"},
	xMonths:          unitWords{"1 mês", "%d meses"},
	aboutXYears:      unitWords{"cerca de 1 ano", "cerca de %d anos"},
	overXYears:       unitWords{"mais de 1 ano", "mais de %d anos"},
	almostXYears:     unitWords{"quase 1 ano", "quase %d anos"},
	past:             "há %s",
	future:           "em %s",
}

func (w unitWords) count(n int) string {
	if n == 1 {
		return w.one
	}
	return fmt.Sprintf(w.other, n)
}

// FormatRelativeTime renders the distance between t and now in pt-BR with a
// suffix, e.g. "há 3 minutos" for a timestamp three minutes in the past.
func FormatRelativeTime(t, now time.Time) string {
	loc := ptBR
	suffix := loc.past
	from, to := t, now
	if t.After(now) {
		suffix = loc.future
		from, to = now, t
	}
	return fmt.Sprintf(suffix, distance(loc, from, to))
}

func distance(loc relativeLocale, from, to time.Time) string {
	seconds := to.Sub(from).Seconds()
	minutes := int(math.Round(seconds / 60))

	switch {
	case minutes < 1:
		return loc.lessThanXMinutes.count(1)
	case minutes < 45:
		return loc.xMinutes.count(minutes)
	case minutes < 90:
		return loc.aboutXHours.count(1)
	case minutes < minutesInDay:
		return loc.aboutXHours.count(int(math.Round(float64(minutes) / 60)))
	case minutes < minutesInAlmostTwoDays:
		return loc.xDays.count(1)
	case minutes < minutesInMonth:
		return loc.xDays.count(int(math.Round(float64(minutes) / minutesInDay)))
	case minutes < minutesInTwoMonths:
		return loc.aboutXMonths.count(int(math.Round(float64(minutes) / minutesInMonth)))
	}

	months := monthsBetween(from, to)
	if months < 12 {
		n := int(math.Round(float64(minutes) / minutesInMonth))
		if n < 1 {
			n = 1
		}
		return loc.xMonths.count(n)
	}

	years := months / 12
	rest := months % 12
	switch {
	case rest < 3:
		return loc.aboutXYears.count(years)
	case rest < 9:
		return loc.overXYears.count(years)
	default:
		return loc.almostXYears.count(years + 1)
	}
}

// monthsBetween counts full calendar months from a to b (a <= b).
func monthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if months > 0 && b.AddDate(0, -months, 0).Before(a) {
		months--
	}
	return months
}
