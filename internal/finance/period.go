package finance

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// LocalDateString converts t into a zero-padded calendar-date string
// using its local year/month/day fields directly, with no timezone
// conversion.
func LocalDateString(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// TodayString returns today's local date as YYYY-MM-DD.
func TodayString() string {
	return LocalDateString(time.Now())
}

// CurrentMonth returns the current local month key as YYYY-MM.
func CurrentMonth() string {
	now := time.Now()
	return fmt.Sprintf("%04d-%02d", now.Year(), int(now.Month()))
}

// MonthsBetween enumerates every month key from startMonth to endMonth
// inclusive, in chronological order, rolling over year boundaries.
// Equal bounds yield a single element; a reversed range yields an empty
// result.
func MonthsBetween(startMonth, endMonth string) []string {
	start, err := time.Parse(monthLayout, startMonth)
	if err != nil {
		return nil
	}
	end, err := time.Parse(monthLayout, endMonth)
	if err != nil {
		return nil
	}

	var months []string
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 1, 0) {
		months = append(months, cur.Format(monthLayout))
	}
	return months
}

// LastNMonths returns the most recent n month keys ending at (and
// including) the current month, oldest first.
func LastNMonths(n int) []string {
	if n < 1 {
		return nil
	}
	now := time.Now()
	cur := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	months := make([]string, n)
	for i := n - 1; i >= 0; i-- {
		months[i] = cur.Format(monthLayout)
		cur = cur.AddDate(0, -1, 0)
	}
	return months
}

var monthNames = map[string][12]string{
	"pt-BR": {"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
	"en-US": {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	"de-DE": {"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
}

// MonthName returns the localized full month name and year for a month
// key, e.g. "janeiro de 2024" for pt-BR or "January 2024" for en-US.
// Unknown locales fall back to en-US.
func MonthName(monthKey, locale string) string {
	t, err := time.Parse(monthLayout, monthKey)
	if err != nil {
		return monthKey
	}
	names, ok := monthNames[locale]
	if !ok {
		names = monthNames["en-US"]
	}
	name := names[int(t.Month())-1]
	if locale == "pt-BR" {
		return fmt.Sprintf("%s de %d", name, t.Year())
	}
	return fmt.Sprintf("%s %d", name, t.Year())
}
