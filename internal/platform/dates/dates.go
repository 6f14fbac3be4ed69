package dates

import "time"

// SpanDays reports how many schedule days a reporting window covers.
// When start and end share a calendar month this is an exact count.
// Otherwise it returns the start month's remaining days plus the days
// elapsed in the end month. That arithmetic only holds for windows spanning
// at most two consecutive months; it is not a general calendar walker.
func SpanDays(start, end time.Time) int {
	if start.Year() == end.Year() && start.Month() == end.Month() {
		return end.Day() - start.Day() + 1
	}
	return start.Day() + end.Day() - daysInMonth(start.Year(), start.Month())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateOnly truncates a time to its calendar date, keeping the location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDate reports whether two times fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsTomorrow reports whether date is the calendar day after today.
func IsTomorrow(date, today time.Time) bool {
	return SameDate(date, today.AddDate(0, 0, 1))
}

var shortLayouts = []string{"2.1.06", "2.1.2006"}

// ParseShort parses the dd.mm.yy / dd.mm.yyyy convention used by portal
// documents. Unparsable input yields nil rather than an error; report
// parsing degrades to "absent" dates.
func ParseShort(s string) *time.Time {
	for _, layout := range shortLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// FormatDeadline renders a deadline the way the homework list shows it.
func FormatDeadline(t time.Time) string {
	return t.Format("02.01 (2006)")
}
