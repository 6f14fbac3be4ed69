package dates_test

import (
	"testing"
	"time"

	"nshub/internal/platform/dates"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSpanDaysSameMonth(t *testing.T) {
	t.Parallel()
	cases := []struct {
		start, end time.Time
		want       int
	}{
		{day(2024, time.September, 2), day(2024, time.September, 8), 7},
		{day(2024, time.September, 5), day(2024, time.September, 5), 1},
		{day(2024, time.February, 26), day(2024, time.February, 29), 4},
	}
	for _, tc := range cases {
		if got := dates.SpanDays(tc.start, tc.end); got != tc.want {
			t.Fatalf("SpanDays(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestSpanDaysAcrossMonthBoundary(t *testing.T) {
	t.Parallel()
	// 30 + 2 - 31 = 1 for a January→February window.
	if got := dates.SpanDays(day(2024, time.January, 30), day(2024, time.February, 2)); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	// February of a leap year has 29 days: 26 + 3 - 29 = 0.
	if got := dates.SpanDays(day(2024, time.February, 26), day(2024, time.March, 3)); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestIsTomorrow(t *testing.T) {
	t.Parallel()
	today := day(2024, time.September, 30)
	if !dates.IsTomorrow(day(2024, time.October, 1), today) {
		t.Fatalf("next day across month boundary should be tomorrow")
	}
	if dates.IsTomorrow(day(2024, time.September, 30), today) {
		t.Fatalf("today is not tomorrow")
	}
	if dates.IsTomorrow(day(2024, time.October, 2), today) {
		t.Fatalf("day after tomorrow is not tomorrow")
	}
}

func TestParseShort(t *testing.T) {
	t.Parallel()
	got := dates.ParseShort("02.09.24")
	if got == nil || !dates.SameDate(*got, day(2024, time.September, 2)) {
		t.Fatalf("two-digit year parse failed: %v", got)
	}
	got = dates.ParseShort("2.9.2024")
	if got == nil || !dates.SameDate(*got, day(2024, time.September, 2)) {
		t.Fatalf("four-digit year parse failed: %v", got)
	}
	if dates.ParseShort("not a date") != nil {
		t.Fatalf("garbage must yield nil, not an error")
	}
	if dates.ParseShort("") != nil {
		t.Fatalf("empty input must yield nil")
	}
}

func TestFormatDeadline(t *testing.T) {
	t.Parallel()
	if got := dates.FormatDeadline(day(2024, time.September, 3)); got != "03.09 (2024)" {
		t.Fatalf("unexpected deadline format: %s", got)
	}
}
