package domain

import (
	"strings"
	"time"

	"nshub/internal/platform/dates"
)

// Teachers record "nothing assigned" as an assignment with one of these
// bodies; they are noise, not homework.
var noHomeworkSentinels = []string{
	"БЕЗ ДОМАШНЕГО ЗАДАНИЯ.",
	"НЕ ЗАДАНО",
}

// PendingHomework filters one day's lessons down to the assignments that are
// genuine outstanding homework. An assignment qualifies iff it carries the
// homework type label, has no mark yet, its content is not a no-homework
// sentinel, its deadline is upcoming (or it is already overdue), and its
// deadline month matches today's month unless the window itself crosses a
// month boundary. The month condition is a safety valve: SpanDays only
// handles windows inside two consecutive months, so boundary-month items are
// admitted whenever the window crosses months.
func PendingHomework(day DaySchedule, window ScheduleWindow, today time.Time) []RawAssignment {
	var pending []RawAssignment
	for _, lesson := range day.Lessons {
		for _, assignment := range lesson.Assignments {
			if isPending(assignment, window, today) {
				pending = append(pending, assignment)
			}
		}
	}
	return pending
}

func isPending(a RawAssignment, window ScheduleWindow, today time.Time) bool {
	if a.Type != HomeworkType {
		return false
	}
	if a.Mark != nil {
		return false
	}
	if isNoHomework(a.Content) {
		return false
	}
	deadline := dates.DateOnly(a.Deadline)
	if !deadline.After(dates.DateOnly(today)) && !a.IsDuty {
		return false
	}
	if deadline.Month() != today.Month() && !window.CrossesMonth() {
		return false
	}
	return true
}

func isNoHomework(content string) bool {
	normalized := strings.ToUpper(strings.TrimSpace(content))
	for _, sentinel := range noHomeworkSentinels {
		if normalized == sentinel {
			return true
		}
	}
	return false
}
