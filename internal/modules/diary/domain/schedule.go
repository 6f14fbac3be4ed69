package domain

import (
	"strings"
	"time"
)

// HomeworkType is the literal type label the portal attaches to homework
// assignments.
const HomeworkType = "Домашнее задание"

// RawAssignment is an assignment exactly as the schedule carries it, before
// classification and resolution.
type RawAssignment struct {
	ID       int64
	Type     string
	Content  string
	Comment  string
	Mark     *float64
	Deadline time.Time
	IsDuty   bool
}

// Lesson metadata beyond Assignments is consumed only by schedule display.
type Lesson struct {
	Number      int
	Subject     string
	Room        string
	Teacher     string
	Start       time.Time
	End         time.Time
	Assignments []RawAssignment
}

type DaySchedule struct {
	Date    time.Time
	Lessons []Lesson
}

// ScheduleWindow is a fetched schedule span. Immutable once returned by the
// portal gateway.
type ScheduleWindow struct {
	Start time.Time
	End   time.Time
	Days  []DaySchedule
}

// CrossesMonth reports whether the window's start and end fall in different
// calendar months.
func (w ScheduleWindow) CrossesMonth() bool {
	return w.Start.Month() != w.End.Month() || w.Start.Year() != w.End.Year()
}

// ResolvedAssignment is the pipeline's output unit.
type ResolvedAssignment struct {
	Subject  string
	IsDuty   bool
	Deadline time.Time
	Content  string
	Comment  string
}

// SubjectLabel extracts the display label from a slash-delimited
// subject-group path like "9А/Алгебра". A path without a separator yields
// the whole trimmed string rather than failing.
func SubjectLabel(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(path)
}
