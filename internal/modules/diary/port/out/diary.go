package out

import (
	"context"
	"time"

	"nshub/internal/modules/diary/domain"
)

// AssignmentInfo is the result of one assignment lookup. Deleted means the
// server removed the record; the pipeline drops such items because they can
// no longer be attributed to a subject.
type AssignmentInfo struct {
	SubjectPath string
	Deleted     bool
}

// DiarySession is an open authenticated portal session scoped to one
// pipeline run. Lookups reuse the same session token, so callers must not
// issue them concurrently.
type DiarySession interface {
	// FetchSchedule returns the schedule window; zero start/end request the
	// portal's default week.
	FetchSchedule(ctx context.Context, start, end time.Time) (domain.ScheduleWindow, error)
	LookupAssignment(ctx context.Context, assignmentID int64) (AssignmentInfo, error)
	Logout(ctx context.Context) error
}

// SessionOpener opens a fresh session; one per aggregation run.
type SessionOpener interface {
	Open(ctx context.Context) (DiarySession, error)
}
