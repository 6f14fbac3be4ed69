package out

import (
	"context"
	"time"
)

// ReportSource fetches the raw grade-report HTML for one subject group over
// a date range. Implementations own the portal session lifecycle.
type ReportSource interface {
	Fetch(ctx context.Context, subjectGroupID int, from, to time.Time) (string, error)
}
