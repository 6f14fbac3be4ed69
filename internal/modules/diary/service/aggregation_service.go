package service

import (
	"context"
	"fmt"
	"time"

	"nshub/internal/modules/diary/domain"
	"nshub/internal/modules/diary/port/out"
	"nshub/internal/platform/clock"
	"nshub/internal/platform/dates"
)

// AggregationService runs the homework pipeline: open a session, fetch the
// schedule window, classify assignments, resolve their subjects and log out.
type AggregationService struct {
	clk    clock.Clock
	opener out.SessionOpener
}

func NewAggregationService(clk clock.Clock, opener out.SessionOpener) *AggregationService {
	return &AggregationService{clk: clk, opener: opener}
}

// CollectHomework returns pending homework for the current window,
// due-tomorrow items first. An empty window yields an empty result without
// any lookups.
func (s *AggregationService) CollectHomework(ctx context.Context) ([]domain.ResolvedAssignment, error) {
	sess, err := s.opener.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	// Logout must run even when the caller's context is already cancelled.
	defer sess.Logout(context.WithoutCancel(ctx))

	window, err := sess.FetchSchedule(ctx, time.Time{}, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("fetch schedule: %w", err)
	}
	if len(window.Days) == 0 {
		return nil, nil
	}

	today := clock.Today(s.clk)
	buckets := domain.NewBuckets()
	for _, day := range window.Days[:windowSpan(window)] {
		for _, a := range domain.PendingHomework(day, window, today) {
			buckets.Add(a, today)
		}
	}

	pending := buckets.Ordered()
	resolved := make([]domain.ResolvedAssignment, 0, len(pending))
	for _, a := range pending {
		info, err := sess.LookupAssignment(ctx, a.ID)
		if err != nil {
			return nil, fmt.Errorf("resolve assignment %d: %w", a.ID, err)
		}
		if info.Deleted {
			continue
		}
		resolved = append(resolved, domain.ResolvedAssignment{
			Subject:  domain.SubjectLabel(info.SubjectPath),
			IsDuty:   a.IsDuty,
			Deadline: a.Deadline,
			Content:  a.Content,
			Comment:  a.Comment,
		})
	}
	return resolved, nil
}

// TomorrowHomework narrows CollectHomework to items due tomorrow.
func (s *AggregationService) TomorrowHomework(ctx context.Context) ([]domain.ResolvedAssignment, error) {
	all, err := s.CollectHomework(ctx)
	if err != nil {
		return nil, err
	}
	today := clock.Today(s.clk)
	due := make([]domain.ResolvedAssignment, 0, len(all))
	for _, a := range all {
		if dates.IsTomorrow(a.Deadline, today) {
			due = append(due, a)
		}
	}
	return due, nil
}

// TomorrowSchedule returns tomorrow's lesson list. available is false when
// the portal has no day for tomorrow in the current window.
func (s *AggregationService) TomorrowSchedule(ctx context.Context) (day domain.DaySchedule, available bool, err error) {
	sess, err := s.opener.Open(ctx)
	if err != nil {
		return domain.DaySchedule{}, false, fmt.Errorf("open session: %w", err)
	}
	defer sess.Logout(context.WithoutCancel(ctx))

	window, err := sess.FetchSchedule(ctx, time.Time{}, time.Time{})
	if err != nil {
		return domain.DaySchedule{}, false, fmt.Errorf("fetch schedule: %w", err)
	}

	today := clock.Today(s.clk)
	for _, d := range window.Days {
		if dates.IsTomorrow(d.Date, today) {
			return d, true, nil
		}
	}
	return domain.DaySchedule{}, false, nil
}

// windowSpan is the number of leading days that belong to the reported
// window. The portal occasionally pads the day list past the window's end,
// and occasionally truncates it, so the span is clamped to what was
// actually sent.
func windowSpan(w domain.ScheduleWindow) int {
	span := dates.SpanDays(w.Start, w.End)
	if span > len(w.Days) {
		span = len(w.Days)
	}
	if span < 0 {
		span = 0
	}
	return span
}
