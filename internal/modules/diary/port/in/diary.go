package in

import (
	"context"

	"nshub/internal/modules/diary/dto"
)

type Usecase interface {
	// CollectHomework runs the full aggregation pipeline and returns pending
	// homework, due-tomorrow items first.
	CollectHomework(ctx context.Context) ([]dto.AssignmentOutput, error)
	// TomorrowHomework returns only the due-tomorrow subset.
	TomorrowHomework(ctx context.Context) ([]dto.AssignmentOutput, error)
	// TomorrowSchedule returns tomorrow's lesson list for display. A portal
	// that has not published the schedule yet yields Available=false, not an
	// error.
	TomorrowSchedule(ctx context.Context) (dto.ScheduleOutput, error)
}
