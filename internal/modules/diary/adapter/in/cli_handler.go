package in

import (
	"context"

	"nshub/internal/modules/diary/dto"
	diaryin "nshub/internal/modules/diary/port/in"
)

type CLIHandler struct {
	usecase diaryin.Usecase
}

func NewCLIHandler(usecase diaryin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Homework(ctx context.Context, tomorrowOnly bool) ([]dto.AssignmentOutput, error) {
	if tomorrowOnly {
		return h.usecase.TomorrowHomework(ctx)
	}
	return h.usecase.CollectHomework(ctx)
}

func (h CLIHandler) Schedule(ctx context.Context) (dto.ScheduleOutput, error) {
	return h.usecase.TomorrowSchedule(ctx)
}
