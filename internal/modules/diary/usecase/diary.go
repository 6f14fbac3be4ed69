package usecase

import (
	"context"
	"errors"

	"nshub/internal/modules/diary/domain"
	"nshub/internal/modules/diary/dto"
	diaryin "nshub/internal/modules/diary/port/in"
	"nshub/internal/modules/diary/service"
	"nshub/internal/platform/dates"
	apperrors "nshub/internal/platform/errors"
)

type Interactor struct {
	svc *service.AggregationService
}

func NewInteractor(svc *service.AggregationService) diaryin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) CollectHomework(ctx context.Context) ([]dto.AssignmentOutput, error) {
	resolved, err := i.svc.CollectHomework(ctx)
	if err != nil {
		return nil, err
	}
	return mapAssignments(resolved), nil
}

func (i *Interactor) TomorrowHomework(ctx context.Context) ([]dto.AssignmentOutput, error) {
	resolved, err := i.svc.TomorrowHomework(ctx)
	if err != nil {
		return nil, err
	}
	return mapAssignments(resolved), nil
}

func (i *Interactor) TomorrowSchedule(ctx context.Context) (dto.ScheduleOutput, error) {
	day, available, err := i.svc.TomorrowSchedule(ctx)
	if err != nil {
		// A portal that has not published the schedule yet is a display
		// state, not a failure.
		if errors.Is(err, apperrors.ErrScheduleUnavailable) {
			return dto.ScheduleOutput{}, nil
		}
		return dto.ScheduleOutput{}, err
	}
	if !available {
		return dto.ScheduleOutput{}, nil
	}
	out := dto.ScheduleOutput{
		Available: true,
		Date:      day.Date.Format("02.01.2006"),
		Lessons:   make([]dto.LessonOutput, 0, len(day.Lessons)),
	}
	for _, lesson := range day.Lessons {
		out.Lessons = append(out.Lessons, mapLesson(lesson))
	}
	return out, nil
}

func mapAssignments(resolved []domain.ResolvedAssignment) []dto.AssignmentOutput {
	out := make([]dto.AssignmentOutput, 0, len(resolved))
	for _, a := range resolved {
		out = append(out, dto.AssignmentOutput{
			Subject:  a.Subject,
			IsDuty:   a.IsDuty,
			Deadline: dates.FormatDeadline(a.Deadline),
			Content:  a.Content,
			Comment:  a.Comment,
		})
	}
	return out
}

func mapLesson(lesson domain.Lesson) dto.LessonOutput {
	out := dto.LessonOutput{
		Number:  lesson.Number,
		Subject: lesson.Subject,
		Room:    lesson.Room,
		Teacher: lesson.Teacher,
	}
	if !lesson.Start.IsZero() {
		out.Start = lesson.Start.Format("15:04")
	}
	if !lesson.End.IsZero() {
		out.End = lesson.End.Format("15:04")
	}
	for _, a := range lesson.Assignments {
		if a.Type != domain.HomeworkType {
			continue
		}
		out.Homework = append(out.Homework, dto.HomeworkNote{
			Content:  a.Content,
			Comment:  a.Comment,
			Deadline: dates.FormatDeadline(a.Deadline),
			IsDuty:   a.IsDuty,
		})
	}
	return out
}
