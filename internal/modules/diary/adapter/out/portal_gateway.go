package out

import (
	"context"
	"fmt"
	"time"

	"nshub/internal/modules/diary/domain"
	diaryout "nshub/internal/modules/diary/port/out"
	schoolin "nshub/internal/modules/school/port/in"
	"nshub/internal/platform/config"
	"nshub/internal/portal"
)

// PortalOpener logs into the portal with the stored credentials and hands
// the pipeline an authenticated session.
type PortalOpener struct {
	client  *portal.Client
	creds   config.Provider
	schools schoolin.Usecase
}

func NewPortalOpener(client *portal.Client, creds config.Provider, schools schoolin.Usecase) diaryout.SessionOpener {
	return &PortalOpener{client: client, creds: creds, schools: schools}
}

func (o *PortalOpener) Open(ctx context.Context) (diaryout.DiarySession, error) {
	creds, err := o.creds.Load()
	if err != nil {
		return nil, err
	}
	schoolID, err := o.schools.Resolve(ctx, creds.School)
	if err != nil {
		return nil, fmt.Errorf("resolve school %q: %w", creds.School, err)
	}
	sess, err := o.client.Login(ctx, creds.Username, creds.Password, int(schoolID))
	if err != nil {
		return nil, err
	}
	return &portalSession{sess: sess}, nil
}

type portalSession struct {
	sess *portal.Session
}

func (p *portalSession) FetchSchedule(ctx context.Context, start, end time.Time) (domain.ScheduleWindow, error) {
	diary, err := p.sess.Diary(ctx, start, end)
	if err != nil {
		return domain.ScheduleWindow{}, err
	}
	return mapWindow(diary), nil
}

func (p *portalSession) LookupAssignment(ctx context.Context, assignmentID int64) (diaryout.AssignmentInfo, error) {
	details, err := p.sess.AssignmentDetails(ctx, assignmentID)
	if err != nil {
		return diaryout.AssignmentInfo{}, err
	}
	return diaryout.AssignmentInfo{
		SubjectPath: details.SubjectGroup.Name,
		Deleted:     details.IsDeleted,
	}, nil
}

func (p *portalSession) Logout(ctx context.Context) error {
	return p.sess.Logout(ctx)
}

func mapWindow(diary portal.Diary) domain.ScheduleWindow {
	window := domain.ScheduleWindow{
		Start: diary.WeekStart.Time,
		End:   diary.WeekEnd.Time,
		Days:  make([]domain.DaySchedule, 0, len(diary.WeekDays)),
	}
	for _, day := range diary.WeekDays {
		mapped := domain.DaySchedule{
			Date:    day.Date.Time,
			Lessons: make([]domain.Lesson, 0, len(day.Lessons)),
		}
		for _, lesson := range day.Lessons {
			mapped.Lessons = append(mapped.Lessons, mapLesson(day.Date.Time, lesson))
		}
		window.Days = append(window.Days, mapped)
	}
	return window
}

func mapLesson(date time.Time, lesson portal.DiaryLesson) domain.Lesson {
	mapped := domain.Lesson{
		Number:      lesson.Number,
		Subject:     lesson.SubjectName,
		Room:        lesson.Room,
		Teacher:     lesson.Teacher,
		Start:       lessonTime(date, lesson.StartTime),
		End:         lessonTime(date, lesson.EndTime),
		Assignments: make([]domain.RawAssignment, 0, len(lesson.Assignments)),
	}
	for _, a := range lesson.Assignments {
		mapped.Assignments = append(mapped.Assignments, domain.RawAssignment{
			ID:       a.ID,
			Type:     a.TypeName,
			Content:  a.Content,
			Comment:  a.Comment,
			Mark:     a.Mark,
			Deadline: a.DueDate.Time,
			IsDuty:   a.IsDuty,
		})
	}
	return mapped
}

// lessonTime combines a day's date with a clock value like "08:30". A
// malformed clock value leaves the field zero; display degrades to a blank
// cell instead of failing the fetch.
func lessonTime(date time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}
