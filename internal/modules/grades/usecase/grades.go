package usecase

import (
	"context"
	"encoding/json"
	"time"

	"nshub/internal/modules/grades/dto"
	gradesin "nshub/internal/modules/grades/port/in"
	"nshub/internal/modules/grades/service"
)

type Interactor struct {
	svc *service.ReportService
}

func NewInteractor(svc *service.ReportService) gradesin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) SubjectReport(ctx context.Context, input gradesin.ReportInput) (dto.GradeReportOutput, error) {
	report, err := i.svc.SubjectReport(ctx, input.SubjectGroupID, input.From, input.To, input.HasTerms)
	if err != nil {
		return dto.GradeReportOutput{}, err
	}
	out := dto.GradeReportOutput{
		RangeStart: isoOrEmpty(report.RangeStart),
		RangeEnd:   isoOrEmpty(report.RangeEnd),
		Teacher:    report.Teacher,
		Average:    report.Average,
		Items:      make([]dto.GradedItemOutput, 0, len(report.Items)),
	}
	for _, item := range report.Items {
		out.Items = append(out.Items, dto.GradedItemOutput{
			Type:      item.Type,
			Theme:     item.Theme,
			Date:      isoOrEmpty(item.Date),
			IssueDate: isoOrEmpty(item.IssueDate),
			Mark:      item.Mark,
		})
	}
	return out, nil
}

func (i *Interactor) ExportJSON(ctx context.Context, input gradesin.ReportInput) ([]byte, error) {
	report, err := i.svc.SubjectReport(ctx, input.SubjectGroupID, input.From, input.To, input.HasTerms)
	if err != nil {
		return nil, err
	}
	export := dto.Export{
		Raw: report.Raw,
		Range: dto.ExportRange{
			Start: isoPtr(report.RangeStart),
			End:   isoPtr(report.RangeEnd),
		},
		Teacher:     report.Teacher,
		AverageMark: report.Average,
		Assignments: make([]dto.ExportItem, 0, len(report.Items)),
	}
	for _, item := range report.Items {
		export.Assignments = append(export.Assignments, dto.ExportItem{
			Type:      item.Type,
			Theme:     item.Theme,
			Date:      isoPtr(item.Date),
			IssueDate: isoPtr(item.IssueDate),
			Mark:      item.Mark,
		})
	}
	return json.MarshalIndent(export, "", "  ")
}

const isoLayout = "2006-01-02T15:04:05"

func isoOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(isoLayout)
}

func isoPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(isoLayout)
	return &s
}
