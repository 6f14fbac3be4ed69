package service

import (
	"context"
	"fmt"
	"time"

	"nshub/internal/modules/grades/domain"
	"nshub/internal/modules/grades/port/out"
)

// ReportService fetches a subject's grade report and parses it.
type ReportService struct {
	source out.ReportSource
}

func NewReportService(source out.ReportSource) *ReportService {
	return &ReportService{source: source}
}

func (s *ReportService) SubjectReport(ctx context.Context, subjectGroupID int, from, to time.Time, hasTerms bool) (domain.GradeReport, error) {
	htmlText, err := s.source.Fetch(ctx, subjectGroupID, from, to)
	if err != nil {
		return domain.GradeReport{}, fmt.Errorf("fetch grade report: %w", err)
	}
	return domain.Parse(htmlText, hasTerms), nil
}
