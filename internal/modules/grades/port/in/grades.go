package in

import (
	"context"
	"time"

	"nshub/internal/modules/grades/dto"
)

type ReportInput struct {
	SubjectGroupID int
	From           time.Time
	To             time.Time
	HasTerms       bool
}

type Usecase interface {
	// SubjectReport fetches and parses the grade report for display.
	SubjectReport(ctx context.Context, input ReportInput) (dto.GradeReportOutput, error)
	// ExportJSON renders the same report as a JSON document with ISO-8601
	// dates.
	ExportJSON(ctx context.Context, input ReportInput) ([]byte, error)
}
