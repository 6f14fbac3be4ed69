package in

import (
	"context"

	"nshub/internal/modules/grades/dto"
	gradesin "nshub/internal/modules/grades/port/in"
)

type CLIHandler struct {
	usecase gradesin.Usecase
}

func NewCLIHandler(usecase gradesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Report(ctx context.Context, input gradesin.ReportInput) (dto.GradeReportOutput, error) {
	return h.usecase.SubjectReport(ctx, input)
}

func (h CLIHandler) ReportJSON(ctx context.Context, input gradesin.ReportInput) ([]byte, error) {
	return h.usecase.ExportJSON(ctx, input)
}
