package in

import (
	"context"

	"nshub/internal/modules/school/dto"
	schoolin "nshub/internal/modules/school/port/in"
)

type CLIHandler struct {
	usecase schoolin.Usecase
}

func NewCLIHandler(usecase schoolin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Search(ctx context.Context, name string) ([]dto.SchoolOutput, error) {
	return h.usecase.Search(ctx, name)
}
