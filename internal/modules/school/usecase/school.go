package usecase

import (
	"context"

	"nshub/internal/modules/school/dto"
	schoolin "nshub/internal/modules/school/port/in"
	"nshub/internal/modules/school/service"
)

type Interactor struct {
	svc *service.ResolverService
}

func NewInteractor(svc *service.ResolverService) schoolin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Resolve(ctx context.Context, query string) (int64, error) {
	return i.svc.Resolve(ctx, query)
}

func (i *Interactor) Search(ctx context.Context, name string) ([]dto.SchoolOutput, error) {
	schools, err := i.svc.Search(ctx, name)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SchoolOutput, 0, len(schools))
	for _, s := range schools {
		out = append(out, dto.SchoolOutput{ID: s.ID, ShortName: s.ShortName, Name: s.Name})
	}
	return out, nil
}
