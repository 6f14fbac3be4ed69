package in

import (
	"context"

	"nshub/internal/modules/school/dto"
)

type Usecase interface {
	// Resolve turns a configured school reference into a portal school ID.
	// Numeric input passes through untouched; anything else is matched
	// against the directory.
	Resolve(ctx context.Context, query string) (int64, error)
	// Search lists directory entries matching the name.
	Search(ctx context.Context, name string) ([]dto.SchoolOutput, error)
}
