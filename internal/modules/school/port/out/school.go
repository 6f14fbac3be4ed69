package out

import (
	"context"

	"nshub/internal/modules/school/domain"
)

// Directory searches the live portal school directory.
type Directory interface {
	Search(ctx context.Context, name string) ([]domain.School, error)
}

// Cache is a local copy of previously seen directory entries. It serves
// lookups when the directory itself is unreachable.
type Cache interface {
	Lookup(ctx context.Context, name string) ([]domain.School, error)
	Upsert(ctx context.Context, schools []domain.School) error
}
