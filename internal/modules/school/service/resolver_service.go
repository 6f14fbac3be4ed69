package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"nshub/internal/modules/school/domain"
	"nshub/internal/modules/school/port/out"
	apperrors "nshub/internal/platform/errors"
)

// ResolverService maps configured school references to directory entries.
// The cache keeps the last successful directory answers so resolution keeps
// working when the directory endpoint is down.
type ResolverService struct {
	directory out.Directory
	cache     out.Cache
}

func NewResolverService(directory out.Directory, cache out.Cache) *ResolverService {
	return &ResolverService{directory: directory, cache: cache}
}

// Resolve returns the school ID for a configured reference. A purely
// numeric reference is treated as an ID and passed through.
func (s *ResolverService) Resolve(ctx context.Context, query string) (int64, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, fmt.Errorf("%w: empty school reference", apperrors.ErrInvalidInput)
	}
	if id, err := strconv.ParseInt(query, 10, 64); err == nil {
		return id, nil
	}

	candidates, err := s.Search(ctx, query)
	if err != nil {
		return 0, err
	}
	match, ok := domain.BestMatch(candidates, query)
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrSchoolNotFound, query)
	}
	return match.ID, nil
}

// Search queries the live directory, falling back to the cache when the
// directory is unreachable. Fresh answers refresh the cache best-effort.
func (s *ResolverService) Search(ctx context.Context, name string) ([]domain.School, error) {
	schools, err := s.directory.Search(ctx, name)
	if err != nil {
		cached, cacheErr := s.cache.Lookup(ctx, name)
		if cacheErr != nil || len(cached) == 0 {
			return nil, fmt.Errorf("search schools: %w", err)
		}
		return cached, nil
	}
	if len(schools) > 0 {
		// Cache refresh failures do not affect the answer.
		_ = s.cache.Upsert(ctx, schools)
	}
	return schools, nil
}
