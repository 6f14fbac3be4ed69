package out_test

import (
	"context"
	"path/filepath"
	"testing"

	"nshub/internal/modules/school/adapter/out"
	"nshub/internal/modules/school/domain"
)

func TestSQLiteSchoolCacheRoundTrip(t *testing.T) {
	t.Parallel()
	cache, err := out.NewSQLiteSchoolCache(filepath.Join(t.TempDir(), "schools.db"))
	if err != nil {
		t.Fatalf("NewSQLiteSchoolCache: %v", err)
	}
	ctx := context.Background()

	schools := []domain.School{
		{ID: 10, ShortName: "СОШ № 10", Name: "МБОУ СОШ № 10"},
		{ID: 4, ShortName: "Лицей № 4", Name: "МАОУ Лицей № 4"},
	}
	if err := cache.Upsert(ctx, schools); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := cache.Lookup(ctx, "Лицей")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("expected only the lyceum, got %+v", got)
	}
}

func TestSQLiteSchoolCacheUpsertOverwrites(t *testing.T) {
	t.Parallel()
	cache, err := out.NewSQLiteSchoolCache(filepath.Join(t.TempDir(), "schools.db"))
	if err != nil {
		t.Fatalf("NewSQLiteSchoolCache: %v", err)
	}
	ctx := context.Background()

	if err := cache.Upsert(ctx, []domain.School{{ID: 1, ShortName: "старое", Name: "старое имя"}}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := cache.Upsert(ctx, []domain.School{{ID: 1, ShortName: "новое", Name: "новое имя"}}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := cache.Lookup(ctx, "новое")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(got) != 1 || got[0].ShortName != "новое" {
		t.Fatalf("expected the refreshed row, got %+v", got)
	}
}

func TestSQLiteSchoolCacheLookupMiss(t *testing.T) {
	t.Parallel()
	cache, err := out.NewSQLiteSchoolCache(filepath.Join(t.TempDir(), "schools.db"))
	if err != nil {
		t.Fatalf("NewSQLiteSchoolCache: %v", err)
	}

	got, err := cache.Lookup(context.Background(), "нет такой")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected a miss, got %+v", got)
	}
}
