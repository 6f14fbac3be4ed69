package domain_test

import (
	"testing"

	"nshub/internal/modules/school/domain"
)

func TestBestMatchPrefersExactName(t *testing.T) {
	t.Parallel()
	candidates := []domain.School{
		{ID: 1, ShortName: "СОШ № 10", Name: "МБОУ СОШ № 10"},
		{ID: 2, ShortName: "СОШ № 100", Name: "МБОУ СОШ № 100"},
	}
	got, ok := domain.BestMatch(candidates, "СОШ № 100")
	if !ok || got.ID != 2 {
		t.Fatalf("expected exact match on school 2, got %+v (ok=%v)", got, ok)
	}
}

func TestBestMatchFallsBackToCaseInsensitive(t *testing.T) {
	t.Parallel()
	candidates := []domain.School{
		{ID: 1, ShortName: "Gymnasium 5", Name: "Gymnasium No. 5"},
	}
	got, ok := domain.BestMatch(candidates, "gymnasium 5")
	if !ok || got.ID != 1 {
		t.Fatalf("expected case-insensitive match, got %+v (ok=%v)", got, ok)
	}
}

func TestBestMatchAcceptsSubstring(t *testing.T) {
	t.Parallel()
	candidates := []domain.School{
		{ID: 1, ShortName: "СОШ № 10", Name: "МБОУ СОШ № 10 г. Краснодара"},
		{ID: 2, ShortName: "Лицей № 4", Name: "МАОУ Лицей № 4"},
	}
	got, ok := domain.BestMatch(candidates, "Лицей")
	if !ok || got.ID != 2 {
		t.Fatalf("expected substring match on the lyceum, got %+v (ok=%v)", got, ok)
	}
}

func TestBestMatchDefaultsToFirstCandidate(t *testing.T) {
	t.Parallel()
	candidates := []domain.School{
		{ID: 7, ShortName: "СОШ № 3", Name: "МБОУ СОШ № 3"},
		{ID: 8, ShortName: "СОШ № 4", Name: "МБОУ СОШ № 4"},
	}
	got, ok := domain.BestMatch(candidates, "что-то совсем другое")
	if !ok || got.ID != 7 {
		t.Fatalf("expected the first candidate, got %+v (ok=%v)", got, ok)
	}
}

func TestBestMatchEmptyList(t *testing.T) {
	t.Parallel()
	if _, ok := domain.BestMatch(nil, "СОШ"); ok {
		t.Fatal("expected no match for an empty candidate list")
	}
}
