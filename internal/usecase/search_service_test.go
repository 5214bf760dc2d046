package usecase

import (
	"context"
	"errors"
	"testing"
)

func newSearchService(q *testQueries) *SearchService {
	return NewSearchService(q.players, q.teams)
}

func TestSearchByName(t *testing.T) {
	svc := newSearchService(newTestQueries(t))

	out, err := svc.Search(context.Background(), "salah")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("no results for salah")
	}
	top := out[0]
	if top.WebName != "M.Salah" || top.TeamShort != "LIV" || top.Position != "MID" {
		t.Fatalf("top result = %+v", top)
	}
	if top.Price != "13.2" {
		t.Errorf("price = %q, want 13.2", top.Price)
	}
}

func TestSearchByTeamShortName(t *testing.T) {
	svc := newSearchService(newTestQueries(t))

	out, err := svc.Search(context.Background(), "mci")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	found := make(map[string]bool, len(out))
	for _, result := range out {
		found[result.WebName] = true
	}
	if !found["Haaland"] || !found["Foden"] {
		t.Fatalf("mci results = %v, want both City players", found)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newSearchService(newTestQueries(t))

	if _, err := svc.Search(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestSearchNoMatches(t *testing.T) {
	svc := newSearchService(newTestQueries(t))

	out, err := svc.Search(context.Background(), "zzzz")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("results = %+v, want none", out)
	}
}
