package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fplpulse/fplpulse/internal/infrastructure/repository/memory"
)

func newFeedService(q *testQueries) *FeedService {
	return NewFeedService(q.gameweeks, q.feed, q.fixtures, q.players, q.teams, q.picks, q.chips)
}

func TestGetFeedCurrentGameweekOrdering(t *testing.T) {
	svc := newFeedService(newTestQueries(t))

	out, err := svc.GetFeed(context.Background(), FeedParams{
		ManagerID: memory.SeedManagerID,
		LeagueID:  memory.SeedLeagueID,
	})
	if err != nil {
		t.Fatalf("GetFeed: %v", err)
	}
	if out.CurrentOnly {
		t.Fatal("current gameweek flagged as current-only")
	}
	if out.Gameweek.ID != memory.SeedCurrentGameweek || !out.Gameweek.IsCurrent {
		t.Fatalf("gameweek meta = %+v, want current %d", out.Gameweek, memory.SeedCurrentGameweek)
	}

	// Latest kickoff first, then occurred-at descending, event id
	// breaking the simultaneous bonus swaps.
	want := []int64{9016, 9015, 9014, 9013, 9012, 9011, 9010, 9009, 9008, 9007, 9006, 9005, 9004, 9003, 9002, 9001}
	if len(out.Rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(out.Rows), len(want))
	}
	for i, id := range want {
		if out.Rows[i].ID != id {
			t.Fatalf("rows[%d].ID = %d, want %d", i, out.Rows[i].ID, id)
		}
	}
}

func TestGetFeedImpactAgainstLeague(t *testing.T) {
	svc := newFeedService(newTestQueries(t))

	out, err := svc.GetFeed(context.Background(), FeedParams{
		ManagerID: memory.SeedManagerID,
		LeagueID:  memory.SeedLeagueID,
	})
	if err != nil {
		t.Fatalf("GetFeed: %v", err)
	}

	rows := make(map[int64]FeedRow, len(out.Rows))
	for _, row := range out.Rows {
		rows[row.ID] = row
	}

	// Haaland goal, +4: captained by the viewer for 8, league average
	// (8+8+4+0)/4 = 5.
	haaland, ok := rows[9001]
	if !ok {
		t.Fatal("missing Haaland goal event")
	}
	if !haaland.Owned {
		t.Error("Haaland row not flagged owned")
	}
	if haaland.Impact == nil || *haaland.Impact != 3.0 {
		t.Fatalf("Haaland impact = %v, want 3.0", haaland.Impact)
	}

	// Son goal, +5: the viewer skips him, one rival starts him.
	son, ok := rows[9009]
	if !ok {
		t.Fatal("missing Son goal event")
	}
	if son.Owned {
		t.Error("Son row flagged owned for a non-owner")
	}
	if son.Impact == nil || *son.Impact != -1.3 {
		t.Fatalf("Son impact = %v, want -1.3", son.Impact)
	}
}

func TestGetFeedWithoutLeague(t *testing.T) {
	svc := newFeedService(newTestQueries(t))

	out, err := svc.GetFeed(context.Background(), FeedParams{ManagerID: memory.SeedManagerID})
	if err != nil {
		t.Fatalf("GetFeed: %v", err)
	}
	for _, row := range out.Rows {
		if row.Impact != nil {
			t.Fatalf("row %d carries impact %v without league context", row.ID, *row.Impact)
		}
	}
}

func TestGetFeedPastGameweekIsCurrentOnly(t *testing.T) {
	svc := newFeedService(newTestQueries(t))

	out, err := svc.GetFeed(context.Background(), FeedParams{
		Gameweek:  21,
		ManagerID: memory.SeedManagerID,
	})
	if err != nil {
		t.Fatalf("GetFeed: %v", err)
	}
	if !out.CurrentOnly {
		t.Fatal("past gameweek not flagged current-only")
	}
	if len(out.Rows) != 0 {
		t.Fatalf("past gameweek produced %d rows", len(out.Rows))
	}
}

func TestGetFeedFilters(t *testing.T) {
	svc := newFeedService(newTestQueries(t))
	ctx := context.Background()

	owned, err := svc.GetFeed(ctx, FeedParams{ManagerID: memory.SeedManagerID, Ownership: "owned"})
	if err != nil {
		t.Fatalf("GetFeed owned: %v", err)
	}
	if len(owned.Rows) != 15 {
		t.Fatalf("owned rows = %d, want 15", len(owned.Rows))
	}
	for _, row := range owned.Rows {
		if row.WebName == "Son" {
			t.Fatal("ownership filter kept an unowned player")
		}
	}

	live, err := svc.GetFeed(ctx, FeedParams{ManagerID: memory.SeedManagerID, Matchup: "live"})
	if err != nil {
		t.Fatalf("GetFeed live: %v", err)
	}
	if len(live.Rows) != 5 {
		t.Fatalf("live rows = %d, want 5", len(live.Rows))
	}
	for _, row := range live.Rows {
		if row.FixtureID != 2203 {
			t.Fatalf("live filter kept fixture %d", row.FixtureID)
		}
	}
}

func TestGetFeedInvalidFilter(t *testing.T) {
	svc := newFeedService(newTestQueries(t))

	_, err := svc.GetFeed(context.Background(), FeedParams{ManagerID: memory.SeedManagerID, Ownership: "sometimes"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
