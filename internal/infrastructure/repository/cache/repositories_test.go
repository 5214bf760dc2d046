package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fplpulse/fplpulse/internal/domain/feed"
	"github.com/fplpulse/fplpulse/internal/domain/fixture"
	"github.com/fplpulse/fplpulse/internal/domain/manager"
	"github.com/fplpulse/fplpulse/internal/domain/playerstats"
	"github.com/fplpulse/fplpulse/internal/infrastructure/repository/memory"
	"github.com/fplpulse/fplpulse/internal/platform/query"
)

func newTestEngine(t *testing.T) *query.Engine {
	t.Helper()
	engine, err := query.NewEngine(query.Config{Size: 64, ScanInterval: time.Hour, ActiveFor: time.Hour}, nil, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	t.Cleanup(engine.Close)
	return engine
}

type countingManagerRepo struct {
	manager.Repository
	calls int
	fail  bool
}

func (r *countingManagerRepo) Summary(ctx context.Context, managerID int64, gw int) (manager.Summary, bool, error) {
	r.calls++
	if r.fail {
		return manager.Summary{}, false, errors.New("backend down")
	}
	return r.Repository.Summary(ctx, managerID, gw)
}

type countingFeedRepo struct {
	next  feed.Repository
	calls int
}

func (r *countingFeedRepo) ListByGameweek(ctx context.Context, gw int) ([]feed.Event, error) {
	r.calls++
	return r.next.ListByGameweek(ctx, gw)
}

type countingStatsRepo struct {
	next  playerstats.Repository
	calls int
}

func (r *countingStatsRepo) ListByGameweek(ctx context.Context, gw int) ([]playerstats.Row, error) {
	r.calls++
	return r.next.ListByGameweek(ctx, gw)
}

func (r *countingStatsRepo) ListByFixture(ctx context.Context, fixtureID int64) ([]playerstats.Row, error) {
	r.calls++
	return r.next.ListByFixture(ctx, fixtureID)
}

func (r *countingStatsRepo) LastMeetingStats(ctx context.Context, gw int) ([]playerstats.Row, error) {
	r.calls++
	return r.next.LastMeetingStats(ctx, gw)
}

func seededManagerRepo() manager.Repository {
	return memory.NewManagerRepository(memory.SeedManagerData(), memory.SeedLeaguePicks(), memory.SeedPlayerStats(), memory.SeedGameweeks())
}

func TestManagerSummaryGatesAbsentParams(t *testing.T) {
	inner := &countingManagerRepo{Repository: seededManagerRepo()}
	repo := NewManagerRepository(inner, newTestEngine(t), DefaultCadences())

	summary, found, err := repo.Summary(context.Background(), 0, memory.SeedCurrentGameweek)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if found || summary.ID != 0 {
		t.Fatal("absent manager id should return an empty summary")
	}
	if _, found, _ = repo.Summary(context.Background(), memory.SeedManagerID, 0); found {
		t.Fatal("absent gameweek should return an empty summary")
	}
	if inner.calls != 0 {
		t.Fatalf("backend called %d times, want 0", inner.calls)
	}
}

func TestManagerSummaryServesFreshSnapshotWithoutRefetch(t *testing.T) {
	inner := &countingManagerRepo{Repository: seededManagerRepo()}
	repo := NewManagerRepository(inner, newTestEngine(t), DefaultCadences())

	for i := 0; i < 3; i++ {
		summary, found, err := repo.Summary(context.Background(), memory.SeedManagerID, memory.SeedCurrentGameweek)
		if err != nil {
			t.Fatalf("Summary call %d: %v", i, err)
		}
		if !found || summary.TotalPoints != 1289 {
			t.Fatalf("call %d = (found %t, total %d)", i, found, summary.TotalPoints)
		}
	}
	if inner.calls != 1 {
		t.Fatalf("backend called %d times, want 1", inner.calls)
	}
}

func TestManagerSummaryKeepsLastGoodOnFailure(t *testing.T) {
	inner := &countingManagerRepo{Repository: seededManagerRepo()}
	cad := DefaultCadences()
	cad.Standard = 0 // every lookup refetches
	repo := NewManagerRepository(inner, newTestEngine(t), cad)

	if _, _, err := repo.Summary(context.Background(), memory.SeedManagerID, memory.SeedCurrentGameweek); err != nil {
		t.Fatalf("warm-up fetch: %v", err)
	}

	inner.fail = true
	summary, found, err := repo.Summary(context.Background(), memory.SeedManagerID, memory.SeedCurrentGameweek)
	if err == nil {
		t.Fatal("expected the transport error alongside stale data")
	}
	if !found || summary.TotalPoints != 1289 {
		t.Fatalf("stale data = (found %t, total %d), want the last good summary", found, summary.TotalPoints)
	}
}

func TestFeedGatedOffForPastGameweeks(t *testing.T) {
	inner := &countingFeedRepo{next: memory.NewFeedRepository(memory.SeedFeedEvents())}
	repo := NewFeedRepository(inner, newTestEngine(t), DefaultCadences())

	events, err := repo.ListByGameweek(context.Background(), memory.SeedCurrentGameweek, false)
	if err != nil {
		t.Fatalf("ListByGameweek: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("gated feed returned %d events", len(events))
	}
	if inner.calls != 0 {
		t.Fatalf("backend called %d times, want 0", inner.calls)
	}

	events, err = repo.ListByGameweek(context.Background(), memory.SeedCurrentGameweek, true)
	if err != nil {
		t.Fatalf("ListByGameweek current: %v", err)
	}
	if len(events) != 16 {
		t.Fatalf("got %d events, want 16", len(events))
	}
	if inner.calls != 1 {
		t.Fatalf("backend called %d times, want 1", inner.calls)
	}
}

func TestFixturesDriveRefreshMode(t *testing.T) {
	engine := newTestEngine(t)
	repo := NewFixtureRepository(memory.NewFixtureRepository(memory.SeedFixtures()), engine, DefaultCadences())

	if engine.Mode().Live() {
		t.Fatal("mode should start idle")
	}
	if _, err := repo.ListByGameweek(context.Background(), memory.SeedCurrentGameweek, true); err != nil {
		t.Fatalf("ListByGameweek: %v", err)
	}
	if !engine.Mode().Live() {
		t.Fatal("a live fixture should flip the mode to live")
	}

	// A non-current gameweek load leaves the mode alone.
	engine2 := newTestEngine(t)
	repo2 := NewFixtureRepository(memory.NewFixtureRepository(memory.SeedFixtures()), engine2, DefaultCadences())
	if _, err := repo2.ListByGameweek(context.Background(), 3, false); err != nil {
		t.Fatalf("ListByGameweek gw3: %v", err)
	}
	if engine2.Mode().Live() {
		t.Fatal("past gameweek load flipped the mode")
	}

	// All matches done: the current-gameweek load sets idle.
	done := []fixture.Fixture{{
		ID: 1, Gameweek: 22, HomeTeamID: 1, AwayTeamID: 2,
		Started: true, Finished: true,
	}}
	engine3 := newTestEngine(t)
	engine3.Mode().SetLive(true)
	repo3 := NewFixtureRepository(memory.NewFixtureRepository(done), engine3, DefaultCadences())
	if _, err := repo3.ListByGameweek(context.Background(), 22, true); err != nil {
		t.Fatalf("ListByGameweek finished: %v", err)
	}
	if engine3.Mode().Live() {
		t.Fatal("finished gameweek should flip the mode to idle")
	}
}

func TestFixtureStatsEnabledGate(t *testing.T) {
	inner := &countingStatsRepo{next: memory.NewPlayerStatsRepository(memory.SeedPlayerStats(), memory.SeedFixtures())}
	repo := NewPlayerStatsRepository(inner, newTestEngine(t), DefaultCadences())

	rows, err := repo.ListByFixture(context.Background(), 2203, 22, 1, 5, false)
	if err != nil {
		t.Fatalf("ListByFixture disabled: %v", err)
	}
	if len(rows) != 0 || inner.calls != 0 {
		t.Fatalf("disabled lookup fetched: %d rows, %d calls", len(rows), inner.calls)
	}

	rows, err = repo.ListByFixture(context.Background(), 2203, 22, 1, 5, true)
	if err != nil {
		t.Fatalf("ListByFixture enabled: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	if inner.calls != 1 {
		t.Fatalf("backend called %d times, want 1", inner.calls)
	}
}

func TestTeamsDefensiveCopy(t *testing.T) {
	repo := NewTeamRepository(memory.NewTeamRepository(memory.SeedTeams()), newTestEngine(t), DefaultCadences())

	first, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	first[0].ShortName = "mutated"

	second, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List again: %v", err)
	}
	if second[0].ShortName == "mutated" {
		t.Fatal("caller mutation leaked into the cached snapshot")
	}
}
