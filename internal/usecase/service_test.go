package usecase

import (
	"testing"
	"time"

	"github.com/fplpulse/fplpulse/internal/infrastructure/repository/cache"
	"github.com/fplpulse/fplpulse/internal/infrastructure/repository/memory"
	"github.com/fplpulse/fplpulse/internal/platform/query"
)

// testQueries wires the seeded memory repositories behind the caching
// decorators, the same stack the service runs, minus Postgres.
type testQueries struct {
	engine    *query.Engine
	gameweeks *cache.GameweekRepository
	teams     *cache.TeamRepository
	players   *cache.PlayerRepository
	fixtures  *cache.FixtureRepository
	stats     *cache.PlayerStatsRepository
	picks     *cache.PickRepository
	chips     *cache.ChipRepository
	managers  *cache.ManagerRepository
	leagues   *cache.LeagueRepository
	feed      *cache.FeedRepository
}

func newTestQueries(t *testing.T) *testQueries {
	t.Helper()

	engine, err := query.NewEngine(query.Config{Size: 128, ScanInterval: time.Hour, ActiveFor: time.Hour}, nil, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	t.Cleanup(engine.Close)

	cad := cache.DefaultCadences()
	return &testQueries{
		engine:    engine,
		gameweeks: cache.NewGameweekRepository(memory.NewGameweekRepository(memory.SeedGameweeks(), memory.SeedRefreshEvents()), engine, cad),
		teams:     cache.NewTeamRepository(memory.NewTeamRepository(memory.SeedTeams()), engine, cad),
		players:   cache.NewPlayerRepository(memory.NewPlayerRepository(memory.SeedPlayers()), engine, cad),
		fixtures:  cache.NewFixtureRepository(memory.NewFixtureRepository(memory.SeedFixtures()), engine, cad),
		stats:     cache.NewPlayerStatsRepository(memory.NewPlayerStatsRepository(memory.SeedPlayerStats(), memory.SeedFixtures()), engine, cad),
		picks:     cache.NewPickRepository(memory.NewPickRepository(memory.SeedLeaguePicks(), memory.SeedLeagueMembers()), engine, cad),
		chips:     cache.NewChipRepository(memory.NewChipRepository(memory.SeedManagerChips(), memory.SeedLeagueMembers(), memory.SeedManagerNames()), engine, cad),
		managers:  cache.NewManagerRepository(memory.NewManagerRepository(memory.SeedManagerData(), memory.SeedLeaguePicks(), memory.SeedPlayerStats(), memory.SeedGameweeks()), engine, cad),
		leagues:   cache.NewLeagueRepository(memory.NewLeagueRepository(memory.SeedLeagueData()), engine, cad),
		feed:      cache.NewFeedRepository(memory.NewFeedRepository(memory.SeedFeedEvents()), engine, cad),
	}
}

// fixedCardOrder satisfies the home service's order provider without
// dragging viewstate persistence into service tests.
type fixedCardOrder struct {
	order []string
}

func (f fixedCardOrder) OrderForViewport(bool) []string {
	return f.order
}
