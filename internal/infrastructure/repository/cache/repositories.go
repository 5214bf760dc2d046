package cache

import (
	"context"
	"sort"

	"github.com/fplpulse/fplpulse/internal/domain/chip"
	"github.com/fplpulse/fplpulse/internal/domain/feed"
	"github.com/fplpulse/fplpulse/internal/domain/fixture"
	"github.com/fplpulse/fplpulse/internal/domain/gameweek"
	"github.com/fplpulse/fplpulse/internal/domain/league"
	"github.com/fplpulse/fplpulse/internal/domain/manager"
	"github.com/fplpulse/fplpulse/internal/domain/pick"
	"github.com/fplpulse/fplpulse/internal/domain/player"
	"github.com/fplpulse/fplpulse/internal/domain/playerstats"
	"github.com/fplpulse/fplpulse/internal/domain/stat"
	"github.com/fplpulse/fplpulse/internal/domain/team"
	"github.com/fplpulse/fplpulse/internal/platform/query"
)

// The decorators below are the query catalog: one typed accessor per
// logical query, each owning its cache key and cadence. Accessors with
// absent required parameters return empty results without touching the
// engine; on a failed refetch they return the last good data together
// with the error.

type GameweekRepository struct {
	next   gameweek.Repository
	engine *query.Engine
	cad    Cadences
}

func NewGameweekRepository(next gameweek.Repository, engine *query.Engine, cad Cadences) *GameweekRepository {
	return &GameweekRepository{next: next, engine: engine, cad: cad}
}

func (r *GameweekRepository) Current(ctx context.Context) (gameweek.Gameweek, bool, error) {
	snap := r.engine.Lookup(ctx, "gameweek:current", r.cad.standard(), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.Current(ctx)
		if err != nil {
			return nil, err
		}
		return cachedCurrentGameweek{value: item, exists: exists}, nil
	})

	cached, _ := snap.Data.(cachedCurrentGameweek)
	return cached.value, cached.exists, snap.Err
}

type cachedCurrentGameweek struct {
	value  gameweek.Gameweek
	exists bool
}

func (r *GameweekRepository) RefreshEvents(ctx context.Context) ([]gameweek.RefreshEvent, error) {
	opts := query.Options{FreshFor: r.cad.Refresh, PollEvery: r.cad.Refresh}
	snap := r.engine.Lookup(ctx, "gameweek:refresh-events", opts, func(ctx context.Context) (any, error) {
		items, err := r.next.RefreshEvents(ctx)
		if err != nil {
			return nil, err
		}
		return append([]gameweek.RefreshEvent(nil), items...), nil
	})

	items, _ := snap.Data.([]gameweek.RefreshEvent)
	return append([]gameweek.RefreshEvent(nil), items...), snap.Err
}

type TeamRepository struct {
	next   team.Repository
	engine *query.Engine
	cad    Cadences
}

func NewTeamRepository(next team.Repository, engine *query.Engine, cad Cadences) *TeamRepository {
	return &TeamRepository{next: next, engine: engine, cad: cad}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	snap := r.engine.Lookup(ctx, "team:list", r.cad.static(r.cad.Directory), func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})

	items, _ := snap.Data.([]team.Team)
	return append([]team.Team(nil), items...), snap.Err
}

func (r *TeamRepository) GetByIDs(ctx context.Context, teamIDs []int64) ([]team.Team, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}

	ids := append([]int64(nil), teamIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	key := query.Key("team:ids", ids)
	snap := r.engine.Lookup(ctx, key, r.cad.static(r.cad.Directory), func(ctx context.Context) (any, error) {
		items, err := r.next.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})

	items, _ := snap.Data.([]team.Team)
	return append([]team.Team(nil), items...), snap.Err
}

type PlayerRepository struct {
	next   player.Repository
	engine *query.Engine
	cad    Cadences
}

func NewPlayerRepository(next player.Repository, engine *query.Engine, cad Cadences) *PlayerRepository {
	return &PlayerRepository{next: next, engine: engine, cad: cad}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	snap := r.engine.Lookup(ctx, "player:list", r.cad.static(r.cad.Directory), func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})

	items, _ := snap.Data.([]player.Player)
	return append([]player.Player(nil), items...), snap.Err
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []int64) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	ids := append([]int64(nil), playerIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	key := query.Key("player:ids", ids)
	snap := r.engine.Lookup(ctx, key, r.cad.static(r.cad.Directory), func(ctx context.Context) (any, error) {
		items, err := r.next.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})

	items, _ := snap.Data.([]player.Player)
	return append([]player.Player(nil), items...), snap.Err
}

type FixtureRepository struct {
	next   fixture.Repository
	engine *query.Engine
	cad    Cadences
}

func NewFixtureRepository(next fixture.Repository, engine *query.Engine, cad Cadences) *FixtureRepository {
	return &FixtureRepository{next: next, engine: engine, cad: cad}
}

// ListByGameweek serves the fixture list at the live cadence while the
// mode is live. Loads for the current gameweek feed the refresh mode, so
// background polls flip it without a user request.
func (r *FixtureRepository) ListByGameweek(ctx context.Context, gw int, isCurrent bool) ([]fixture.Fixture, error) {
	if gw == 0 {
		return nil, nil
	}

	key := query.Key("fixture:gameweek", gw)
	opts := r.cad.modal(r.cad.FixturesLive, r.cad.FixturesIdle, r.engine.Mode().Live())
	snap := r.engine.Lookup(ctx, key, opts, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByGameweek(ctx, gw)
		if err != nil {
			return nil, err
		}
		if isCurrent {
			r.engine.Mode().SetLive(fixture.AnyLiveOrBonusPending(items))
		}
		return append([]fixture.Fixture(nil), items...), nil
	})

	items, _ := snap.Data.([]fixture.Fixture)
	return append([]fixture.Fixture(nil), items...), snap.Err
}

func (r *FixtureRepository) LastMeetings(ctx context.Context, gw int, enabled bool) ([]fixture.Fixture, error) {
	if gw == 0 {
		return nil, nil
	}

	key := query.Key("fixture:last-meetings", gw)
	opts := r.cad.static(r.cad.Meetings)
	opts.Disabled = !enabled
	snap := r.engine.Lookup(ctx, key, opts, func(ctx context.Context) (any, error) {
		items, err := r.next.LastMeetings(ctx, gw)
		if err != nil {
			return nil, err
		}
		return append([]fixture.Fixture(nil), items...), nil
	})

	items, _ := snap.Data.([]fixture.Fixture)
	return append([]fixture.Fixture(nil), items...), snap.Err
}

type PlayerStatsRepository struct {
	next   playerstats.Repository
	engine *query.Engine
	cad    Cadences
}

func NewPlayerStatsRepository(next playerstats.Repository, engine *query.Engine, cad Cadences) *PlayerStatsRepository {
	return &PlayerStatsRepository{next: next, engine: engine, cad: cad}
}

// ListByGameweek backs the top-stats boards.
func (r *PlayerStatsRepository) ListByGameweek(ctx context.Context, gw int) ([]playerstats.Row, error) {
	if gw == 0 {
		return nil, nil
	}

	key := query.Key("player-stats:gameweek", gw)
	opts := r.cad.modal(r.cad.BoardsLive, r.cad.BoardsIdle, r.engine.Mode().Live())
	snap := r.engine.Lookup(ctx, key, opts, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByGameweek(ctx, gw)
		if err != nil {
			return nil, err
		}
		return append([]playerstats.Row(nil), items...), nil
	})

	items, _ := snap.Data.([]playerstats.Row)
	return append([]playerstats.Row(nil), items...), snap.Err
}

// DefconGameweekPlayers is the defcon board's own cache row over the same
// gameweek rows; dataChecked keys it so a checked gameweek refetches once.
func (r *PlayerStatsRepository) DefconGameweekPlayers(ctx context.Context, gw int, dataChecked bool) ([]playerstats.Row, error) {
	if gw == 0 {
		return nil, nil
	}

	key := query.Key("player-stats:defcon", gw, dataChecked)
	opts := r.cad.modal(r.cad.BoardsLive, r.cad.BoardsIdle, r.engine.Mode().Live())
	snap := r.engine.Lookup(ctx, key, opts, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByGameweek(ctx, gw)
		if err != nil {
			return nil, err
		}
		return append([]playerstats.Row(nil), items...), nil
	})

	items, _ := snap.Data.([]playerstats.Row)
	return append([]playerstats.Row(nil), items...), snap.Err
}

// ListByFixture loads a match's stat lines once its card expands; enabled
// follows the expansion so collapsed cards cost nothing.
func (r *PlayerStatsRepository) ListByFixture(ctx context.Context, fixtureID int64, gw int, homeTeamID, awayTeamID int64, enabled bool) ([]playerstats.Row, error) {
	if fixtureID == 0 || gw == 0 {
		return nil, nil
	}

	key := query.Key("player-stats:fixture", fixtureID, gw, homeTeamID, awayTeamID)
	opts := r.cad.modal(r.cad.StatsLive, r.cad.StatsIdle, r.engine.Mode().Live())
	opts.Disabled = !enabled
	snap := r.engine.Lookup(ctx, key, opts, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByFixture(ctx, fixtureID)
		if err != nil {
			return nil, err
		}
		return append([]playerstats.Row(nil), items...), nil
	})

	items, _ := snap.Data.([]playerstats.Row)
	return append([]playerstats.Row(nil), items...), snap.Err
}

func (r *PlayerStatsRepository) LastMeetingStats(ctx context.Context, gw int, enabled bool) ([]playerstats.Row, error) {
	if gw == 0 {
		return nil, nil
	}

	key := query.Key("player-stats:last-meetings", gw)
	opts := r.cad.static(r.cad.Meetings)
	opts.Disabled = !enabled
	snap := r.engine.Lookup(ctx, key, opts, func(ctx context.Context) (any, error) {
		items, err := r.next.LastMeetingStats(ctx, gw)
		if err != nil {
			return nil, err
		}
		return append([]playerstats.Row(nil), items...), nil
	})

	items, _ := snap.Data.([]playerstats.Row)
	return append([]playerstats.Row(nil), items...), snap.Err
}

type PickRepository struct {
	next   pick.Repository
	engine *query.Engine
	cad    Cadences
}

func NewPickRepository(next pick.Repository, engine *query.Engine, cad Cadences) *PickRepository {
	return &PickRepository{next: next, engine: engine, cad: cad}
}

func (r *PickRepository) ManagerPicks(ctx context.Context, managerID int64, gw int) ([]pick.Pick, error) {
	if managerID == 0 || gw == 0 {
		return nil, nil
	}

	key := query.Key("pick:manager", managerID, gw)
	snap := r.engine.Lookup(ctx, key, r.cad.standard(), func(ctx context.Context) (any, error) {
		items, err := r.next.ManagerPicks(ctx, managerID, gw)
		if err != nil {
			return nil, err
		}
		return append([]pick.Pick(nil), items...), nil
	})

	items, _ := snap.Data.([]pick.Pick)
	return append([]pick.Pick(nil), items...), snap.Err
}

func (r *PickRepository) LeaguePicks(ctx context.Context, leagueID int64, gw int) (pick.LeaguePicks, error) {
	if leagueID == 0 || gw == 0 {
		return pick.LeaguePicks{}, nil
	}

	key := query.Key("pick:league", leagueID, gw)
	snap := r.engine.Lookup(ctx, key, r.cad.standard(), func(ctx context.Context) (any, error) {
		picks, err := r.next.LeaguePicks(ctx, leagueID, gw)
		if err != nil {
			return nil, err
		}
		picks.Picks = append([]pick.Pick(nil), picks.Picks...)
		return picks, nil
	})

	cached, _ := snap.Data.(pick.LeaguePicks)
	return pick.LeaguePicks{
		Picks:        append([]pick.Pick(nil), cached.Picks...),
		ManagerCount: cached.ManagerCount,
	}, snap.Err
}

type ChipRepository struct {
	next   chip.Repository
	engine *query.Engine
	cad    Cadences
}

func NewChipRepository(next chip.Repository, engine *query.Engine, cad Cadences) *ChipRepository {
	return &ChipRepository{next: next, engine: engine, cad: cad}
}

func (r *ChipRepository) ManagerPlays(ctx context.Context, managerID int64) ([]chip.Play, error) {
	if managerID == 0 {
		return nil, nil
	}

	key := query.Key("chip:manager", managerID)
	snap := r.engine.Lookup(ctx, key, r.cad.standard(), func(ctx context.Context) (any, error) {
		items, err := r.next.ManagerPlays(ctx, managerID)
		if err != nil {
			return nil, err
		}
		return append([]chip.Play(nil), items...), nil
	})

	items, _ := snap.Data.([]chip.Play)
	return append([]chip.Play(nil), items...), snap.Err
}

func (r *ChipRepository) LeaguePlays(ctx context.Context, leagueID int64, gw int) ([]chip.LeaguePlay, error) {
	if leagueID == 0 || gw == 0 {
		return nil, nil
	}

	key := query.Key("chip:league", leagueID, gw)
	snap := r.engine.Lookup(ctx, key, r.cad.standard(), func(ctx context.Context) (any, error) {
		items, err := r.next.LeaguePlays(ctx, leagueID, gw)
		if err != nil {
			return nil, err
		}
		return append([]chip.LeaguePlay(nil), items...), nil
	})

	items, _ := snap.Data.([]chip.LeaguePlay)
	return append([]chip.LeaguePlay(nil), items...), snap.Err
}

type ManagerRepository struct {
	next   manager.Repository
	engine *query.Engine
	cad    Cadences
}

func NewManagerRepository(next manager.Repository, engine *query.Engine, cad Cadences) *ManagerRepository {
	return &ManagerRepository{next: next, engine: engine, cad: cad}
}

func (r *ManagerRepository) Summary(ctx context.Context, managerID int64, gw int) (manager.Summary, bool, error) {
	if managerID == 0 || gw == 0 {
		return manager.Summary{}, false, nil
	}

	key := query.Key("manager:summary", managerID, gw)
	snap := r.engine.Lookup(ctx, key, r.cad.standard(), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.Summary(ctx, managerID, gw)
		if err != nil {
			return nil, err
		}
		return cachedManagerSummary{value: item, exists: exists}, nil
	})

	cached, _ := snap.Data.(cachedManagerSummary)
	return cached.value, cached.exists, snap.Err
}

type cachedManagerSummary struct {
	value  manager.Summary
	exists bool
}

func (r *ManagerRepository) History(ctx context.Context, managerID int64) ([]manager.HistoryPoint, error) {
	if managerID == 0 {
		return nil, nil
	}

	key := query.Key("manager:history", managerID)
	snap := r.engine.Lookup(ctx, key, r.cad.standard(), func(ctx context.Context) (any, error) {
		items, err := r.next.History(ctx, managerID)
		if err != nil {
			return nil, err
		}
		return append([]manager.HistoryPoint(nil), items...), nil
	})

	items, _ := snap.Data.([]manager.HistoryPoint)
	return append([]manager.HistoryPoint(nil), items...), snap.Err
}

func (r *ManagerRepository) TeamValueHistory(ctx context.Context, managerID int64) ([]manager.ValuePoint, error) {
	if managerID == 0 {
		return nil, nil
	}

	key := query.Key("manager:values", managerID)
	snap := r.engine.Lookup(ctx, key, r.cad.standard(), func(ctx context.Context) (any, error) {
		items, err := r.next.TeamValueHistory(ctx, managerID)
		if err != nil {
			return nil, err
		}
		return append([]manager.ValuePoint(nil), items...), nil
	})

	items, _ := snap.Data.([]manager.ValuePoint)
	return append([]manager.ValuePoint(nil), items...), snap.Err
}

func (r *ManagerRepository) OwnedPerformance(ctx context.Context, managerID int64, window manager.PerformanceWindow, key stat.Key) ([]manager.PerformancePoint, error) {
	if managerID == 0 {
		return nil, nil
	}

	cacheKey := query.Key("manager:performance", managerID, string(window), string(key))
	snap := r.engine.Lookup(ctx, cacheKey, r.cad.static(r.cad.Standard), func(ctx context.Context) (any, error) {
		items, err := r.next.OwnedPerformance(ctx, managerID, window, key)
		if err != nil {
			return nil, err
		}
		return append([]manager.PerformancePoint(nil), items...), nil
	})

	items, _ := snap.Data.([]manager.PerformancePoint)
	return append([]manager.PerformancePoint(nil), items...), snap.Err
}

func (r *ManagerRepository) TransferImpacts(ctx context.Context, managerID int64, gw int) ([]manager.TransferImpact, error) {
	if managerID == 0 || gw == 0 {
		return nil, nil
	}

	key := query.Key("manager:transfers", managerID, gw)
	snap := r.engine.Lookup(ctx, key, r.cad.standard(), func(ctx context.Context) (any, error) {
		items, err := r.next.TransferImpacts(ctx, managerID, gw)
		if err != nil {
			return nil, err
		}
		return append([]manager.TransferImpact(nil), items...), nil
	})

	items, _ := snap.Data.([]manager.TransferImpact)
	return append([]manager.TransferImpact(nil), items...), snap.Err
}

type LeagueRepository struct {
	next   league.Repository
	engine *query.Engine
	cad    Cadences
}

func NewLeagueRepository(next league.Repository, engine *query.Engine, cad Cadences) *LeagueRepository {
	return &LeagueRepository{next: next, engine: engine, cad: cad}
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	if leagueID == 0 {
		return league.League{}, false, nil
	}

	key := query.Key("league:id", leagueID)
	snap := r.engine.Lookup(ctx, key, r.cad.standard(), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedLeagueByID{value: item, exists: exists}, nil
	})

	cached, _ := snap.Data.(cachedLeagueByID)
	return cached.value, cached.exists, snap.Err
}

type cachedLeagueByID struct {
	value  league.League
	exists bool
}

// Standings keys on the gameweek as well: the table moves when the
// gameweek does, and the old row ages out instead of being overwritten.
func (r *LeagueRepository) Standings(ctx context.Context, leagueID int64, gw int) ([]league.Standing, error) {
	if leagueID == 0 || gw == 0 {
		return nil, nil
	}

	key := query.Key("league:standings", leagueID, gw)
	snap := r.engine.Lookup(ctx, key, r.cad.standard(), func(ctx context.Context) (any, error) {
		items, err := r.next.Standings(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]league.Standing(nil), items...), nil
	})

	items, _ := snap.Data.([]league.Standing)
	return append([]league.Standing(nil), items...), snap.Err
}

func (r *LeagueRepository) TeamValueHistory(ctx context.Context, leagueID int64) ([]league.ValuePoint, error) {
	if leagueID == 0 {
		return nil, nil
	}

	key := query.Key("league:values", leagueID)
	snap := r.engine.Lookup(ctx, key, r.cad.standard(), func(ctx context.Context) (any, error) {
		items, err := r.next.TeamValueHistory(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]league.ValuePoint(nil), items...), nil
	})

	items, _ := snap.Data.([]league.ValuePoint)
	return append([]league.ValuePoint(nil), items...), snap.Err
}

func (r *LeagueRepository) TopTransfers(ctx context.Context, leagueID int64, gw int) (league.TransferSummary, error) {
	if leagueID == 0 || gw == 0 {
		return league.TransferSummary{}, nil
	}

	key := query.Key("league:top-transfers", leagueID, gw)
	snap := r.engine.Lookup(ctx, key, r.cad.standard(), func(ctx context.Context) (any, error) {
		summary, err := r.next.TopTransfers(ctx, leagueID, gw)
		if err != nil {
			return nil, err
		}
		summary.In = append([]league.TransferCount(nil), summary.In...)
		summary.Out = append([]league.TransferCount(nil), summary.Out...)
		return summary, nil
	})

	cached, _ := snap.Data.(league.TransferSummary)
	return league.TransferSummary{
		In:  append([]league.TransferCount(nil), cached.In...),
		Out: append([]league.TransferCount(nil), cached.Out...),
	}, snap.Err
}

func (r *LeagueRepository) CaptainCounts(ctx context.Context, leagueID int64, gw int) ([]league.CaptainCount, error) {
	if leagueID == 0 || gw == 0 {
		return nil, nil
	}

	key := query.Key("league:captains", leagueID, gw)
	snap := r.engine.Lookup(ctx, key, r.cad.standard(), func(ctx context.Context) (any, error) {
		items, err := r.next.CaptainCounts(ctx, leagueID, gw)
		if err != nil {
			return nil, err
		}
		return append([]league.CaptainCount(nil), items...), nil
	})

	items, _ := snap.Data.([]league.CaptainCount)
	return append([]league.CaptainCount(nil), items...), snap.Err
}

type FeedRepository struct {
	next   feed.Repository
	engine *query.Engine
	cad    Cadences
}

func NewFeedRepository(next feed.Repository, engine *query.Engine, cad Cadences) *FeedRepository {
	return &FeedRepository{next: next, engine: engine, cad: cad}
}

// ListByGameweek polls only while the gameweek is current; a feed for a
// past gameweek is a dead stream and stays gated off.
func (r *FeedRepository) ListByGameweek(ctx context.Context, gw int, isCurrent bool) ([]feed.Event, error) {
	if gw == 0 {
		return nil, nil
	}

	key := query.Key("feed:gameweek", gw)
	opts := query.Options{FreshFor: r.cad.Feed, PollEvery: r.cad.Feed, Disabled: !isCurrent}
	snap := r.engine.Lookup(ctx, key, opts, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByGameweek(ctx, gw)
		if err != nil {
			return nil, err
		}
		return append([]feed.Event(nil), items...), nil
	})

	items, _ := snap.Data.([]feed.Event)
	return append([]feed.Event(nil), items...), snap.Err
}
