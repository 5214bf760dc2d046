package usecase

import (
	"context"

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
)

// The interfaces below are the cached query catalog as the page services
// consume it. The caching decorators implement them; the extra boolean
// parameters (isCurrent, enabled, dataChecked) gate fetching and polling
// at the cache layer, so a service passing false gets an empty result
// without backend traffic.
//
// Every accessor can return data and a non-nil error together: the last
// good snapshot alongside the transport failure that kept it stale.
// Services treat that pair as a degraded page, not a dead one.

type GameweekQueries interface {
	Current(ctx context.Context) (gameweek.Gameweek, bool, error)
	RefreshEvents(ctx context.Context) ([]gameweek.RefreshEvent, error)
}

type TeamQueries interface {
	List(ctx context.Context) ([]team.Team, error)
	GetByIDs(ctx context.Context, teamIDs []int64) ([]team.Team, error)
}

type PlayerQueries interface {
	List(ctx context.Context) ([]player.Player, error)
	GetByIDs(ctx context.Context, playerIDs []int64) ([]player.Player, error)
}

type FixtureQueries interface {
	ListByGameweek(ctx context.Context, gw int, isCurrent bool) ([]fixture.Fixture, error)
	LastMeetings(ctx context.Context, gw int, enabled bool) ([]fixture.Fixture, error)
}

type PlayerStatsQueries interface {
	ListByGameweek(ctx context.Context, gw int) ([]playerstats.Row, error)
	DefconGameweekPlayers(ctx context.Context, gw int, dataChecked bool) ([]playerstats.Row, error)
	ListByFixture(ctx context.Context, fixtureID int64, gw int, homeTeamID, awayTeamID int64, enabled bool) ([]playerstats.Row, error)
	LastMeetingStats(ctx context.Context, gw int, enabled bool) ([]playerstats.Row, error)
}

type PickQueries interface {
	ManagerPicks(ctx context.Context, managerID int64, gw int) ([]pick.Pick, error)
	LeaguePicks(ctx context.Context, leagueID int64, gw int) (pick.LeaguePicks, error)
}

type ChipQueries interface {
	ManagerPlays(ctx context.Context, managerID int64) ([]chip.Play, error)
	LeaguePlays(ctx context.Context, leagueID int64, gw int) ([]chip.LeaguePlay, error)
}

type ManagerQueries interface {
	Summary(ctx context.Context, managerID int64, gw int) (manager.Summary, bool, error)
	History(ctx context.Context, managerID int64) ([]manager.HistoryPoint, error)
	TeamValueHistory(ctx context.Context, managerID int64) ([]manager.ValuePoint, error)
	OwnedPerformance(ctx context.Context, managerID int64, window manager.PerformanceWindow, key stat.Key) ([]manager.PerformancePoint, error)
	TransferImpacts(ctx context.Context, managerID int64, gw int) ([]manager.TransferImpact, error)
}

type LeagueQueries interface {
	GetByID(ctx context.Context, leagueID int64) (league.League, bool, error)
	Standings(ctx context.Context, leagueID int64, gw int) ([]league.Standing, error)
	TeamValueHistory(ctx context.Context, leagueID int64) ([]league.ValuePoint, error)
	TopTransfers(ctx context.Context, leagueID int64, gw int) (league.TransferSummary, error)
	CaptainCounts(ctx context.Context, leagueID int64, gw int) ([]league.CaptainCount, error)
}

type FeedQueries interface {
	ListByGameweek(ctx context.Context, gw int, isCurrent bool) ([]feed.Event, error)
}
