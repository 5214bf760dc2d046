package usecase

import (
	"context"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/fplpulse/fplpulse/internal/domain/chip"
	"github.com/fplpulse/fplpulse/internal/domain/feed"
	"github.com/fplpulse/fplpulse/internal/domain/filter"
	"github.com/fplpulse/fplpulse/internal/domain/fixture"
	"github.com/fplpulse/fplpulse/internal/domain/pick"
	"github.com/fplpulse/fplpulse/internal/domain/player"
	"github.com/fplpulse/fplpulse/internal/domain/team"
	"github.com/fplpulse/fplpulse/internal/view"
)

// FeedParams selects the round and narrows the stream. The feed is live
// only for the current round; any other target renders the current-only
// notice instead of rows.
type FeedParams struct {
	Gameweek  int
	ManagerID int64
	LeagueID  int64
	Ownership string
	Position  string
	Matchup   string
	Search    string
}

// FeedRow is one rendered feed line. Impact is nil when the viewer or
// the league squads are unknown.
type FeedRow struct {
	ID         int64     `json:"id"`
	PlayerID   int64     `json:"player_id"`
	WebName    string    `json:"web_name"`
	TeamShort  string    `json:"team_short"`
	FixtureID  int64     `json:"fixture_id"`
	TypeLabel  string    `json:"type_label"`
	Text       string    `json:"text"`
	Points     int       `json:"points"`
	After      int       `json:"after"`
	OccurredAt time.Time `json:"occurred_at"`
	Reversed   bool      `json:"reversed,omitempty"`
	Owned      bool      `json:"owned"`
	Impact     *float64  `json:"impact,omitempty"`
}

// FeedView is the feed subpage payload. CurrentOnly is set instead of
// rows when the target round is not the live one.
type FeedView struct {
	Gameweek    GameweekMeta `json:"gameweek"`
	CurrentOnly bool         `json:"current_only,omitempty"`
	Rows        []FeedRow    `json:"rows"`
	Stale       bool         `json:"stale,omitempty"`
}

type FeedService struct {
	gameweeks GameweekQueries
	events    FeedQueries
	fixtures  FixtureQueries
	players   PlayerQueries
	teams     TeamQueries
	picks     PickQueries
	chips     ChipQueries
}

func NewFeedService(
	gameweeks GameweekQueries,
	events FeedQueries,
	fixtures FixtureQueries,
	players PlayerQueries,
	teams TeamQueries,
	picks PickQueries,
	chips ChipQueries,
) *FeedService {
	return &FeedService{
		gameweeks: gameweeks,
		events:    events,
		fixtures:  fixtures,
		players:   players,
		teams:     teams,
		picks:     picks,
		chips:     chips,
	}
}

// GetFeed assembles the live event stream: events in total display
// order, each scored against the viewer's league through the impact
// formula, then narrowed by the viewer's filters.
func (s *FeedService) GetFeed(ctx context.Context, p FeedParams) (FeedView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.GetFeed")
	defer span.End()

	criteria, err := parseCriteria(p.Ownership, p.Position, p.Matchup, p.Search)
	if err != nil {
		return FeedView{}, err
	}

	meta, stale, err := resolveGameweek(ctx, s.gameweeks, p.Gameweek)
	if err != nil {
		return FeedView{}, err
	}
	if !meta.IsCurrent {
		return FeedView{Gameweek: meta, CurrentOnly: true, Rows: []FeedRow{}, Stale: stale}, nil
	}

	var (
		events    []feed.Event
		eventsErr error

		fixtureList []fixture.Fixture
		fixturesErr error

		playerList []player.Player
		playersErr error

		teamList []team.Team
		teamsErr error

		viewerPicks []pick.Pick
		picksErr    error

		leaguePicks pick.LeaguePicks
		leagueErr   error

		plays    []chip.Play
		playsErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() { events, eventsErr = s.events.ListByGameweek(ctx, meta.ID, meta.IsCurrent) })
	wg.Go(func() { fixtureList, fixturesErr = s.fixtures.ListByGameweek(ctx, meta.ID, meta.IsCurrent) })
	wg.Go(func() { playerList, playersErr = s.players.List(ctx) })
	wg.Go(func() { teamList, teamsErr = s.teams.List(ctx) })
	wg.Go(func() { viewerPicks, picksErr = s.picks.ManagerPicks(ctx, p.ManagerID, meta.ID) })
	wg.Go(func() { leaguePicks, leagueErr = s.picks.LeaguePicks(ctx, p.LeagueID, meta.ID) })
	wg.Go(func() { plays, playsErr = s.chips.ManagerPlays(ctx, p.ManagerID) })
	wg.Wait()

	stale = stale || anyErr(eventsErr, fixturesErr, playersErr, teamsErr, picksErr, leagueErr, playsErr)

	teams := teamIndex(teamList)
	players := playerIndex(playerList)
	owned := pick.OwnedSet(viewerPicks)
	tripleCaptain := chip.UsageFromPlays(plays).TripleCaptainActiveAt(meta.ID)

	kickoffs := make(map[int64]time.Time, len(fixtureList))
	liveFixtures := make(map[int64]bool, len(fixtureList))
	for _, f := range fixtureList {
		kickoffs[f.ID] = f.KickoffAt
		liveFixtures[f.ID] = f.DeriveStatus(meta.DataChecked) == fixture.StatusLive
	}

	scorer := newImpactScorer(viewerPicks, leaguePicks, tripleCaptain)

	out := FeedView{Gameweek: meta, Rows: make([]FeedRow, 0, len(events)), Stale: stale}
	for _, e := range feed.SortEvents(events, kickoffs) {
		subject := filter.Subject{
			PlayerID:   e.PlayerID,
			FixtureIDs: []int64{e.FixtureID},
			Live:       liveFixtures[e.FixtureID],
		}
		if pl, ok := players[e.PlayerID]; ok {
			subject.WebName = pl.WebName
			subject.Position = pl.Position
			if t, ok := teams[pl.TeamID]; ok {
				subject.TeamShortName = t.ShortName
			}
		}
		if _, ok := owned[e.PlayerID]; ok {
			subject.Owned = true
		}
		if !criteria.Matches(subject) {
			continue
		}

		out.Rows = append(out.Rows, FeedRow{
			ID:         e.ID,
			PlayerID:   e.PlayerID,
			WebName:    subject.WebName,
			TeamShort:  subject.TeamShortName,
			FixtureID:  e.FixtureID,
			TypeLabel:  view.EventTypeLabel(e.Type),
			Text:       view.EventText(e),
			Points:     e.PointsDelta,
			After:      e.TotalPointsAfter,
			OccurredAt: e.OccurredAt,
			Reversed:   e.Reversed,
			Owned:      subject.Owned,
			Impact:     scorer.impact(e),
		})
	}

	return out, nil
}

// impactScorer holds the per-player multiplier context the impact
// formula needs, built once per request.
type impactScorer struct {
	viewerPicks   []pick.Pick
	squads        map[int64][]pick.Pick
	managerCount  int
	tripleCaptain bool
}

func newImpactScorer(viewerPicks []pick.Pick, leaguePicks pick.LeaguePicks, tripleCaptain bool) impactScorer {
	return impactScorer{
		viewerPicks:   viewerPicks,
		squads:        leaguePicks.ByManager(),
		managerCount:  leaguePicks.ManagerCount,
		tripleCaptain: tripleCaptain,
	}
}

// impact applies the league-relative formula: the viewer's realized
// delta minus the league-average realized delta. The average divides by
// the full league size; members whose squads skip the player count at
// multiplier zero.
func (s impactScorer) impact(e feed.Event) *float64 {
	if len(s.viewerPicks) == 0 || s.managerCount == 0 {
		return nil
	}
	viewerMult := pick.MultiplierFor(s.viewerPicks, e.PlayerID, s.tripleCaptain)
	mults := make([]int, 0, s.managerCount)
	for _, squad := range s.squads {
		mults = append(mults, pick.MultiplierFor(squad, e.PlayerID, s.tripleCaptain))
	}
	for len(mults) < s.managerCount {
		mults = append(mults, 0)
	}
	return feed.Impact(e.PointsDelta, &viewerMult, mults)
}
