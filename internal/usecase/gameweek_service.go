package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/fplpulse/fplpulse/internal/domain/fixture"
	"github.com/fplpulse/fplpulse/internal/domain/gameweek"
	"github.com/fplpulse/fplpulse/internal/domain/pick"
	"github.com/fplpulse/fplpulse/internal/domain/player"
	"github.com/fplpulse/fplpulse/internal/domain/playerstats"
	"github.com/fplpulse/fplpulse/internal/domain/stat"
	"github.com/fplpulse/fplpulse/internal/domain/team"
	"github.com/fplpulse/fplpulse/internal/view"
)

// GameweekParams selects the target round plus the page toggles.
// Gameweek zero means the current round. FixtureID expands one match
// card; zero keeps them all collapsed.
type GameweekParams struct {
	Gameweek  int
	ManagerID int64
	LeagueID  int64
	Simulate  string
	H2H       bool
	FixtureID int64
}

// GameweekMeta describes the resolved round.
type GameweekMeta struct {
	ID          int  `json:"id"`
	IsCurrent   bool `json:"is_current"`
	DataChecked bool `json:"data_checked"`
}

// TeamSide is one side of a match card.
type TeamSide struct {
	TeamID    int64  `json:"team_id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Score     *int   `json:"score,omitempty"`
}

// MeetingCard is the finished first-half meeting of the same pair,
// oriented by that meeting's home team.
type MeetingCard struct {
	FixtureID int64    `json:"fixture_id"`
	Gameweek  int      `json:"gameweek"`
	Home      TeamSide `json:"home"`
	Away      TeamSide `json:"away"`
}

// MatchCard is one fixture of the round with its teams joined in.
type MatchCard struct {
	FixtureID   int64           `json:"fixture_id"`
	KickoffAt   time.Time       `json:"kickoff_at"`
	Stadium     string          `json:"stadium,omitempty"`
	Status      fixture.Status  `json:"status"`
	Dot         *view.StatusDot `json:"dot,omitempty"`
	Home        TeamSide        `json:"home"`
	Away        TeamSide        `json:"away"`
	LastMeeting *MeetingCard    `json:"last_meeting,omitempty"`
}

// PlayerStatLine is one row of an expanded fixture table. Points folds
// provisional bonus in.
type PlayerStatLine struct {
	PlayerID  int64  `json:"player_id"`
	WebName   string `json:"web_name"`
	TeamShort string `json:"team_short"`
	Position  string `json:"position"`
	Minutes   int    `json:"minutes"`
	Points    int    `json:"points"`
	Goals     int    `json:"goals"`
	Assists   int    `json:"assists"`
	BPS       int    `json:"bps"`
	Bonus     int    `json:"bonus"`
	Defcon    int    `json:"defcon"`
	Owned     bool   `json:"owned"`
}

// FixtureTable is the player table of one expanded match card.
type FixtureTable struct {
	FixtureID int64            `json:"fixture_id"`
	Rows      []PlayerStatLine `json:"rows"`
}

// TopStatRow is one line of a top-ten stat board.
type TopStatRow struct {
	PlayerID  int64   `json:"player_id"`
	WebName   string  `json:"web_name"`
	TeamShort string  `json:"team_short"`
	FixtureID int64   `json:"fixture_id"`
	Value     float64 `json:"value"`
}

// StatBoard is the ranked top ten for one dictionary stat.
type StatBoard struct {
	Key     stat.Key     `json:"key"`
	Label   string       `json:"label"`
	Entries []TopStatRow `json:"entries"`
}

// MatchesView is the matches subpage payload.
type MatchesView struct {
	Gameweek GameweekMeta  `json:"gameweek"`
	H2H      bool          `json:"h2h,omitempty"`
	Cards    []MatchCard   `json:"cards"`
	TopStats []StatBoard   `json:"top_stats"`
	Expanded *FixtureTable `json:"expanded,omitempty"`
	Stale    bool          `json:"stale,omitempty"`
}

// BonusAwardRow is one displayed bonus line.
type BonusAwardRow struct {
	PlayerID  int64  `json:"player_id"`
	WebName   string `json:"web_name"`
	TeamShort string `json:"team_short"`
	BPS       int    `json:"bps"`
	Bonus     int    `json:"bonus"`
	Confirmed bool   `json:"confirmed"`
}

// FixtureBonus carries one started fixture's bonus lines.
type FixtureBonus struct {
	FixtureID int64           `json:"fixture_id"`
	Status    fixture.Status  `json:"status"`
	Home      TeamSide        `json:"home"`
	Away      TeamSide        `json:"away"`
	Awards    []BonusAwardRow `json:"awards"`
}

// BonusView is the bonus subpage payload.
type BonusView struct {
	Gameweek GameweekMeta   `json:"gameweek"`
	Fixtures []FixtureBonus `json:"fixtures"`
	Stale    bool           `json:"stale,omitempty"`
}

type GameweekService struct {
	gameweeks GameweekQueries
	fixtures  FixtureQueries
	stats     PlayerStatsQueries
	teams     TeamQueries
	players   PlayerQueries
	picks     PickQueries
}

func NewGameweekService(
	gameweeks GameweekQueries,
	fixtures FixtureQueries,
	stats PlayerStatsQueries,
	teams TeamQueries,
	players PlayerQueries,
	picks PickQueries,
) *GameweekService {
	return &GameweekService{
		gameweeks: gameweeks,
		fixtures:  fixtures,
		stats:     stats,
		teams:     teams,
		players:   players,
		picks:     picks,
	}
}

// GetMatches assembles the matches subpage: cards in kickoff order, the
// top-ten stat boards, and optionally one expanded fixture table. The
// head-to-head toggle narrows to scheduled fixtures and pins each one's
// first-half meeting; the simulate switch walks the first four cards
// through the full status range for renderer inspection.
func (s *GameweekService) GetMatches(ctx context.Context, p GameweekParams) (MatchesView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameweekService.GetMatches")
	defer span.End()

	simulate, err := parseSimulate(p.Simulate)
	if err != nil {
		return MatchesView{}, err
	}

	meta, stale, err := resolveGameweek(ctx, s.gameweeks, p.Gameweek)
	if err != nil {
		return MatchesView{}, err
	}
	h2h := p.H2H && gameweek.IsSecondHalf(meta.ID)

	var (
		fixtureList []fixture.Fixture
		fixturesErr error

		teamList []team.Team
		teamsErr error

		playerList []player.Player
		playersErr error

		rows    []playerstats.Row
		rowsErr error

		viewerPicks []pick.Pick
		picksErr    error

		meetings    []fixture.Fixture
		meetingsErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() { fixtureList, fixturesErr = s.fixtures.ListByGameweek(ctx, meta.ID, meta.IsCurrent) })
	wg.Go(func() { teamList, teamsErr = s.teams.List(ctx) })
	wg.Go(func() { playerList, playersErr = s.players.List(ctx) })
	wg.Go(func() { rows, rowsErr = s.stats.ListByGameweek(ctx, meta.ID) })
	wg.Go(func() { viewerPicks, picksErr = s.picks.ManagerPicks(ctx, p.ManagerID, meta.ID) })
	wg.Go(func() { meetings, meetingsErr = s.fixtures.LastMeetings(ctx, meta.ID, h2h) })
	wg.Wait()

	stale = stale || anyErr(fixturesErr, teamsErr, playersErr, rowsErr, picksErr, meetingsErr)

	teams := teamIndex(teamList)
	players := playerIndex(playerList)

	cards := make([]MatchCard, 0, len(fixtureList))
	for _, f := range fixtureList {
		cards = append(cards, matchCard(f, teams, meta.DataChecked))
	}
	if simulate {
		applySimulation(cards)
	}
	if h2h {
		cards = attachMeetings(cards, meetings, teams)
	}

	out := MatchesView{
		Gameweek: meta,
		H2H:      h2h,
		Cards:    cards,
		TopStats: buildStatBoards(rows, players, teams),
		Stale:    stale,
	}

	if p.FixtureID > 0 {
		table, tableStale, err := s.expandedTable(ctx, p.FixtureID, meta, cards, h2h, players, teams, pick.OwnedSet(viewerPicks))
		if err != nil {
			return MatchesView{}, err
		}
		out.Expanded = table
		out.Stale = out.Stale || tableStale
	}

	return out, nil
}

// GetBonus assembles the bonus subpage: every started fixture with its
// displayed bonus lines, confirmed awards winning over provisional ones.
func (s *GameweekService) GetBonus(ctx context.Context, p GameweekParams) (BonusView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameweekService.GetBonus")
	defer span.End()

	meta, stale, err := resolveGameweek(ctx, s.gameweeks, p.Gameweek)
	if err != nil {
		return BonusView{}, err
	}

	var (
		fixtureList []fixture.Fixture
		fixturesErr error

		teamList []team.Team
		teamsErr error

		playerList []player.Player
		playersErr error

		rows    []playerstats.Row
		rowsErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() { fixtureList, fixturesErr = s.fixtures.ListByGameweek(ctx, meta.ID, meta.IsCurrent) })
	wg.Go(func() { teamList, teamsErr = s.teams.List(ctx) })
	wg.Go(func() { playerList, playersErr = s.players.List(ctx) })
	wg.Go(func() { rows, rowsErr = s.stats.ListByGameweek(ctx, meta.ID) })
	wg.Wait()

	stale = stale || anyErr(fixturesErr, teamsErr, playersErr, rowsErr)

	teams := teamIndex(teamList)
	players := playerIndex(playerList)
	webNames := webNameIndex(players)

	byFixture := make(map[int64][]playerstats.Row, len(fixtureList))
	for _, row := range rows {
		byFixture[row.FixtureID] = append(byFixture[row.FixtureID], row)
	}

	out := BonusView{Gameweek: meta, Fixtures: make([]FixtureBonus, 0, len(fixtureList)), Stale: stale}
	for _, f := range fixtureList {
		fixtureRows := byFixture[f.ID]
		if len(fixtureRows) == 0 {
			continue
		}
		bpsByPlayer := make(map[int64]int, len(fixtureRows))
		for _, row := range fixtureRows {
			bpsByPlayer[row.PlayerID] = row.BPS
		}

		awards := playerstats.BonusView(fixtureRows, webNames)
		awardRows := make([]BonusAwardRow, 0, len(awards))
		for _, award := range awards {
			row := BonusAwardRow{
				PlayerID:  award.PlayerID,
				Bonus:     award.Bonus,
				Confirmed: award.Confirmed,
				BPS:       bpsByPlayer[award.PlayerID],
			}
			if pl, ok := players[award.PlayerID]; ok {
				row.WebName = pl.WebName
				if t, ok := teams[pl.TeamID]; ok {
					row.TeamShort = t.ShortName
				}
			}
			awardRows = append(awardRows, row)
		}

		out.Fixtures = append(out.Fixtures, FixtureBonus{
			FixtureID: f.ID,
			Status:    f.DeriveStatus(meta.DataChecked),
			Home:      teamSide(teams, f.HomeTeamID, f.HomeScore),
			Away:      teamSide(teams, f.AwayTeamID, f.AwayScore),
			Awards:    awardRows,
		})
	}

	return out, nil
}

// expandedTable loads the player table for one expanded card. In
// head-to-head mode the table shows the first-half meeting's rows
// instead of the current fixture's.
func (s *GameweekService) expandedTable(
	ctx context.Context,
	fixtureID int64,
	meta GameweekMeta,
	cards []MatchCard,
	h2h bool,
	players map[int64]player.Player,
	teams map[int64]team.Team,
	owned map[int64]struct{},
) (*FixtureTable, bool, error) {
	var card *MatchCard
	for i := range cards {
		if cards[i].FixtureID == fixtureID {
			card = &cards[i]
			break
		}
	}
	if card == nil {
		return nil, false, fmt.Errorf("%w: fixture %d", ErrNotFound, fixtureID)
	}

	var (
		rows []playerstats.Row
		err  error
	)
	tableID := fixtureID
	if h2h && card.LastMeeting != nil {
		tableID = card.LastMeeting.FixtureID
		var meetingRows []playerstats.Row
		meetingRows, err = s.stats.LastMeetingStats(ctx, meta.ID, true)
		for _, row := range meetingRows {
			if row.FixtureID == tableID {
				rows = append(rows, row)
			}
		}
	} else {
		rows, err = s.stats.ListByFixture(ctx, fixtureID, meta.ID, card.Home.TeamID, card.Away.TeamID, true)
	}

	stale := err != nil
	lines := make([]PlayerStatLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, statLine(row, players, teams, owned))
	}
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Points != lines[j].Points {
			return lines[i].Points > lines[j].Points
		}
		return lines[i].WebName < lines[j].WebName
	})

	return &FixtureTable{FixtureID: tableID, Rows: lines}, stale, nil
}

// resolveGameweek maps the requested round onto the backend's current
// one. Past rounds count as data checked: the backend's check completes
// well inside a round's lifetime.
func resolveGameweek(ctx context.Context, gameweeks GameweekQueries, requested int) (GameweekMeta, bool, error) {
	if requested < 0 || requested > gameweek.SeasonWeeks {
		return GameweekMeta{}, false, fmt.Errorf("%w: gameweek %d", ErrInvalidInput, requested)
	}

	current, found, err := gameweeks.Current(ctx)
	if err != nil && !found {
		return GameweekMeta{}, false, fmt.Errorf("%w: current gameweek: %v", ErrUnavailable, err)
	}
	if !found {
		return GameweekMeta{}, false, fmt.Errorf("%w: current gameweek", ErrNotFound)
	}
	stale := err != nil

	switch {
	case requested == 0 || requested == current.ID:
		return GameweekMeta{ID: current.ID, IsCurrent: true, DataChecked: current.DataChecked}, stale, nil
	case requested < current.ID:
		return GameweekMeta{ID: requested, DataChecked: true}, stale, nil
	default:
		return GameweekMeta{ID: requested}, stale, nil
	}
}

func parseSimulate(value string) (bool, error) {
	switch value {
	case "":
		return false, nil
	case "1", "status":
		return true, nil
	default:
		return false, fmt.Errorf("%w: simulate=%q", ErrInvalidInput, value)
	}
}

// simulatedStatuses is the status range the simulate switch walks the
// first cards through, one per card.
var simulatedStatuses = []fixture.Status{
	fixture.StatusScheduled,
	fixture.StatusLive,
	fixture.StatusProvisional,
	fixture.StatusFinal,
}

func applySimulation(cards []MatchCard) {
	for i := range cards {
		if i >= len(simulatedStatuses) {
			break
		}
		cards[i].Status = simulatedStatuses[i]
		cards[i].Dot = view.FixtureDot(simulatedStatuses[i])
	}
}

// attachMeetings narrows the cards to scheduled fixtures and pins each
// one's first-half meeting, matched by the reversed team pair.
func attachMeetings(cards []MatchCard, meetings []fixture.Fixture, teams map[int64]team.Team) []MatchCard {
	out := make([]MatchCard, 0, len(cards))
	for _, card := range cards {
		if card.Status != fixture.StatusScheduled {
			continue
		}
		for _, m := range meetings {
			if m.HomeTeamID == card.Away.TeamID && m.AwayTeamID == card.Home.TeamID {
				meeting := MeetingCard{
					FixtureID: m.ID,
					Gameweek:  m.Gameweek,
					Home:      teamSide(teams, m.HomeTeamID, m.HomeScore),
					Away:      teamSide(teams, m.AwayTeamID, m.AwayScore),
				}
				card.LastMeeting = &meeting
				break
			}
		}
		out = append(out, card)
	}
	return out
}

func matchCard(f fixture.Fixture, teams map[int64]team.Team, dataChecked bool) MatchCard {
	status := f.DeriveStatus(dataChecked)
	return MatchCard{
		FixtureID: f.ID,
		KickoffAt: f.KickoffAt,
		Stadium:   f.Stadium,
		Status:    status,
		Dot:       view.FixtureDot(status),
		Home:      teamSide(teams, f.HomeTeamID, f.HomeScore),
		Away:      teamSide(teams, f.AwayTeamID, f.AwayScore),
	}
}

func teamSide(teams map[int64]team.Team, id int64, score *int) TeamSide {
	side := TeamSide{TeamID: id}
	if t, ok := teams[id]; ok {
		side.Name = t.Name
		side.ShortName = t.ShortName
	}
	if score != nil {
		s := *score
		side.Score = &s
	}
	return side
}

func buildStatBoards(rows []playerstats.Row, players map[int64]player.Player, teams map[int64]team.Team) []StatBoard {
	ranked := playerstats.TopByStat(rows, webNameIndex(players))

	boards := make([]StatBoard, 0, len(stat.Dictionary()))
	for _, def := range stat.Dictionary() {
		entries := ranked[def.Key]
		board := StatBoard{Key: def.Key, Label: def.Label, Entries: make([]TopStatRow, 0, len(entries))}
		for _, entry := range entries {
			row := TopStatRow{
				PlayerID:  entry.PlayerID,
				FixtureID: entry.FixtureID,
				Value:     entry.Value,
			}
			if pl, ok := players[entry.PlayerID]; ok {
				row.WebName = pl.WebName
				if t, ok := teams[pl.TeamID]; ok {
					row.TeamShort = t.ShortName
				}
			}
			board.Entries = append(board.Entries, row)
		}
		boards = append(boards, board)
	}
	return boards
}

func statLine(row playerstats.Row, players map[int64]player.Player, teams map[int64]team.Team, owned map[int64]struct{}) PlayerStatLine {
	line := PlayerStatLine{
		PlayerID: row.PlayerID,
		Minutes:  row.Minutes,
		Points:   row.EffectiveTotalPoints(),
		Goals:    row.Goals,
		Assists:  row.Assists,
		BPS:      row.BPS,
		Bonus:    row.Bonus,
		Defcon:   row.DefensiveContribution,
	}
	if _, ok := owned[row.PlayerID]; ok {
		line.Owned = true
	}
	if pl, ok := players[row.PlayerID]; ok {
		line.WebName = pl.WebName
		line.Position = view.PositionLabel(pl.Position, true)
		if t, ok := teams[pl.TeamID]; ok {
			line.TeamShort = t.ShortName
		}
	}
	return line
}

func teamIndex(teams []team.Team) map[int64]team.Team {
	out := make(map[int64]team.Team, len(teams))
	for _, t := range teams {
		out[t.ID] = t
	}
	return out
}

func playerIndex(players []player.Player) map[int64]player.Player {
	out := make(map[int64]player.Player, len(players))
	for _, p := range players {
		out[p.ID] = p
	}
	return out
}

func webNameIndex(players map[int64]player.Player) map[int64]string {
	out := make(map[int64]string, len(players))
	for id, p := range players {
		out[id] = p.WebName
	}
	return out
}
