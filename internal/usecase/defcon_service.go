package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/sourcegraph/conc"

	"github.com/fplpulse/fplpulse/internal/domain/defcon"
	"github.com/fplpulse/fplpulse/internal/domain/filter"
	"github.com/fplpulse/fplpulse/internal/domain/pick"
	"github.com/fplpulse/fplpulse/internal/domain/player"
	"github.com/fplpulse/fplpulse/internal/domain/playerstats"
	"github.com/fplpulse/fplpulse/internal/domain/team"
	"github.com/fplpulse/fplpulse/internal/view"
)

// DefconParams selects the round and narrows the board. SortBy empty
// keeps the board's own ordering.
type DefconParams struct {
	Gameweek  int
	ManagerID int64
	Ownership string
	Position  string
	Matchup   string
	Search    string
	SortBy    string
	SortDesc  bool
}

// DefconRow is one board line. ThresholdLabel renders the em-dash for
// positions without a defensive-contribution threshold.
type DefconRow struct {
	PlayerID       int64           `json:"player_id"`
	WebName        string          `json:"web_name"`
	TeamShort      string          `json:"team_short"`
	Position       string          `json:"position"`
	ThresholdLabel string          `json:"threshold_label"`
	Defcon         int             `json:"defcon"`
	Percent        int             `json:"percent"`
	Achieved       bool            `json:"achieved"`
	Live           bool            `json:"live"`
	Dot            *view.StatusDot `json:"dot,omitempty"`
	Owned          bool            `json:"owned"`
	FixtureIDs     []int64         `json:"fixture_ids"`
}

// DefconView is the defcon subpage payload.
type DefconView struct {
	Gameweek GameweekMeta     `json:"gameweek"`
	Legend   []view.StatusDot `json:"legend"`
	Rows     []DefconRow      `json:"rows"`
	Stale    bool             `json:"stale,omitempty"`
}

type DefconService struct {
	gameweeks GameweekQueries
	stats     PlayerStatsQueries
	players   PlayerQueries
	teams     TeamQueries
	picks     PickQueries
}

func NewDefconService(
	gameweeks GameweekQueries,
	stats PlayerStatsQueries,
	players PlayerQueries,
	teams TeamQueries,
	picks PickQueries,
) *DefconService {
	return &DefconService{
		gameweeks: gameweeks,
		stats:     stats,
		players:   players,
		teams:     teams,
		picks:     picks,
	}
}

// GetBoard folds the round's stat rows into the defensive-contribution
// board, then applies the viewer's filters and sort.
func (s *DefconService) GetBoard(ctx context.Context, p DefconParams) (DefconView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DefconService.GetBoard")
	defer span.End()

	criteria, err := parseCriteria(p.Ownership, p.Position, p.Matchup, p.Search)
	if err != nil {
		return DefconView{}, err
	}

	meta, stale, err := resolveGameweek(ctx, s.gameweeks, p.Gameweek)
	if err != nil {
		return DefconView{}, err
	}

	var (
		rows    []playerstats.Row
		rowsErr error

		playerList []player.Player
		playersErr error

		teamList []team.Team
		teamsErr error

		viewerPicks []pick.Pick
		picksErr    error
	)

	var wg conc.WaitGroup
	wg.Go(func() { rows, rowsErr = s.stats.DefconGameweekPlayers(ctx, meta.ID, meta.DataChecked) })
	wg.Go(func() { playerList, playersErr = s.players.List(ctx) })
	wg.Go(func() { teamList, teamsErr = s.teams.List(ctx) })
	wg.Go(func() { viewerPicks, picksErr = s.picks.ManagerPicks(ctx, p.ManagerID, meta.ID) })
	wg.Wait()

	stale = stale || anyErr(rowsErr, playersErr, teamsErr, picksErr)

	teams := teamIndex(teamList)
	owned := pick.OwnedSet(viewerPicks)
	board := defcon.BuildBoard(playerList, rows, meta.DataChecked)

	out := DefconView{
		Gameweek: meta,
		Legend:   view.LegendDots(meta.DataChecked),
		Rows:     make([]DefconRow, 0, len(board)),
		Stale:    stale,
	}

	for _, row := range board {
		subject := filter.Subject{
			PlayerID:   row.PlayerID,
			WebName:    row.WebName,
			Position:   row.Position,
			FixtureIDs: row.FixtureIDs,
			Live:       row.Live,
		}
		if t, ok := teams[row.TeamID]; ok {
			subject.TeamShortName = t.ShortName
		}
		if _, ok := owned[row.PlayerID]; ok {
			subject.Owned = true
		}
		if !criteria.Matches(subject) {
			continue
		}
		out.Rows = append(out.Rows, defconRow(row, subject.TeamShortName, subject.Owned))
	}

	if p.SortBy != "" {
		if err := sortDefconRows(out.Rows, p.SortBy, p.SortDesc); err != nil {
			return DefconView{}, err
		}
	}

	return out, nil
}

func defconRow(row defcon.Row, teamShort string, owned bool) DefconRow {
	threshold := view.EmDash
	if row.Threshold != player.DefconNotApplicable {
		threshold = strconv.Itoa(row.Threshold)
	}
	return DefconRow{
		PlayerID:       row.PlayerID,
		WebName:        row.WebName,
		TeamShort:      teamShort,
		Position:       view.PositionLabel(row.Position, false),
		ThresholdLabel: threshold,
		Defcon:         row.Defcon,
		Percent:        row.Percent,
		Achieved:       row.Achieved,
		Live:           row.Live,
		Dot:            defconDot(row),
		Owned:          owned,
		FixtureIDs:     row.FixtureIDs,
	}
}

func defconDot(row defcon.Row) *view.StatusDot {
	switch {
	case row.Live:
		return &view.StatusDot{Kind: view.DotLive, Label: "Live"}
	case row.FinishedProvisional && !row.Finished:
		return &view.StatusDot{Kind: view.DotProvisional, Label: "Provisional"}
	case row.Finished:
		return &view.StatusDot{Kind: view.DotConfirmed, Label: "Confirmed"}
	default:
		return nil
	}
}

// sortDefconRows re-sorts the board by one column, ties broken by web
// name ascending regardless of direction.
func sortDefconRows(rows []DefconRow, column string, desc bool) error {
	var less func(a, b DefconRow) bool
	switch column {
	case "name":
		less = func(a, b DefconRow) bool { return a.WebName < b.WebName }
	case "team":
		less = func(a, b DefconRow) bool { return a.TeamShort < b.TeamShort }
	case "defcon":
		less = func(a, b DefconRow) bool { return a.Defcon < b.Defcon }
	case "percent":
		less = func(a, b DefconRow) bool { return a.Percent < b.Percent }
	default:
		return fmt.Errorf("%w: sort column %q", ErrInvalidInput, column)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if desc {
			a, b = b, a
		}
		switch {
		case less(a, b):
			return true
		case less(b, a):
			return false
		default:
			return rows[i].WebName < rows[j].WebName
		}
	})
	return nil
}

func parseCriteria(ownership, position, matchup, search string) (filter.Criteria, error) {
	own, err := filter.ParseOwnership(ownership)
	if err != nil {
		return filter.Criteria{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	pos, err := filter.ParsePosition(position)
	if err != nil {
		return filter.Criteria{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	mu, err := filter.ParseMatchup(matchup)
	if err != nil {
		return filter.Criteria{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return filter.Criteria{Ownership: own, Position: pos, Matchup: mu, Search: search}, nil
}
