package defcon

import (
	"math"
	"sort"

	"github.com/fplpulse/fplpulse/internal/domain/player"
	"github.com/fplpulse/fplpulse/internal/domain/playerstats"
)

// Row is the double-gameweek-folded defensive-contribution line for one
// player.
type Row struct {
	PlayerID            int64
	WebName             string
	TeamID              int64
	Position            player.Position
	Threshold           int
	Defcon              int
	Percent             int
	Achieved            bool
	Started             bool
	Finished            bool
	FinishedProvisional bool
	Live                bool
	FixtureIDs          []int64
}

// accumulator is the explicit fold state over one player's stat rows.
type accumulator struct {
	defcon              int
	started             bool
	finished            bool
	finishedProvisional bool
	live                bool
	fixtureIDs          []int64
}

func (a *accumulator) add(r playerstats.Row, first bool) {
	a.defcon += r.DefensiveContribution
	a.started = a.started || r.Started
	if first {
		a.finished = r.MatchFinished
	} else {
		a.finished = a.finished && r.MatchFinished
	}
	a.finishedProvisional = a.finishedProvisional || r.MatchFinishedProvisional
	a.live = a.live || (r.Started && !r.MatchFinished)
	a.fixtureIDs = append(a.fixtureIDs, r.FixtureID)
}

// Fold collapses one player's per-fixture rows into a single board row:
// contributions sum, started flags OR, finished flags AND, provisional
// flags OR, and the row is live while any fixture is started and
// unfinished. When dataChecked is set the whole gameweek is final and the
// provisional flag drops.
func Fold(p player.Player, rows []playerstats.Row, dataChecked bool) Row {
	acc := accumulator{}
	for i, r := range rows {
		acc.add(r, i == 0)
	}

	threshold := p.Position.DefconThreshold()
	percent := 0
	if threshold != player.DefconNotApplicable && threshold > 0 {
		percent = int(math.Round(float64(acc.defcon) / float64(threshold) * 100))
		if percent > 100 {
			percent = 100
		}
	}

	finishedProvisional := acc.finishedProvisional
	if dataChecked {
		finishedProvisional = false
		if acc.started {
			acc.finished = true
			acc.live = false
		}
	}

	return Row{
		PlayerID:            p.ID,
		WebName:             p.WebName,
		TeamID:              p.TeamID,
		Position:            p.Position,
		Threshold:           threshold,
		Defcon:              acc.defcon,
		Percent:             percent,
		Achieved:            threshold != player.DefconNotApplicable && acc.defcon >= threshold,
		Started:             acc.started,
		Finished:            acc.finished,
		FinishedProvisional: finishedProvisional,
		Live:                acc.live,
		FixtureIDs:          acc.fixtureIDs,
	}
}

// BuildBoard folds every player with stat rows in the gameweek and orders
// the board: outfield players first (no-threshold rows sink), percent
// descending, web name ascending.
func BuildBoard(players []player.Player, rows []playerstats.Row, dataChecked bool) []Row {
	byPlayer := make(map[int64][]playerstats.Row, len(players))
	for _, r := range rows {
		byPlayer[r.PlayerID] = append(byPlayer[r.PlayerID], r)
	}

	board := make([]Row, 0, len(byPlayer))
	for _, p := range players {
		playerRows, ok := byPlayer[p.ID]
		if !ok {
			continue
		}
		board = append(board, Fold(p, playerRows, dataChecked))
	}

	SortBoard(board)
	return board
}

// SortBoard orders rows in place.
func SortBoard(board []Row) {
	sort.SliceStable(board, func(i, j int) bool {
		iApplicable := board[i].Threshold != player.DefconNotApplicable
		jApplicable := board[j].Threshold != player.DefconNotApplicable
		if iApplicable != jApplicable {
			return iApplicable
		}
		if board[i].Percent != board[j].Percent {
			return board[i].Percent > board[j].Percent
		}
		return board[i].WebName < board[j].WebName
	})
}
