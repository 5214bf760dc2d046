package defcon

import (
	"testing"

	"github.com/fplpulse/fplpulse/internal/domain/player"
	"github.com/fplpulse/fplpulse/internal/domain/playerstats"
)

func TestFoldDoubleGameweek(t *testing.T) {
	def := player.Player{ID: 301, WebName: "Gabriel", Position: player.PositionDefender, TeamID: 1}
	rows := []playerstats.Row{
		{PlayerID: 301, FixtureID: 11, DefensiveContribution: 4, Started: true, MatchFinished: true},
		{PlayerID: 301, FixtureID: 12, DefensiveContribution: 7, Started: true, MatchFinished: false},
	}

	row := Fold(def, rows, false)

	if row.Defcon != 11 {
		t.Fatalf("defcon = %d, want 11", row.Defcon)
	}
	if row.Threshold != 10 {
		t.Fatalf("threshold = %d, want 10", row.Threshold)
	}
	if !row.Achieved {
		t.Fatal("expected achieved at 11 of 10")
	}
	if !row.Live {
		t.Fatal("expected live while one fixture is unfinished")
	}
	if row.Finished {
		t.Fatal("finished flags AND together; one open fixture keeps the row open")
	}
	if !row.Started {
		t.Fatal("started flags OR together")
	}
	if row.Percent != 100 {
		t.Fatalf("percent = %d, want 100", row.Percent)
	}
}

func TestFoldGoalkeeperThreshold(t *testing.T) {
	gk := player.Player{ID: 100, WebName: "Raya", Position: player.PositionGoalkeeper, TeamID: 1}
	rows := []playerstats.Row{{PlayerID: 100, FixtureID: 11, DefensiveContribution: 6, Started: true}}

	row := Fold(gk, rows, false)

	if row.Threshold != player.DefconNotApplicable {
		t.Fatalf("threshold = %d, want %d", row.Threshold, player.DefconNotApplicable)
	}
	if row.Percent != 0 {
		t.Fatalf("percent = %d, want 0 for no-threshold rows", row.Percent)
	}
	if row.Achieved {
		t.Fatal("no-threshold rows never achieve")
	}
}

func TestFoldPercentCapsAndRounds(t *testing.T) {
	mid := player.Player{ID: 200, WebName: "Rice", Position: player.PositionMidfielder, TeamID: 1}

	row := Fold(mid, []playerstats.Row{{PlayerID: 200, FixtureID: 11, DefensiveContribution: 7}}, false)
	if row.Percent != 58 {
		t.Fatalf("percent = %d, want 58 (7 of 12)", row.Percent)
	}

	row = Fold(mid, []playerstats.Row{{PlayerID: 200, FixtureID: 11, DefensiveContribution: 30}}, false)
	if row.Percent != 100 {
		t.Fatalf("percent = %d, want capped 100", row.Percent)
	}
}

func TestFoldDataCheckedCollapsesProvisional(t *testing.T) {
	def := player.Player{ID: 301, WebName: "Gabriel", Position: player.PositionDefender, TeamID: 1}
	rows := []playerstats.Row{
		{PlayerID: 301, FixtureID: 11, DefensiveContribution: 10, Started: true, MatchFinishedProvisional: true},
	}

	row := Fold(def, rows, true)

	if row.FinishedProvisional {
		t.Fatal("data checked must drop the provisional flag")
	}
	if !row.Finished || row.Live {
		t.Fatalf("data checked must settle the row, got finished=%t live=%t", row.Finished, row.Live)
	}
}

func TestBuildBoardOrdering(t *testing.T) {
	players := []player.Player{
		{ID: 1, WebName: "Raya", Position: player.PositionGoalkeeper, TeamID: 1},
		{ID: 2, WebName: "Gabriel", Position: player.PositionDefender, TeamID: 1},
		{ID: 3, WebName: "Rice", Position: player.PositionMidfielder, TeamID: 1},
		{ID: 4, WebName: "Saliba", Position: player.PositionDefender, TeamID: 1},
		{ID: 5, WebName: "Timber", Position: player.PositionDefender, TeamID: 1},
	}
	rows := []playerstats.Row{
		{PlayerID: 1, FixtureID: 11, DefensiveContribution: 9},
		{PlayerID: 2, FixtureID: 11, DefensiveContribution: 5},
		{PlayerID: 3, FixtureID: 11, DefensiveContribution: 6},
		{PlayerID: 4, FixtureID: 11, DefensiveContribution: 5},
		{PlayerID: 5, FixtureID: 11, DefensiveContribution: 8},
	}

	board := BuildBoard(players, rows, false)

	wantNames := []string{"Timber", "Gabriel", "Rice", "Saliba", "Raya"}
	if len(board) != len(wantNames) {
		t.Fatalf("board size = %d, want %d", len(board), len(wantNames))
	}
	for i, want := range wantNames {
		if board[i].WebName != want {
			t.Fatalf("board[%d] = %s, want %s", i, board[i].WebName, want)
		}
	}
	if board[len(board)-1].Threshold != player.DefconNotApplicable {
		t.Fatal("no-threshold rows must sink to the bottom")
	}
}

func TestBuildBoardSkipsPlayersWithoutRows(t *testing.T) {
	players := []player.Player{
		{ID: 1, WebName: "Gabriel", Position: player.PositionDefender, TeamID: 1},
		{ID: 2, WebName: "Saliba", Position: player.PositionDefender, TeamID: 1},
	}
	rows := []playerstats.Row{{PlayerID: 1, FixtureID: 11, DefensiveContribution: 3}}

	board := BuildBoard(players, rows, false)
	if len(board) != 1 || board[0].PlayerID != 1 {
		t.Fatalf("expected only the player with rows, got %+v", board)
	}
}
