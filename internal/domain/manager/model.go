package manager

import (
	"fmt"

	"github.com/fplpulse/fplpulse/internal/domain/stat"
)

// Summary is the per-gameweek rollup the home cards read. Rank fields are
// pointers because freshly started gameweeks report no rank yet.
type Summary struct {
	ID             int64
	Name           string
	TeamName       string
	OverallRank    *int64
	GameweekRank   *int64
	TotalPoints    int
	GameweekPoints int
	TeamValue      float64
	BankValue      float64
	TransfersMade  int
	FreeTransfers  int
	LeagueRank     *int
}

// HistoryPoint is one completed gameweek in a manager's season, ordered by
// gameweek ascending.
type HistoryPoint struct {
	ManagerID   int64
	Gameweek    int
	OverallRank int64
	ActiveChip  string
}

// ValuePoint is one gameweek of team value history.
type ValuePoint struct {
	ManagerID int64
	Gameweek  int
	TeamValue float64
}

// PerformanceWindow filters owned-player performance to recent gameweeks.
type PerformanceWindow string

const (
	WindowAll    PerformanceWindow = "all"
	WindowLast6  PerformanceWindow = "last6"
	WindowLast12 PerformanceWindow = "last12"
)

func ParsePerformanceWindow(value string) (PerformanceWindow, error) {
	switch PerformanceWindow(value) {
	case WindowAll, WindowLast6, WindowLast12:
		return PerformanceWindow(value), nil
	case "":
		return WindowAll, nil
	default:
		return "", fmt.Errorf("unknown performance window: %s", value)
	}
}

// Gameweeks returns the window size in gameweeks, zero meaning unbounded.
func (w PerformanceWindow) Gameweeks() int {
	switch w {
	case WindowLast6:
		return 6
	case WindowLast12:
		return 12
	default:
		return 0
	}
}

// performanceKeys lists the stat keys the owned-performance chart accepts.
var performanceKeys = map[stat.Key]struct{}{
	stat.KeyPoints:  {},
	stat.KeyBPS:     {},
	stat.KeyGoals:   {},
	stat.KeyAssists: {},
}

func ValidPerformanceKey(key stat.Key) bool {
	_, ok := performanceKeys[key]
	return ok
}

// PerformancePoint is one (player, gameweek) sample of an owned-player
// performance series.
type PerformancePoint struct {
	PlayerID int64
	Gameweek int
	Value    float64
	Owned    bool
}

// TransferImpact is one transfer of a gameweek with the points swing it
// produced.
type TransferImpact struct {
	ManagerID       int64
	Gameweek        int
	PlayerInID      int64
	PlayerOutID     int64
	PlayerInPoints  int
	PlayerOutPoints int
	HitCost         int
}

// Net is the realized gain of the transfer after any points hit.
func (t TransferImpact) Net() int {
	return t.PlayerInPoints - t.PlayerOutPoints - t.HitCost
}
