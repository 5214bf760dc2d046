package league

import (
	"fmt"
	"sort"
)

// TopTransfersLimit caps the transfers-in and transfers-out lists the
// league panel shows per gameweek.
const TopTransfersLimit = 15

// League identifies a mini-league the viewer belongs to.
type League struct {
	ID   int64
	Name string
}

// Validate validates league fields.
func (l *League) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league ID must be positive")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	return nil
}

// Standing is one row of the mini-league table.
type Standing struct {
	ManagerID      int64
	ManagerName    string
	TeamName       string
	Rank           int
	LastRank       int
	TotalPoints    int
	GameweekPoints int
}

// Movement reports how a manager moved since the previous gameweek.
// Positive means climbed, negative means dropped.
func (s Standing) Movement() int {
	if s.LastRank == 0 {
		return 0
	}
	return s.LastRank - s.Rank
}

// TransferCount aggregates how many managers in the league moved a
// player in or out this gameweek.
type TransferCount struct {
	PlayerID int64
	WebName  string
	Count    int
}

// TransferSummary carries the most-transferred players for a gameweek,
// each side capped at TopTransfersLimit.
type TransferSummary struct {
	In  []TransferCount
	Out []TransferCount
}

// Cap sorts both sides by count descending, name ascending, and trims
// them to TopTransfersLimit.
func (s TransferSummary) Cap() TransferSummary {
	return TransferSummary{
		In:  capCounts(s.In),
		Out: capCounts(s.Out),
	}
}

func capCounts(counts []TransferCount) []TransferCount {
	out := make([]TransferCount, len(counts))
	copy(out, counts)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].WebName < out[j].WebName
	})
	if len(out) > TopTransfersLimit {
		out = out[:TopTransfersLimit]
	}
	return out
}

// CaptainCount aggregates captain picks across the league for a
// gameweek.
type CaptainCount struct {
	PlayerID int64
	WebName  string
	Count    int
}

// SortCaptainCounts orders captain picks by popularity, then name.
func SortCaptainCounts(counts []CaptainCount) []CaptainCount {
	out := make([]CaptainCount, len(counts))
	copy(out, counts)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].WebName < out[j].WebName
	})
	return out
}

// ValuePoint is one manager's squad value at a gameweek, used for the
// league team-value chart.
type ValuePoint struct {
	ManagerID   int64
	ManagerName string
	Gameweek    int
	TeamValue   float64
}
