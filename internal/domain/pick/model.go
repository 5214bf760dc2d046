package pick

import (
	"fmt"
	"sort"
	"strings"
)

// benchStart is the first bench slot; squad positions 1..11 start.
const benchStart = 12

// Pick is one slot of a manager's squad for a gameweek.
type Pick struct {
	ManagerID        int64
	Gameweek         int
	PlayerID         int64
	Position         int
	Multiplier       int
	IsCaptain        bool
	IsViceCaptain    bool
	AutoSubbedIn     bool
	AutoSubbedOut    bool
	ReplacedPlayerID int64
}

func (p Pick) Benched() bool {
	return p.Position >= benchStart
}

// EffectiveMultiplier returns the multiplier that scores this pick. The
// stored multiplier is authoritative; the one gap in older rows is a
// captain recorded with multiplier 1, which means 2 unless a triple
// captain chip is active.
func (p Pick) EffectiveMultiplier(tripleCaptainActive bool) int {
	if p.IsCaptain && p.Multiplier == 1 && !tripleCaptainActive {
		return 2
	}
	return p.Multiplier
}

// MultiplierFor resolves the impact multiplier of one player within a
// manager's squad: zero when unowned or benched, the captain multiplier
// for captains, one otherwise.
func MultiplierFor(picks []Pick, playerID int64, tripleCaptainActive bool) int {
	for _, p := range picks {
		if p.PlayerID != playerID {
			continue
		}
		if p.Benched() {
			return 0
		}
		if p.IsCaptain {
			return p.EffectiveMultiplier(tripleCaptainActive)
		}
		return 1
	}
	return 0
}

// EffectivePoints scores one pick from a per-player gameweek points index.
// An auto-subbed-in pick reverses the substitution for analytical views:
// the replaced player's points count instead, still scaled by this pick's
// own multiplier.
func (p Pick) EffectivePoints(pointsByPlayer map[int64]int, tripleCaptainActive bool) int {
	playerID := p.PlayerID
	if p.AutoSubbedIn && p.ReplacedPlayerID != 0 {
		playerID = p.ReplacedPlayerID
	}
	return pointsByPlayer[playerID] * p.EffectiveMultiplier(tripleCaptainActive)
}

// OwnedSet indexes the squad by player id.
func OwnedSet(picks []Pick) map[int64]struct{} {
	owned := make(map[int64]struct{}, len(picks))
	for _, p := range picks {
		owned[p.PlayerID] = struct{}{}
	}
	return owned
}

// Streaks folds the gameweeks a player was owned into sorted contiguous
// runs, formatted "a-b" or "a" and comma-joined.
func Streaks(gameweeks []int) string {
	if len(gameweeks) == 0 {
		return ""
	}

	sorted := make([]int, 0, len(gameweeks))
	seen := make(map[int]struct{}, len(gameweeks))
	for _, gw := range gameweeks {
		if _, ok := seen[gw]; ok {
			continue
		}
		seen[gw] = struct{}{}
		sorted = append(sorted, gw)
	}
	sort.Ints(sorted)

	var parts []string
	start, prev := sorted[0], sorted[0]
	flush := func() {
		if start == prev {
			parts = append(parts, fmt.Sprintf("%d", start))
			return
		}
		parts = append(parts, fmt.Sprintf("%d-%d", start, prev))
	}

	for _, gw := range sorted[1:] {
		if gw == prev+1 {
			prev = gw
			continue
		}
		flush()
		start, prev = gw, gw
	}
	flush()

	return strings.Join(parts, ",")
}

// LeaguePicks carries every member squad of a league gameweek plus the
// league size, which the impact formula divides by.
type LeaguePicks struct {
	Picks        []Pick
	ManagerCount int
}

// ByManager groups league picks per manager.
func (l LeaguePicks) ByManager() map[int64][]Pick {
	out := make(map[int64][]Pick)
	for _, p := range l.Picks {
		out[p.ManagerID] = append(out[p.ManagerID], p)
	}
	return out
}
