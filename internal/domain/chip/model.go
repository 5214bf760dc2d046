package chip

import (
	"fmt"
	"strings"

	"github.com/fplpulse/fplpulse/internal/domain/gameweek"
)

// Slot is one of the eight chip slots, two halves of four.
type Slot string

const (
	SlotWildcard       Slot = "wc1"
	SlotFreeHit        Slot = "fh"
	SlotBenchBoost     Slot = "bb"
	SlotTripleCaptain  Slot = "tc"
	SlotWildcard2      Slot = "wc2"
	SlotFreeHit2       Slot = "fh2"
	SlotBenchBoost2    Slot = "bb2"
	SlotTripleCaptain2 Slot = "tc2"
)

func FirstHalfSlots() []Slot {
	return []Slot{SlotWildcard, SlotFreeHit, SlotBenchBoost, SlotTripleCaptain}
}

func SecondHalfSlots() []Slot {
	return []Slot{SlotWildcard2, SlotFreeHit2, SlotBenchBoost2, SlotTripleCaptain2}
}

func (s Slot) SecondHalf() bool {
	switch s {
	case SlotWildcard2, SlotFreeHit2, SlotBenchBoost2, SlotTripleCaptain2:
		return true
	default:
		return false
	}
}

const (
	NameWildcard      = "wildcard"
	NameFreeHit       = "freehit"
	NameBenchBoost    = "bboost"
	NameTripleCaptain = "3xc"
)

// NormalizeName maps the chip spellings seen in backend rows onto the four
// canonical names; unknown names pass through lowercased.
func NormalizeName(value string) string {
	name := strings.ToLower(strings.TrimSpace(value))
	switch name {
	case NameWildcard, "wc":
		return NameWildcard
	case NameFreeHit, "free_hit", "fh":
		return NameFreeHit
	case NameBenchBoost, "bench_boost", "bb":
		return NameBenchBoost
	case NameTripleCaptain, "triple_captain", "tc":
		return NameTripleCaptain
	default:
		return name
	}
}

// Play is one raw chip activation from the backend.
type Play struct {
	Name     string
	Gameweek int
}

// LeaguePlay is one member's chip activation inside a mini league.
type LeaguePlay struct {
	ManagerID   int64
	ManagerName string
	Name        string
	Gameweek    int
}

// Usage maps each used slot to the gameweek it was played in.
type Usage map[Slot]int

// UsageFromPlays folds raw chip plays into the slot mapping: a play lands
// in the first-half slot when its gameweek is before the season midpoint,
// otherwise in the second-half slot. A duplicate play for an occupied slot
// is dropped; the backend should never produce one.
func UsageFromPlays(plays []Play) Usage {
	usage := make(Usage, len(plays))
	for _, play := range plays {
		slot, ok := slotFor(NormalizeName(play.Name), gameweek.IsSecondHalf(play.Gameweek))
		if !ok {
			continue
		}
		if _, taken := usage[slot]; taken {
			continue
		}
		usage[slot] = play.Gameweek
	}
	return usage
}

func slotFor(name string, secondHalf bool) (Slot, bool) {
	switch name {
	case NameWildcard:
		if secondHalf {
			return SlotWildcard2, true
		}
		return SlotWildcard, true
	case NameFreeHit:
		if secondHalf {
			return SlotFreeHit2, true
		}
		return SlotFreeHit, true
	case NameBenchBoost:
		if secondHalf {
			return SlotBenchBoost2, true
		}
		return SlotBenchBoost, true
	case NameTripleCaptain:
		if secondHalf {
			return SlotTripleCaptain2, true
		}
		return SlotTripleCaptain, true
	default:
		return "", false
	}
}

// Validate enforces the cross-half invariant: two populated slots may
// share a gameweek only when they sit in different halves, and every
// slot's gameweek must lie inside its own half.
func (u Usage) Validate() error {
	for slot, gw := range u {
		if slot.SecondHalf() != gameweek.IsSecondHalf(gw) {
			return fmt.Errorf("slot %s recorded outside its half: gameweek %d", slot, gw)
		}
	}
	seen := make(map[int]Slot, len(u))
	for slot, gw := range u {
		if slot.SecondHalf() {
			continue
		}
		if other, ok := seen[gw]; ok {
			return fmt.Errorf("slots %s and %s share gameweek %d", other, slot, gw)
		}
		seen[gw] = slot
	}
	seen = make(map[int]Slot, len(u))
	for slot, gw := range u {
		if !slot.SecondHalf() {
			continue
		}
		if other, ok := seen[gw]; ok {
			return fmt.Errorf("slots %s and %s share gameweek %d", other, slot, gw)
		}
		seen[gw] = slot
	}
	return nil
}

// TripleCaptainActiveAt reports whether either triple captain slot was
// played in the given gameweek.
func (u Usage) TripleCaptainActiveAt(gw int) bool {
	if used, ok := u[SlotTripleCaptain]; ok && used == gw {
		return true
	}
	if used, ok := u[SlotTripleCaptain2]; ok && used == gw {
		return true
	}
	return false
}
