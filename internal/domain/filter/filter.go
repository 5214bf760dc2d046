package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fplpulse/fplpulse/internal/domain/player"
)

// Ownership narrows rows by whether the viewer's squad holds the
// player.
type Ownership string

const (
	OwnershipAll      Ownership = "all"
	OwnershipOwned    Ownership = "owned"
	OwnershipNotOwned Ownership = "not-owned"
)

// ParseOwnership parses an ownership filter value. Empty means all.
func ParseOwnership(raw string) (Ownership, error) {
	switch Ownership(strings.ToLower(raw)) {
	case OwnershipAll, "":
		return OwnershipAll, nil
	case OwnershipOwned:
		return OwnershipOwned, nil
	case OwnershipNotOwned:
		return OwnershipNotOwned, nil
	}
	return "", fmt.Errorf("unknown ownership filter %q", raw)
}

// Position narrows rows to one squad position. The zero value matches
// every position.
type Position struct {
	position player.Position
}

// AllPositions matches every position.
func AllPositions() Position { return Position{} }

// OnePosition matches only the given position.
func OnePosition(p player.Position) Position { return Position{position: p} }

// ParsePosition parses a position filter value. Empty or "all" means
// all positions.
func ParsePosition(raw string) (Position, error) {
	switch strings.ToLower(raw) {
	case "", "all":
		return AllPositions(), nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || !player.Position(n).Valid() {
		return Position{}, fmt.Errorf("unknown position filter %q", raw)
	}
	return OnePosition(player.Position(n)), nil
}

func (f Position) matches(p player.Position) bool {
	return f.position == 0 || f.position == p
}

type matchupKind int

const (
	matchupAll matchupKind = iota
	matchupLive
	matchupFixture
)

// Matchup narrows rows to live fixtures or a single fixture. The zero
// value matches every fixture.
type Matchup struct {
	kind      matchupKind
	fixtureID int64
}

// AllMatchups matches every fixture.
func AllMatchups() Matchup { return Matchup{} }

// LiveMatchups matches only rows from fixtures currently in play.
func LiveMatchups() Matchup { return Matchup{kind: matchupLive} }

// OneMatchup matches only rows from the given fixture.
func OneMatchup(fixtureID int64) Matchup {
	return Matchup{kind: matchupFixture, fixtureID: fixtureID}
}

// ParseMatchup parses a matchup filter value: "all", "live", or a
// fixture ID. Empty means all.
func ParseMatchup(raw string) (Matchup, error) {
	switch strings.ToLower(raw) {
	case "", "all":
		return AllMatchups(), nil
	case "live":
		return LiveMatchups(), nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return Matchup{}, fmt.Errorf("unknown matchup filter %q", raw)
	}
	return OneMatchup(id), nil
}

func (f Matchup) matches(s Subject) bool {
	switch f.kind {
	case matchupLive:
		return s.Live
	case matchupFixture:
		for _, id := range s.FixtureIDs {
			if id == f.fixtureID {
				return true
			}
		}
		return false
	}
	return true
}

// Subject is the projection of a list row the filters inspect.
type Subject struct {
	PlayerID      int64
	WebName       string
	TeamShortName string
	Position      player.Position
	FixtureIDs    []int64
	Live          bool
	Owned         bool
}

// Criteria composes the three filters plus a free-text search. All
// parts are conjunctive, so application order never changes the
// result.
type Criteria struct {
	Ownership Ownership
	Position  Position
	Matchup   Matchup
	Search    string
}

// Matches reports whether a row passes every active filter.
func (c Criteria) Matches(s Subject) bool {
	switch c.Ownership {
	case OwnershipOwned:
		if !s.Owned {
			return false
		}
	case OwnershipNotOwned:
		if s.Owned {
			return false
		}
	}
	if !c.Position.matches(s.Position) {
		return false
	}
	if !c.Matchup.matches(s) {
		return false
	}
	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(s.WebName), q) &&
			!strings.Contains(strings.ToLower(s.TeamShortName), q) {
			return false
		}
	}
	return true
}

// Apply keeps the rows matching the criteria, preserving input order.
func Apply(subjects []Subject, c Criteria) []Subject {
	out := make([]Subject, 0, len(subjects))
	for _, s := range subjects {
		if c.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}
