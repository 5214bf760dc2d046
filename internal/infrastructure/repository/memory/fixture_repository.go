package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fplpulse/fplpulse/internal/domain/fixture"
	"github.com/fplpulse/fplpulse/internal/domain/gameweek"
)

type FixtureRepository struct {
	mu       sync.RWMutex
	fixtures []fixture.Fixture
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	out := make([]fixture.Fixture, 0, len(fixtures))
	out = append(out, fixtures...)

	return &FixtureRepository{fixtures: out}
}

func (r *FixtureRepository) ListByGameweek(_ context.Context, gw int) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []fixture.Fixture
	for _, item := range r.fixtures {
		if item.Gameweek == gw {
			out = append(out, item)
		}
	}
	sortFixtures(out)

	return out, nil
}

func (r *FixtureRepository) LastMeetings(_ context.Context, gw int) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []fixture.Fixture
	for _, cur := range r.fixtures {
		if cur.Gameweek != gw {
			continue
		}
		if prev, ok := reverseMeeting(r.fixtures, cur); ok {
			out = append(out, prev)
		}
	}
	sortFixtures(out)

	return out, nil
}

// reverseMeeting finds the finished first-half fixture of the same pair
// with home and away swapped.
func reverseMeeting(fixtures []fixture.Fixture, cur fixture.Fixture) (fixture.Fixture, bool) {
	for _, prev := range fixtures {
		if prev.Gameweek >= gameweek.SecondHalfStart || !prev.Finished {
			continue
		}
		if prev.HomeTeamID == cur.AwayTeamID && prev.AwayTeamID == cur.HomeTeamID {
			return prev, true
		}
	}

	return fixture.Fixture{}, false
}

func sortFixtures(fixtures []fixture.Fixture) {
	sort.Slice(fixtures, func(i, j int) bool {
		if !fixtures[i].KickoffAt.Equal(fixtures[j].KickoffAt) {
			return fixtures[i].KickoffAt.Before(fixtures[j].KickoffAt)
		}
		return fixtures[i].ID < fixtures[j].ID
	})
}
