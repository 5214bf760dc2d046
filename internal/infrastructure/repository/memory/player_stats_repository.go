package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fplpulse/fplpulse/internal/domain/fixture"
	"github.com/fplpulse/fplpulse/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	mu       sync.RWMutex
	rows     []playerstats.Row
	fixtures []fixture.Fixture
}

// NewPlayerStatsRepository keeps the fixtures alongside the stat rows so
// the head-to-head lookup can resolve reverse meetings.
func NewPlayerStatsRepository(rows []playerstats.Row, fixtures []fixture.Fixture) *PlayerStatsRepository {
	stats := make([]playerstats.Row, 0, len(rows))
	stats = append(stats, rows...)
	fxs := make([]fixture.Fixture, 0, len(fixtures))
	fxs = append(fxs, fixtures...)

	return &PlayerStatsRepository{rows: stats, fixtures: fxs}
}

func (r *PlayerStatsRepository) ListByGameweek(_ context.Context, gw int) ([]playerstats.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []playerstats.Row
	for _, row := range r.rows {
		if row.Gameweek == gw {
			out = append(out, row)
		}
	}
	sortStatRows(out)

	return out, nil
}

func (r *PlayerStatsRepository) ListByFixture(_ context.Context, fixtureID int64) ([]playerstats.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []playerstats.Row
	for _, row := range r.rows {
		if row.FixtureID == fixtureID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })

	return out, nil
}

func (r *PlayerStatsRepository) LastMeetingStats(_ context.Context, gw int) ([]playerstats.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meetings := make(map[int64]struct{})
	for _, cur := range r.fixtures {
		if cur.Gameweek != gw {
			continue
		}
		if prev, ok := reverseMeeting(r.fixtures, cur); ok {
			meetings[prev.ID] = struct{}{}
		}
	}

	var out []playerstats.Row
	for _, row := range r.rows {
		if _, ok := meetings[row.FixtureID]; ok {
			out = append(out, row)
		}
	}
	sortStatRows(out)

	return out, nil
}

func sortStatRows(rows []playerstats.Row) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].FixtureID != rows[j].FixtureID {
			return rows[i].FixtureID < rows[j].FixtureID
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})
}
