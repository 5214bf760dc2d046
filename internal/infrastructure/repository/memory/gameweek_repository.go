package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fplpulse/fplpulse/internal/domain/gameweek"
)

type GameweekRepository struct {
	mu        sync.RWMutex
	gameweeks []gameweek.Gameweek
	refreshes []gameweek.RefreshEvent
}

func NewGameweekRepository(gameweeks []gameweek.Gameweek, refreshes []gameweek.RefreshEvent) *GameweekRepository {
	gws := make([]gameweek.Gameweek, 0, len(gameweeks))
	gws = append(gws, gameweeks...)
	events := make([]gameweek.RefreshEvent, 0, len(refreshes))
	events = append(events, refreshes...)

	return &GameweekRepository{gameweeks: gws, refreshes: events}
}

func (r *GameweekRepository) Current(_ context.Context) (gameweek.Gameweek, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var current gameweek.Gameweek
	found := false
	for _, gw := range r.gameweeks {
		if !gw.IsCurrent {
			continue
		}
		if !found || gw.ID > current.ID {
			current = gw
			found = true
		}
	}

	return current, found, nil
}

func (r *GameweekRepository) RefreshEvents(_ context.Context) ([]gameweek.RefreshEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest := make(map[string]gameweek.RefreshEvent)
	for _, event := range r.refreshes {
		if prev, ok := latest[event.Kind]; ok && !event.OccurredAt.After(prev.OccurredAt) {
			continue
		}
		latest[event.Kind] = event
	}

	kinds := make([]string, 0, len(latest))
	for kind := range latest {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	out := make([]gameweek.RefreshEvent, 0, len(kinds))
	for _, kind := range kinds {
		out = append(out, latest[kind])
	}

	return out, nil
}
