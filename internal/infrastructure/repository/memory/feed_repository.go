package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fplpulse/fplpulse/internal/domain/feed"
)

type FeedRepository struct {
	mu     sync.RWMutex
	events []feed.Event
}

func NewFeedRepository(events []feed.Event) *FeedRepository {
	out := make([]feed.Event, 0, len(events))
	out = append(out, events...)

	return &FeedRepository{events: out}
}

func (r *FeedRepository) ListByGameweek(_ context.Context, gw int) ([]feed.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []feed.Event
	for _, event := range r.events {
		if event.Gameweek == gw {
			out = append(out, event)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].OccurredAt.Equal(out[j].OccurredAt) {
			return out[i].OccurredAt.After(out[j].OccurredAt)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}
