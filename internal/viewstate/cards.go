package viewstate

import (
	"fmt"
	"sync"

	"github.com/fplpulse/fplpulse/internal/platform/localstore"
	"github.com/fplpulse/fplpulse/internal/view"
)

const cardOrderKey = "bento_card_order"

// CardGrid holds the home grid's persisted card order plus the single
// expanded card. The order survives restarts through the local store;
// expansion is session state.
type CardGrid struct {
	mu       sync.Mutex
	store    *localstore.Store
	order    []string
	expanded string
}

// NewCardGrid loads the persisted order and normalizes it: unknown ids
// drop, missing ids append in default order. A corrupt or absent entry
// falls back to the default order.
func NewCardGrid(store *localstore.Store) *CardGrid {
	g := &CardGrid{store: store}

	var saved []string
	if store != nil {
		if ok, err := store.Get(cardOrderKey, &saved); err != nil || !ok {
			saved = nil
		}
	}
	g.order = normalizeOrder(saved)
	return g
}

// Order returns the persisted card order.
func (g *CardGrid) Order() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.order...)
}

// SetOrder normalizes and persists a new card order.
func (g *CardGrid) SetOrder(order []string) ([]string, error) {
	normalized := normalizeOrder(order)

	g.mu.Lock()
	g.order = normalized
	g.mu.Unlock()

	if g.store != nil {
		if err := g.store.Put(cardOrderKey, normalized); err != nil {
			return nil, fmt.Errorf("persist card order: %w", err)
		}
	}
	return append([]string(nil), normalized...), nil
}

// OrderForViewport returns the order for one render. On narrow
// viewports the league table reads better above the chip tracker, so
// league-rank moves directly ahead of chips when it currently follows
// it. The persisted order never changes.
func (g *CardGrid) OrderForViewport(narrow bool) []string {
	order := g.Order()
	if !narrow {
		return order
	}

	chipsAt, leagueAt := -1, -1
	for i, id := range order {
		switch id {
		case view.CardChips:
			chipsAt = i
		case view.CardLeagueRank:
			leagueAt = i
		}
	}
	if chipsAt == -1 || leagueAt == -1 || leagueAt < chipsAt {
		return order
	}

	out := make([]string, 0, len(order))
	for i, id := range order {
		if i == chipsAt {
			out = append(out, view.CardLeagueRank)
		}
		if id == view.CardLeagueRank {
			continue
		}
		out = append(out, id)
	}
	return out
}

// Expand marks one card expanded, collapsing any other. Expanding the
// already-expanded card is a no-op.
func (g *CardGrid) Expand(id string) {
	if !view.KnownCard(id) {
		return
	}
	g.mu.Lock()
	g.expanded = id
	g.mu.Unlock()
}

// Collapse clears the expansion when id is the expanded card.
func (g *CardGrid) Collapse(id string) {
	g.mu.Lock()
	if g.expanded == id {
		g.expanded = ""
	}
	g.mu.Unlock()
}

// Expanded returns the expanded card id, empty when none.
func (g *CardGrid) Expanded() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.expanded
}

// normalizeOrder drops unknown ids and duplicate mentions, then appends
// any missing cards in default order.
func normalizeOrder(order []string) []string {
	seen := make(map[string]struct{}, len(order))
	out := make([]string, 0, len(view.DefaultCardOrder()))
	for _, id := range order {
		if !view.KnownCard(id) {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, id := range view.DefaultCardOrder() {
		if _, ok := seen[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
