package viewstate

import (
	"sync"

	"github.com/fplpulse/fplpulse/internal/domain/gameweek"
)

// chipPages is the pager size: first-half slots, second-half slots.
const chipPages = 2

// chipSwipeThreshold is the horizontal distance a swipe must cover to
// turn the page.
const chipSwipeThreshold = 40.0

// DefaultChipsPage returns the page the tracker opens on: the half the
// season is not currently in, so the open slots face the viewer.
func DefaultChipsPage(gw int) int {
	if gameweek.IsSecondHalf(gw) {
		return 0
	}
	return 1
}

// ChipsPager tracks which half of the chip tracker is visible.
type ChipsPager struct {
	mu   sync.Mutex
	page int
}

// NewChipsPager opens on the default page for the gameweek.
func NewChipsPager(gw int) *ChipsPager {
	return &ChipsPager{page: DefaultChipsPage(gw)}
}

// Page returns the visible page index.
func (p *ChipsPager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// Select jumps to a page directly, as the pager dots do. Out-of-range
// indexes clamp.
func (p *ChipsPager) Select(page int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.page = clampPage(page)
	return p.page
}

// Swipe applies one finished horizontal gesture. A leftward drag past
// the threshold advances, a rightward one goes back; the pager clamps
// at both ends instead of wrapping.
func (p *ChipsPager) Swipe(deltaX float64) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch {
	case deltaX <= -chipSwipeThreshold:
		p.page = clampPage(p.page + 1)
	case deltaX >= chipSwipeThreshold:
		p.page = clampPage(p.page - 1)
	}
	return p.page
}

func clampPage(page int) int {
	if page < 0 {
		return 0
	}
	if page >= chipPages {
		return chipPages - 1
	}
	return page
}
