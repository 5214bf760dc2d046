package viewstate

import "sync"

// MatchCards tracks the single expanded fixture on the matches subpage.
type MatchCards struct {
	mu       sync.Mutex
	expanded int64
}

// Toggle expands the fixture, or collapses it when it is already the
// expanded one. Returns the fixture now expanded, zero for none.
func (m *MatchCards) Toggle(fixtureID int64) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.expanded == fixtureID {
		m.expanded = 0
	} else {
		m.expanded = fixtureID
	}
	return m.expanded
}

// Expanded returns the expanded fixture id, zero for none.
func (m *MatchCards) Expanded() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.expanded
}

// Collapse clears any expansion, as navigating away from the subpage
// does.
func (m *MatchCards) Collapse() {
	m.mu.Lock()
	m.expanded = 0
	m.mu.Unlock()
}
