package query

import "sync/atomic"

// ModeSource holds the global refresh mode. Live means a fixture of
// the current gameweek is in play or has bonus pending; cadence
// choices read it at decision time.
type ModeSource struct {
	live atomic.Bool
}

func (m *ModeSource) SetLive(live bool) {
	m.live.Store(live)
}

func (m *ModeSource) Live() bool {
	return m.live.Load()
}
