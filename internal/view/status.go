package view

import "github.com/fplpulse/fplpulse/internal/domain/fixture"

// DotKind classifies a status indicator.
type DotKind string

const (
	DotLive        DotKind = "live"
	DotProvisional DotKind = "provisional"
	DotConfirmed   DotKind = "confirmed"
)

// StatusDot is the renderer contract for one status indicator.
type StatusDot struct {
	Kind  DotKind `json:"kind"`
	Label string  `json:"label"`
}

// FixtureDot maps a derived fixture status to its indicator. Scheduled
// fixtures carry none. DeriveStatus already collapses provisional to
// final for data-checked gameweeks, so no provisional dot survives a
// checked gameweek.
func FixtureDot(status fixture.Status) *StatusDot {
	switch status {
	case fixture.StatusLive:
		return &StatusDot{Kind: DotLive, Label: "Live"}
	case fixture.StatusProvisional:
		return &StatusDot{Kind: DotProvisional, Label: "Provisional"}
	case fixture.StatusFinal:
		return &StatusDot{Kind: DotConfirmed, Label: "Final"}
	default:
		return nil
	}
}

// LegendDots returns the indicator legend for a stats board. The
// provisional entry is suppressed once the gameweek data check has run.
func LegendDots(dataChecked bool) []StatusDot {
	dots := []StatusDot{{Kind: DotLive, Label: "Live"}}
	if !dataChecked {
		dots = append(dots, StatusDot{Kind: DotProvisional, Label: "Provisional"})
	}
	dots = append(dots, StatusDot{Kind: DotConfirmed, Label: "Confirmed"})
	return dots
}
