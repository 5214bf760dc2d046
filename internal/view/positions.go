package view

import "github.com/fplpulse/fplpulse/internal/domain/player"

// PositionLabel renders a squad position. Team tables spell the
// goalkeeper as GKP; everywhere else the short GK form applies.
func PositionLabel(p player.Position, teamTable bool) string {
	if teamTable && p == player.PositionGoalkeeper {
		return "GKP"
	}
	return p.Label()
}
