package player

import "fmt"

// Position is the backend's numeric position code.
type Position int

const (
	PositionGoalkeeper Position = 1
	PositionDefender   Position = 2
	PositionMidfielder Position = 3
	PositionForward    Position = 4
)

var positionLabels = map[Position]string{
	PositionGoalkeeper: "GK",
	PositionDefender:   "DEF",
	PositionMidfielder: "MID",
	PositionForward:    "FWD",
}

func (p Position) Valid() bool {
	_, ok := positionLabels[p]
	return ok
}

func (p Position) Label() string {
	if label, ok := positionLabels[p]; ok {
		return label
	}
	return ""
}

func (p Position) IsOutfield() bool {
	return p != PositionGoalkeeper && p.Valid()
}

// DefconNotApplicable marks positions without a defensive-contribution
// threshold; rows carrying it render the denominator as an em-dash.
const DefconNotApplicable = 999

var defconThresholds = map[Position]int{
	PositionGoalkeeper: DefconNotApplicable,
	PositionDefender:   10,
	PositionMidfielder: 12,
	PositionForward:    12,
}

// DefconThreshold returns the defensive-contribution count at which the
// stat converts to fantasy points for this position.
func (p Position) DefconThreshold() int {
	if threshold, ok := defconThresholds[p]; ok {
		return threshold
	}
	return DefconNotApplicable
}

// Player is one row of the season's player directory.
type Player struct {
	ID                int64
	WebName           string
	Position          Position
	TeamID            int64
	CostTenths        int
	SelectedByPercent float64
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if p.WebName == "" {
		return fmt.Errorf("player web name is required")
	}
	if !p.Position.Valid() {
		return fmt.Errorf("invalid player position: %d", p.Position)
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id must be greater than zero")
	}

	return nil
}
