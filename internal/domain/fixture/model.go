package fixture

import "time"

// Status is the derived display state of a fixture.
type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusLive        Status = "live"
	StatusProvisional Status = "provisional"
	StatusFinal       Status = "final"
)

// Fixture is one match of a gameweek as the backend reports it.
type Fixture struct {
	ID                  int64
	Gameweek            int
	HomeTeamID          int64
	AwayTeamID          int64
	KickoffAt           time.Time
	Started             bool
	Finished            bool
	FinishedProvisional bool
	HomeScore           *int
	AwayScore           *int
	Stadium             string
}

// DeriveStatus maps the three backend flags to the display status. The
// gameweek-wide dataChecked flag collapses provisional results to final.
func (f Fixture) DeriveStatus(dataChecked bool) Status {
	if !f.Started {
		return StatusScheduled
	}
	if f.Finished {
		return StatusFinal
	}
	if f.FinishedProvisional {
		if dataChecked {
			return StatusFinal
		}
		return StatusProvisional
	}
	return StatusLive
}

func (f Fixture) IsLive() bool {
	return f.Started && !f.Finished && !f.FinishedProvisional
}

// BonusPending reports a finished match whose bonus points are still
// provisional.
func (f Fixture) BonusPending() bool {
	return f.Started && f.FinishedProvisional && !f.Finished
}

// AnyLiveOrBonusPending drives the global refresh mode: polling runs at
// the live cadence while it holds.
func AnyLiveOrBonusPending(fixtures []Fixture) bool {
	for _, f := range fixtures {
		if f.IsLive() || f.BonusPending() {
			return true
		}
	}
	return false
}

// KickoffByID indexes kickoff times for feed ordering.
func KickoffByID(fixtures []Fixture) map[int64]time.Time {
	out := make(map[int64]time.Time, len(fixtures))
	for _, f := range fixtures {
		out[f.ID] = f.KickoffAt
	}
	return out
}
