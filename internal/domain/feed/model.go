package feed

import (
	"math"
	"sort"
	"time"
)

// EventType enumerates the live event kinds the backend emits.
type EventType string

const (
	EventGoal        EventType = "goal"
	EventAssist      EventType = "assist"
	EventOwnGoal     EventType = "own_goal"
	EventPenaltySave EventType = "penalty_save"
	EventPenaltyMiss EventType = "penalty_miss"
	EventCleanSheet  EventType = "clean_sheet"
	EventSaves       EventType = "saves"
	EventYellowCard  EventType = "yellow_card"
	EventRedCard     EventType = "red_card"
	EventBonusChange EventType = "bonus_change"
	EventDefcon      EventType = "defcon"
	EventMinutes     EventType = "minutes"
)

// Event is one scoring event in the live feed. FromBonus and ToBonus
// are present only on bonus_change events; Reversed marks an event
// taken back by a later correction.
type Event struct {
	ID               int64
	Gameweek         int
	PlayerID         int64
	FixtureID        int64
	Type             EventType
	PointsDelta      int
	TotalPointsAfter int
	OccurredAt       time.Time
	FromBonus        *int
	ToBonus          *int
	Reversed         bool
}

// SortEvents orders events for display: by their fixture's kickoff
// descending, then occurredAt descending, then ID descending. Events
// whose fixture has no known kickoff sort last. The ID tiebreak keeps
// the order total even when timestamps collide.
func SortEvents(events []Event, kickoffs map[int64]time.Time) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		ki, iOK := kickoffs[out[i].FixtureID]
		kj, jOK := kickoffs[out[j].FixtureID]
		if iOK != jOK {
			return iOK
		}
		if iOK && !ki.Equal(kj) {
			return ki.After(kj)
		}
		if !out[i].OccurredAt.Equal(out[j].OccurredAt) {
			return out[i].OccurredAt.After(out[j].OccurredAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// Impact measures how an event moved the viewer against the league
// average: pointsDelta times the viewer's multiplier, minus the mean
// of pointsDelta times each manager's multiplier. Rounded to one
// decimal. Returns nil when the viewer's multiplier or the league
// picks are unknown.
func Impact(pointsDelta int, viewerMult *int, leagueMults []int) *float64 {
	if viewerMult == nil || len(leagueMults) == 0 {
		return nil
	}
	sum := 0
	for _, m := range leagueMults {
		sum += pointsDelta * m
	}
	avg := float64(sum) / float64(len(leagueMults))
	impact := float64(pointsDelta*(*viewerMult)) - avg
	rounded := math.Round(impact*10) / 10
	return &rounded
}
