package view

import (
	"fmt"

	"github.com/fplpulse/fplpulse/internal/domain/feed"
)

var eventTypeLabels = map[feed.EventType]string{
	feed.EventGoal:        "Goal",
	feed.EventAssist:      "Assist",
	feed.EventOwnGoal:     "Own Goal",
	feed.EventPenaltySave: "Penalty Save",
	feed.EventPenaltyMiss: "Penalty Miss",
	feed.EventCleanSheet:  "Clean Sheet",
	feed.EventSaves:       "Saves",
	feed.EventYellowCard:  "Yellow Card",
	feed.EventRedCard:     "Red Card",
	feed.EventBonusChange: "Bonus",
	feed.EventDefcon:      "DEFCON",
	feed.EventMinutes:     "Minutes",
}

// EventTypeLabel renders the feed row's left-hand label. Unknown types
// pass through unchanged rather than erroring; the feed keeps rendering
// when the backend grows a new event kind.
func EventTypeLabel(t feed.EventType) string {
	if label, ok := eventTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// PointsText renders a signed points delta with its unit: "+5 pts",
// "-1 pt". The unit is singular only at magnitude one.
func PointsText(delta int) string {
	return fmt.Sprintf("%+d%s", delta, pointsSuffix(delta))
}

// EventText renders the feed row's right-hand text. Bonus changes show
// the transition when both endpoints are known, otherwise fall back to
// the delta form.
func EventText(e feed.Event) string {
	if e.Type == feed.EventBonusChange {
		if e.FromBonus != nil && e.ToBonus != nil {
			return fmt.Sprintf("%d→%d Bonus", *e.FromBonus, *e.ToBonus)
		}
		return fmt.Sprintf("%+d Bonus%s", e.PointsDelta, pointsSuffix(e.PointsDelta))
	}
	return PointsText(e.PointsDelta)
}

func pointsSuffix(delta int) string {
	if delta == 1 || delta == -1 {
		return " pt"
	}
	return " pts"
}
