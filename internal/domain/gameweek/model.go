package gameweek

import "time"

// SecondHalfStart is the first gameweek of the season's second half.
// Chip slots, the chips pager default, and last-meeting lookups all key
// off this boundary.
const SecondHalfStart = 20

// SeasonWeeks is the number of gameweeks in a season.
const SeasonWeeks = 38

// Gameweek is the snapshot of one scoring round as the backend reports it.
type Gameweek struct {
	ID          int
	IsCurrent   bool
	DataChecked bool
	DeadlineAt  time.Time
}

func IsSecondHalf(gw int) bool {
	return gw >= SecondHalfStart
}

const (
	RefreshFast = "fast"
	RefreshSlow = "slow"
)

// RefreshEvent records when the upstream aggregation last ran.
type RefreshEvent struct {
	Kind       string
	OccurredAt time.Time
}
