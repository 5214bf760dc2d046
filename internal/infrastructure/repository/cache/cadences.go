package cache

import (
	"time"

	"github.com/fplpulse/fplpulse/internal/platform/query"
)

// Cadences holds the freshness and poll intervals of the query catalog.
// The live/idle pairs resolve against the refresh mode: freshness at
// lookup time, poll interval at scan time.
type Cadences struct {
	Standard     time.Duration
	FixturesLive time.Duration
	FixturesIdle time.Duration
	StatsLive    time.Duration
	StatsIdle    time.Duration
	BoardsLive   time.Duration
	BoardsIdle   time.Duration
	Feed         time.Duration
	Directory    time.Duration
	Refresh      time.Duration
	Meetings     time.Duration
}

func DefaultCadences() Cadences {
	return Cadences{
		Standard:     time.Minute,
		FixturesLive: 10 * time.Second,
		FixturesIdle: 30 * time.Second,
		StatsLive:    20 * time.Second,
		StatsIdle:    time.Minute,
		BoardsLive:   25 * time.Second,
		BoardsIdle:   time.Minute,
		Feed:         30 * time.Second,
		Directory:    5 * time.Minute,
		Refresh:      30 * time.Second,
		Meetings:     5 * time.Minute,
	}
}

func (c Cadences) standard() query.Options {
	return query.Options{FreshFor: c.Standard, PollEvery: c.Standard}
}

func (c Cadences) modal(live, idle time.Duration, isLive bool) query.Options {
	fresh := idle
	if isLive {
		fresh = live
	}
	return query.Options{FreshFor: fresh, PollEvery: live, PollIdle: idle}
}

// static keys are fresh-only; the poller never refetches them.
func (c Cadences) static(freshFor time.Duration) query.Options {
	return query.Options{FreshFor: freshFor}
}
