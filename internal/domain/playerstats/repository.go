package playerstats

import "context"

// Repository exposes per-fixture stat reads.
//
// ListByGameweek returns every row of the gameweek; ListByFixture narrows
// to one match. LastMeetingStats serves the head-to-head view: rows of the
// first-half reverse fixtures for the given second-half gameweek.
type Repository interface {
	ListByGameweek(ctx context.Context, gw int) ([]Row, error)
	ListByFixture(ctx context.Context, fixtureID int64) ([]Row, error)
	LastMeetingStats(ctx context.Context, gw int) ([]Row, error)
}
