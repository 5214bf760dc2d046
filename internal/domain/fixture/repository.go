package fixture

import "context"

// Repository exposes fixture read operations.
//
// LastMeetings returns, for each team pair playing in the target gameweek,
// the finished first-half meeting of the same pair, when one exists. It is
// only meaningful for second-half gameweeks; callers gate on that.
type Repository interface {
	ListByGameweek(ctx context.Context, gw int) ([]Fixture, error)
	LastMeetings(ctx context.Context, gw int) ([]Fixture, error)
}
