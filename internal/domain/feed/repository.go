package feed

import "context"

// Repository describes feed persistence needs from use cases. The
// backend orders events by occurredAt descending then ID descending;
// display regrouping by kickoff happens in SortEvents.
type Repository interface {
	ListByGameweek(ctx context.Context, gw int) ([]Event, error)
}
