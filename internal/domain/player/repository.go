package player

import "context"

// Repository describes player directory reads needed by use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByIDs(ctx context.Context, playerIDs []int64) ([]Player, error)
}
