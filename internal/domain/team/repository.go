package team

import "context"

// Repository describes team reference reads needed by use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByIDs(ctx context.Context, teamIDs []int64) ([]Team, error)
}
