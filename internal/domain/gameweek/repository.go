package gameweek

import "context"

// Repository exposes gameweek read operations. Current reports false when
// the backend has not materialized a current gameweek yet.
type Repository interface {
	Current(ctx context.Context) (Gameweek, bool, error)
	RefreshEvents(ctx context.Context) ([]RefreshEvent, error)
}
