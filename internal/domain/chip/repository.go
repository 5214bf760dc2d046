package chip

import "context"

// Repository exposes chip activation reads.
type Repository interface {
	ManagerPlays(ctx context.Context, managerID int64) ([]Play, error)
	LeaguePlays(ctx context.Context, leagueID int64, gw int) ([]LeaguePlay, error)
}
