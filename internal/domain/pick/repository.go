package pick

import "context"

// Repository exposes squad pick reads.
type Repository interface {
	ManagerPicks(ctx context.Context, managerID int64, gw int) ([]Pick, error)
	LeaguePicks(ctx context.Context, leagueID int64, gw int) (LeaguePicks, error)
}
