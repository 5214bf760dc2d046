package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, leagueID int64) (League, bool, error)
	Standings(ctx context.Context, leagueID int64) ([]Standing, error)
	TeamValueHistory(ctx context.Context, leagueID int64) ([]ValuePoint, error)
	TopTransfers(ctx context.Context, leagueID int64, gw int) (TransferSummary, error)
	CaptainCounts(ctx context.Context, leagueID int64, gw int) ([]CaptainCount, error)
}
