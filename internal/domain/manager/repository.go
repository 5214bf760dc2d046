package manager

import (
	"context"

	"github.com/fplpulse/fplpulse/internal/domain/stat"
)

// Repository exposes manager rollup reads. History methods return rows
// ordered by gameweek ascending; the backend owns that ordering.
type Repository interface {
	Summary(ctx context.Context, managerID int64, gw int) (Summary, bool, error)
	History(ctx context.Context, managerID int64) ([]HistoryPoint, error)
	TeamValueHistory(ctx context.Context, managerID int64) ([]ValuePoint, error)
	OwnedPerformance(ctx context.Context, managerID int64, window PerformanceWindow, key stat.Key) ([]PerformancePoint, error)
	TransferImpacts(ctx context.Context, managerID int64, gw int) ([]TransferImpact, error)
}
