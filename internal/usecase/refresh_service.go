package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fplpulse/fplpulse/internal/domain/gameweek"
	"github.com/fplpulse/fplpulse/internal/platform/query"
)

// RefreshView reports when the upstream aggregation last ran and
// whether the cache is in live cadence.
type RefreshView struct {
	FastRefreshAt *time.Time `json:"fast_refresh_at,omitempty"`
	SlowRefreshAt *time.Time `json:"slow_refresh_at,omitempty"`
	Live          bool       `json:"live"`
	Stale         bool       `json:"stale,omitempty"`
}

type RefreshService struct {
	gameweeks GameweekQueries
	mode      *query.ModeSource
}

func NewRefreshService(gameweeks GameweekQueries, mode *query.ModeSource) *RefreshService {
	return &RefreshService{gameweeks: gameweeks, mode: mode}
}

// GetRefresh returns the newest fast and slow refresh timestamps.
func (s *RefreshService) GetRefresh(ctx context.Context) (RefreshView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefreshService.GetRefresh")
	defer span.End()

	events, err := s.gameweeks.RefreshEvents(ctx)
	if err != nil && len(events) == 0 {
		return RefreshView{}, fmt.Errorf("%w: refresh events: %v", ErrUnavailable, err)
	}

	out := RefreshView{Stale: err != nil}
	if s.mode != nil {
		out.Live = s.mode.Live()
	}
	for _, e := range events {
		at := e.OccurredAt
		switch e.Kind {
		case gameweek.RefreshFast:
			if out.FastRefreshAt == nil || at.After(*out.FastRefreshAt) {
				out.FastRefreshAt = &at
			}
		case gameweek.RefreshSlow:
			if out.SlowRefreshAt == nil || at.After(*out.SlowRefreshAt) {
				out.SlowRefreshAt = &at
			}
		}
	}
	return out, nil
}
