package postgres

import (
	"context"
	"fmt"

	"github.com/fplpulse/fplpulse/internal/domain/feed"
	qb "github.com/fplpulse/fplpulse/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type FeedRepository struct {
	db *sqlx.DB
}

func NewFeedRepository(db *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

func (r *FeedRepository) ListByGameweek(ctx context.Context, gw int) ([]feed.Event, error) {
	query, args, err := qb.Select("*").From("feed_events").
		Where(qb.Eq("gameweek", gw)).
		OrderBy("occurred_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select feed events query: %w", err)
	}

	var rows []feedEventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select feed events: %w", err)
	}

	out := make([]feed.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, feed.Event{
			ID:               row.ID,
			Gameweek:         row.Gameweek,
			PlayerID:         row.PlayerID,
			FixtureID:        row.FixtureID,
			Type:             feed.EventType(row.EventType),
			PointsDelta:      row.PointsDelta,
			TotalPointsAfter: row.TotalPointsAfter,
			OccurredAt:       row.OccurredAt,
			FromBonus:        nullInt64ToIntPtr(row.FromBonus),
			ToBonus:          nullInt64ToIntPtr(row.ToBonus),
			Reversed:         row.Reversed,
		})
	}

	return out, nil
}
