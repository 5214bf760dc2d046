package postgres

import (
	"context"
	"fmt"

	"github.com/fplpulse/fplpulse/internal/domain/gameweek"
	qb "github.com/fplpulse/fplpulse/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type GameweekRepository struct {
	db *sqlx.DB
}

func NewGameweekRepository(db *sqlx.DB) *GameweekRepository {
	return &GameweekRepository{db: db}
}

func (r *GameweekRepository) Current(ctx context.Context) (gameweek.Gameweek, bool, error) {
	query, args, err := qb.Select("*").From("gameweeks").
		Where(qb.Eq("is_current", true)).
		OrderBy("id DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return gameweek.Gameweek{}, false, fmt.Errorf("build get current gameweek query: %w", err)
	}

	var row gameweekTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return gameweek.Gameweek{}, false, nil
		}
		return gameweek.Gameweek{}, false, fmt.Errorf("get current gameweek: %w", err)
	}

	return gameweek.Gameweek{
		ID:          row.ID,
		IsCurrent:   row.IsCurrent,
		DataChecked: row.DataChecked,
		DeadlineAt:  row.DeadlineAt,
	}, true, nil
}

func (r *GameweekRepository) RefreshEvents(ctx context.Context) ([]gameweek.RefreshEvent, error) {
	query, args, err := qb.Select("DISTINCT ON (kind) kind", "occurred_at").
		From("refresh_events").
		OrderBy("kind", "occurred_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select refresh events query: %w", err)
	}

	var rows []refreshEventRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select refresh events: %w", err)
	}

	out := make([]gameweek.RefreshEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameweek.RefreshEvent{
			Kind:       row.Kind,
			OccurredAt: row.OccurredAt,
		})
	}

	return out, nil
}
