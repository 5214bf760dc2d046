package postgres

import (
	"context"
	"fmt"

	"github.com/fplpulse/fplpulse/internal/domain/pick"
	qb "github.com/fplpulse/fplpulse/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type PickRepository struct {
	db *sqlx.DB
}

func NewPickRepository(db *sqlx.DB) *PickRepository {
	return &PickRepository{db: db}
}

func (r *PickRepository) ManagerPicks(ctx context.Context, managerID int64, gw int) ([]pick.Pick, error) {
	query, args, err := qb.Select("*").From("manager_picks").
		Where(
			qb.Eq("manager_id", managerID),
			qb.Eq("gameweek", gw),
		).
		OrderBy("position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select manager picks query: %w", err)
	}

	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select manager picks: %w", err)
	}

	return picksFromRows(rows), nil
}

func (r *PickRepository) LeaguePicks(ctx context.Context, leagueID int64, gw int) (pick.LeaguePicks, error) {
	query, args, err := qb.Select("mp.*").
		From("manager_picks mp JOIN league_standings ls ON ls.manager_id = mp.manager_id").
		Where(
			qb.Eq("ls.league_id", leagueID),
			qb.Eq("mp.gameweek", gw),
		).
		OrderBy("mp.manager_id", "mp.position").
		ToSQL()
	if err != nil {
		return pick.LeaguePicks{}, fmt.Errorf("build select league picks query: %w", err)
	}

	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return pick.LeaguePicks{}, fmt.Errorf("select league picks: %w", err)
	}

	countQuery, countArgs, err := qb.Select("COUNT(1)").From("league_standings").
		Where(qb.Eq("league_id", leagueID)).
		ToSQL()
	if err != nil {
		return pick.LeaguePicks{}, fmt.Errorf("build count league managers query: %w", err)
	}

	var managerCount int
	if err := r.db.GetContext(ctx, &managerCount, countQuery, countArgs...); err != nil {
		return pick.LeaguePicks{}, fmt.Errorf("count league managers: %w", err)
	}

	return pick.LeaguePicks{
		Picks:        picksFromRows(rows),
		ManagerCount: managerCount,
	}, nil
}

func picksFromRows(rows []pickTableModel) []pick.Pick {
	out := make([]pick.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pick.Pick{
			ManagerID:        row.ManagerID,
			Gameweek:         row.Gameweek,
			PlayerID:         row.PlayerID,
			Position:         row.Position,
			Multiplier:       row.Multiplier,
			IsCaptain:        row.IsCaptain,
			IsViceCaptain:    row.IsViceCaptain,
			AutoSubbedIn:     row.AutoSubbedIn,
			AutoSubbedOut:    row.AutoSubbedOut,
			ReplacedPlayerID: nullInt64ToInt64(row.ReplacedPlayerID),
		})
	}
	return out
}
