package postgres

import (
	"context"
	"fmt"

	"github.com/fplpulse/fplpulse/internal/domain/chip"
	qb "github.com/fplpulse/fplpulse/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type ChipRepository struct {
	db *sqlx.DB
}

func NewChipRepository(db *sqlx.DB) *ChipRepository {
	return &ChipRepository{db: db}
}

func (r *ChipRepository) ManagerPlays(ctx context.Context, managerID int64) ([]chip.Play, error) {
	query, args, err := qb.Select("*").From("manager_chips").
		Where(qb.Eq("manager_id", managerID)).
		OrderBy("gameweek").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select manager chips query: %w", err)
	}

	var rows []chipTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select manager chips: %w", err)
	}

	out := make([]chip.Play, 0, len(rows))
	for _, row := range rows {
		out = append(out, chip.Play{
			Name:     row.ChipName,
			Gameweek: row.Gameweek,
		})
	}

	return out, nil
}

func (r *ChipRepository) LeaguePlays(ctx context.Context, leagueID int64, gw int) ([]chip.LeaguePlay, error) {
	query, args, err := qb.Select("mc.manager_id", "ls.manager_name", "mc.chip_name", "mc.gameweek").
		From("manager_chips mc JOIN league_standings ls ON ls.manager_id = mc.manager_id").
		Where(
			qb.Eq("ls.league_id", leagueID),
			qb.Eq("mc.gameweek", gw),
		).
		OrderBy("ls.manager_name", "mc.manager_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select league chips query: %w", err)
	}

	var rows []leagueChipRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select league chips: %w", err)
	}

	out := make([]chip.LeaguePlay, 0, len(rows))
	for _, row := range rows {
		out = append(out, chip.LeaguePlay{
			ManagerID:   row.ManagerID,
			ManagerName: row.ManagerName,
			Name:        row.ChipName,
			Gameweek:    row.Gameweek,
		})
	}

	return out, nil
}

type leagueChipRow struct {
	ManagerID   int64  `db:"manager_id"`
	ManagerName string `db:"manager_name"`
	ChipName    string `db:"chip_name"`
	Gameweek    int    `db:"gameweek"`
}
