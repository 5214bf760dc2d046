package postgres

import (
	"context"
	"fmt"

	"github.com/fplpulse/fplpulse/internal/domain/manager"
	"github.com/fplpulse/fplpulse/internal/domain/stat"
	qb "github.com/fplpulse/fplpulse/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type ManagerRepository struct {
	db *sqlx.DB
}

func NewManagerRepository(db *sqlx.DB) *ManagerRepository {
	return &ManagerRepository{db: db}
}

func (r *ManagerRepository) Summary(ctx context.Context, managerID int64, gw int) (manager.Summary, bool, error) {
	query, args, err := qb.Select("*").From("manager_summaries").
		Where(
			qb.Eq("manager_id", managerID),
			qb.Eq("gameweek", gw),
		).
		ToSQL()
	if err != nil {
		return manager.Summary{}, false, fmt.Errorf("build get manager summary query: %w", err)
	}

	var row managerSummaryTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return manager.Summary{}, false, nil
		}
		return manager.Summary{}, false, fmt.Errorf("get manager summary: %w", err)
	}

	return manager.Summary{
		ID:             row.ManagerID,
		Name:           row.Name,
		TeamName:       row.TeamName,
		OverallRank:    nullInt64ToInt64Ptr(row.OverallRank),
		GameweekRank:   nullInt64ToInt64Ptr(row.GameweekRank),
		TotalPoints:    row.TotalPoints,
		GameweekPoints: row.GameweekPoints,
		TeamValue:      row.TeamValue,
		BankValue:      row.BankValue,
		TransfersMade:  row.TransfersMade,
		FreeTransfers:  row.FreeTransfers,
		LeagueRank:     nullInt64ToIntPtr(row.LeagueRank),
	}, true, nil
}

func (r *ManagerRepository) History(ctx context.Context, managerID int64) ([]manager.HistoryPoint, error) {
	query, args, err := qb.Select("*").From("manager_history").
		Where(qb.Eq("manager_id", managerID)).
		OrderBy("gameweek").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select manager history query: %w", err)
	}

	var rows []managerHistoryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select manager history: %w", err)
	}

	out := make([]manager.HistoryPoint, 0, len(rows))
	for _, row := range rows {
		out = append(out, manager.HistoryPoint{
			ManagerID:   row.ManagerID,
			Gameweek:    row.Gameweek,
			OverallRank: row.OverallRank,
			ActiveChip:  row.ActiveChip,
		})
	}

	return out, nil
}

func (r *ManagerRepository) TeamValueHistory(ctx context.Context, managerID int64) ([]manager.ValuePoint, error) {
	query, args, err := qb.Select("*").From("team_value_history").
		Where(qb.Eq("manager_id", managerID)).
		OrderBy("gameweek").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team value history query: %w", err)
	}

	var rows []teamValueHistoryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team value history: %w", err)
	}

	out := make([]manager.ValuePoint, 0, len(rows))
	for _, row := range rows {
		out = append(out, manager.ValuePoint{
			ManagerID: row.ManagerID,
			Gameweek:  row.Gameweek,
			TeamValue: row.TeamValue,
		})
	}

	return out, nil
}

// OwnedPerformance samples one stat per gameweek for every player the
// manager has ever picked. Ownership weeks come from manager_picks; stat
// values aggregate per gameweek so double gameweeks fold into one sample.
func (r *ManagerRepository) OwnedPerformance(ctx context.Context, managerID int64, window manager.PerformanceWindow, key stat.Key) ([]manager.PerformancePoint, error) {
	column, err := performanceColumn(key)
	if err != nil {
		return nil, err
	}

	ownedQuery, ownedArgs, err := qb.Select("player_id", "gameweek").From("manager_picks").
		Where(qb.Eq("manager_id", managerID)).
		OrderBy("player_id", "gameweek").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select owned picks query: %w", err)
	}

	var ownedRows []ownedPickRow
	if err := r.db.SelectContext(ctx, &ownedRows, ownedQuery, ownedArgs...); err != nil {
		return nil, fmt.Errorf("select owned picks: %w", err)
	}
	if len(ownedRows) == 0 {
		return nil, nil
	}

	ownedWeeks := make(map[int64]map[int]bool, len(ownedRows))
	playerIDs := make([]int64, 0, len(ownedRows))
	for _, row := range ownedRows {
		weeks, ok := ownedWeeks[row.PlayerID]
		if !ok {
			weeks = make(map[int]bool)
			ownedWeeks[row.PlayerID] = weeks
			playerIDs = append(playerIDs, row.PlayerID)
		}
		weeks[row.Gameweek] = true
	}

	conditions := []qb.Condition{qb.In("player_id", int64Args(playerIDs))}
	if n := window.Gameweeks(); n > 0 {
		current, err := r.currentGameweekID(ctx)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, qb.Expr("gameweek > ?", current-n))
	}

	query, args, err := qb.Select(
		"player_id",
		"gameweek",
		fmt.Sprintf("COALESCE(SUM(%s), 0) AS value", column),
	).From("player_gameweek_stats").
		Where(conditions...).
		GroupBy("player_id", "gameweek").
		OrderBy("player_id", "gameweek").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select owned performance query: %w", err)
	}

	var rows []performanceValueRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select owned performance: %w", err)
	}

	out := make([]manager.PerformancePoint, 0, len(rows))
	for _, row := range rows {
		out = append(out, manager.PerformancePoint{
			PlayerID: row.PlayerID,
			Gameweek: row.Gameweek,
			Value:    row.Value,
			Owned:    ownedWeeks[row.PlayerID][row.Gameweek],
		})
	}

	return out, nil
}

func (r *ManagerRepository) TransferImpacts(ctx context.Context, managerID int64, gw int) ([]manager.TransferImpact, error) {
	query, args, err := qb.Select(
		"t.manager_id",
		"t.gameweek",
		"t.player_in_id",
		"t.player_out_id",
		"t.hit_cost",
		"COALESCE((SELECT SUM(s.total_points) FROM player_gameweek_stats s WHERE s.player_id = t.player_in_id AND s.gameweek = t.gameweek), 0) AS player_in_points",
		"COALESCE((SELECT SUM(s.total_points) FROM player_gameweek_stats s WHERE s.player_id = t.player_out_id AND s.gameweek = t.gameweek), 0) AS player_out_points",
	).From("manager_transfers t").
		Where(
			qb.Eq("t.manager_id", managerID),
			qb.Eq("t.gameweek", gw),
		).
		OrderBy("t.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select transfer impacts query: %w", err)
	}

	var rows []transferImpactRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select transfer impacts: %w", err)
	}

	out := make([]manager.TransferImpact, 0, len(rows))
	for _, row := range rows {
		out = append(out, manager.TransferImpact{
			ManagerID:       row.ManagerID,
			Gameweek:        row.Gameweek,
			PlayerInID:      row.PlayerInID,
			PlayerOutID:     row.PlayerOutID,
			PlayerInPoints:  row.PlayerInPoints,
			PlayerOutPoints: row.PlayerOutPoints,
			HitCost:         row.HitCost,
		})
	}

	return out, nil
}

func (r *ManagerRepository) currentGameweekID(ctx context.Context) (int, error) {
	query, args, err := qb.Select("id").From("gameweeks").
		Where(qb.Eq("is_current", true)).
		OrderBy("id DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build get current gameweek id query: %w", err)
	}

	var id int
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if isNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("get current gameweek id: %w", err)
	}

	return id, nil
}

func performanceColumn(key stat.Key) (string, error) {
	switch key {
	case stat.KeyPoints:
		return "total_points", nil
	case stat.KeyBPS:
		return "bps", nil
	case stat.KeyGoals:
		return "goals", nil
	case stat.KeyAssists:
		return "assists", nil
	default:
		return "", fmt.Errorf("unsupported performance stat key: %s", key)
	}
}

type ownedPickRow struct {
	PlayerID int64 `db:"player_id"`
	Gameweek int   `db:"gameweek"`
}

type performanceValueRow struct {
	PlayerID int64   `db:"player_id"`
	Gameweek int     `db:"gameweek"`
	Value    float64 `db:"value"`
}

type transferImpactRow struct {
	ManagerID       int64 `db:"manager_id"`
	Gameweek        int   `db:"gameweek"`
	PlayerInID      int64 `db:"player_in_id"`
	PlayerOutID     int64 `db:"player_out_id"`
	PlayerInPoints  int   `db:"player_in_points"`
	PlayerOutPoints int   `db:"player_out_points"`
	HitCost         int   `db:"hit_cost"`
}
