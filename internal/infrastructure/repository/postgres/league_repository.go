package postgres

import (
	"context"
	"fmt"

	"github.com/fplpulse/fplpulse/internal/domain/league"
	qb "github.com/fplpulse/fplpulse/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

const (
	transferDirectionIn  = "in"
	transferDirectionOut = "out"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	query, args, err := qb.Select("league_id", "league_name").From("league_standings").
		Where(qb.Eq("league_id", leagueID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueInfoRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return league.League{
		ID:   row.LeagueID,
		Name: row.LeagueName,
	}, true, nil
}

func (r *LeagueRepository) Standings(ctx context.Context, leagueID int64) ([]league.Standing, error) {
	query, args, err := qb.Select("*").From("league_standings").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("rank", "manager_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select league standings query: %w", err)
	}

	var rows []leagueStandingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select league standings: %w", err)
	}

	out := make([]league.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, league.Standing{
			ManagerID:      row.ManagerID,
			ManagerName:    row.ManagerName,
			TeamName:       row.TeamName,
			Rank:           row.Rank,
			LastRank:       row.LastRank,
			TotalPoints:    row.TotalPoints,
			GameweekPoints: row.GameweekPoints,
		})
	}

	return out, nil
}

func (r *LeagueRepository) TeamValueHistory(ctx context.Context, leagueID int64) ([]league.ValuePoint, error) {
	query, args, err := qb.Select("tvh.manager_id", "ls.manager_name", "tvh.gameweek", "tvh.team_value").
		From("team_value_history tvh JOIN league_standings ls ON ls.manager_id = tvh.manager_id").
		Where(qb.Eq("ls.league_id", leagueID)).
		OrderBy("tvh.gameweek", "tvh.manager_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select league team value history query: %w", err)
	}

	var rows []leagueValuePointRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select league team value history: %w", err)
	}

	out := make([]league.ValuePoint, 0, len(rows))
	for _, row := range rows {
		out = append(out, league.ValuePoint{
			ManagerID:   row.ManagerID,
			ManagerName: row.ManagerName,
			Gameweek:    row.Gameweek,
			TeamValue:   row.TeamValue,
		})
	}

	return out, nil
}

func (r *LeagueRepository) TopTransfers(ctx context.Context, leagueID int64, gw int) (league.TransferSummary, error) {
	in, err := r.transferCounts(ctx, leagueID, gw, transferDirectionIn)
	if err != nil {
		return league.TransferSummary{}, err
	}

	out, err := r.transferCounts(ctx, leagueID, gw, transferDirectionOut)
	if err != nil {
		return league.TransferSummary{}, err
	}

	return league.TransferSummary{In: in, Out: out}, nil
}

func (r *LeagueRepository) transferCounts(ctx context.Context, leagueID int64, gw int, direction string) ([]league.TransferCount, error) {
	query, args, err := qb.Select("player_id", "web_name", "transfer_count").
		From("league_transfer_counts").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("gameweek", gw),
			qb.Eq("direction", direction),
		).
		OrderBy("transfer_count DESC", "web_name").
		Limit(league.TopTransfersLimit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select league transfer counts query: %w", err)
	}

	var rows []transferCountRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select league transfer counts: %w", err)
	}

	out := make([]league.TransferCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, league.TransferCount{
			PlayerID: row.PlayerID,
			WebName:  row.WebName,
			Count:    row.TransferCount,
		})
	}

	return out, nil
}

func (r *LeagueRepository) CaptainCounts(ctx context.Context, leagueID int64, gw int) ([]league.CaptainCount, error) {
	query, args, err := qb.Select("mp.player_id", "p.web_name", "COUNT(1) AS captain_count").
		From("manager_picks mp JOIN league_standings ls ON ls.manager_id = mp.manager_id JOIN players p ON p.id = mp.player_id").
		Where(
			qb.Eq("ls.league_id", leagueID),
			qb.Eq("mp.gameweek", gw),
			qb.Eq("mp.is_captain", true),
		).
		GroupBy("mp.player_id", "p.web_name").
		OrderBy("captain_count DESC", "p.web_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select league captain counts query: %w", err)
	}

	var rows []captainCountRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select league captain counts: %w", err)
	}

	out := make([]league.CaptainCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, league.CaptainCount{
			PlayerID: row.PlayerID,
			WebName:  row.WebName,
			Count:    row.CaptainCount,
		})
	}

	return out, nil
}

type leagueInfoRow struct {
	LeagueID   int64  `db:"league_id"`
	LeagueName string `db:"league_name"`
}

type leagueValuePointRow struct {
	ManagerID   int64   `db:"manager_id"`
	ManagerName string  `db:"manager_name"`
	Gameweek    int     `db:"gameweek"`
	TeamValue   float64 `db:"team_value"`
}

type transferCountRow struct {
	PlayerID      int64  `db:"player_id"`
	WebName       string `db:"web_name"`
	TransferCount int    `db:"transfer_count"`
}

type captainCountRow struct {
	PlayerID     int64  `db:"player_id"`
	WebName      string `db:"web_name"`
	CaptainCount int    `db:"captain_count"`
}
