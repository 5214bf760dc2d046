package postgres

import (
	"database/sql"
	"time"
)

type managerSummaryTableModel struct {
	ManagerID      int64         `db:"manager_id"`
	Gameweek       int           `db:"gameweek"`
	Name           string        `db:"name"`
	TeamName       string        `db:"team_name"`
	OverallRank    sql.NullInt64 `db:"overall_rank"`
	GameweekRank   sql.NullInt64 `db:"gameweek_rank"`
	TotalPoints    int           `db:"total_points"`
	GameweekPoints int           `db:"gameweek_points"`
	TeamValue      float64       `db:"team_value"`
	BankValue      float64       `db:"bank_value"`
	TransfersMade  int           `db:"transfers_made"`
	FreeTransfers  int           `db:"free_transfers"`
	LeagueRank     sql.NullInt64 `db:"league_rank"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
}

type managerHistoryTableModel struct {
	ManagerID   int64     `db:"manager_id"`
	Gameweek    int       `db:"gameweek"`
	OverallRank int64     `db:"overall_rank"`
	ActiveChip  string    `db:"active_chip"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type teamValueHistoryTableModel struct {
	ManagerID int64     `db:"manager_id"`
	Gameweek  int       `db:"gameweek"`
	TeamValue float64   `db:"team_value"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
