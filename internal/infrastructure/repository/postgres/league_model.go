package postgres

import "time"

type leagueStandingTableModel struct {
	LeagueID       int64     `db:"league_id"`
	LeagueName     string    `db:"league_name"`
	ManagerID      int64     `db:"manager_id"`
	ManagerName    string    `db:"manager_name"`
	TeamName       string    `db:"team_name"`
	Rank           int       `db:"rank"`
	LastRank       int       `db:"last_rank"`
	TotalPoints    int       `db:"total_points"`
	GameweekPoints int       `db:"gameweek_points"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type leagueTransferCountTableModel struct {
	LeagueID      int64     `db:"league_id"`
	Gameweek      int       `db:"gameweek"`
	PlayerID      int64     `db:"player_id"`
	WebName       string    `db:"web_name"`
	Direction     string    `db:"direction"`
	TransferCount int       `db:"transfer_count"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
