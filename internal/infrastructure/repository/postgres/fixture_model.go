package postgres

import (
	"database/sql"
	"time"
)

type fixtureTableModel struct {
	ID                  int64         `db:"id"`
	Gameweek            int           `db:"gameweek"`
	HomeTeamID          int64         `db:"home_team_id"`
	AwayTeamID          int64         `db:"away_team_id"`
	KickoffAt           time.Time     `db:"kickoff_at"`
	Started             bool          `db:"started"`
	Finished            bool          `db:"finished"`
	FinishedProvisional bool          `db:"finished_provisional"`
	HomeScore           sql.NullInt64 `db:"home_score"`
	AwayScore           sql.NullInt64 `db:"away_score"`
	Stadium             string        `db:"stadium"`
	CreatedAt           time.Time     `db:"created_at"`
	UpdatedAt           time.Time     `db:"updated_at"`
}
