package postgres

import (
	"database/sql"
	"time"
)

type feedEventTableModel struct {
	ID               int64         `db:"id"`
	Gameweek         int           `db:"gameweek"`
	PlayerID         int64         `db:"player_id"`
	FixtureID        int64         `db:"fixture_id"`
	EventType        string        `db:"event_type"`
	PointsDelta      int           `db:"points_delta"`
	TotalPointsAfter int           `db:"total_points_after"`
	OccurredAt       time.Time     `db:"occurred_at"`
	FromBonus        sql.NullInt64 `db:"from_bonus"`
	ToBonus          sql.NullInt64 `db:"to_bonus"`
	Reversed         bool          `db:"reversed"`
	CreatedAt        time.Time     `db:"created_at"`
}
