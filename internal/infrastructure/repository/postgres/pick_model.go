package postgres

import (
	"database/sql"
	"time"
)

type pickTableModel struct {
	ManagerID        int64         `db:"manager_id"`
	Gameweek         int           `db:"gameweek"`
	PlayerID         int64         `db:"player_id"`
	Position         int           `db:"position"`
	Multiplier       int           `db:"multiplier"`
	IsCaptain        bool          `db:"is_captain"`
	IsViceCaptain    bool          `db:"is_vice_captain"`
	AutoSubbedIn     bool          `db:"auto_subbed_in"`
	AutoSubbedOut    bool          `db:"auto_subbed_out"`
	ReplacedPlayerID sql.NullInt64 `db:"replaced_player_id"`
	CreatedAt        time.Time     `db:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at"`
}
