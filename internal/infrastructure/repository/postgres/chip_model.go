package postgres

import "time"

type chipTableModel struct {
	ManagerID int64     `db:"manager_id"`
	ChipName  string    `db:"chip_name"`
	Gameweek  int       `db:"gameweek"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
