package postgres

import "time"

type playerTableModel struct {
	ID                int64     `db:"id"`
	WebName           string    `db:"web_name"`
	Position          int       `db:"position"`
	TeamID            int64     `db:"team_id"`
	CostTenths        int       `db:"cost_tenths"`
	SelectedByPercent float64   `db:"selected_by_percent"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}
