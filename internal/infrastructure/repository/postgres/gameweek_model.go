package postgres

import "time"

type gameweekTableModel struct {
	ID          int       `db:"id"`
	IsCurrent   bool      `db:"is_current"`
	DataChecked bool      `db:"data_checked"`
	DeadlineAt  time.Time `db:"deadline_at"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type refreshEventRow struct {
	Kind       string    `db:"kind"`
	OccurredAt time.Time `db:"occurred_at"`
}
