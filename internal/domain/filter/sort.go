package filter

// ColumnKind tells Toggle which direction a freshly selected column
// starts in.
type ColumnKind int

const (
	ColumnNumeric ColumnKind = iota
	ColumnString
)

// SortState tracks a table's active sort column and direction. Tables
// break remaining ties by name ascending regardless of this state.
type SortState struct {
	Column     string
	Descending bool
}

// Toggle returns the state after a header click: the active column
// flips direction, a new numeric column starts descending, a new
// string column starts ascending.
func (s SortState) Toggle(column string, kind ColumnKind) SortState {
	if s.Column == column {
		return SortState{Column: column, Descending: !s.Descending}
	}
	return SortState{Column: column, Descending: kind == ColumnNumeric}
}
