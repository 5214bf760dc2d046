package team

import "fmt"

// Team is season-static reference data for one club.
type Team struct {
	ID        int64
	Name      string
	ShortName string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be greater than zero")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.ShortName == "" {
		return fmt.Errorf("team short name is required")
	}

	return nil
}

const abbreviateLimit = 10

// Abbreviate shortens a club name for tight table cells: names longer than
// ten characters become the first nine plus an ellipsis. Callers keep the
// full name around for tooltips.
func Abbreviate(name string) string {
	runes := []rune(name)
	if len(runes) <= abbreviateLimit {
		return name
	}

	return string(runes[:abbreviateLimit-1]) + "…"
}
