package viewstate

import "fmt"

// Subpage names one gameweek subpage in pager order.
type Subpage string

const (
	SubpageMatches Subpage = "matches"
	SubpageBonus   Subpage = "bonus"
	SubpageDefcon  Subpage = "defcon"
	SubpageFeed    Subpage = "feed"
)

// subpages fixes the pager order; each panel occupies a quarter of the
// sliding strip.
var subpages = []Subpage{SubpageMatches, SubpageBonus, SubpageDefcon, SubpageFeed}

// panelWidthPercent is one panel's share of the four-panel strip.
const panelWidthPercent = 25.0

// Subpages returns the subpages in pager order.
func Subpages() []Subpage {
	out := make([]Subpage, len(subpages))
	copy(out, subpages)
	return out
}

// ParseSubpage resolves a ?view= value. Empty selects matches.
func ParseSubpage(value string) (Subpage, error) {
	if value == "" {
		return SubpageMatches, nil
	}
	for _, s := range subpages {
		if string(s) == value {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", value)
}

// NavState positions the subpage pager for the renderer: the active
// panel's index and the strip translation that brings it into view.
type NavState struct {
	Subpages   []Subpage `json:"subpages"`
	Active     Subpage   `json:"active"`
	Index      int       `json:"index"`
	TranslateX float64   `json:"translate_x"`
}

// Nav builds the pager state for one subpage.
func Nav(active Subpage) NavState {
	index := 0
	for i, s := range subpages {
		if s == active {
			index = i
			break
		}
	}
	return NavState{
		Subpages:   Subpages(),
		Active:     subpages[index],
		Index:      index,
		TranslateX: -panelWidthPercent * float64(index),
	}
}
