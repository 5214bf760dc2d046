package view

import (
	"math"
	"strconv"
	"strings"

	"github.com/fplpulse/fplpulse/internal/domain/team"
)

// EmDash renders any value the backend has not produced yet. Domain
// layers carry explicit nil pointers; the substitution happens only
// here.
const EmDash = "—"

// FormatNumber renders a count compactly: millions and thousands carry
// one decimal, smaller values pass through, nil renders the em-dash.
func FormatNumber(v *float64) string {
	if v == nil {
		return EmDash
	}
	switch abs := math.Abs(*v); {
	case abs >= 1_000_000:
		return strconv.FormatFloat(*v/1_000_000, 'f', 1, 64) + "M"
	case abs >= 1_000:
		return strconv.FormatFloat(*v/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatFloat(*v, 'f', -1, 64)
	}
}

// FormatNumberTwoDecimals is the gameweek-rank variant of FormatNumber:
// the same scale suffixes with two decimals of precision.
func FormatNumberTwoDecimals(v *float64) string {
	if v == nil {
		return EmDash
	}
	switch abs := math.Abs(*v); {
	case abs >= 1_000_000:
		return strconv.FormatFloat(*v/1_000_000, 'f', 2, 64) + "M"
	case abs >= 1_000:
		return strconv.FormatFloat(*v/1_000, 'f', 2, 64) + "K"
	default:
		return strconv.FormatFloat(*v, 'f', -1, 64)
	}
}

// FormatInt64 renders an optional integer count through FormatNumber.
func FormatInt64(v *int64) string {
	if v == nil {
		return EmDash
	}
	f := float64(*v)
	return FormatNumber(&f)
}

// FormatPrice renders a squad or player value in pounds. Values above
// 200 arrive raw and scale down to millions; anything at or below is
// already in millions. A whole number drops its ".0".
func FormatPrice(v *float64) string {
	if v == nil {
		return EmDash
	}
	millions := *v
	if millions > 200 {
		millions /= 1_000_000
	}
	s := strconv.FormatFloat(millions, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return "£" + s + "M"
}

// AbbreviateTeamName shortens a club name for tight table cells. The
// full name stays available to tooltips.
func AbbreviateTeamName(name string) string {
	return team.Abbreviate(name)
}
