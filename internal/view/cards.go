package view

// CardSize is the bento grid footprint of a home card.
type CardSize string

const (
	Size1x1 CardSize = "1x1"
	Size2x1 CardSize = "2x1"
	Size2x3 CardSize = "2x3"
	Size2x4 CardSize = "2x4"
)

// Card ids recognized by the home grid.
const (
	CardOverallRank = "overall-rank"
	CardGWRank      = "gw-rank"
	CardTotalPoints = "total-points"
	CardGWPoints    = "gw-points"
	CardTeamValue   = "team-value"
	CardChips       = "chips"
	CardTransfers   = "transfers"
	CardLeagueRank  = "league-rank"
	CardCaptain     = "captain"
	CardSettings    = "settings"
)

// CardDescriptor is the renderer contract for one home card. Value,
// Subtext and Change are pre-formatted; renderers may reorder cards but
// never invent values.
type CardDescriptor struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Value       string   `json:"value,omitempty"`
	Subtext     string   `json:"subtext,omitempty"`
	Change      *int     `json:"change,omitempty"`
	IsChart     bool     `json:"is_chart,omitempty"`
	IsChips     bool     `json:"is_chips,omitempty"`
	IsSettings  bool     `json:"is_settings,omitempty"`
	IsTransfers bool     `json:"is_transfers,omitempty"`
	Size        CardSize `json:"size"`
}

// cardCatalog fixes each card's label, grid footprint and render flags.
// The slice order is the default grid order.
var cardCatalog = []CardDescriptor{
	{ID: CardOverallRank, Label: "Overall Rank", Size: Size2x1, IsChart: true},
	{ID: CardGWRank, Label: "GW Rank", Size: Size1x1},
	{ID: CardTotalPoints, Label: "Total Points", Size: Size1x1},
	{ID: CardGWPoints, Label: "GW Points", Size: Size1x1},
	{ID: CardTeamValue, Label: "Team Value", Size: Size2x1, IsChart: true},
	{ID: CardChips, Label: "Chips", Size: Size2x4, IsChips: true},
	{ID: CardTransfers, Label: "Transfers", Size: Size2x1, IsTransfers: true},
	{ID: CardLeagueRank, Label: "League Rank", Size: Size2x3},
	{ID: CardCaptain, Label: "Captain", Size: Size1x1},
	{ID: CardSettings, Label: "Settings", Size: Size1x1, IsSettings: true},
}

// DefaultCardOrder returns the card ids in default grid order.
func DefaultCardOrder() []string {
	out := make([]string, 0, len(cardCatalog))
	for _, c := range cardCatalog {
		out = append(out, c.ID)
	}
	return out
}

// CardTemplate returns the empty descriptor for a card id: label, size
// and flags set, values blank for the caller to fill.
func CardTemplate(id string) (CardDescriptor, bool) {
	for _, c := range cardCatalog {
		if c.ID == id {
			return c, true
		}
	}
	return CardDescriptor{}, false
}

// KnownCard reports whether the grid recognizes the card id.
func KnownCard(id string) bool {
	_, ok := CardTemplate(id)
	return ok
}
