package stat

// Key names one entry of the fixed gameweek stat dictionary.
type Key string

const (
	KeyPoints                Key = "pts"
	KeyGoals                 Key = "goals"
	KeyAssists               Key = "assists"
	KeyCleanSheets           Key = "clean_sheets"
	KeySaves                 Key = "saves"
	KeyBPS                   Key = "bps"
	KeyBonus                 Key = "bonus"
	KeyDefensiveContribution Key = "defensive_contribution"
	KeyYellowCards           Key = "yellow_cards"
	KeyRedCards              Key = "red_cards"
	KeyExpectedGoals         Key = "xG"
	KeyExpectedAssists       Key = "xA"
	KeyExpectedInvolvements  Key = "xGI"
	KeyExpectedConceded      Key = "xGC"
)

// Definition describes how one stat ranks and renders.
type Definition struct {
	Key       Key
	Label     string
	Ascending bool
}

// dictionary order is the display order of the top-10 boards.
var dictionary = []Definition{
	{Key: KeyPoints, Label: "Points"},
	{Key: KeyGoals, Label: "Goals"},
	{Key: KeyAssists, Label: "Assists"},
	{Key: KeyCleanSheets, Label: "Clean Sheets"},
	{Key: KeySaves, Label: "Saves"},
	{Key: KeyBPS, Label: "BPS"},
	{Key: KeyBonus, Label: "Bonus"},
	{Key: KeyDefensiveContribution, Label: "Defensive Contribution"},
	{Key: KeyYellowCards, Label: "Yellow Cards"},
	{Key: KeyRedCards, Label: "Red Cards"},
	{Key: KeyExpectedGoals, Label: "xG"},
	{Key: KeyExpectedAssists, Label: "xA"},
	{Key: KeyExpectedInvolvements, Label: "xGI"},
	{Key: KeyExpectedConceded, Label: "xGC", Ascending: true},
}

// Dictionary returns the fixed stat dictionary in display order.
func Dictionary() []Definition {
	out := make([]Definition, len(dictionary))
	copy(out, dictionary)
	return out
}

func (k Key) Valid() bool {
	for _, def := range dictionary {
		if def.Key == k {
			return true
		}
	}
	return false
}

// Ascending reports whether lower values rank better; only expected goals
// conceded sorts that way.
func (k Key) Ascending() bool {
	for _, def := range dictionary {
		if def.Key == k {
			return def.Ascending
		}
	}
	return false
}

func (k Key) Label() string {
	for _, def := range dictionary {
		if def.Key == k {
			return def.Label
		}
	}
	return string(k)
}
