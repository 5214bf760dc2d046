package playerstats

import (
	"sort"

	"github.com/fplpulse/fplpulse/internal/domain/stat"
)

const topSize = 10

// Entry is one ranked line of a gameweek top-10 board.
type Entry struct {
	Key       string
	PlayerID  int64
	FixtureID int64
	Value     float64
}

// TopByStat ranks every per-fixture row of the gameweek for each
// dictionary stat and keeps the ten best per stat. Direction comes from
// the dictionary (descending everywhere except expected goals conceded).
// Ties break by web name ascending, then player id, then fixture id, so
// the boards are stable across refetches.
func TopByStat(rows []Row, webNames map[int64]string) map[stat.Key][]Entry {
	out := make(map[stat.Key][]Entry, len(stat.Dictionary()))

	for _, def := range stat.Dictionary() {
		ranked := make([]Row, len(rows))
		copy(ranked, rows)

		key := def.Key
		sort.SliceStable(ranked, func(i, j int) bool {
			vi, vj := ranked[i].StatValue(key), ranked[j].StatValue(key)
			if vi != vj {
				if def.Ascending {
					return vi < vj
				}
				return vi > vj
			}
			ni, nj := webNames[ranked[i].PlayerID], webNames[ranked[j].PlayerID]
			if ni != nj {
				return ni < nj
			}
			if ranked[i].PlayerID != ranked[j].PlayerID {
				return ranked[i].PlayerID < ranked[j].PlayerID
			}
			return ranked[i].FixtureID < ranked[j].FixtureID
		})

		limit := topSize
		if len(ranked) < limit {
			limit = len(ranked)
		}

		entries := make([]Entry, 0, limit)
		for _, row := range ranked[:limit] {
			entries = append(entries, Entry{
				Key:       row.CompositeKey(),
				PlayerID:  row.PlayerID,
				FixtureID: row.FixtureID,
				Value:     row.StatValue(key),
			})
		}
		out[key] = entries
	}

	return out
}

// Award is one displayed bonus line for a fixture.
type Award struct {
	PlayerID  int64
	FixtureID int64
	Bonus     int
	Confirmed bool
}

// SortForBonus orders one fixture's rows for bonus display: BPS, goals,
// assists and clean sheets each descending, then web name ascending.
func SortForBonus(rows []Row, webNames map[int64]string) []Row {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BPS != sorted[j].BPS {
			return sorted[i].BPS > sorted[j].BPS
		}
		if sorted[i].Goals != sorted[j].Goals {
			return sorted[i].Goals > sorted[j].Goals
		}
		if sorted[i].Assists != sorted[j].Assists {
			return sorted[i].Assists > sorted[j].Assists
		}
		if sorted[i].CleanSheets != sorted[j].CleanSheets {
			return sorted[i].CleanSheets > sorted[j].CleanSheets
		}
		return webNames[sorted[i].PlayerID] < webNames[sorted[j].PlayerID]
	})

	return sorted
}

// BonusView selects the bonus lines shown for one fixture. Confirmed
// awards in {1,2,3} win outright; otherwise the top three of the bonus
// sort carry provisional 3, 2 and 1.
func BonusView(rows []Row, webNames map[int64]string) []Award {
	confirmed := make([]Row, 0, 3)
	for _, row := range rows {
		if row.BonusStatus == BonusConfirmed && row.Bonus >= 1 && row.Bonus <= 3 {
			confirmed = append(confirmed, row)
		}
	}

	if len(confirmed) > 0 {
		sort.SliceStable(confirmed, func(i, j int) bool {
			if confirmed[i].Bonus != confirmed[j].Bonus {
				return confirmed[i].Bonus > confirmed[j].Bonus
			}
			return webNames[confirmed[i].PlayerID] < webNames[confirmed[j].PlayerID]
		})

		awards := make([]Award, 0, len(confirmed))
		for _, row := range confirmed {
			awards = append(awards, Award{
				PlayerID:  row.PlayerID,
				FixtureID: row.FixtureID,
				Bonus:     row.Bonus,
				Confirmed: true,
			})
		}
		return awards
	}

	sorted := SortForBonus(rows, webNames)
	limit := 3
	if len(sorted) < limit {
		limit = len(sorted)
	}

	awards := make([]Award, 0, limit)
	for i, row := range sorted[:limit] {
		awards = append(awards, Award{
			PlayerID:  row.PlayerID,
			FixtureID: row.FixtureID,
			Bonus:     3 - i,
		})
	}
	return awards
}
