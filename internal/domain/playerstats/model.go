package playerstats

import (
	"fmt"

	"github.com/fplpulse/fplpulse/internal/domain/stat"
)

const (
	BonusProvisional = "provisional"
	BonusConfirmed   = "confirmed"
)

// Row is one (player, fixture) stat line. A double-gameweek player has
// one row per fixture.
type Row struct {
	PlayerID                 int64
	FixtureID                int64
	Gameweek                 int
	TeamID                   int64
	Minutes                  int
	TotalPoints              int
	Goals                    int
	Assists                  int
	CleanSheets              int
	Saves                    int
	BPS                      int
	Bonus                    int
	BonusStatus              string
	ProvisionalBonus         int
	DefensiveContribution    int
	YellowCards              int
	RedCards                 int
	ExpectedGoals            float64
	ExpectedAssists          float64
	ExpectedInvolvements     float64
	ExpectedConceded         float64
	DefconAchieved           bool
	MatchFinished            bool
	MatchFinishedProvisional bool
	Started                  bool
}

// EffectiveTotalPoints folds provisional bonus into the total. The row's
// bonus status is authoritative: once confirmed, the total already carries
// the final bonus; until then the larger of the provisional and official
// bonus counts on top.
func (r Row) EffectiveTotalPoints() int {
	if r.BonusStatus == BonusConfirmed {
		return r.TotalPoints
	}
	extra := r.ProvisionalBonus
	if r.Bonus > extra {
		extra = r.Bonus
	}
	return r.TotalPoints + extra
}

// CompositeKey identifies a row uniquely within a gameweek; double
// gameweek rows of the same player stay distinct.
func (r Row) CompositeKey() string {
	return CompositeKey(r.PlayerID, r.FixtureID)
}

func CompositeKey(playerID, fixtureID int64) string {
	return fmt.Sprintf("%d-%d", playerID, fixtureID)
}

// StatValue returns the ranking value of this row for one dictionary key.
func (r Row) StatValue(key stat.Key) float64 {
	switch key {
	case stat.KeyPoints:
		return float64(r.EffectiveTotalPoints())
	case stat.KeyGoals:
		return float64(r.Goals)
	case stat.KeyAssists:
		return float64(r.Assists)
	case stat.KeyCleanSheets:
		return float64(r.CleanSheets)
	case stat.KeySaves:
		return float64(r.Saves)
	case stat.KeyBPS:
		return float64(r.BPS)
	case stat.KeyBonus:
		return float64(r.Bonus)
	case stat.KeyDefensiveContribution:
		return float64(r.DefensiveContribution)
	case stat.KeyYellowCards:
		return float64(r.YellowCards)
	case stat.KeyRedCards:
		return float64(r.RedCards)
	case stat.KeyExpectedGoals:
		return r.ExpectedGoals
	case stat.KeyExpectedAssists:
		return r.ExpectedAssists
	case stat.KeyExpectedInvolvements:
		return r.ExpectedInvolvements
	case stat.KeyExpectedConceded:
		return r.ExpectedConceded
	default:
		return 0
	}
}
