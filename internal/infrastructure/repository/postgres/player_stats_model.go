package postgres

import "time"

type playerGameweekStatTableModel struct {
	PlayerID                 int64     `db:"player_id"`
	FixtureID                int64     `db:"fixture_id"`
	Gameweek                 int       `db:"gameweek"`
	TeamID                   int64     `db:"team_id"`
	Minutes                  int       `db:"minutes"`
	TotalPoints              int       `db:"total_points"`
	Goals                    int       `db:"goals"`
	Assists                  int       `db:"assists"`
	CleanSheets              int       `db:"clean_sheets"`
	Saves                    int       `db:"saves"`
	BPS                      int       `db:"bps"`
	Bonus                    int       `db:"bonus"`
	BonusStatus              string    `db:"bonus_status"`
	ProvisionalBonus         int       `db:"provisional_bonus"`
	DefensiveContribution    int       `db:"defensive_contribution"`
	YellowCards              int       `db:"yellow_cards"`
	RedCards                 int       `db:"red_cards"`
	ExpectedGoals            float64   `db:"expected_goals"`
	ExpectedAssists          float64   `db:"expected_assists"`
	ExpectedInvolvements     float64   `db:"expected_involvements"`
	ExpectedConceded         float64   `db:"expected_conceded"`
	DefconAchieved           bool      `db:"defcon_achieved"`
	MatchFinished            bool      `db:"match_finished"`
	MatchFinishedProvisional bool      `db:"match_finished_provisional"`
	Started                  bool      `db:"started"`
	CreatedAt                time.Time `db:"created_at"`
	UpdatedAt                time.Time `db:"updated_at"`
}
