package postgres

import (
	"context"
	"fmt"

	"github.com/fplpulse/fplpulse/internal/domain/gameweek"
	"github.com/fplpulse/fplpulse/internal/domain/playerstats"
	qb "github.com/fplpulse/fplpulse/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) ListByGameweek(ctx context.Context, gw int) ([]playerstats.Row, error) {
	query, args, err := qb.Select("*").From("player_gameweek_stats").
		Where(qb.Eq("gameweek", gw)).
		OrderBy("fixture_id", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select gameweek player stats query: %w", err)
	}

	var rows []playerGameweekStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select gameweek player stats: %w", err)
	}

	return statRowsFromModels(rows), nil
}

func (r *PlayerStatsRepository) ListByFixture(ctx context.Context, fixtureID int64) ([]playerstats.Row, error) {
	query, args, err := qb.Select("*").From("player_gameweek_stats").
		Where(qb.Eq("fixture_id", fixtureID)).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixture player stats query: %w", err)
	}

	var rows []playerGameweekStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixture player stats: %w", err)
	}

	return statRowsFromModels(rows), nil
}

// LastMeetingStats returns stat rows of the finished first-half reverse
// fixtures for the pairings of the target gameweek, mirroring the
// fixture repository's LastMeetings join.
func (r *PlayerStatsRepository) LastMeetingStats(ctx context.Context, gw int) ([]playerstats.Row, error) {
	query, args, err := qb.Select("s.*").
		From("player_gameweek_stats s JOIN fixtures prev ON prev.id = s.fixture_id JOIN fixtures cur ON cur.home_team_id = prev.away_team_id AND cur.away_team_id = prev.home_team_id").
		Where(
			qb.Eq("cur.gameweek", gw),
			qb.Expr("prev.gameweek < ?", gameweek.SecondHalfStart),
			qb.Eq("prev.finished", true),
		).
		OrderBy("s.fixture_id", "s.player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select last meeting player stats query: %w", err)
	}

	var rows []playerGameweekStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select last meeting player stats: %w", err)
	}

	return statRowsFromModels(rows), nil
}

func statRowsFromModels(rows []playerGameweekStatTableModel) []playerstats.Row {
	out := make([]playerstats.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstats.Row{
			PlayerID:                 row.PlayerID,
			FixtureID:                row.FixtureID,
			Gameweek:                 row.Gameweek,
			TeamID:                   row.TeamID,
			Minutes:                  row.Minutes,
			TotalPoints:              row.TotalPoints,
			Goals:                    row.Goals,
			Assists:                  row.Assists,
			CleanSheets:              row.CleanSheets,
			Saves:                    row.Saves,
			BPS:                      row.BPS,
			Bonus:                    row.Bonus,
			BonusStatus:              row.BonusStatus,
			ProvisionalBonus:         row.ProvisionalBonus,
			DefensiveContribution:    row.DefensiveContribution,
			YellowCards:              row.YellowCards,
			RedCards:                 row.RedCards,
			ExpectedGoals:            row.ExpectedGoals,
			ExpectedAssists:          row.ExpectedAssists,
			ExpectedInvolvements:     row.ExpectedInvolvements,
			ExpectedConceded:         row.ExpectedConceded,
			DefconAchieved:           row.DefconAchieved,
			MatchFinished:            row.MatchFinished,
			MatchFinishedProvisional: row.MatchFinishedProvisional,
			Started:                  row.Started,
		})
	}
	return out
}
