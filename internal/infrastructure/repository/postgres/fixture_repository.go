package postgres

import (
	"context"
	"fmt"

	"github.com/fplpulse/fplpulse/internal/domain/fixture"
	"github.com/fplpulse/fplpulse/internal/domain/gameweek"
	qb "github.com/fplpulse/fplpulse/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) ListByGameweek(ctx context.Context, gw int) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(qb.Eq("gameweek", gw)).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures by gameweek query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures by gameweek: %w", err)
	}

	return fixturesFromRows(rows), nil
}

// LastMeetings resolves the finished first-half reverse fixture for each
// pairing of the target gameweek. Home and away swap between the two
// meetings of a pair, so the join inverts them.
func (r *FixtureRepository) LastMeetings(ctx context.Context, gw int) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("prev.*").
		From("fixtures prev JOIN fixtures cur ON cur.home_team_id = prev.away_team_id AND cur.away_team_id = prev.home_team_id").
		Where(
			qb.Eq("cur.gameweek", gw),
			qb.Expr("prev.gameweek < ?", gameweek.SecondHalfStart),
			qb.Eq("prev.finished", true),
		).
		OrderBy("prev.kickoff_at", "prev.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select last meetings query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select last meetings: %w", err)
	}

	return fixturesFromRows(rows), nil
}

func fixturesFromRows(rows []fixtureTableModel) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixture.Fixture{
			ID:                  row.ID,
			Gameweek:            row.Gameweek,
			HomeTeamID:          row.HomeTeamID,
			AwayTeamID:          row.AwayTeamID,
			KickoffAt:           row.KickoffAt,
			Started:             row.Started,
			Finished:            row.Finished,
			FinishedProvisional: row.FinishedProvisional,
			HomeScore:           nullInt64ToIntPtr(row.HomeScore),
			AwayScore:           nullInt64ToIntPtr(row.AwayScore),
			Stadium:             row.Stadium,
		})
	}
	return out
}
