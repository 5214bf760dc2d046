package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fplpulse/fplpulse/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the reference snapshot into an empty database so a
// dev instance serves data without an upstream sync. It is a no-op when
// any gameweek rows already exist.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM gameweeks`); err != nil {
		return fmt.Errorf("count gameweeks for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, gw := range memory.SeedGameweeks() {
		if err := seedExec(ctx, tx, `
INSERT INTO gameweeks (id, is_current, data_checked, deadline_at)
VALUES (:id, :is_current, :data_checked, :deadline_at)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":           gw.ID,
			"is_current":   gw.IsCurrent,
			"data_checked": gw.DataChecked,
			"deadline_at":  gw.DeadlineAt,
		}); err != nil {
			return fmt.Errorf("seed gameweek %d: %w", gw.ID, err)
		}
	}

	for _, ev := range memory.SeedRefreshEvents() {
		if err := seedExec(ctx, tx, `
INSERT INTO refresh_events (kind, occurred_at)
VALUES (:kind, :occurred_at)
ON CONFLICT (kind, occurred_at) DO NOTHING`, map[string]any{
			"kind":        ev.Kind,
			"occurred_at": ev.OccurredAt,
		}); err != nil {
			return fmt.Errorf("seed refresh event %s: %w", ev.Kind, err)
		}
	}

	for _, t := range memory.SeedTeams() {
		if err := seedExec(ctx, tx, `
INSERT INTO teams (id, name, short_name)
VALUES (:id, :name, :short_name)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":         t.ID,
			"name":       t.Name,
			"short_name": t.ShortName,
		}); err != nil {
			return fmt.Errorf("seed team %d: %w", t.ID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		if err := seedExec(ctx, tx, `
INSERT INTO players (id, web_name, position, team_id, cost_tenths, selected_by_percent)
VALUES (:id, :web_name, :position, :team_id, :cost_tenths, :selected_by_percent)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":                  p.ID,
			"web_name":            p.WebName,
			"position":            int(p.Position),
			"team_id":             p.TeamID,
			"cost_tenths":         p.CostTenths,
			"selected_by_percent": p.SelectedByPercent,
		}); err != nil {
			return fmt.Errorf("seed player %d: %w", p.ID, err)
		}
	}

	for _, fx := range memory.SeedFixtures() {
		if err := seedExec(ctx, tx, `
INSERT INTO fixtures (id, gameweek, home_team_id, away_team_id, kickoff_at,
	started, finished, finished_provisional, home_score, away_score, stadium)
VALUES (:id, :gameweek, :home_team_id, :away_team_id, :kickoff_at,
	:started, :finished, :finished_provisional, :home_score, :away_score, :stadium)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":                   fx.ID,
			"gameweek":             fx.Gameweek,
			"home_team_id":         fx.HomeTeamID,
			"away_team_id":         fx.AwayTeamID,
			"kickoff_at":           fx.KickoffAt,
			"started":              fx.Started,
			"finished":             fx.Finished,
			"finished_provisional": fx.FinishedProvisional,
			"home_score":           fx.HomeScore,
			"away_score":           fx.AwayScore,
			"stadium":              fx.Stadium,
		}); err != nil {
			return fmt.Errorf("seed fixture %d: %w", fx.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bootstrap seed: %w", err)
	}
	return nil
}

func seedExec(ctx context.Context, tx *sqlx.Tx, query string, args map[string]any) error {
	sqlQuery, bound, err := sqlx.Named(query, args)
	if err != nil {
		return fmt.Errorf("bind seed query: %w", err)
	}
	sqlQuery = tx.Rebind(sqlQuery)
	if _, err := tx.ExecContext(ctx, sqlQuery, bound...); err != nil {
		return err
	}
	return nil
}
