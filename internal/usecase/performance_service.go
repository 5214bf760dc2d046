package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sourcegraph/conc"

	"github.com/fplpulse/fplpulse/internal/domain/manager"
	"github.com/fplpulse/fplpulse/internal/domain/pick"
	"github.com/fplpulse/fplpulse/internal/domain/player"
	"github.com/fplpulse/fplpulse/internal/domain/stat"
	"github.com/fplpulse/fplpulse/internal/domain/team"
)

// PerformanceParams selects the viewer, the stat, and the trailing
// window of the owned-player chart.
type PerformanceParams struct {
	ManagerID int64
	Window    string
	StatKey   string
}

// PerformanceSeries is one player's samples across the window, with the
// gameweeks the viewer actually owned them folded into streak form.
type PerformanceSeries struct {
	PlayerID  int64              `json:"player_id"`
	WebName   string             `json:"web_name"`
	TeamShort string             `json:"team_short"`
	Position  string             `json:"position"`
	Owned     string             `json:"owned"`
	Points    []PerformanceValue `json:"points"`
}

// PerformanceValue is one (gameweek, value) sample. Owned marks samples
// inside an ownership streak.
type PerformanceValue struct {
	Gameweek int     `json:"gameweek"`
	Value    float64 `json:"value"`
	Owned    bool    `json:"owned"`
}

// TransferRowView is one transfer of the gameweek with its realized
// swing.
type TransferRowView struct {
	PlayerInID   int64  `json:"player_in_id"`
	PlayerIn     string `json:"player_in"`
	PlayerOutID  int64  `json:"player_out_id"`
	PlayerOut    string `json:"player_out"`
	PointsIn     int    `json:"points_in"`
	PointsOut    int    `json:"points_out"`
	HitCost      int    `json:"hit_cost"`
	NetPoints    int    `json:"net_points"`
	GameweekMade int    `json:"gameweek_made"`
}

// PerformanceView is the performance page payload.
type PerformanceView struct {
	Gameweek  int                 `json:"gameweek"`
	Window    string              `json:"window"`
	StatKey   stat.Key            `json:"stat_key"`
	StatLabel string              `json:"stat_label"`
	Series    []PerformanceSeries `json:"series"`
	Transfers []TransferRowView   `json:"transfers"`
	Stale     bool                `json:"stale,omitempty"`
}

type PerformanceService struct {
	gameweeks GameweekQueries
	managers  ManagerQueries
	players   PlayerQueries
	teams     TeamQueries
}

func NewPerformanceService(
	gameweeks GameweekQueries,
	managers ManagerQueries,
	players PlayerQueries,
	teams TeamQueries,
) *PerformanceService {
	return &PerformanceService{
		gameweeks: gameweeks,
		managers:  managers,
		players:   players,
		teams:     teams,
	}
}

// GetPerformance assembles the owned-player chart and the transfer
// impact table for the viewer.
func (s *PerformanceService) GetPerformance(ctx context.Context, p PerformanceParams) (PerformanceView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.GetPerformance")
	defer span.End()

	if p.ManagerID <= 0 {
		return PerformanceView{}, fmt.Errorf("%w: manager id is required", ErrInvalidInput)
	}
	window, err := manager.ParsePerformanceWindow(p.Window)
	if err != nil {
		return PerformanceView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	key := stat.Key(p.StatKey)
	if p.StatKey == "" {
		key = stat.KeyPoints
	}
	if !manager.ValidPerformanceKey(key) {
		return PerformanceView{}, fmt.Errorf("%w: stat key %q", ErrInvalidInput, p.StatKey)
	}

	current, found, err := s.gameweeks.Current(ctx)
	if err != nil && !found {
		return PerformanceView{}, fmt.Errorf("%w: current gameweek: %v", ErrUnavailable, err)
	}
	if !found {
		return PerformanceView{}, fmt.Errorf("%w: current gameweek", ErrNotFound)
	}
	stale := err != nil

	var (
		points    []manager.PerformancePoint
		pointsErr error

		impacts    []manager.TransferImpact
		impactsErr error

		playerList []player.Player
		playersErr error

		teamList []team.Team
		teamsErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() { points, pointsErr = s.managers.OwnedPerformance(ctx, p.ManagerID, window, key) })
	wg.Go(func() { impacts, impactsErr = s.managers.TransferImpacts(ctx, p.ManagerID, current.ID) })
	wg.Go(func() { playerList, playersErr = s.players.List(ctx) })
	wg.Go(func() { teamList, teamsErr = s.teams.List(ctx) })
	wg.Wait()

	stale = stale || anyErr(pointsErr, impactsErr, playersErr, teamsErr)

	players := playerIndex(playerList)
	teams := teamIndex(teamList)

	return PerformanceView{
		Gameweek:  current.ID,
		Window:    string(window),
		StatKey:   key,
		StatLabel: key.Label(),
		Series:    buildSeries(points, players, teams),
		Transfers: transferViews(impacts, players),
		Stale:     stale,
	}, nil
}

// buildSeries groups samples per player, sorted by gameweek, and folds
// the owned gameweeks into streak labels.
func buildSeries(points []manager.PerformancePoint, players map[int64]player.Player, teams map[int64]team.Team) []PerformanceSeries {
	byPlayer := make(map[int64][]manager.PerformancePoint)
	order := make([]int64, 0)
	for _, point := range points {
		if _, seen := byPlayer[point.PlayerID]; !seen {
			order = append(order, point.PlayerID)
		}
		byPlayer[point.PlayerID] = append(byPlayer[point.PlayerID], point)
	}

	out := make([]PerformanceSeries, 0, len(order))
	for _, id := range order {
		samples := byPlayer[id]
		sort.Slice(samples, func(i, j int) bool { return samples[i].Gameweek < samples[j].Gameweek })

		series := PerformanceSeries{PlayerID: id, Points: make([]PerformanceValue, 0, len(samples))}
		var ownedWeeks []int
		for _, sample := range samples {
			series.Points = append(series.Points, PerformanceValue{
				Gameweek: sample.Gameweek,
				Value:    sample.Value,
				Owned:    sample.Owned,
			})
			if sample.Owned {
				ownedWeeks = append(ownedWeeks, sample.Gameweek)
			}
		}
		series.Owned = pick.Streaks(ownedWeeks)

		if pl, ok := players[id]; ok {
			series.WebName = pl.WebName
			series.Position = pl.Position.Label()
			if t, ok := teams[pl.TeamID]; ok {
				series.TeamShort = t.ShortName
			}
		}
		out = append(out, series)
	}
	return out
}

func transferViews(impacts []manager.TransferImpact, players map[int64]player.Player) []TransferRowView {
	out := make([]TransferRowView, 0, len(impacts))
	for _, impact := range impacts {
		row := TransferRowView{
			PlayerInID:   impact.PlayerInID,
			PlayerOutID:  impact.PlayerOutID,
			PointsIn:     impact.PlayerInPoints,
			PointsOut:    impact.PlayerOutPoints,
			HitCost:      impact.HitCost,
			NetPoints:    impact.Net(),
			GameweekMade: impact.Gameweek,
		}
		if pl, ok := players[impact.PlayerInID]; ok {
			row.PlayerIn = pl.WebName
		}
		if pl, ok := players[impact.PlayerOutID]; ok {
			row.PlayerOut = pl.WebName
		}
		out = append(out, row)
	}
	return out
}
