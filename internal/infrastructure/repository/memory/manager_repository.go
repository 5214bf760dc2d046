package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/fplpulse/fplpulse/internal/domain/gameweek"
	"github.com/fplpulse/fplpulse/internal/domain/manager"
	"github.com/fplpulse/fplpulse/internal/domain/pick"
	"github.com/fplpulse/fplpulse/internal/domain/playerstats"
	"github.com/fplpulse/fplpulse/internal/domain/stat"
)

// ManagerData seeds one manager: per-gameweek summaries, season history,
// value history and transfer records.
type ManagerData struct {
	ManagerID int64
	Summaries map[int]manager.Summary
	History   []manager.HistoryPoint
	Values    []manager.ValuePoint
	Transfers []manager.TransferImpact
}

type ManagerRepository struct {
	mu        sync.RWMutex
	data      ManagerData
	picks     []pick.Pick
	stats     []playerstats.Row
	gameweeks []gameweek.Gameweek
}

// NewManagerRepository keeps picks, stat rows and gameweeks alongside the
// manager data so OwnedPerformance can derive ownership and window bounds.
func NewManagerRepository(data ManagerData, picks []pick.Pick, stats []playerstats.Row, gameweeks []gameweek.Gameweek) *ManagerRepository {
	ps := make([]pick.Pick, 0, len(picks))
	ps = append(ps, picks...)
	rows := make([]playerstats.Row, 0, len(stats))
	rows = append(rows, stats...)
	gws := make([]gameweek.Gameweek, 0, len(gameweeks))
	gws = append(gws, gameweeks...)

	return &ManagerRepository{data: data, picks: ps, stats: rows, gameweeks: gws}
}

func (r *ManagerRepository) Summary(_ context.Context, managerID int64, gw int) (manager.Summary, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if managerID != r.data.ManagerID {
		return manager.Summary{}, false, nil
	}
	summary, ok := r.data.Summaries[gw]
	if !ok {
		return manager.Summary{}, false, nil
	}

	return summary, true, nil
}

func (r *ManagerRepository) History(_ context.Context, managerID int64) ([]manager.HistoryPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []manager.HistoryPoint
	for _, point := range r.data.History {
		if point.ManagerID == managerID {
			out = append(out, point)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Gameweek < out[j].Gameweek })

	return out, nil
}

func (r *ManagerRepository) TeamValueHistory(_ context.Context, managerID int64) ([]manager.ValuePoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []manager.ValuePoint
	for _, point := range r.data.Values {
		if point.ManagerID == managerID {
			out = append(out, point)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Gameweek < out[j].Gameweek })

	return out, nil
}

// OwnedPerformance samples one stat per gameweek for every player the
// manager has ever picked. A player's double gameweek folds into one
// sample; gameweeks where the player was not in the squad still produce
// points, flagged unowned.
func (r *ManagerRepository) OwnedPerformance(_ context.Context, managerID int64, window manager.PerformanceWindow, key stat.Key) ([]manager.PerformancePoint, error) {
	value, err := performanceValue(key)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ownedWeeks := make(map[int64]map[int]bool)
	for _, p := range r.picks {
		if p.ManagerID != managerID {
			continue
		}
		weeks, ok := ownedWeeks[p.PlayerID]
		if !ok {
			weeks = make(map[int]bool)
			ownedWeeks[p.PlayerID] = weeks
		}
		weeks[p.Gameweek] = true
	}
	if len(ownedWeeks) == 0 {
		return nil, nil
	}

	minGameweek := 0
	if n := window.Gameweeks(); n > 0 {
		minGameweek = r.currentGameweekID() - n
	}

	samples := make(map[int64]map[int]float64)
	for _, row := range r.stats {
		if _, owned := ownedWeeks[row.PlayerID]; !owned {
			continue
		}
		if minGameweek > 0 && row.Gameweek <= minGameweek {
			continue
		}
		weeks, ok := samples[row.PlayerID]
		if !ok {
			weeks = make(map[int]float64)
			samples[row.PlayerID] = weeks
		}
		weeks[row.Gameweek] += value(row)
	}

	playerIDs := make([]int64, 0, len(samples))
	for playerID := range samples {
		playerIDs = append(playerIDs, playerID)
	}
	sort.Slice(playerIDs, func(i, j int) bool { return playerIDs[i] < playerIDs[j] })

	var out []manager.PerformancePoint
	for _, playerID := range playerIDs {
		weeks := make([]int, 0, len(samples[playerID]))
		for gw := range samples[playerID] {
			weeks = append(weeks, gw)
		}
		sort.Ints(weeks)
		for _, gw := range weeks {
			out = append(out, manager.PerformancePoint{
				PlayerID: playerID,
				Gameweek: gw,
				Value:    samples[playerID][gw],
				Owned:    ownedWeeks[playerID][gw],
			})
		}
	}

	return out, nil
}

func (r *ManagerRepository) TransferImpacts(_ context.Context, managerID int64, gw int) ([]manager.TransferImpact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []manager.TransferImpact
	for _, transfer := range r.data.Transfers {
		if transfer.ManagerID == managerID && transfer.Gameweek == gw {
			out = append(out, transfer)
		}
	}

	return out, nil
}

func (r *ManagerRepository) currentGameweekID() int {
	for _, gw := range r.gameweeks {
		if gw.IsCurrent {
			return gw.ID
		}
	}

	return 0
}

// performanceValue maps a chart stat key onto the raw row column it
// samples. Raw totals, not bonus-adjusted ones, to stay comparable
// across finished and in-flight gameweeks.
func performanceValue(key stat.Key) (func(playerstats.Row) float64, error) {
	switch key {
	case stat.KeyPoints:
		return func(row playerstats.Row) float64 { return float64(row.TotalPoints) }, nil
	case stat.KeyBPS:
		return func(row playerstats.Row) float64 { return float64(row.BPS) }, nil
	case stat.KeyGoals:
		return func(row playerstats.Row) float64 { return float64(row.Goals) }, nil
	case stat.KeyAssists:
		return func(row playerstats.Row) float64 { return float64(row.Assists) }, nil
	default:
		return nil, fmt.Errorf("unsupported performance stat key: %s", key)
	}
}
