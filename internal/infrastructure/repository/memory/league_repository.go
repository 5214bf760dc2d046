package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fplpulse/fplpulse/internal/domain/league"
)

// LeagueData seeds one mini league: its identity, table, value history
// and the per-gameweek transfer and captaincy aggregates.
type LeagueData struct {
	League              league.League
	Standings           []league.Standing
	Values              []league.ValuePoint
	TransfersByGameweek map[int]league.TransferSummary
	CaptainsByGameweek  map[int][]league.CaptainCount
}

type LeagueRepository struct {
	mu   sync.RWMutex
	data LeagueData
}

func NewLeagueRepository(data LeagueData) *LeagueRepository {
	return &LeagueRepository{data: data}
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID int64) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.data.League.ID != leagueID {
		return league.League{}, false, nil
	}

	return r.data.League, true, nil
}

func (r *LeagueRepository) Standings(_ context.Context, leagueID int64) ([]league.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.data.League.ID != leagueID {
		return nil, nil
	}

	out := make([]league.Standing, 0, len(r.data.Standings))
	out = append(out, r.data.Standings...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].ManagerID < out[j].ManagerID
	})

	return out, nil
}

func (r *LeagueRepository) TeamValueHistory(_ context.Context, leagueID int64) ([]league.ValuePoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.data.League.ID != leagueID {
		return nil, nil
	}

	out := make([]league.ValuePoint, 0, len(r.data.Values))
	out = append(out, r.data.Values...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Gameweek != out[j].Gameweek {
			return out[i].Gameweek < out[j].Gameweek
		}
		return out[i].ManagerID < out[j].ManagerID
	})

	return out, nil
}

func (r *LeagueRepository) TopTransfers(_ context.Context, leagueID int64, gw int) (league.TransferSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.data.League.ID != leagueID {
		return league.TransferSummary{}, nil
	}

	return r.data.TransfersByGameweek[gw].Cap(), nil
}

func (r *LeagueRepository) CaptainCounts(_ context.Context, leagueID int64, gw int) ([]league.CaptainCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.data.League.ID != leagueID {
		return nil, nil
	}

	return league.SortCaptainCounts(r.data.CaptainsByGameweek[gw]), nil
}
