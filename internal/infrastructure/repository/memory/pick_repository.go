package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fplpulse/fplpulse/internal/domain/pick"
)

type PickRepository struct {
	mu      sync.RWMutex
	picks   []pick.Pick
	members map[int64][]int64
}

// NewPickRepository takes every known pick plus the league membership map,
// league id to manager ids, which scopes LeaguePicks.
func NewPickRepository(picks []pick.Pick, members map[int64][]int64) *PickRepository {
	rows := make([]pick.Pick, 0, len(picks))
	rows = append(rows, picks...)

	byLeague := make(map[int64][]int64, len(members))
	for leagueID, managerIDs := range members {
		byLeague[leagueID] = append([]int64(nil), managerIDs...)
	}

	return &PickRepository{picks: rows, members: byLeague}
}

func (r *PickRepository) ManagerPicks(_ context.Context, managerID int64, gw int) ([]pick.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []pick.Pick
	for _, p := range r.picks {
		if p.ManagerID == managerID && p.Gameweek == gw {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })

	return out, nil
}

func (r *PickRepository) LeaguePicks(_ context.Context, leagueID int64, gw int) (pick.LeaguePicks, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	managerIDs, ok := r.members[leagueID]
	if !ok {
		return pick.LeaguePicks{}, nil
	}

	wanted := make(map[int64]struct{}, len(managerIDs))
	for _, id := range managerIDs {
		wanted[id] = struct{}{}
	}

	var out []pick.Pick
	for _, p := range r.picks {
		if p.Gameweek != gw {
			continue
		}
		if _, member := wanted[p.ManagerID]; member {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ManagerID != out[j].ManagerID {
			return out[i].ManagerID < out[j].ManagerID
		}
		return out[i].Position < out[j].Position
	})

	return pick.LeaguePicks{Picks: out, ManagerCount: len(managerIDs)}, nil
}
