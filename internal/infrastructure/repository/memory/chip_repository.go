package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fplpulse/fplpulse/internal/domain/chip"
)

type ChipRepository struct {
	mu      sync.RWMutex
	plays   map[int64][]chip.Play
	members map[int64][]int64
	names   map[int64]string
}

// NewChipRepository takes chip plays per manager, league membership and the
// manager display names LeaguePlays joins in.
func NewChipRepository(plays map[int64][]chip.Play, members map[int64][]int64, names map[int64]string) *ChipRepository {
	byManager := make(map[int64][]chip.Play, len(plays))
	for managerID, items := range plays {
		byManager[managerID] = append([]chip.Play(nil), items...)
	}
	byLeague := make(map[int64][]int64, len(members))
	for leagueID, managerIDs := range members {
		byLeague[leagueID] = append([]int64(nil), managerIDs...)
	}
	byID := make(map[int64]string, len(names))
	for managerID, name := range names {
		byID[managerID] = name
	}

	return &ChipRepository{plays: byManager, members: byLeague, names: byID}
}

func (r *ChipRepository) ManagerPlays(_ context.Context, managerID int64) ([]chip.Play, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plays := r.plays[managerID]
	out := make([]chip.Play, 0, len(plays))
	out = append(out, plays...)
	sort.Slice(out, func(i, j int) bool { return out[i].Gameweek < out[j].Gameweek })

	return out, nil
}

func (r *ChipRepository) LeaguePlays(_ context.Context, leagueID int64, gw int) ([]chip.LeaguePlay, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []chip.LeaguePlay
	for _, managerID := range r.members[leagueID] {
		for _, play := range r.plays[managerID] {
			if play.Gameweek != gw {
				continue
			}
			out = append(out, chip.LeaguePlay{
				ManagerID:   managerID,
				ManagerName: r.names[managerID],
				Name:        play.Name,
				Gameweek:    play.Gameweek,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ManagerName != out[j].ManagerName {
			return out[i].ManagerName < out[j].ManagerName
		}
		return out[i].ManagerID < out[j].ManagerID
	})

	return out, nil
}
