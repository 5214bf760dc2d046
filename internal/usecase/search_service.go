package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/fplpulse/fplpulse/internal/domain/player"
	"github.com/fplpulse/fplpulse/internal/domain/team"
	"github.com/fplpulse/fplpulse/internal/view"
)

const maxSearchResults = 20

// SearchResult is one ranked directory hit.
type SearchResult struct {
	PlayerID   int64   `json:"player_id"`
	WebName    string  `json:"web_name"`
	TeamShort  string  `json:"team_short"`
	Position   string  `json:"position"`
	Price      string  `json:"price"`
	SelectedBy float64 `json:"selected_by"`
	Score      int     `json:"score"`
}

type SearchService struct {
	players PlayerQueries
	teams   TeamQueries
}

func NewSearchService(players PlayerQueries, teams TeamQueries) *SearchService {
	return &SearchService{players: players, teams: teams}
}

// searchCorpus adapts the player directory to the fuzzy matcher; each
// entry matches against "webname teamshort".
type searchCorpus struct {
	players []player.Player
	teams   map[int64]team.Team
}

func (c searchCorpus) String(i int) string {
	p := c.players[i]
	short := ""
	if t, ok := c.teams[p.TeamID]; ok {
		short = t.ShortName
	}
	return strings.ToLower(p.WebName + " " + short)
}

func (c searchCorpus) Len() int {
	return len(c.players)
}

// Search ranks the player directory against the query.
func (s *SearchService) Search(ctx context.Context, q string) ([]SearchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SearchService.Search")
	defer span.End()

	q = strings.TrimSpace(q)
	if q == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}

	playerList, playersErr := s.players.List(ctx)
	teamList, teamsErr := s.teams.List(ctx)
	if playersErr != nil && len(playerList) == 0 {
		return nil, fmt.Errorf("%w: player directory: %v", ErrUnavailable, playersErr)
	}
	if teamsErr != nil && len(teamList) == 0 {
		return nil, fmt.Errorf("%w: team directory: %v", ErrUnavailable, teamsErr)
	}

	corpus := searchCorpus{players: playerList, teams: teamIndex(teamList)}
	matches := fuzzy.FindFrom(strings.ToLower(q), corpus)
	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}

	out := make([]SearchResult, 0, len(matches))
	for _, m := range matches {
		p := corpus.players[m.Index]
		price := float64(p.CostTenths) / 10
		result := SearchResult{
			PlayerID:   p.ID,
			WebName:    p.WebName,
			Position:   p.Position.Label(),
			Price:      view.FormatPrice(&price),
			SelectedBy: p.SelectedByPercent,
			Score:      m.Score,
		}
		if t, ok := corpus.teams[p.TeamID]; ok {
			result.TeamShort = t.ShortName
		}
		out = append(out, result)
	}
	return out, nil
}
