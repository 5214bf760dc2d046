package httpapi

import (
	"fmt"
	"net/http"

	"github.com/fplpulse/fplpulse/internal/usecase"
	"github.com/fplpulse/fplpulse/internal/viewstate"
)

// homePayload wraps the home view with the chip pager's default page,
// which depends on where the season stands.
type homePayload struct {
	usecase.HomeView
	ChipsPage int `json:"chips_page"`
}

func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHome")
	defer span.End()

	managerID, leagueID, err := h.viewerFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.home.GetHome(ctx, usecase.HomeParams{
		ManagerID: managerID,
		LeagueID:  leagueID,
		Narrow:    queryFlag(r, "narrow"),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "get home failed", "manager_id", managerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, homePayload{
		HomeView:  view,
		ChipsPage: viewstate.DefaultChipsPage(view.Gameweek),
	})
}

// gameweekPayload carries the subpage pager block plus the one subpage
// the request selected.
type gameweekPayload struct {
	Nav     viewstate.NavState   `json:"nav"`
	Matches *usecase.MatchesView `json:"matches,omitempty"`
	Bonus   *usecase.BonusView   `json:"bonus,omitempty"`
	Defcon  *usecase.DefconView  `json:"defcon,omitempty"`
	Feed    *usecase.FeedView    `json:"feed,omitempty"`
}

func (h *Handler) GetGameweek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameweek")
	defer span.End()

	q := r.URL.Query()

	subpage, err := viewstate.ParseSubpage(q.Get("view"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	managerID, leagueID, err := h.viewerFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	gw := 0
	if raw := q.Get("gw"); raw != "" {
		if gw, err = parseQueryInt("gw", raw); err != nil {
			writeError(ctx, w, err)
			return
		}
	}
	var fixtureID int64
	if raw := q.Get("fixture"); raw != "" {
		if fixtureID, err = parseQueryID("fixture", raw); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	payload := gameweekPayload{Nav: viewstate.Nav(subpage)}

	switch subpage {
	case viewstate.SubpageMatches:
		view, err := h.gameweek.GetMatches(ctx, usecase.GameweekParams{
			Gameweek:  gw,
			ManagerID: managerID,
			LeagueID:  leagueID,
			Simulate:  q.Get("simulate"),
			H2H:       queryFlag(r, "h2h"),
			FixtureID: fixtureID,
		})
		if err != nil {
			h.logger.ErrorContext(ctx, "get matches failed", "gameweek", gw, "error", err)
			writeError(ctx, w, err)
			return
		}
		payload.Matches = &view
	case viewstate.SubpageBonus:
		view, err := h.gameweek.GetBonus(ctx, usecase.GameweekParams{Gameweek: gw, ManagerID: managerID})
		if err != nil {
			h.logger.ErrorContext(ctx, "get bonus failed", "gameweek", gw, "error", err)
			writeError(ctx, w, err)
			return
		}
		payload.Bonus = &view
	case viewstate.SubpageDefcon:
		view, err := h.defcon.GetBoard(ctx, usecase.DefconParams{
			Gameweek:  gw,
			ManagerID: managerID,
			Ownership: q.Get("ownership"),
			Position:  q.Get("position"),
			Matchup:   q.Get("matchup"),
			Search:    q.Get("q"),
			SortBy:    q.Get("sort"),
			SortDesc:  queryFlag(r, "desc"),
		})
		if err != nil {
			h.logger.ErrorContext(ctx, "get defcon board failed", "gameweek", gw, "error", err)
			writeError(ctx, w, err)
			return
		}
		payload.Defcon = &view
	case viewstate.SubpageFeed:
		view, err := h.feed.GetFeed(ctx, usecase.FeedParams{
			Gameweek:  gw,
			ManagerID: managerID,
			LeagueID:  leagueID,
			Ownership: q.Get("ownership"),
			Position:  q.Get("position"),
			Matchup:   q.Get("matchup"),
			Search:    q.Get("q"),
		})
		if err != nil {
			h.logger.ErrorContext(ctx, "get feed failed", "gameweek", gw, "error", err)
			writeError(ctx, w, err)
			return
		}
		payload.Feed = &view
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	results, err := h.search.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, results)
}

func (h *Handler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPerformance")
	defer span.End()

	managerID, _, err := h.viewerFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.performance.GetPerformance(ctx, usecase.PerformanceParams{
		ManagerID: managerID,
		Window:    r.URL.Query().Get("window"),
		StatKey:   r.URL.Query().Get("stat"),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "get performance failed", "manager_id", managerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) GetRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRefresh")
	defer span.End()

	view, err := h.refresh.GetRefresh(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get refresh failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}
