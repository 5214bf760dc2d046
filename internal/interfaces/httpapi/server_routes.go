package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /readyz", handler.Readyz)
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/home", handler.GetHome)
	mux.HandleFunc("GET /api/gameweek", handler.GetGameweek)
	mux.HandleFunc("GET /api/players/search", handler.SearchPlayers)
	mux.HandleFunc("GET /api/performance", handler.GetPerformance)
	mux.HandleFunc("GET /api/refresh", handler.GetRefresh)
}

func registerPrefsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/prefs/cards", handler.GetCardPrefs)
	mux.HandleFunc("PUT /api/prefs/cards", handler.PutCardPrefs)
	mux.HandleFunc("GET /api/prefs/theme", handler.GetThemePref)
	mux.HandleFunc("PUT /api/prefs/theme", handler.PutThemePref)
}
