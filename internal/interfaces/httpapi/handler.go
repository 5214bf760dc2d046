package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fplpulse/fplpulse/internal/platform/logging"
	"github.com/fplpulse/fplpulse/internal/usecase"
	"github.com/fplpulse/fplpulse/internal/viewstate"
)

// ReadinessPinger is the dependency the readiness probe checks,
// normally the database pool.
type ReadinessPinger interface {
	PingContext(ctx context.Context) error
}

// ViewerDefaults supplies the manager and league the dashboard renders
// for when a request does not name them.
type ViewerDefaults struct {
	ManagerID int64
	LeagueID  int64
}

type Handler struct {
	home        *usecase.HomeService
	gameweek    *usecase.GameweekService
	defcon      *usecase.DefconService
	feed        *usecase.FeedService
	performance *usecase.PerformanceService
	search      *usecase.SearchService
	refresh     *usecase.RefreshService
	cards       *viewstate.CardGrid
	prefs       *viewstate.Prefs
	readiness   ReadinessPinger
	defaults    ViewerDefaults
	logger      *logging.Logger
	validator   *validator.Validate
}

func NewHandler(
	home *usecase.HomeService,
	gameweek *usecase.GameweekService,
	defcon *usecase.DefconService,
	feed *usecase.FeedService,
	performance *usecase.PerformanceService,
	search *usecase.SearchService,
	refresh *usecase.RefreshService,
	cards *viewstate.CardGrid,
	prefs *viewstate.Prefs,
	readiness ReadinessPinger,
	defaults ViewerDefaults,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		home:        home,
		gameweek:    gameweek,
		defcon:      defcon,
		feed:        feed,
		performance: performance,
		search:      search,
		refresh:     refresh,
		cards:       cards,
		prefs:       prefs,
		readiness:   readiness,
		defaults:    defaults,
		logger:      logger,
		validator:   validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Readyz")
	defer span.End()

	if h.readiness != nil {
		if err := h.readiness.PingContext(ctx); err != nil {
			h.logger.WarnContext(ctx, "readiness ping failed", "error", err)
			writeError(ctx, w, fmt.Errorf("%w: database: %v", usecase.ErrUnavailable, err))
			return
		}
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ready"})
}

// viewerFromQuery resolves the manager and league for one request,
// falling back to the configured defaults.
func (h *Handler) viewerFromQuery(r *http.Request) (int64, int64, error) {
	managerID := h.defaults.ManagerID
	leagueID := h.defaults.LeagueID

	if raw := r.URL.Query().Get("manager"); raw != "" {
		parsed, err := parseQueryID("manager", raw)
		if err != nil {
			return 0, 0, err
		}
		managerID = parsed
	}
	if raw := r.URL.Query().Get("league"); raw != "" {
		parsed, err := parseQueryID("league", raw)
		if err != nil {
			return 0, 0, err
		}
		leagueID = parsed
	}
	return managerID, leagueID, nil
}

func parseQueryID(name, raw string) (int64, error) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("%w: %s=%q", usecase.ErrInvalidInput, name, raw)
	}
	return parsed, nil
}

func parseQueryInt(name, raw string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("%w: %s=%q", usecase.ErrInvalidInput, name, raw)
	}
	return parsed, nil
}

func queryFlag(r *http.Request, name string) bool {
	switch strings.ToLower(r.URL.Query().Get(name)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
