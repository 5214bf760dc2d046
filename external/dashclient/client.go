// Package dashclient is the typed HTTP client for the dashboard API,
// meant for widgets and tooling that consume the read model remotely.
package dashclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/fplpulse/fplpulse/internal/platform/logging"
	"github.com/fplpulse/fplpulse/internal/platform/resilience"
	"github.com/fplpulse/fplpulse/internal/usecase"
	"github.com/fplpulse/fplpulse/internal/viewstate"
)

var errTransient = crerr.New("dashboard transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// Viewer selects the manager and league a request renders for. Zero
// values defer to the server's configured defaults.
type Viewer struct {
	ManagerID int64
	LeagueID  int64
}

// HomePage is the home endpoint payload.
type HomePage struct {
	usecase.HomeView
	ChipsPage int `json:"chips_page"`
}

// GameweekPage is the gameweek endpoint payload: the pager block plus
// the one subpage the request selected.
type GameweekPage struct {
	Nav     viewstate.NavState   `json:"nav"`
	Matches *usecase.MatchesView `json:"matches,omitempty"`
	Bonus   *usecase.BonusView   `json:"bonus,omitempty"`
	Defcon  *usecase.DefconView  `json:"defcon,omitempty"`
	Feed    *usecase.FeedView    `json:"feed,omitempty"`
}

// GameweekOptions mirror the gameweek endpoint's query parameters.
// Zero values are omitted from the request.
type GameweekOptions struct {
	View      viewstate.Subpage
	Gameweek  int
	Viewer    Viewer
	Simulate  string
	H2H       bool
	FixtureID int64
	Ownership string
	Position  string
	Matchup   string
	Search    string
	SortBy    string
	SortDesc  bool
}

func (c *Client) Home(ctx context.Context, viewer Viewer, narrow bool) (HomePage, error) {
	values := viewerValues(viewer)
	if narrow {
		values.Set("narrow", "1")
	}

	var out HomePage
	if err := c.getJSON(ctx, "/api/home", values, &out); err != nil {
		return HomePage{}, err
	}
	return out, nil
}

func (c *Client) Gameweek(ctx context.Context, opts GameweekOptions) (GameweekPage, error) {
	values := viewerValues(opts.Viewer)
	if opts.View != "" {
		values.Set("view", string(opts.View))
	}
	if opts.Gameweek > 0 {
		values.Set("gw", strconv.Itoa(opts.Gameweek))
	}
	if opts.Simulate != "" {
		values.Set("simulate", opts.Simulate)
	}
	if opts.H2H {
		values.Set("h2h", "1")
	}
	if opts.FixtureID > 0 {
		values.Set("fixture", strconv.FormatInt(opts.FixtureID, 10))
	}
	if opts.Ownership != "" {
		values.Set("ownership", opts.Ownership)
	}
	if opts.Position != "" {
		values.Set("position", opts.Position)
	}
	if opts.Matchup != "" {
		values.Set("matchup", opts.Matchup)
	}
	if opts.Search != "" {
		values.Set("q", opts.Search)
	}
	if opts.SortBy != "" {
		values.Set("sort", opts.SortBy)
	}
	if opts.SortDesc {
		values.Set("desc", "1")
	}

	var out GameweekPage
	if err := c.getJSON(ctx, "/api/gameweek", values, &out); err != nil {
		return GameweekPage{}, err
	}
	return out, nil
}

func (c *Client) SearchPlayers(ctx context.Context, query string) ([]usecase.SearchResult, error) {
	values := url.Values{}
	values.Set("q", query)

	var out []usecase.SearchResult
	if err := c.getJSON(ctx, "/api/players/search", values, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Performance(ctx context.Context, viewer Viewer, window, stat string) (usecase.PerformanceView, error) {
	values := viewerValues(viewer)
	if window != "" {
		values.Set("window", window)
	}
	if stat != "" {
		values.Set("stat", stat)
	}

	var out usecase.PerformanceView
	if err := c.getJSON(ctx, "/api/performance", values, &out); err != nil {
		return usecase.PerformanceView{}, err
	}
	return out, nil
}

func (c *Client) Refresh(ctx context.Context) (usecase.RefreshView, error) {
	var out usecase.RefreshView
	if err := c.getJSON(ctx, "/api/refresh", nil, &out); err != nil {
		return usecase.RefreshView{}, err
	}
	return out, nil
}

type cardOrderPayload struct {
	Order []string `json:"order"`
}

func (c *Client) CardOrder(ctx context.Context) ([]string, error) {
	var out cardOrderPayload
	if err := c.getJSON(ctx, "/api/prefs/cards", nil, &out); err != nil {
		return nil, err
	}
	return out.Order, nil
}

func (c *Client) SetCardOrder(ctx context.Context, order []string) ([]string, error) {
	var out cardOrderPayload
	if err := c.putJSON(ctx, "/api/prefs/cards", cardOrderPayload{Order: order}, &out); err != nil {
		return nil, err
	}
	return out.Order, nil
}

type themePayload struct {
	Theme string `json:"theme"`
}

func (c *Client) Theme(ctx context.Context) (string, error) {
	var out themePayload
	if err := c.getJSON(ctx, "/api/prefs/theme", nil, &out); err != nil {
		return "", err
	}
	return out.Theme, nil
}

func (c *Client) SetTheme(ctx context.Context, theme string) (string, error) {
	var out themePayload
	if err := c.putJSON(ctx, "/api/prefs/theme", themePayload{Theme: theme}, &out); err != nil {
		return "", err
	}
	return out.Theme, nil
}

func (c *Client) Healthz(ctx context.Context) error {
	var out map[string]string
	return c.getJSON(ctx, "/healthz", nil, &out)
}

func (c *Client) Readyz(ctx context.Context) error {
	var out map[string]string
	return c.getJSON(ctx, "/readyz", nil, &out)
}

func viewerValues(viewer Viewer) url.Values {
	values := url.Values{}
	if viewer.ManagerID > 0 {
		values.Set("manager", strconv.FormatInt(viewer.ManagerID, 10))
	}
	if viewer.LeagueID > 0 {
		values.Set("league", strconv.FormatInt(viewer.LeagueID, 10))
	}
	return values
}

type responseEnvelope struct {
	APIVersion string          `json:"apiVersion"`
	Data       json.RawMessage `json:"data,omitempty"`
	Error      *errorBody      `json:"error,omitempty"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// getJSON collapses concurrent identical lookups through single-flight;
// writes go straight through.
func (c *Client) getJSON(ctx context.Context, path string, values url.Values, target any) error {
	fullURL := c.requestURL(path, values)

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		return c.execute(ctx, http.MethodGet, fullURL, nil)
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	return decodeEnvelope(raw, target)
}

func (c *Client) putJSON(ctx context.Context, path string, body any, target any) error {
	encoded, err := sonic.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}

	raw, err := c.execute(ctx, http.MethodPut, c.requestURL(path, nil), encoded)
	if err != nil {
		return err
	}
	return decodeEnvelope(raw, target)
}

func (c *Client) requestURL(path string, values url.Values) string {
	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}
	return fullURL
}

func (c *Client) execute(ctx context.Context, method, fullURL string, body []byte) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "dashboard circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: dashboard api", usecase.ErrUnavailable)
		}
	}

	raw, err := c.executeRequest(ctx, method, fullURL, body)
	if c.circuitEnabled {
		if err != nil && crerr.Is(err, errTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	return raw, err
}

func (c *Client) executeRequest(ctx context.Context, method, fullURL string, body []byte) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: %v", errTransient, statusError(resp.StatusCode, raw))
			default:
				return nil, statusError(resp.StatusCode, raw)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * 250 * time.Millisecond
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("dashboard request failed")
	}
	c.logger.WarnContext(ctx, "dashboard request failed", "method", method, "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// statusError maps the envelope's error body onto the sentinel errors
// the services use, so callers branch the same way on both sides.
func statusError(status int, raw []byte) error {
	message := ""
	var envelope responseEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil {
		message = envelope.Error.Message
	}
	if message == "" {
		message = http.StatusText(status)
	}

	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", usecase.ErrNotFound, message)
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", usecase.ErrUnavailable, message)
	default:
		return fmt.Errorf("dashboard status=%d: %s", status, message)
	}
}

func decodeEnvelope(raw []byte, target any) error {
	var envelope responseEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("dashboard error status=%s: %s", envelope.Error.Status, envelope.Error.Message)
	}
	if target == nil || len(envelope.Data) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(envelope.Data, target); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}
