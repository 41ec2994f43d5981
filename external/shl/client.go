package shl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/shl-ingest/internal/platform/logging"
	"github.com/riskibarqy/shl-ingest/internal/platform/resilience"
	"github.com/riskibarqy/shl-ingest/internal/usecase"
)

const (
	defaultBaseURL = "https://www.shl.se/api/sports-v2"
	defaultTimeout = 10 * time.Second

	pathFilterCatalog = "/season-series-game-types-filter"
	pathGameSchedule  = "/game-schedule"
	pathTeams         = "/teams"
	pathTeamRoster    = "/athletes/by-team-uuid"

	maxResponseBytes = 6 << 20
)

var errSHLTransient = crerr.New("shl transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the undocumented SHL API. One outbound GET per call,
// fixed timeout, no retries; failures carry the upstream status code so
// the HTTP layer can propagate it.
type Client struct {
	httpClient     *http.Client
	baseURL        string
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
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchFilterCatalog retrieves the season/series/game-type catalog with
// the upstream default selection.
func (c *Client) FetchFilterCatalog(ctx context.Context) (usecase.FilterCatalog, error) {
	raw, err := c.get(ctx, pathFilterCatalog, nil)
	if err != nil {
		return usecase.FilterCatalog{}, err
	}

	var envelope filterCatalogEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return usecase.FilterCatalog{}, &usecase.UpstreamError{
			Endpoint: pathFilterCatalog,
			Err:      crerr.Wrap(err, "decode filter catalog"),
		}
	}

	return usecase.FilterCatalog{
		Seasons:   mapCatalogEntries(envelope.Season),
		Series:    mapCatalogEntries(envelope.Series),
		GameTypes: mapCatalogEntries(envelope.GameType),
		Defaults: usecase.CatalogDefaults{
			SeasonUUID:   envelope.DefaultSsgtFilter.Season,
			SeriesUUID:   envelope.DefaultSsgtFilter.Series,
			GameTypeUUID: envelope.DefaultSsgtFilter.GameType,
		},
	}, nil
}

// FetchGameSchedule retrieves the raw schedule document for the given
// identifiers. The body is returned verbatim for bronze storage.
func (c *Client) FetchGameSchedule(ctx context.Context, q usecase.ScheduleQuery) ([]byte, error) {
	query := map[string]string{
		"seasonUuid":   q.SeasonUUID,
		"seriesUuid":   q.SeriesUUID,
		"gameTypeUuid": q.GameTypeUUID,
	}
	if strings.TrimSpace(q.GamePlace) != "" {
		query["gamePlace"] = q.GamePlace
	}
	if strings.TrimSpace(q.Played) != "" {
		query["played"] = q.Played
	}

	return c.get(ctx, pathGameSchedule, query)
}

// FetchTeamInfo retrieves the raw team document for one team uuid.
func (c *Client) FetchTeamInfo(ctx context.Context, teamUUID string) ([]byte, error) {
	return c.get(ctx, pathTeams+"/"+url.PathEscape(teamUUID), nil)
}

// FetchTeamRoster retrieves the raw roster document (an array of
// position groups) for one team uuid.
func (c *Client) FetchTeamRoster(ctx context.Context, teamUUID string) ([]byte, error) {
	return c.get(ctx, pathTeamRoster+"/"+url.PathEscape(teamUUID), nil)
}

func (c *Client) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "shl circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return nil, fmt.Errorf("%w: shl api is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, path, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, path, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		reqErr := &usecase.UpstreamError{
			Endpoint: path,
			Err:      fmt.Errorf("%w: send request: %v", errSHLTransient, err),
		}
		c.logger.WarnContext(ctx, "shl request failed", "url", fullURL, "error", reqErr)
		return nil, reqErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &usecase.UpstreamError{
			Endpoint: path,
			Err:      fmt.Errorf("%w: read response body: %v", errSHLTransient, err),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reqErr := &usecase.UpstreamError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Err:        crerr.Newf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw)),
		}
		if isTransientStatus(resp.StatusCode) {
			reqErr.Err = fmt.Errorf("%w: provider status=%d body=%s", errSHLTransient, resp.StatusCode, abbreviateBody(raw))
		}
		c.logger.WarnContext(ctx, "shl request failed", "url", fullURL, "status", resp.StatusCode)
		return nil, reqErr
	}

	return raw, nil
}

// isCircuitFailure decides which failures trip the breaker. Client-side
// 4xx answers are the provider working as intended and must not open it.
func isCircuitFailure(err error) bool {
	return crerr.Is(err, errSHLTransient)
}

func isTransientStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	const maxLen = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > maxLen {
		return body[:maxLen] + "..."
	}
	return body
}

func mapCatalogEntries(items []catalogItem) []usecase.CatalogEntry {
	out := make([]usecase.CatalogEntry, 0, len(items))
	for _, item := range items {
		entry := usecase.CatalogEntry{
			UUID:  item.UUID,
			Code:  item.Code,
			Names: make([]usecase.CatalogName, 0, len(item.Names)),
		}
		for _, name := range item.Names {
			entry.Names = append(entry.Names, usecase.CatalogName{
				Language:    name.Language,
				Translation: name.Translation,
			})
		}
		out = append(out, entry)
	}
	return out
}

type filterCatalogEnvelope struct {
	Season            []catalogItem     `json:"season"`
	Series            []catalogItem     `json:"series"`
	GameType          []catalogItem     `json:"gameType"`
	DefaultSsgtFilter defaultSsgtFilter `json:"defaultSsgtFilter"`
}

type catalogItem struct {
	UUID  string        `json:"uuid"`
	Code  string        `json:"code"`
	Names []catalogName `json:"names"`
}

type catalogName struct {
	Language    string `json:"language"`
	Translation string `json:"translation"`
}

type defaultSsgtFilter struct {
	Season   string `json:"season"`
	Series   string `json:"series"`
	GameType string `json:"gameType"`
}
