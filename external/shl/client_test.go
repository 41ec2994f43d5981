package shl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/shl-ingest/internal/platform/logging"
	"github.com/riskibarqy/shl-ingest/internal/platform/resilience"
	"github.com/riskibarqy/shl-ingest/internal/usecase"
)

func newTestClient(t *testing.T, handler http.Handler, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientConfig{
		BaseURL:        srv.URL,
		Timeout:        2 * time.Second,
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
}

func TestClient_FetchFilterCatalogDecodesEnvelope(t *testing.T) {
	body := `{
		"season": [{"uuid":"season-2025","code":"2025/2026","names":[{"language":"sv","translation":"Säsong 2025/2026"}]}],
		"series": [{"uuid":"series-shl","code":"SHL","names":[{"language":"en","translation":"Swedish Hockey League"}]}],
		"gameType": [{"uuid":"gt-regular","code":"regular","names":[]}],
		"defaultSsgtFilter": {"season":"season-2025","series":"series-shl","gameType":"gt-regular"}
	}`
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != pathFilterCatalog {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}), resilience.CircuitBreakerConfig{})

	catalog, err := client.FetchFilterCatalog(context.Background())
	if err != nil {
		t.Fatalf("fetch filter catalog: %v", err)
	}

	if len(catalog.Seasons) != 1 || catalog.Seasons[0].UUID != "season-2025" {
		t.Fatalf("seasons = %+v", catalog.Seasons)
	}
	if catalog.Seasons[0].Names[0].Translation != "Säsong 2025/2026" {
		t.Fatalf("season name = %+v", catalog.Seasons[0].Names)
	}
	if catalog.Defaults.SeasonUUID != "season-2025" || catalog.Defaults.GameTypeUUID != "gt-regular" {
		t.Fatalf("defaults = %+v", catalog.Defaults)
	}
}

func TestClient_FetchGameScheduleForwardsQuery(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"gameInfo":[]}`))
	}), resilience.CircuitBreakerConfig{})

	_, err := client.FetchGameSchedule(context.Background(), usecase.ScheduleQuery{
		SeasonUUID:   "season-2025",
		SeriesUUID:   "series-shl",
		GameTypeUUID: "gt-regular",
		GamePlace:    "home",
	})
	if err != nil {
		t.Fatalf("fetch game schedule: %v", err)
	}

	if gotQuery.Get("seasonUuid") != "season-2025" || gotQuery.Get("gamePlace") != "home" {
		t.Fatalf("query = %v", gotQuery)
	}
	if _, present := gotQuery["played"]; present {
		t.Fatal("blank played filter must not be sent")
	}
}

func TestClient_UpstreamErrorCarriesStatusCode(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}), resilience.CircuitBreakerConfig{})

	_, err := client.FetchTeamInfo(context.Background(), "missing-team")
	var upstream *usecase.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", upstream.StatusCode)
	}
}

func TestClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}), resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})

	for i := 0; i < 5; i++ {
		_, err := client.FetchTeamInfo(context.Background(), "team-uuid")
		var upstream *usecase.UpstreamError
		if !errors.As(err, &upstream) {
			t.Fatalf("call %d: expected UpstreamError, got %v", i, err)
		}
		if upstream.StatusCode != http.StatusBadRequest {
			t.Fatalf("call %d: status = %d, breaker must stay closed", i, upstream.StatusCode)
		}
	}
}

func TestClient_ServerErrorsOpenBreaker(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}), resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := client.FetchTeamRoster(ctx, "team-uuid"); err == nil {
			t.Fatalf("call %d: expected error", i)
		}
	}

	_, err := client.FetchTeamRoster(ctx, "team-uuid")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once open, got %v", err)
	}
	if hits.Load() != 2 {
		t.Fatalf("upstream hits = %d, want 2 (open breaker short-circuits)", hits.Load())
	}
}

func TestClient_TooManyRequestsIsTransient(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}), resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})

	ctx := context.Background()
	if _, err := client.FetchTeamInfo(ctx, "team-uuid"); err == nil {
		t.Fatal("expected error")
	}

	_, err := client.FetchTeamInfo(ctx, "team-uuid")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("429 should trip the breaker, got %v", err)
	}
}

func TestClient_BreakerDisabledNeverShortCircuits(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}), resilience.CircuitBreakerConfig{Enabled: false, FailureThreshold: 1, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})

	ctx := context.Background()
	for i := 0; i < 4; i++ {
		_, err := client.FetchTeamInfo(ctx, "team-uuid")
		if errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("call %d: breaker disabled but request was short-circuited", i)
		}
	}
	if hits.Load() != 4 {
		t.Fatalf("upstream hits = %d, want 4", hits.Load())
	}
}

func TestClient_RawBodyReturnedVerbatim(t *testing.T) {
	body := `[{"position":"GK","players":[{"name":"Niklas Rubin"}]}]`
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}), resilience.CircuitBreakerConfig{})

	raw, err := client.FetchTeamRoster(context.Background(), "team-uuid")
	if err != nil {
		t.Fatalf("fetch team roster: %v", err)
	}
	if string(raw) != body {
		t.Fatalf("raw = %q, want verbatim body", string(raw))
	}
}
