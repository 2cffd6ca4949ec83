package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/lol-stats-sync/internal/config"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:           config.EnvDev,
		ServiceName:      "lol-stats-sync",
		HTTPAddr:         ":0",
		CacheEnabled:     true,
		CacheTTL:         time.Minute,
		SummonerCacheTTL: 15 * time.Minute,
		RiotMaxBatch:     40,
		TaskWorkers:      1,
		TaskMaxAttempts:  1,
	}
}

func TestNewHTTPServer_InMemory(t *testing.T) {
	rt, err := NewHTTPServer(testConfig(), logging.NewNop(), nil)
	if err != nil {
		t.Fatalf("build runtime: %v", err)
	}
	defer func() {
		if err := rt.Shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown: %v", err)
		}
	}()

	rec := httptest.NewRecorder()
	rt.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected healthz status got=%d", rec.Code)
	}
}

func TestNewHTTPServer_NoRiotKeyReportsUnavailable(t *testing.T) {
	rt, err := NewHTTPServer(testConfig(), logging.NewNop(), nil)
	if err != nil {
		t.Fatalf("build runtime: %v", err)
	}
	defer func() { _ = rt.Shutdown(context.Background()) }()

	rec := httptest.NewRecorder()
	rt.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/summoners/kr/faker/resolve", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status without riot key got=%d", rec.Code)
	}
}

func TestNewHTTPServer_EmptyAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""
	if _, err := NewHTTPServer(cfg, logging.NewNop(), nil); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestBuildRiotProvider(t *testing.T) {
	cfg := testConfig()
	if provider := buildRiotProvider(cfg, logging.NewNop(), nil); provider != nil {
		t.Fatalf("expected nil provider without api key")
	}
	cfg.RiotAPIKey = "RGAPI-test"
	if provider := buildRiotProvider(cfg, logging.NewNop(), nil); provider == nil {
		t.Fatalf("expected provider with api key")
	}
}
