package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountersAccumulate(t *testing.T) {
	t.Parallel()

	m := New()
	m.GamesIngested(7, 3)
	m.GamesIngested(1, 0)
	m.ParticipantsCached(9, 1)
	m.SummonerLookup("fresh")
	m.SummonerLookup("fresh")
	m.TaskFinished("summoner_sync", "SUCCESS")
	m.CatalogRefreshed("champions", 160)
	m.ObserveUpstream("recent_games", 200, 120*time.Millisecond)

	if got := testutil.ToFloat64(m.gamesIngested.WithLabelValues("created")); got != 8 {
		t.Fatalf("games created=%v, want 8", got)
	}
	if got := testutil.ToFloat64(m.gamesIngested.WithLabelValues("skipped")); got != 3 {
		t.Fatalf("games skipped=%v, want 3", got)
	}
	if got := testutil.ToFloat64(m.summonerLookups.WithLabelValues("fresh")); got != 2 {
		t.Fatalf("fresh lookups=%v, want 2", got)
	}
	if got := testutil.ToFloat64(m.catalogRows.WithLabelValues("champions")); got != 160 {
		t.Fatalf("catalog rows=%v, want 160", got)
	}
	if got := testutil.ToFloat64(m.upstreamRequests.WithLabelValues("recent_games", "200")); got != 1 {
		t.Fatalf("upstream requests=%v, want 1", got)
	}
}

func TestMetrics_HandlerServesRegistry(t *testing.T) {
	t.Parallel()

	m := New()
	m.TaskFinished("catalog_refresh", "FAILURE")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `lolsync_tasks_finished_total{name="catalog_refresh",state="FAILURE"} 1`) {
		t.Fatalf("metric missing from exposition:\n%s", body)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.GamesIngested(1, 1)
	m.ObserveUpstream("x", 500, time.Second)
	m.CircuitOpen("riot", true)
	if m.Registry() != nil {
		t.Fatalf("expected nil registry")
	}
}
