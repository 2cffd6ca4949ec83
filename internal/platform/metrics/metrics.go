// Package metrics exposes the sync counters on a private Prometheus registry.
// Every method is safe on a nil *Metrics, which records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lolsync"

type Metrics struct {
	registry *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	summonerLookups  *prometheus.CounterVec
	gamesIngested    *prometheus.CounterVec
	participants     *prometheus.CounterVec
	tasks            *prometheus.CounterVec
	catalogRows      *prometheus.GaugeVec
	circuitState     *prometheus.GaugeVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		upstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Riot API requests by endpoint and HTTP status (0 for transport failures).",
		}, []string{"endpoint", "status"}),
		upstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Riot API request latency.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"endpoint"}),
		summonerLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summoner_lookups_total",
			Help:      "Identity cache lookups by outcome (fresh, stale, created).",
		}, []string{"outcome"}),
		gamesIngested: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_ingested_total",
			Help:      "Recent games processed by result (created, skipped).",
		}, []string{"result"}),
		participants: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "participants_cached_total",
			Help:      "Participant profiles written by result (inserted, duplicate).",
		}, []string{"result"}),
		tasks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_finished_total",
			Help:      "Async tasks by name and final state.",
		}, []string{"name", "state"}),
		catalogRows: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_rows",
			Help:      "Rows loaded by the last catalog refresh.",
		}, []string{"kind"}),
		circuitState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_open",
			Help:      "1 while the named circuit breaker is open or half-open.",
		}, []string{"name"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveUpstream(endpoint string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.upstreamRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	m.upstreamDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func (m *Metrics) SummonerLookup(outcome string) {
	if m == nil {
		return
	}
	m.summonerLookups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) GamesIngested(created, skipped int) {
	if m == nil {
		return
	}
	m.gamesIngested.WithLabelValues("created").Add(float64(created))
	m.gamesIngested.WithLabelValues("skipped").Add(float64(skipped))
}

func (m *Metrics) ParticipantsCached(inserted, duplicate int) {
	if m == nil {
		return
	}
	m.participants.WithLabelValues("inserted").Add(float64(inserted))
	m.participants.WithLabelValues("duplicate").Add(float64(duplicate))
}

func (m *Metrics) TaskFinished(name, state string) {
	if m == nil {
		return
	}
	m.tasks.WithLabelValues(name, state).Inc()
}

func (m *Metrics) CatalogRefreshed(kind string, rows int) {
	if m == nil {
		return
	}
	m.catalogRows.WithLabelValues(kind).Set(float64(rows))
}

func (m *Metrics) CircuitOpen(name string, open bool) {
	if m == nil {
		return
	}
	value := 0.0
	if open {
		value = 1
	}
	m.circuitState.WithLabelValues(name).Set(value)
}
