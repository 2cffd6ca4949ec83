package app

import (
	"strings"

	"github.com/riskibarqy/lol-stats-sync/external/riot"
	"github.com/riskibarqy/lol-stats-sync/internal/config"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/metrics"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/resilience"
	"github.com/riskibarqy/lol-stats-sync/internal/usecase"
)

// buildRiotProvider returns nil when no API key is configured so services
// report the upstream as unconfigured instead of sending unauthenticated calls.
func buildRiotProvider(cfg config.Config, logger *logging.Logger, m *metrics.Metrics) usecase.RiotProvider {
	if strings.TrimSpace(cfg.RiotAPIKey) == "" {
		return nil
	}

	return riot.NewClient(riot.ClientConfig{
		BaseURL:            cfg.RiotBaseURL,
		StaticBaseURL:      cfg.RiotStaticBaseURL,
		APIKey:             cfg.RiotAPIKey,
		Timeout:            cfg.RiotTimeout,
		MaxRetries:         cfg.RiotMaxRetries,
		RateLimitPerSecond: cfg.RiotRateLimitPerSecond,
		RateLimitBurst:     cfg.RiotRateLimitBurst,
		Logger:             logger,
		Metrics:            m,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.RiotCircuitEnabled,
			FailureThreshold: cfg.RiotCircuitFailureCount,
			OpenTimeout:      cfg.RiotCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.RiotCircuitHalfOpenMax,
		},
	})
}
