package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.InMemory() {
		t.Fatalf("expected in-memory mode without DB_URL")
	}
	if cfg.SummonerCacheTTL != 15*time.Minute {
		t.Fatalf("unexpected summoner cache ttl: %s", cfg.SummonerCacheTTL)
	}
	if cfg.RiotMaxBatch != 40 {
		t.Fatalf("unexpected riot max batch: %d", cfg.RiotMaxBatch)
	}
	if cfg.RiotMaxRetries != 0 {
		t.Fatalf("unexpected riot max retries: %d", cfg.RiotMaxRetries)
	}
	if cfg.RiotBaseURL != "https://{region}.api.pvp.net" {
		t.Fatalf("unexpected riot base url: %q", cfg.RiotBaseURL)
	}
	if cfg.TaskWorkers != 4 || cfg.TaskTimeout != 5*time.Minute {
		t.Fatalf("unexpected task defaults workers=%d timeout=%s", cfg.TaskWorkers, cfg.TaskTimeout)
	}
	if cfg.HTTPAddr != ":8080" || cfg.ServiceName != "lol-stats-sync" {
		t.Fatalf("unexpected service defaults addr=%q name=%q", cfg.HTTPAddr, cfg.ServiceName)
	}
}

func TestLoad_RiotMaxBatchBounds(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	for _, raw := range []string{"0", "41", "abc"} {
		t.Run(raw, func(t *testing.T) {
			t.Setenv("RIOT_MAX_BATCH", raw)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for RIOT_MAX_BATCH=%s", raw)
			}
		})
	}

	t.Run("in range", func(t *testing.T) {
		t.Setenv("RIOT_MAX_BATCH", "25")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.RiotMaxBatch != 25 {
			t.Fatalf("unexpected riot max batch: %d", cfg.RiotMaxBatch)
		}
	})
}

func TestLoad_RiotRateLimitParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("RIOT_RATE_LIMIT_PER_SECOND", "0.8")
	t.Setenv("RIOT_RATE_LIMIT_BURST", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.RiotRateLimitPerSecond != 0.8 || cfg.RiotRateLimitBurst != 3 {
		t.Fatalf("unexpected rate limit rps=%v burst=%d", cfg.RiotRateLimitPerSecond, cfg.RiotRateLimitBurst)
	}

	t.Setenv("RIOT_RATE_LIMIT_PER_SECOND", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for RIOT_RATE_LIMIT_PER_SECOND=0")
	}
}

func TestLoad_SummonerCacheTTLMustBePositive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SUMMONER_CACHE_TTL", "-1m")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative SUMMONER_CACHE_TTL")
	}
}

func TestLoad_TaskConfigValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("workers", func(t *testing.T) {
		t.Setenv("TASK_WORKERS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for TASK_WORKERS=0")
		}
	})

	t.Run("backoff", func(t *testing.T) {
		t.Setenv("TASK_RETRY_BACKOFF", "soon")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid TASK_RETRY_BACKOFF")
		}
	})
}

func TestLoad_ProdRequiresInternalJobToken(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("INTERNAL_JOB_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when INTERNAL_JOB_TOKEN is missing in prod")
	}

	t.Setenv("INTERNAL_JOB_TOKEN", "job-token")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.InternalJobToken != "job-token" {
		t.Fatalf("unexpected internal job token: %q", cfg.InternalJobToken)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `other=1, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SERVICE_NAME", "lol-stats-sync-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "lol-stats-sync-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_TTL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected cache enabled by default")
		}
		if cfg.CacheTTL != 60*time.Second {
			t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})

	t.Run("invalid prepared binary flag", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}
