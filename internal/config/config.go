package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const maxRiotBatch = 40

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	LogLevel       logging.Level

	// DBURL empty selects the in-memory repositories.
	DBURL                   string
	DBDisablePreparedBinary bool

	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string

	CacheEnabled     bool
	CacheTTL         time.Duration
	SummonerCacheTTL time.Duration

	RiotAPIKey              string
	RiotBaseURL             string
	RiotStaticBaseURL       string
	RiotTimeout             time.Duration
	RiotMaxRetries          int
	RiotRateLimitPerSecond  float64
	RiotRateLimitBurst      int
	RiotMaxBatch            int
	RiotBatchConcurrency    int
	RiotCircuitEnabled      bool
	RiotCircuitFailureCount int
	RiotCircuitOpenTimeout  time.Duration
	RiotCircuitHalfOpenMax  int

	TaskWorkers      int
	TaskTimeout      time.Duration
	TaskMaxAttempts  int
	TaskRetryBackoff time.Duration

	InternalJobToken string
	MetricsEnabled   bool

	UptraceEnabled bool
	UptraceDSN     string

	PprofEnabled bool
	PprofAddr    string

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

// InMemory reports whether the service runs without a database.
func (c Config) InMemory() bool {
	return strings.TrimSpace(c.DBURL) == ""
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        strings.TrimSpace(getEnv("SERVICE_NAME", "lol-stats-sync")),
		ServiceVersion:     strings.TrimSpace(getEnv("SERVICE_VERSION", "dev")),
		HTTPAddr:           strings.TrimSpace(getEnv("HTTP_ADDR", ":8080")),
		LogLevel:           logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
		DBURL:              strings.TrimSpace(os.Getenv("DB_URL")),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RiotAPIKey:         strings.TrimSpace(getEnv("RIOT_API_KEY", "")),
		RiotBaseURL:        strings.TrimSpace(getEnv("RIOT_BASE_URL", "https://{region}.api.pvp.net")),
		RiotStaticBaseURL:  strings.TrimSpace(getEnv("RIOT_STATIC_BASE_URL", "https://global.api.pvp.net")),
		InternalJobToken:   strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		PprofAddr:          strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
	}
	if cfg.ServiceName == "" {
		return Config{}, fmt.Errorf("SERVICE_NAME cannot be empty")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	if cfg.DBDisablePreparedBinary, err = getEnvAsBool("DB_DISABLE_PREPARED_BINARY_RESULT", true); err != nil {
		return Config{}, err
	}

	if cfg.ReadTimeout, err = getEnvAsPositiveDuration("READ_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = getEnvAsPositiveDuration("WRITE_TIMEOUT", 15*time.Second); err != nil {
		return Config{}, err
	}

	if cfg.CacheEnabled, err = getEnvAsBool("CACHE_ENABLED", true); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = getEnvAsPositiveDuration("CACHE_TTL", 60*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.SummonerCacheTTL, err = getEnvAsPositiveDuration("SUMMONER_CACHE_TTL", 15*time.Minute); err != nil {
		return Config{}, err
	}

	if err := loadRiot(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadTasks(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.MetricsEnabled, err = getEnvAsBool("METRICS_ENABLED", true); err != nil {
		return Config{}, err
	}
	if appEnv == EnvProd && cfg.InternalJobToken == "" {
		return Config{}, fmt.Errorf("INTERNAL_JOB_TOKEN is required when APP_ENV=%s", EnvProd)
	}

	if err := loadObservability(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadRiot(cfg *Config) error {
	var err error

	if cfg.RiotBaseURL == "" {
		return fmt.Errorf("RIOT_BASE_URL cannot be empty")
	}
	if cfg.RiotTimeout, err = getEnvAsPositiveDuration("RIOT_TIMEOUT", 10*time.Second); err != nil {
		return err
	}
	if cfg.RiotMaxRetries, err = getEnvAsInt("RIOT_MAX_RETRIES", 0); err != nil {
		return fmt.Errorf("parse RIOT_MAX_RETRIES: %w", err)
	}
	if cfg.RiotMaxRetries < 0 {
		return fmt.Errorf("RIOT_MAX_RETRIES must be >= 0")
	}

	if cfg.RiotRateLimitPerSecond, err = getEnvAsFloat("RIOT_RATE_LIMIT_PER_SECOND", 10); err != nil {
		return fmt.Errorf("parse RIOT_RATE_LIMIT_PER_SECOND: %w", err)
	}
	if cfg.RiotRateLimitPerSecond <= 0 {
		return fmt.Errorf("RIOT_RATE_LIMIT_PER_SECOND must be > 0")
	}
	if cfg.RiotRateLimitBurst, err = getEnvAsInt("RIOT_RATE_LIMIT_BURST", 10); err != nil {
		return fmt.Errorf("parse RIOT_RATE_LIMIT_BURST: %w", err)
	}
	if cfg.RiotRateLimitBurst < 1 {
		return fmt.Errorf("RIOT_RATE_LIMIT_BURST must be >= 1")
	}

	if cfg.RiotMaxBatch, err = getEnvAsInt("RIOT_MAX_BATCH", maxRiotBatch); err != nil {
		return fmt.Errorf("parse RIOT_MAX_BATCH: %w", err)
	}
	if cfg.RiotMaxBatch < 1 || cfg.RiotMaxBatch > maxRiotBatch {
		return fmt.Errorf("RIOT_MAX_BATCH must be between 1 and %d", maxRiotBatch)
	}
	if cfg.RiotBatchConcurrency, err = getEnvAsInt("RIOT_BATCH_CONCURRENCY", 2); err != nil {
		return fmt.Errorf("parse RIOT_BATCH_CONCURRENCY: %w", err)
	}
	if cfg.RiotBatchConcurrency < 1 {
		return fmt.Errorf("RIOT_BATCH_CONCURRENCY must be >= 1")
	}

	if cfg.RiotCircuitEnabled, err = getEnvAsBool("RIOT_CIRCUIT_ENABLED", true); err != nil {
		return err
	}
	if cfg.RiotCircuitFailureCount, err = getEnvAsInt("RIOT_CIRCUIT_FAILURE_COUNT", 5); err != nil {
		return fmt.Errorf("parse RIOT_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if cfg.RiotCircuitFailureCount < 1 {
		return fmt.Errorf("RIOT_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	if cfg.RiotCircuitOpenTimeout, err = getEnvAsPositiveDuration("RIOT_CIRCUIT_OPEN_TIMEOUT", 15*time.Second); err != nil {
		return err
	}
	if cfg.RiotCircuitHalfOpenMax, err = getEnvAsInt("RIOT_CIRCUIT_HALF_OPEN_MAX_REQ", 2); err != nil {
		return fmt.Errorf("parse RIOT_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if cfg.RiotCircuitHalfOpenMax < 1 {
		return fmt.Errorf("RIOT_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	return nil
}

func loadTasks(cfg *Config) error {
	var err error

	if cfg.TaskWorkers, err = getEnvAsInt("TASK_WORKERS", 4); err != nil {
		return fmt.Errorf("parse TASK_WORKERS: %w", err)
	}
	if cfg.TaskWorkers < 1 {
		return fmt.Errorf("TASK_WORKERS must be >= 1")
	}
	if cfg.TaskTimeout, err = getEnvAsPositiveDuration("TASK_TIMEOUT", 5*time.Minute); err != nil {
		return err
	}
	if cfg.TaskMaxAttempts, err = getEnvAsInt("TASK_MAX_ATTEMPTS", 3); err != nil {
		return fmt.Errorf("parse TASK_MAX_ATTEMPTS: %w", err)
	}
	if cfg.TaskMaxAttempts < 1 {
		return fmt.Errorf("TASK_MAX_ATTEMPTS must be >= 1")
	}
	if cfg.TaskRetryBackoff, err = getEnvAsDuration("TASK_RETRY_BACKOFF", 5*time.Second); err != nil {
		return err
	}
	if cfg.TaskRetryBackoff < 0 {
		return fmt.Errorf("TASK_RETRY_BACKOFF must be >= 0")
	}
	return nil
}

func loadObservability(cfg *Config) error {
	var err error

	if cfg.UptraceEnabled, err = getEnvAsBool("UPTRACE_ENABLED", false); err != nil {
		return err
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	if cfg.PprofEnabled, err = getEnvAsBool("PPROF_ENABLED", false); err != nil {
		return err
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	if cfg.PyroscopeEnabled, err = getEnvAsBool("PYROSCOPE_ENABLED", false); err != nil {
		return err
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	cfg.PyroscopeAuthToken = strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", ""))
	cfg.PyroscopeBasicAuthUser = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", ""))
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))
	if cfg.PyroscopeUploadRate, err = getEnvAsPositiveDuration("PYROSCOPE_UPLOAD_RATE", 15*time.Second); err != nil {
		return err
	}
	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(value, 64)
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	out, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	out, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func getEnvAsPositiveDuration(key string, fallback time.Duration) (time.Duration, error) {
	out, err := getEnvAsDuration(key, fallback)
	if err != nil {
		return 0, err
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
