package riot

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/metrics"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/resilience"
	"github.com/riskibarqy/lol-stats-sync/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL       = "https://{region}.api.pvp.net"
	defaultStaticBaseURL = "https://global.api.pvp.net"
	defaultStaticRegion  = "na"
	regionPlaceholder    = "{region}"

	// MaxBatch is the most summoner ids one by-ids request accepts.
	MaxBatch = 40

	maxResponseBytes = 6 << 20
	maxLoggedBody    = 256
)

// errRiotTransient marks failures that say something about upstream health
// (transport errors, timeouts, 5xx). Only these count against the breaker.
var errRiotTransient = crerr.New("riot transient failure")

type ClientConfig struct {
	HTTPClient         *fasthttp.Client
	BaseURL            string
	StaticBaseURL      string
	StaticRegion       string
	APIKey             string
	Timeout            time.Duration
	MaxRetries         int
	RetryBackoff       time.Duration
	RateLimitPerSecond float64
	RateLimitBurst     int
	Logger             *logging.Logger
	Metrics            *metrics.Metrics
	CircuitBreaker     resilience.CircuitBreakerConfig
}

// Client talks to the legacy Riot REST API. It paces requests with a token
// bucket, collapses identical in-flight requests and guards the upstream
// with a circuit breaker.
type Client struct {
	httpClient    *fasthttp.Client
	baseURL       string
	staticBaseURL string
	staticRegion  string
	apiKey        string
	timeout       time.Duration
	maxRetries    int
	retryBackoff  time.Duration
	limiter       *rate.Limiter
	logger        *logging.Logger
	metrics       *metrics.Metrics
	breaker       *resilience.CircuitBreaker
	flight        singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("riot")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                "lol-stats-sync",
			MaxConnsPerHost:     100,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
			MaxResponseBodySize: maxResponseBytes,
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	staticBaseURL := strings.TrimRight(strings.TrimSpace(cfg.StaticBaseURL), "/")
	if staticBaseURL == "" {
		staticBaseURL = defaultStaticBaseURL
	}
	staticRegion := strings.ToLower(strings.TrimSpace(cfg.StaticRegion))
	if staticRegion == "" {
		staticRegion = defaultStaticRegion
	}

	retryBackoff := cfg.RetryBackoff
	if retryBackoff <= 0 {
		retryBackoff = time.Second
	}

	limit := rate.Inf
	burst := cfg.RateLimitBurst
	if cfg.RateLimitPerSecond > 0 {
		limit = rate.Limit(cfg.RateLimitPerSecond)
	}
	if burst < 1 {
		burst = 1
	}

	c := &Client{
		httpClient:    httpClient,
		baseURL:       baseURL,
		staticBaseURL: staticBaseURL,
		staticRegion:  staticRegion,
		apiKey:        strings.TrimSpace(cfg.APIKey),
		timeout:       timeout,
		maxRetries:    max(cfg.MaxRetries, 0),
		retryBackoff:  retryBackoff,
		limiter:       rate.NewLimiter(limit, burst),
		logger:        logger,
		metrics:       cfg.Metrics,
	}
	c.breaker = resilience.NewCircuitBreaker("riot", cfg.CircuitBreaker,
		resilience.WithFailurePredicate(isRiotCircuitFailure),
		resilience.WithStateChange(c.onBreakerStateChange),
	)
	return c
}

func (c *Client) onBreakerStateChange(name string, from, to resilience.CircuitState) {
	c.logger.Warn("riot circuit breaker state changed", "breaker", name, "from", string(from), "to", string(to))
	c.metrics.CircuitOpen(name, to == resilience.CircuitStateOpen)
}

// doJSON fetches rawURL and decodes the body into target. endpoint labels
// logs and metrics and must not carry ids.
func (c *Client) doJSON(ctx context.Context, endpoint, rawURL string, target any) error {
	out, err, _ := c.flight.Do(rawURL, func() (any, error) {
		var raw []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			raw, reqErr = c.executeRequest(ctx, endpoint, rawURL)
			return reqErr
		})
		return raw, execErr
	})
	if err != nil {
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "riot circuit breaker rejected request", "endpoint", endpoint, "state", string(c.breaker.State()))
			return fmt.Errorf("%w: riot api circuit is open", usecase.ErrUpstreamUnavailable)
		}
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(usecase.ErrUpstreamUnavailable, "decode riot payload endpoint=%s: %v", endpoint, err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, endpoint, rawURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, crerr.Wrapf(usecase.ErrUpstreamRateLimited, "riot local rate limit endpoint=%s: %v", endpoint, err)
		}

		raw, err := c.send(ctx, endpoint, rawURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !isRetryable(err) || attempt == c.maxRetries {
			break
		}

		backoff := time.Duration(attempt+1) * c.retryBackoff
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if !stderrors.Is(lastErr, usecase.ErrNotFound) {
		c.logger.WarnContext(ctx, "riot request failed", "endpoint", endpoint, "url", rawURL, "error", lastErr)
	}
	return nil, lastErr
}

func (c *Client) send(ctx context.Context, endpoint, rawURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rawURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Riot-Token", c.apiKey)
	}

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	started := time.Now()
	err := c.httpClient.DoDeadline(req, resp, deadline)
	elapsed := time.Since(started)
	if err != nil {
		c.metrics.ObserveUpstream(endpoint, 0, elapsed)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, crerr.Mark(
			crerr.Wrapf(usecase.ErrUpstreamUnavailable, "riot %s send request: %v", endpoint, err),
			errRiotTransient,
		)
	}

	status := resp.StatusCode()
	c.metrics.ObserveUpstream(endpoint, status, elapsed)

	switch {
	case status >= 200 && status < 300:
		return append([]byte(nil), resp.Body()...), nil
	case status == fasthttp.StatusNotFound:
		return nil, crerr.Wrapf(usecase.ErrNotFound, "riot %s status=404", endpoint)
	case status == fasthttp.StatusTooManyRequests:
		rateErr := crerr.Wrapf(usecase.ErrUpstreamRateLimited, "riot %s status=429", endpoint)
		return nil, usecase.WithRetryAfter(rateErr, parseRetryAfter(resp.Header.Peek("Retry-After")))
	case status >= 500:
		return nil, crerr.Mark(
			crerr.Wrapf(usecase.ErrUpstreamUnavailable, "riot %s status=%d body=%s", endpoint, status, abbreviateBody(resp.Body())),
			errRiotTransient,
		)
	default:
		return nil, crerr.Newf("riot %s status=%d body=%s", endpoint, status, abbreviateBody(resp.Body()))
	}
}

// regionalURL builds {base}/api/lol/{region}{path} with the region also
// substituted into the host.
func (c *Client) regionalURL(region, path string) string {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	_, _ = bb.WriteString(strings.ReplaceAll(c.baseURL, regionPlaceholder, region))
	_, _ = bb.WriteString("/api/lol/")
	_, _ = bb.WriteString(region)
	_, _ = bb.WriteString(path)
	return bb.String()
}

func (c *Client) staticURL(path string) string {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	_, _ = bb.WriteString(c.staticBaseURL)
	_, _ = bb.WriteString("/api/lol/static-data/")
	_, _ = bb.WriteString(c.staticRegion)
	_, _ = bb.WriteString(path)
	return bb.String()
}

// joinIDs renders ids as the comma separated list the legacy endpoints take.
func joinIDs(ids []int64) string {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	buf := bb.B[:0]
	for i, id := range ids {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, id, 10)
	}
	bb.B = buf
	return bb.String()
}

func isRiotCircuitFailure(err error) bool {
	return crerr.Is(err, errRiotTransient)
}

func isRetryable(err error) bool {
	return crerr.Is(err, errRiotTransient) || stderrors.Is(err, usecase.ErrUpstreamRateLimited)
}

func parseRetryAfter(raw []byte) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) > maxLoggedBody {
		return text[:maxLoggedBody] + "..."
	}
	return text
}
