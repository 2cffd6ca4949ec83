package httpapi

import (
	"net/http"

	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
)

type RouterConfig struct {
	ServiceName        string
	CORSAllowedOrigins []string
	InternalJobToken   string
}

// NewRouter wires every route behind tracing, request logging, CORS and
// panic recovery, outermost first.
func NewRouter(handler *Handler, cfg RouterConfig, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "lol-stats-sync"
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerSummonerRoutes(mux, handler)
	registerCatalogRoutes(mux, handler)
	registerGameRoutes(mux, handler)
	registerLeagueTeamRoutes(mux, handler)
	registerTaskRoutes(mux, handler)
	registerInternalJobRoutes(mux, handler, cfg.InternalJobToken)

	return RequestTracing(cfg.ServiceName, RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux))))
}
