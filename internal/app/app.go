package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/lol-stats-sync/internal/config"
	"github.com/riskibarqy/lol-stats-sync/internal/interfaces/httpapi"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/metrics"
	"github.com/riskibarqy/lol-stats-sync/internal/usecase"
)

// Runtime is the assembled service: the HTTP server plus the resources that
// have to be released after it stops.
type Runtime struct {
	Server *http.Server

	tasks *usecase.TaskService
	db    *sqlx.DB
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger, m *metrics.Metrics) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, db, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	provider := buildRiotProvider(cfg, logger, m)
	if provider == nil {
		logger.Warn("RIOT_API_KEY is empty, upstream fetches are disabled")
	}

	summoners := usecase.NewSummonerService(repos.summoners, provider, cfg.SummonerCacheTTL, logger, m)
	resolver := usecase.NewParticipantResolver(repos.summoners, provider, usecase.ParticipantResolverConfig{
		MaxBatch:    cfg.RiotMaxBatch,
		Concurrency: cfg.RiotBatchConcurrency,
	}, logger, m)
	matches := usecase.NewMatchIngestionService(repos.summoners, repos.games, repos.catalog, provider, resolver, logger, m)
	leagues := usecase.NewLeagueSyncService(repos.leagues, provider, logger)
	teams := usecase.NewTeamSyncService(repos.teams, repos.summoners, provider, logger)
	catalogSvc := usecase.NewCatalogService(repos.catalog, provider, logger, m)
	syncer := usecase.NewSummonerSyncService(summoners, matches, leagues, teams, logger)

	tasks, err := usecase.NewTaskService(repos.tasks, nil, usecase.TaskConfig{
		Workers:      cfg.TaskWorkers,
		Timeout:      cfg.TaskTimeout,
		MaxAttempts:  cfg.TaskMaxAttempts,
		RetryBackoff: cfg.TaskRetryBackoff,
	}, logger, m)
	if err != nil {
		closeDB(db, logger)
		return nil, fmt.Errorf("build task service: %w", err)
	}

	handler := httpapi.NewHandler(httpapi.Services{
		Summoners: summoners,
		Syncer:    syncer,
		Matches:   matches,
		Leagues:   leagues,
		Teams:     teams,
		Catalog:   catalogSvc,
		Tasks:     tasks,
	}, m, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		ServiceName:        cfg.ServiceName,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		InternalJobToken:   cfg.InternalJobToken,
	}, logger)

	return &Runtime{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		tasks: tasks,
		db:    db,
	}, nil
}

// Shutdown stops accepting requests, waits for in-flight tasks and closes the
// database pool.
func (r *Runtime) Shutdown(ctx context.Context) error {
	var errs []error
	if err := r.Server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	r.tasks.Close()
	if r.db != nil {
		if err := r.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}
