package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/lol-stats-sync/internal/config"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/catalog"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/game"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/league"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/summoner"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/task"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/team"
	"github.com/riskibarqy/lol-stats-sync/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/lol-stats-sync/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/lol-stats-sync/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/lol-stats-sync/internal/platform/cache"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const dbPingTimeout = 5 * time.Second

type repositories struct {
	summoners summoner.Repository
	games     game.Repository
	catalog   catalog.Repository
	leagues   league.Repository
	teams     team.Repository
	tasks     task.Repository
}

// buildRepositories picks Postgres when DB_URL is set and the in-memory
// stores otherwise. The returned db is nil in memory mode.
func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	var (
		repos repositories
		db    *sqlx.DB
	)

	if cfg.InMemory() {
		logger.Warn("DB_URL is empty, using in-memory repositories")
		repos = repositories{
			summoners: memory.NewSummonerRepository(),
			games:     memory.NewGameRepository(),
			catalog:   memory.NewCatalogRepository(),
			leagues:   memory.NewLeagueRepository(),
			teams:     memory.NewTeamRepository(),
			tasks:     memory.NewTaskRepository(),
		}
	} else {
		var err error
		db, err = openDB(cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		logger.Info("database connected", "db", dbNameFromURL(cfg.DBURL))
		repos = repositories{
			summoners: postgres.NewSummonerRepository(db),
			games:     postgres.NewGameRepository(db),
			catalog:   postgres.NewCatalogRepository(db),
			leagues:   postgres.NewLeagueRepository(db),
			teams:     postgres.NewTeamRepository(db),
			tasks:     postgres.NewTaskRepository(db),
		}
	}

	if cfg.CacheEnabled {
		repos.catalog = cache.NewCatalogRepository(repos.catalog, basecache.NewStore(cfg.CacheTTL))
	}

	return repos, db, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

func closeDB(db *sqlx.DB, logger *logging.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Warn("close database failed", "error", err)
	}
}
