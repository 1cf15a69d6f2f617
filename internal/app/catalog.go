package app

import (
	"context"
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fut-draft/internal/config"
	"github.com/riskibarqy/fut-draft/internal/domain/formation"
	"github.com/riskibarqy/fut-draft/internal/domain/manager"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
	cacherepo "github.com/riskibarqy/fut-draft/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fut-draft/internal/infrastructure/repository/guarded"
	"github.com/riskibarqy/fut-draft/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fut-draft/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/fut-draft/internal/platform/cache"
	"github.com/riskibarqy/fut-draft/internal/platform/logging"
	"github.com/riskibarqy/fut-draft/internal/platform/resilience"
)

// CatalogRepositories are the read-only catalogs a draft runs against.
type CatalogRepositories struct {
	Players    player.Repository
	Managers   manager.Repository
	Formations formation.Repository

	closer io.Closer
}

func (c *CatalogRepositories) Close() error {
	if c == nil || c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

func newMemoryCatalog(catalog memory.Catalog) *CatalogRepositories {
	return &CatalogRepositories{
		Players:    memory.NewPlayerRepository(catalog.Players),
		Managers:   memory.NewManagerRepository(catalog.Managers),
		Formations: memory.NewFormationRepository(catalog.Formations),
	}
}

// OpenCatalog builds the catalogs selected by CATALOG_SOURCE. The postgres source is wrapped in a
// circuit breaker and then a TTL cache when those are enabled.
func OpenCatalog(ctx context.Context, cfg config.Config, logger *logging.Logger) (*CatalogRepositories, error) {
	switch cfg.CatalogSource {
	case config.CatalogSourceMemory, "":
		logger.InfoContext(ctx, "using built-in catalog")
		return newMemoryCatalog(memory.SeedCatalog()), nil
	case config.CatalogSourceFile:
		catalog, err := memory.LoadCatalogFile(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "using catalog file", "path", cfg.CatalogFile, "players", len(catalog.Players))
		return newMemoryCatalog(catalog), nil
	case config.CatalogSourcePostgres:
		return openPostgresCatalog(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported catalog source %q", cfg.CatalogSource)
	}
}

func openPostgresCatalog(ctx context.Context, cfg config.Config, logger *logging.Logger) (*CatalogRepositories, error) {
	db, err := openDB(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.CatalogSeedEnabled {
		if err := postgres.BootstrapSeed(ctx, db, memory.SeedCatalog()); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	repos := decorateCatalog(cfg, &CatalogRepositories{
		Players:    postgres.NewPlayerRepository(db),
		Managers:   postgres.NewManagerRepository(db),
		Formations: postgres.NewFormationRepository(db),
	}, logger)
	repos.closer = closerFunc(func() error { return closeDB(db) })

	logger.InfoContext(ctx, "using postgres catalog",
		"cache_enabled", cfg.CacheEnabled,
		"circuit_enabled", cfg.CatalogCircuitEnabled,
	)
	return repos, nil
}

// decorateCatalog applies breaker then cache, so cache hits never touch the breaker.
func decorateCatalog(cfg config.Config, repos *CatalogRepositories, logger *logging.Logger) *CatalogRepositories {
	if cfg.CatalogCircuitEnabled {
		breaker := resilience.NewCircuitBreaker(resilience.BreakerConfig{
			Name:             "catalog",
			FailureThreshold: cfg.CatalogCircuitFailures,
			OpenTimeout:      cfg.CatalogCircuitOpenFor,
			HalfOpenProbes:   cfg.CatalogCircuitHalfOpen,
			OnStateChange: func(name string, from, to resilience.CircuitState) {
				logger.Warn("circuit breaker state changed", "breaker", name, "from", string(from), "to", string(to))
			},
		}, nil)
		repos.Players = guarded.NewPlayerRepository(repos.Players, breaker)
		repos.Managers = guarded.NewManagerRepository(repos.Managers, breaker)
		repos.Formations = guarded.NewFormationRepository(repos.Formations, breaker)
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.Players = cacherepo.NewPlayerRepository(repos.Players, store)
		repos.Managers = cacherepo.NewManagerRepository(repos.Managers, store)
		repos.Formations = cacherepo.NewFormationRepository(repos.Formations, store)
	}
	return repos
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func closeDB(db *sqlx.DB) error {
	if err := db.Close(); err != nil {
		return fmt.Errorf("close catalog db: %w", err)
	}
	return nil
}
