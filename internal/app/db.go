package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/fut-draft/internal/config"
	"github.com/riskibarqy/fut-draft/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fut-draft/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fut-draft/internal/platform/logging"
)

const dbPingTimeout = 5 * time.Second

// DatabaseURL is the catalog database URL with driver tweaks from config applied.
func DatabaseURL(cfg config.Config) string {
	return normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
}

func openDB(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	if cfg.DBURL == "" {
		return nil, fmt.Errorf("DB_URL is required for the postgres catalog")
	}

	dsn := DatabaseURL(cfg)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping catalog db: %w", err)
	}

	logger.InfoContext(ctx, "catalog db connected", "db_name", dbNameFromURL(dsn))
	return db, nil
}

// SeedCatalogDatabase fills empty catalog tables with the configured catalog, the JSON file when
// CATALOG_FILE is set and the built-in one otherwise.
func SeedCatalogDatabase(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	catalog := memory.SeedCatalog()
	if cfg.CatalogFile != "" {
		loaded, err := memory.LoadCatalogFile(cfg.CatalogFile)
		if err != nil {
			return err
		}
		catalog = loaded
	}

	db, err := openDB(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.BootstrapSeed(ctx, db, catalog); err != nil {
		return err
	}
	logger.InfoContext(ctx, "catalog seed finished",
		"players", len(catalog.Players),
		"managers", len(catalog.Managers),
		"formations", len(catalog.Formations),
	)
	return nil
}
