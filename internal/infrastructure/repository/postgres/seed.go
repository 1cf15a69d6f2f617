package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fut-draft/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/fut-draft/internal/platform/querybuilder"
)

const seedConflictSuffix = "ON CONFLICT (id) DO NOTHING"

type seedStatement struct {
	label string
	query string
	args  []any
}

// BootstrapSeed loads catalog into empty catalog tables. A database that already has players is left untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, catalog memory.Catalog) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players`); err != nil {
		return fmt.Errorf("count players for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	statements, err := seedStatements(catalog)
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
			return fmt.Errorf("seed %s: %w", stmt.label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

func seedStatements(catalog memory.Catalog) ([]seedStatement, error) {
	out := make([]seedStatement, 0, len(catalog.Formations)+len(catalog.Managers)+len(catalog.Players))

	add := func(table, label string, model any) error {
		query, args, err := qb.InsertModel(table, model, seedConflictSuffix)
		if err != nil {
			return fmt.Errorf("build seed %s query: %w", label, err)
		}
		out = append(out, seedStatement{label: label, query: query, args: args})
		return nil
	}

	for _, f := range catalog.Formations {
		if err := add("formations", "formation "+f.ID, newFormationTableModel(f)); err != nil {
			return nil, err
		}
	}
	for _, m := range catalog.Managers {
		if err := add("managers", fmt.Sprintf("manager %d", m.ID), newManagerTableModel(m)); err != nil {
			return nil, err
		}
	}
	for _, p := range catalog.Players {
		if err := add("players", fmt.Sprintf("player %d", p.ID), newPlayerTableModel(p)); err != nil {
			return nil, err
		}
	}

	return out, nil
}
