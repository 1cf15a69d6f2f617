package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fut-draft/internal/domain/formation"
	qb "github.com/riskibarqy/fut-draft/internal/platform/querybuilder"
)

type FormationRepository struct {
	db *sqlx.DB
}

var formationSelectColumns = selectColumns(formationTableModel{})

func NewFormationRepository(db *sqlx.DB) *FormationRepository {
	return &FormationRepository{db: db}
}

func (r *FormationRepository) List(ctx context.Context) ([]formation.Formation, error) {
	query, args, err := qb.Select(formationSelectColumns...).From("formations").
		OrderBy("seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select formations query: %w", err)
	}

	var rows []formationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select formations: %w", err)
	}

	out := make([]formation.Formation, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *FormationRepository) GetByID(ctx context.Context, formationID string) (formation.Formation, bool, error) {
	query, args, err := qb.Select(formationSelectColumns...).From("formations").
		Where(qb.Eq("id", formationID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return formation.Formation{}, false, fmt.Errorf("build get formation query: %w", err)
	}

	var row formationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return formation.Formation{}, false, nil
		}
		return formation.Formation{}, false, fmt.Errorf("get formation id=%s: %w", formationID, err)
	}

	return row.toDomain(), true, nil
}
