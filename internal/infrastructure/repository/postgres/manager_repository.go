package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fut-draft/internal/domain/manager"
	qb "github.com/riskibarqy/fut-draft/internal/platform/querybuilder"
)

type ManagerRepository struct {
	db *sqlx.DB
}

var managerSelectColumns = selectColumns(managerTableModel{})

func NewManagerRepository(db *sqlx.DB) *ManagerRepository {
	return &ManagerRepository{db: db}
}

func (r *ManagerRepository) List(ctx context.Context) ([]manager.Manager, error) {
	query, args, err := qb.Select(managerSelectColumns...).From("managers").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select managers query: %w", err)
	}

	var rows []managerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select managers: %w", err)
	}

	out := make([]manager.Manager, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *ManagerRepository) GetByID(ctx context.Context, managerID int) (manager.Manager, bool, error) {
	query, args, err := qb.Select(managerSelectColumns...).From("managers").
		Where(qb.Eq("id", managerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return manager.Manager{}, false, fmt.Errorf("build get manager query: %w", err)
	}

	var row managerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return manager.Manager{}, false, nil
		}
		return manager.Manager{}, false, fmt.Errorf("get manager id=%d: %w", managerID, err)
	}

	return row.toDomain(), true, nil
}
