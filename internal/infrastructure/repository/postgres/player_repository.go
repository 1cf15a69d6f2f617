package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
	qb "github.com/riskibarqy/fut-draft/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = selectColumns(playerTableModel{})

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return r.Find(ctx, player.Filter{})
}

func (r *PlayerRepository) Find(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	query, args, err := findPlayersQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player id=%d: %w", playerID, err)
	}

	return row.toDomain(), true, nil
}

// findPlayersQuery keeps catalog order (id) so sampling over the result stays reproducible.
func findPlayersQuery(filter player.Filter) (string, []any, error) {
	conditions := make([]qb.Condition, 0, 4)
	if filter.Position != "" {
		conditions = append(conditions, qb.Or(
			qb.Eq("position", filter.Position),
			qb.Any("position_alternatives", filter.Position),
		))
	}
	if filter.Club != "" {
		conditions = append(conditions, qb.EqFold("club", filter.Club))
	}
	if filter.League != "" {
		conditions = append(conditions, qb.EqFold("league", filter.League))
	}
	if filter.Nationality != "" {
		conditions = append(conditions, qb.EqFold("nationality", filter.Nationality))
	}

	return qb.Select(playerSelectColumns...).From("players").
		Where(conditions...).
		OrderBy("id").
		ToSQL()
}
