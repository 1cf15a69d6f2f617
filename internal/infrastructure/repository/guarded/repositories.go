// Package guarded wraps catalog repositories with a circuit breaker so a failing database is
// reported as unavailable instead of being hammered on every draft click.
package guarded

import (
	"context"

	"github.com/riskibarqy/fut-draft/internal/domain/formation"
	"github.com/riskibarqy/fut-draft/internal/domain/manager"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
	"github.com/riskibarqy/fut-draft/internal/platform/resilience"
)

func run[T any](ctx context.Context, breaker *resilience.CircuitBreaker, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		out, err = fn(ctx)
		return err
	})
	return out, err
}

type lookup[T any] struct {
	value  T
	exists bool
}

type PlayerRepository struct {
	next    player.Repository
	breaker *resilience.CircuitBreaker
}

func NewPlayerRepository(next player.Repository, breaker *resilience.CircuitBreaker) *PlayerRepository {
	return &PlayerRepository{next: next, breaker: breaker}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return run(ctx, r.breaker, r.next.List)
}

func (r *PlayerRepository) Find(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	return run(ctx, r.breaker, func(ctx context.Context) ([]player.Player, error) {
		return r.next.Find(ctx, filter)
	})
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int) (player.Player, bool, error) {
	res, err := run(ctx, r.breaker, func(ctx context.Context) (lookup[player.Player], error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		return lookup[player.Player]{value: item, exists: exists}, err
	})
	return res.value, res.exists, err
}

type ManagerRepository struct {
	next    manager.Repository
	breaker *resilience.CircuitBreaker
}

func NewManagerRepository(next manager.Repository, breaker *resilience.CircuitBreaker) *ManagerRepository {
	return &ManagerRepository{next: next, breaker: breaker}
}

func (r *ManagerRepository) List(ctx context.Context) ([]manager.Manager, error) {
	return run(ctx, r.breaker, r.next.List)
}

func (r *ManagerRepository) GetByID(ctx context.Context, managerID int) (manager.Manager, bool, error) {
	res, err := run(ctx, r.breaker, func(ctx context.Context) (lookup[manager.Manager], error) {
		item, exists, err := r.next.GetByID(ctx, managerID)
		return lookup[manager.Manager]{value: item, exists: exists}, err
	})
	return res.value, res.exists, err
}

type FormationRepository struct {
	next    formation.Repository
	breaker *resilience.CircuitBreaker
}

func NewFormationRepository(next formation.Repository, breaker *resilience.CircuitBreaker) *FormationRepository {
	return &FormationRepository{next: next, breaker: breaker}
}

func (r *FormationRepository) List(ctx context.Context) ([]formation.Formation, error) {
	return run(ctx, r.breaker, r.next.List)
}

func (r *FormationRepository) GetByID(ctx context.Context, formationID string) (formation.Formation, bool, error) {
	res, err := run(ctx, r.breaker, func(ctx context.Context) (lookup[formation.Formation], error) {
		item, exists, err := r.next.GetByID(ctx, formationID)
		return lookup[formation.Formation]{value: item, exists: exists}, err
	})
	return res.value, res.exists, err
}
