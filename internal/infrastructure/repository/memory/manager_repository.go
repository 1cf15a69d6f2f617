package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fut-draft/internal/domain/manager"
)

type ManagerRepository struct {
	mu       sync.RWMutex
	managers []manager.Manager
	index    map[int]manager.Manager
}

func NewManagerRepository(managers []manager.Manager) *ManagerRepository {
	index := make(map[int]manager.Manager, len(managers))
	ordered := make([]manager.Manager, 0, len(managers))
	for _, m := range managers {
		if _, exists := index[m.ID]; exists {
			continue
		}
		index[m.ID] = m
		ordered = append(ordered, m)
	}

	return &ManagerRepository{managers: ordered, index: index}
}

func (r *ManagerRepository) List(_ context.Context) ([]manager.Manager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]manager.Manager, 0, len(r.managers))
	return append(out, r.managers...), nil
}

func (r *ManagerRepository) GetByID(_ context.Context, managerID int) (manager.Manager, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.index[managerID]
	return m, ok, nil
}
