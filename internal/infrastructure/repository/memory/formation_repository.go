package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fut-draft/internal/domain/formation"
)

type FormationRepository struct {
	mu         sync.RWMutex
	formations []formation.Formation
	index      map[string]formation.Formation
}

func NewFormationRepository(formations []formation.Formation) *FormationRepository {
	index := make(map[string]formation.Formation, len(formations))
	ordered := make([]formation.Formation, 0, len(formations))
	for _, f := range formations {
		if _, exists := index[f.ID]; exists {
			continue
		}
		f.Slots = append([]string(nil), f.Slots...)
		index[f.ID] = f
		ordered = append(ordered, f)
	}

	return &FormationRepository{formations: ordered, index: index}
}

func (r *FormationRepository) List(_ context.Context) ([]formation.Formation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]formation.Formation, 0, len(r.formations))
	for _, f := range r.formations {
		out = append(out, cloneFormation(f))
	}
	return out, nil
}

func (r *FormationRepository) GetByID(_ context.Context, formationID string) (formation.Formation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.index[formationID]
	if !ok {
		return formation.Formation{}, false, nil
	}
	return cloneFormation(f), true, nil
}

func cloneFormation(f formation.Formation) formation.Formation {
	f.Slots = append([]string(nil), f.Slots...)
	return f
}
