package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fut-draft/internal/domain/player"
)

// PlayerRepository keeps the player catalog in catalog order.
type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	index   map[int]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	index := make(map[int]player.Player, len(players))
	ordered := make([]player.Player, 0, len(players))
	for _, p := range players {
		if _, exists := index[p.ID]; exists {
			continue
		}
		index[p.ID] = p
		ordered = append(ordered, p)
	}

	return &PlayerRepository{
		players: ordered,
		index:   index,
	}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	out = append(out, r.players...)

	return out, nil
}

func (r *PlayerRepository) Find(_ context.Context, filter player.Filter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, p := range r.players {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.index[playerID]
	return p, ok, nil
}
