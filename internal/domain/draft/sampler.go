package draft

import (
	"math/rand/v2"

	"github.com/riskibarqy/fut-draft/internal/domain/manager"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// DefaultShuffler uses the process-wide random source.
func DefaultShuffler() Shuffler {
	return globalShuffler{}
}

// Sample returns up to limit shuffled players eligible for slotID that are not already assigned.
// An occupied slot or the manager slot yields an empty pool.
func Sample(slotID string, assignments map[string]player.Player, catalog []player.Player, shuffler Shuffler, limit int) []player.Player {
	if _, occupied := assignments[slotID]; occupied || KindOf(slotID) == SlotKindManager {
		return []player.Player{}
	}

	used := make(map[int]struct{}, len(assignments))
	for _, assigned := range assignments {
		used[assigned.ID] = struct{}{}
	}

	seen := make(map[int]struct{}, len(catalog))
	eligible := make([]player.Player, 0, len(catalog))
	for _, candidate := range catalog {
		if _, ok := used[candidate.ID]; ok {
			continue
		}
		if _, ok := seen[candidate.ID]; ok {
			continue
		}
		if !Accepts(slotID, candidate) {
			continue
		}
		seen[candidate.ID] = struct{}{}
		eligible = append(eligible, candidate)
	}

	return shuffleTruncate(eligible, shuffler, limit)
}

// SampleManagers returns up to limit shuffled managers, deduplicated by id.
func SampleManagers(catalog []manager.Manager, shuffler Shuffler, limit int) []manager.Manager {
	seen := make(map[int]struct{}, len(catalog))
	out := make([]manager.Manager, 0, len(catalog))
	for _, item := range catalog {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}

	return shuffleTruncate(out, shuffler, limit)
}

// SampleCaptains returns up to limit shuffled players who can start in at least one slot of layout.
func SampleCaptains(layout []string, catalog []player.Player, shuffler Shuffler, limit int) []player.Player {
	positions := make(map[string]struct{}, len(layout))
	for _, slotID := range layout {
		if KindOf(slotID) != SlotKindStarter {
			continue
		}
		positions[BasePosition(slotID)] = struct{}{}
	}
	if len(positions) == 0 {
		return []player.Player{}
	}

	seen := make(map[int]struct{}, len(catalog))
	out := make([]player.Player, 0, len(catalog))
	for _, candidate := range catalog {
		if _, ok := seen[candidate.ID]; ok {
			continue
		}
		if !playsAny(candidate, positions) {
			continue
		}
		seen[candidate.ID] = struct{}{}
		out = append(out, candidate)
	}

	return shuffleTruncate(out, shuffler, limit)
}

func playsAny(p player.Player, positions map[string]struct{}) bool {
	if _, ok := positions[p.Position]; ok {
		return true
	}
	for _, alt := range p.AlternativePositions {
		if _, ok := positions[alt]; ok {
			return true
		}
	}
	return false
}

func shuffleTruncate[T any](items []T, shuffler Shuffler, limit int) []T {
	if shuffler == nil {
		shuffler = DefaultShuffler()
	}
	shuffler.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	limit = poolLimit(limit)
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
