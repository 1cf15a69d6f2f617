package cache

import (
	"context"
	"strconv"
	"strings"

	"github.com/riskibarqy/fut-draft/internal/domain/formation"
	"github.com/riskibarqy/fut-draft/internal/domain/manager"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
	basecache "github.com/riskibarqy/fut-draft/internal/platform/cache"
)

const (
	playerPrefix    = "player:"
	managerPrefix   = "manager:"
	formationPrefix = "formation:"
)

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	items, err := basecache.Load(ctx, r.cache, playerPrefix+"list", func(ctx context.Context) ([]player.Player, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) Find(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	items, err := basecache.Load(ctx, r.cache, playerFilterKey(filter), func(ctx context.Context) ([]player.Player, error) {
		items, err := r.next.Find(ctx, filter)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int) (player.Player, bool, error) {
	key := playerPrefix + "id:" + strconv.Itoa(playerID)
	cached, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) (cachedPlayerByID, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return cachedPlayerByID{}, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	return cached.value, cached.exists, nil
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

func playerFilterKey(filter player.Filter) string {
	parts := []string{
		strings.ToLower(filter.Position),
		strings.ToLower(filter.Club),
		strings.ToLower(filter.League),
		strings.ToLower(filter.Nationality),
	}
	return playerPrefix + "find:" + strings.Join(parts, "|")
}

type ManagerRepository struct {
	next  manager.Repository
	cache *basecache.Store
}

func NewManagerRepository(next manager.Repository, cache *basecache.Store) *ManagerRepository {
	return &ManagerRepository{next: next, cache: cache}
}

func (r *ManagerRepository) List(ctx context.Context) ([]manager.Manager, error) {
	items, err := basecache.Load(ctx, r.cache, managerPrefix+"list", func(ctx context.Context) ([]manager.Manager, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]manager.Manager(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]manager.Manager(nil), items...), nil
}

func (r *ManagerRepository) GetByID(ctx context.Context, managerID int) (manager.Manager, bool, error) {
	key := managerPrefix + "id:" + strconv.Itoa(managerID)
	cached, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) (cachedManagerByID, error) {
		item, exists, err := r.next.GetByID(ctx, managerID)
		if err != nil {
			return cachedManagerByID{}, err
		}
		return cachedManagerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return manager.Manager{}, false, err
	}

	return cached.value, cached.exists, nil
}

type cachedManagerByID struct {
	value  manager.Manager
	exists bool
}

type FormationRepository struct {
	next  formation.Repository
	cache *basecache.Store
}

func NewFormationRepository(next formation.Repository, cache *basecache.Store) *FormationRepository {
	return &FormationRepository{next: next, cache: cache}
}

func (r *FormationRepository) List(ctx context.Context) ([]formation.Formation, error) {
	items, err := basecache.Load(ctx, r.cache, formationPrefix+"list", func(ctx context.Context) ([]formation.Formation, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return cloneFormations(items), nil
	})
	if err != nil {
		return nil, err
	}

	return cloneFormations(items), nil
}

func (r *FormationRepository) GetByID(ctx context.Context, formationID string) (formation.Formation, bool, error) {
	key := formationPrefix + "id:" + formationID
	cached, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) (cachedFormationByID, error) {
		item, exists, err := r.next.GetByID(ctx, formationID)
		if err != nil {
			return cachedFormationByID{}, err
		}
		return cachedFormationByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return formation.Formation{}, false, err
	}

	item := cached.value
	item.Slots = append([]string(nil), item.Slots...)
	return item, cached.exists, nil
}

type cachedFormationByID struct {
	value  formation.Formation
	exists bool
}

func cloneFormations(items []formation.Formation) []formation.Formation {
	out := make([]formation.Formation, 0, len(items))
	for _, item := range items {
		item.Slots = append([]string(nil), item.Slots...)
		out = append(out, item)
	}
	return out
}
