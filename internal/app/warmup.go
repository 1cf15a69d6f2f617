package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/fut-draft/internal/platform/logging"
)

type warmupTask struct {
	name string
	run  func(context.Context) (int, error)
}

// WarmCatalog loads every catalog once through the configured decorators so the first draft
// click does not pay for a cold cache. Empty catalogs are logged, not rejected.
func WarmCatalog(ctx context.Context, repos *CatalogRepositories, workers int, logger *logging.Logger) error {
	tasks := []warmupTask{
		{name: "players", run: func(ctx context.Context) (int, error) {
			items, err := repos.Players.List(ctx)
			return len(items), err
		}},
		{name: "managers", run: func(ctx context.Context) (int, error) {
			items, err := repos.Managers.List(ctx)
			return len(items), err
		}},
		{name: "formations", run: func(ctx context.Context) (int, error) {
			items, err := repos.Formations.List(ctx)
			return len(items), err
		}},
	}
	if workers < 1 {
		workers = 1
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return fmt.Errorf("create warmup pool: %w", err)
	}
	defer pool.Release()

	var (
		mu   sync.Mutex
		errs error
		wg   sync.WaitGroup
	)
	for _, task := range tasks {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			start := time.Now()
			count, err := task.run(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = errors.CombineErrors(errs, errors.Wrapf(err, "warm %s", task.name))
				return
			}
			if count == 0 {
				logger.WarnContext(ctx, "catalog is empty", "catalog", task.name)
				return
			}
			logger.InfoContext(ctx, "catalog warmed",
				"catalog", task.name,
				"items", count,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		}); err != nil {
			wg.Done()
			return fmt.Errorf("submit warmup task: %w", err)
		}
	}

	wg.Wait()
	return errs
}
