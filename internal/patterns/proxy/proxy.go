// Package proxy demonstrates a surrogate with the same interface as the real
// object. The subject is the repo's caching read-through proxy for
// TodoRepository: callers use repository.TodoRepository either way.
package proxy

import (
	"context"
	"fmt"

	"patternlab/internal/model"
	"patternlab/internal/repository"
	"patternlab/internal/repository/memory"
	repoproxy "patternlab/internal/repository/proxy"
)

// Demo reads through the caching proxy twice and reports the hit/miss stats.
func Demo(ctx context.Context) ([]string, error) {
	backing := memory.NewTodoMemory()
	if _, err := backing.Create(ctx, &model.Todo{ID: "todo-1", Owner: "alice", Title: "read about proxies"}); err != nil {
		return nil, err
	}

	cached := repoproxy.NewCachingTodoRepository(backing)

	// The caller sees only the shared interface.
	var repo repository.TodoRepository = cached

	out := []string{"proxy: same interface in front of the real repository"}

	if _, err := repo.FindByID(ctx, "todo-1"); err != nil {
		return nil, err
	}
	hits, misses := cached.Stats()
	out = append(out, fmt.Sprintf("proxy: first read -> hits=%d misses=%d", hits, misses))

	if _, err := repo.FindByID(ctx, "todo-1"); err != nil {
		return nil, err
	}
	hits, misses = cached.Stats()
	out = append(out, fmt.Sprintf("proxy: second read -> hits=%d misses=%d", hits, misses))

	if err := repo.Delete(ctx, "todo-1"); err != nil {
		return nil, err
	}
	out = append(out,
		"proxy: delete passed through and evicted the cache entry",
		"proxy: the caller never learned a proxy was involved",
	)
	return out, nil
}
