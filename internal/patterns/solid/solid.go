// Package solid illustrates the SOLID principles with the repo's own
// abstractions instead of invented ones. The working piece is a report that
// depends on a segregated read-only slice of TodoRepository.
package solid

import (
	"context"
	"fmt"

	"patternlab/internal/model"
	"patternlab/internal/repository"
	"patternlab/internal/repository/memory"
)

// TodoReader is the narrow interface the report needs: interface segregation
// in practice. Any TodoRepository satisfies it implicitly.
type TodoReader interface {
	List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Todo], error)
}

// OpenTodoCount counts incomplete todos for an owner. It depends on the
// TodoReader abstraction, never on a concrete repository: dependency
// inversion keeps this high-level policy free of persistence detail.
func OpenTodoCount(ctx context.Context, r TodoReader, owner string) (int, error) {
	res, err := r.List(ctx, repository.PageQuery{Limit: 1000})
	if err != nil {
		return 0, err
	}
	count := 0
	for _, t := range res.Items {
		if t.Owner == owner && !t.Completed {
			count++
		}
	}
	return count, nil
}

// Demo seeds a repository and walks the five principles against real types.
func Demo(ctx context.Context) ([]string, error) {
	repo := memory.NewTodoMemory()
	seed := []model.Todo{
		{ID: "s-1", Owner: "alice", Title: "draft article"},
		{ID: "s-2", Owner: "alice", Title: "review demo", Completed: true},
		{ID: "s-3", Owner: "alice", Title: "publish catalog"},
		{ID: "s-4", Owner: "bob", Title: "unrelated"},
	}
	for i := range seed {
		if _, err := repo.Create(ctx, &seed[i]); err != nil {
			return nil, err
		}
	}

	count, err := OpenTodoCount(ctx, repo, "alice")
	if err != nil {
		return nil, err
	}

	return []string{
		"solid: single responsibility - repositories persist, services decide",
		"solid: open/closed - new storage backends extend the factory, callers unchanged",
		"solid: liskov - memory and postgres repositories substitute for each other",
		"solid: interface segregation - the report depends on a reader, not the full repository",
		fmt.Sprintf("solid: report sees %d open todos for alice", count),
		"solid: dependency inversion - high-level policy imports only interfaces",
	}, nil
}
