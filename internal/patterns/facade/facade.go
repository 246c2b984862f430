// Package facade demonstrates a single entry point over several subsystems.
// TodoFacade hides the repository lookup, the update, and the archive write
// behind one call, the way the service layer fronts its dependencies.
package facade

import (
	"context"
	"fmt"
	"strings"

	"patternlab/internal/model"
	"patternlab/internal/repository"
	"patternlab/internal/repository/memory"
	"patternlab/internal/storage"
)

// TodoFacade fronts the todo repository and the archive store.
type TodoFacade struct {
	repo  repository.TodoRepository
	store storage.Storage
}

// NewTodoFacade wires the subsystems behind the facade.
func NewTodoFacade(repo repository.TodoRepository, store storage.Storage) *TodoFacade {
	return &TodoFacade{repo: repo, store: store}
}

// CompleteAndArchive marks a todo done and writes an archive record, in one
// call. Callers never touch the repository or the store directly.
func (f *TodoFacade) CompleteAndArchive(ctx context.Context, id string) (*model.Todo, string, error) {
	todo, err := f.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("find todo: %w", err)
	}

	todo.Completed = true
	updated, err := f.repo.Update(ctx, todo)
	if err != nil {
		return nil, "", fmt.Errorf("complete todo: %w", err)
	}

	record := fmt.Sprintf("done: %s (owner %s)\n", updated.Title, updated.Owner)
	key := "archive/" + updated.ID + ".txt"
	info, err := f.store.Put(ctx, key, strings.NewReader(record), storage.PutObjectOptions{
		Size:        int64(len(record)),
		ContentType: "text/plain",
	})
	if err != nil {
		return nil, "", fmt.Errorf("archive todo: %w", err)
	}

	return updated, info.Key, nil
}

// Demo completes a seeded todo through the facade.
func Demo(ctx context.Context) ([]string, error) {
	repo := memory.NewTodoMemory()
	store := storage.NewMemory()
	if _, err := repo.Create(ctx, &model.Todo{ID: "todo-1", Owner: "alice", Title: "ship the catalog"}); err != nil {
		return nil, err
	}

	f := NewTodoFacade(repo, store)

	out := []string{"facade: one call hides lookup, update, and archive write"}

	todo, key, err := f.CompleteAndArchive(ctx, "todo-1")
	if err != nil {
		return nil, err
	}

	out = append(out,
		fmt.Sprintf("facade: todo %q completed=%t", todo.Title, todo.Completed),
		fmt.Sprintf("facade: archived to %s", key),
		"facade: the caller touched only the facade",
	)
	return out, nil
}
