package memory

import (
	"context"
	"database/sql"
	"sync"

	"patternlab/internal/model"
	"patternlab/internal/repository"
)

// TodoMemory is an in-memory implementation of repository.TodoRepository.
// It backs the pattern demos and local development, and mirrors the error
// contract of the PostgreSQL implementation (sql.ErrNoRows for missing rows,
// idempotent Delete). Safe for concurrent use.
type TodoMemory struct {
	mu    sync.RWMutex
	byID  map[string]model.Todo
	order []string // insertion order, newest last
}

// NewTodoMemory creates an empty in-memory todo repository.
func NewTodoMemory() *TodoMemory {
	return &TodoMemory{byID: make(map[string]model.Todo)}
}

var _ repository.TodoRepository = (*TodoMemory)(nil)

// Create stores a copy of the todo. The caller provides the ID.
func (r *TodoMemory) Create(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[todo.ID]; !exists {
		r.order = append(r.order, todo.ID)
	}
	r.byID[todo.ID] = *todo

	out := *todo
	return &out, nil
}

// FindByID returns a copy of the stored todo or sql.ErrNoRows.
func (r *TodoMemory) FindByID(ctx context.Context, id string) (*model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := t
	return &out, nil
}

// List pages through todos newest-first, matching the SQL ORDER BY.
func (r *TodoMemory) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Todo], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.order)
	items := make([]model.Todo, 0)
	// Walk insertion order backwards so the newest todo comes first.
	for i := total - 1 - pq.Offset; i >= 0 && len(items) < pq.Limit; i-- {
		items = append(items, r.byID[r.order[i]])
	}

	return &repository.PageResult[model.Todo]{Items: items, Total: total}, nil
}

// Update replaces title and completed for an existing todo.
func (r *TodoMemory) Update(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[todo.ID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cur.Title = todo.Title
	cur.Completed = todo.Completed
	r.byID[todo.ID] = cur

	out := cur
	return &out, nil
}

// Delete removes a todo; missing rows are not an error.
func (r *TodoMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
