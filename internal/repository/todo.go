package repository

import (
	"context"

	"patternlab/internal/model"
)

// TodoRepository defines data access for todos using SQL queries only.
// No business logic here — strictly persistence operations.
type TodoRepository interface {
	// Create inserts a new todo record.
	// The caller should provide required fields (e.g., ID, CreatedAt) according to the database schema defaults.
	// Returns the stored todo (may include values set by the DB).
	Create(ctx context.Context, todo *model.Todo) (*model.Todo, error)

	// FindByID returns a todo by its ID.
	FindByID(ctx context.Context, id string) (*model.Todo, error)

	// List returns a paginated list of todos and total rows count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Todo], error)

	// Update persists the mutable fields (title, completed) of an existing todo.
	// Returns sql.ErrNoRows if no row matches the todo's ID.
	Update(ctx context.Context, todo *model.Todo) (*model.Todo, error)

	// Delete removes a todo by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
