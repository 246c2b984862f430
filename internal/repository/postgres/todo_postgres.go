package postgres

import (
	"context"
	"database/sql"

	"patternlab/internal/model"
	"patternlab/internal/repository"
)

// TodoPostgres is a PostgreSQL implementation of repository.TodoRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type TodoPostgres struct {
	db *sql.DB
}

// NewTodoPostgres creates a new TodoPostgres repository.
func NewTodoPostgres(db *sql.DB) *TodoPostgres {
	return &TodoPostgres{db: db}
}

var _ repository.TodoRepository = (*TodoPostgres)(nil)

// Create inserts a new todo row and returns the stored record.
func (r *TodoPostgres) Create(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	const q = `
		INSERT INTO todos (id, owner, title, completed, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner, title, completed, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		todo.ID,
		todo.Owner,
		todo.Title,
		todo.Completed,
		todo.CreatedAt,
	)
	var out model.Todo
	if err := row.Scan(
		&out.ID,
		&out.Owner,
		&out.Title,
		&out.Completed,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single todo by its ID.
func (r *TodoPostgres) FindByID(ctx context.Context, id string) (*model.Todo, error) {
	const q = `
		SELECT id, owner, title, completed, created_at
		FROM todos
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var t model.Todo
	if err := row.Scan(
		&t.ID,
		&t.Owner,
		&t.Title,
		&t.Completed,
		&t.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns todos using LIMIT/OFFSET pagination and a total count.
func (r *TodoPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Todo], error) {
	// Count total rows
	const qCount = `SELECT COUNT(*) FROM todos`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	// Fetch page
	const qList = `
		SELECT id, owner, title, completed, created_at
		FROM todos
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Todo, 0)
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(
			&t.ID,
			&t.Owner,
			&t.Title,
			&t.Completed,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Todo]{
		Items: items,
		Total: total,
	}, nil
}

// Update persists title and completed for an existing row.
func (r *TodoPostgres) Update(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	const q = `
		UPDATE todos
		SET title = $2, completed = $3
		WHERE id = $1
		RETURNING id, owner, title, completed, created_at
	`
	row := r.db.QueryRowContext(ctx, q, todo.ID, todo.Title, todo.Completed)
	var out model.Todo
	if err := row.Scan(
		&out.ID,
		&out.Owner,
		&out.Title,
		&out.Completed,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a todo by ID. It does not return an error if the row does not exist.
func (r *TodoPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM todos WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	// Ignore rows affected to keep the delete idempotent.
	_, _ = res.RowsAffected()
	return nil
}
