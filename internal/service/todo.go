package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"patternlab/internal/model"
	"patternlab/internal/repository"
)

var (
	ErrIDRequired    = errors.New("id is required")
	ErrOwnerRequired = errors.New("owner is required")
	ErrTitleRequired = errors.New("title is required")
	ErrNotFound      = errors.New("todo not found")
)

// TodoListResult is the service-level DTO for paginated todos.
type TodoListResult struct {
	Items []model.Todo `json:"data"`
	Total int          `json:"total"`
}

// TodoUpdate carries the mutable todo fields; nil means "leave unchanged".
type TodoUpdate struct {
	Title     *string
	Completed *bool
}

// TodoService defines the use cases of the demo todos API.
type TodoService interface {
	// Create validates input, assigns ID and creation time, and stores the todo.
	Create(ctx context.Context, owner, title string) (*model.Todo, error)

	// List returns todos using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*TodoListResult, error)

	// Get returns a single todo by its ID.
	Get(ctx context.Context, id string) (*model.Todo, error)

	// Update applies the non-nil fields of upd to an existing todo.
	Update(ctx context.Context, id string, upd TodoUpdate) (*model.Todo, error)

	// Delete removes a todo by ID.
	Delete(ctx context.Context, id string) error
}

// todoService is a concrete implementation of TodoService.
type todoService struct {
	repo repository.TodoRepository
}

// NewTodoService constructs a new TodoService.
func NewTodoService(repo repository.TodoRepository) TodoService {
	return &todoService{repo: repo}
}

func (s *todoService) Create(ctx context.Context, owner, title string) (*model.Todo, error) {
	if owner == "" {
		return nil, ErrOwnerRequired
	}
	if title == "" {
		return nil, ErrTitleRequired
	}

	todo := &model.Todo{
		ID:        uuid.New().String(),
		Owner:     owner,
		Title:     title,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, todo)
}

// List returns paginated todos without exposing repository types.
func (s *todoService) List(ctx context.Context, limit, offset int) (*TodoListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &TodoListResult{Items: res.Items, Total: res.Total}, nil
}

// Get returns a todo by ID.
func (s *todoService) Get(ctx context.Context, id string) (*model.Todo, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return todo, nil
}

// Update loads the todo, applies the requested changes, and persists them.
func (s *todoService) Update(ctx context.Context, id string, upd TodoUpdate) (*model.Todo, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if upd.Title != nil && *upd.Title == "" {
		return nil, ErrTitleRequired
	}

	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if upd.Title != nil {
		todo.Title = *upd.Title
	}
	if upd.Completed != nil {
		todo.Completed = *upd.Completed
	}

	stored, err := s.repo.Update(ctx, todo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return stored, nil
}

// Delete verifies the todo exists, then removes it.
func (s *todoService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	// Repository ignores missing row errors as per contract.
	return s.repo.Delete(ctx, id)
}
