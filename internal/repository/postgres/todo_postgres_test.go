package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"patternlab/internal/model"
	"patternlab/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestTodoPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTodoPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	todo := &model.Todo{
		ID:        "test-uuid",
		Owner:     "alice",
		Title:     "write the bridge article",
		Completed: false,
		CreatedAt: now,
	}

	rows := sqlmock.NewRows([]string{"id", "owner", "title", "completed", "created_at"}).
		AddRow(todo.ID, todo.Owner, todo.Title, todo.Completed, todo.CreatedAt)

	mock.ExpectQuery("INSERT INTO todos").
		WithArgs(todo.ID, todo.Owner, todo.Title, todo.Completed, todo.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, todo)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, todo.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTodoPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "owner", "title", "completed", "created_at"}).
			AddRow("test-id", "alice", "buy milk", true, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM todos WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		todo, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.NotNil(t, todo)
		assert.Equal(t, "test-id", todo.ID)
		assert.True(t, todo.Completed)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM todos WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		todo, err := repo.FindByID(ctx, "missing")

		assert.Nil(t, todo)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})
}

func TestTodoPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTodoPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rows := sqlmock.NewRows([]string{"id", "owner", "title", "completed", "created_at"}).
		AddRow("id-2", "alice", "second", false, time.Now()).
		AddRow("id-1", "bob", "first", true, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM todos").
		WithArgs(10, 0).
		WillReturnRows(rows)

	res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, "id-2", res.Items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTodoPostgres(db)
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "owner", "title", "completed", "created_at"}).
			AddRow("id-1", "alice", "renamed", true, time.Now())

		mock.ExpectQuery("UPDATE todos").
			WithArgs("id-1", "renamed", true).
			WillReturnRows(rows)

		out, err := repo.Update(ctx, &model.Todo{ID: "id-1", Title: "renamed", Completed: true})

		assert.NoError(t, err)
		assert.Equal(t, "renamed", out.Title)
		assert.True(t, out.Completed)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectQuery("UPDATE todos").
			WithArgs("nope", "x", false).
			WillReturnError(sql.ErrNoRows)

		out, err := repo.Update(ctx, &model.Todo{ID: "nope", Title: "x"})

		assert.Nil(t, out)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})
}

func TestTodoPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTodoPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM todos").
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(ctx, "id-1"))

	// Missing rows are not an error.
	mock.ExpectExec("DELETE FROM todos").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(ctx, "missing"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
