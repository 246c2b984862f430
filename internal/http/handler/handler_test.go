package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"patternlab/internal/model"
	"patternlab/internal/service"
	serviceMocks "patternlab/internal/service/mocks"
	"patternlab/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListTodos(t *testing.T) {
	mockSvc := new(serviceMocks.MockTodoService)
	app := fiber.New()
	app.Get("/todos", ListTodos(mockSvc))

	t.Run("success", func(t *testing.T) {
		expectedRes := &service.TodoListResult{
			Items: []model.Todo{{ID: uuid.New().String(), Owner: "alice", Title: "first"}},
			Total: 1,
		}
		mockSvc.On("List", mock.Anything, 10, 0).Return(expectedRes, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/todos?limit=10&offset=0", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.TodoListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/todos?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_LIMIT", body.Error.Code)
	})

	t.Run("invalid offset", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/todos?offset=x", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_OFFSET", body.Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 10, 0).Return(nil, errors.New("service error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/todos", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestCreateTodo(t *testing.T) {
	mockSvc := new(serviceMocks.MockTodoService)
	app := fiber.New()
	app.Post("/todos", CreateTodo(mockSvc))

	newReq := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/todos", bytes.NewReader([]byte(body)))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return req
	}

	t.Run("success", func(t *testing.T) {
		created := &model.Todo{ID: uuid.New().String(), Owner: "alice", Title: "new todo"}
		mockSvc.On("Create", mock.Anything, "alice", "new todo").Return(created, nil).Once()

		resp, _ := app.Test(newReq(`{"owner":"alice","title":"new todo"}`))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var got model.Todo
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, created.ID, got.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing owner", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, "", "x").Return(nil, service.ErrOwnerRequired).Once()

		resp, _ := app.Test(newReq(`{"title":"x"}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "OWNER_REQUIRED", body.Error.Code)
	})

	t.Run("missing title", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, "alice", "").Return(nil, service.ErrTitleRequired).Once()

		resp, _ := app.Test(newReq(`{"owner":"alice"}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "TITLE_REQUIRED", body.Error.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		resp, _ := app.Test(newReq(`{not json`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_BODY", body.Error.Code)
	})
}

func TestGetTodo(t *testing.T) {
	mockSvc := new(serviceMocks.MockTodoService)
	app := fiber.New()
	app.Get("/todos/:id", GetTodo(mockSvc))

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, id).Return(&model.Todo{ID: id, Title: "found"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/todos/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/todos/not-a-uuid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_ID", body.Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/todos/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUpdateTodo(t *testing.T) {
	mockSvc := new(serviceMocks.MockTodoService)
	app := fiber.New()
	app.Put("/todos/:id", UpdateTodo(mockSvc))

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, id, mock.MatchedBy(func(upd service.TodoUpdate) bool {
			return upd.Completed != nil && *upd.Completed && upd.Title == nil
		})).Return(&model.Todo{ID: id, Completed: true}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/todos/"+id, strings.NewReader(`{"completed":true}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, id, mock.Anything).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPut, "/todos/"+id, strings.NewReader(`{"completed":true}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/todos/abc", strings.NewReader(`{}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeleteTodo(t *testing.T) {
	mockSvc := new(serviceMocks.MockTodoService)
	app := fiber.New()
	app.Delete("/todos/:id", DeleteTodo(mockSvc))

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/todos/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, id).Return(service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/todos/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestListPatterns(t *testing.T) {
	mockCat := new(serviceMocks.MockCatalogService)
	app := fiber.New()
	app.Get("/patterns", ListPatterns(mockCat))

	mockCat.On("Patterns").Return([]model.Pattern{
		{Slug: "singleton", Name: "Singleton", Category: "creational"},
	}).Once()

	req := httptest.NewRequest(http.MethodGet, "/patterns", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []model.Pattern `json:"data"`
	}
	json.NewDecoder(resp.Body).Decode(&body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "singleton", body.Data[0].Slug)
}

func TestGetPattern(t *testing.T) {
	mockCat := new(serviceMocks.MockCatalogService)
	app := fiber.New()
	app.Get("/patterns/:slug", GetPattern(mockCat))

	t.Run("success", func(t *testing.T) {
		mockCat.On("Pattern", "bridge").Return(&model.Pattern{Slug: "bridge", Name: "Bridge"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/patterns/bridge", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		mockCat.On("Pattern", "flyweight").Return(nil, service.ErrPatternNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/patterns/flyweight", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestRunPattern(t *testing.T) {
	mockCat := new(serviceMocks.MockCatalogService)
	app := fiber.New()
	app.Post("/patterns/:slug/run", RunPattern(mockCat))

	t.Run("success", func(t *testing.T) {
		mockCat.On("Run", mock.Anything, "proxy").
			Return([]string{"proxy: line one", "proxy: line two"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/patterns/proxy/run", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Slug       string   `json:"slug"`
			Transcript []string `json:"transcript"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "proxy", body.Slug)
		assert.Len(t, body.Transcript, 2)
	})

	t.Run("not found", func(t *testing.T) {
		mockCat.On("Run", mock.Anything, "flyweight").Return(nil, service.ErrPatternNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/patterns/flyweight/run", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetPatternArticle(t *testing.T) {
	mockCat := new(serviceMocks.MockCatalogService)
	app := fiber.New()
	app.Get("/patterns/:slug/article", GetPatternArticle(mockCat))

	t.Run("success", func(t *testing.T) {
		body := "# Proxy\n\ncontent"
		mockCat.On("Article", mock.Anything, "proxy").Return(
			io.NopCloser(strings.NewReader(body)),
			storage.ObjectInfo{Key: "articles/proxy.md", Size: int64(len(body)), ContentType: "text/markdown"},
			nil,
		).Once()

		req := httptest.NewRequest(http.MethodGet, "/patterns/proxy/article", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/markdown")

		got, _ := io.ReadAll(resp.Body)
		assert.Equal(t, body, string(got))
	})

	t.Run("not published", func(t *testing.T) {
		mockCat.On("Article", mock.Anything, "bridge").
			Return(nil, storage.ObjectInfo{}, service.ErrArticleNotPublished).Once()

		req := httptest.NewRequest(http.MethodGet, "/patterns/bridge/article", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var payload errorPayload
		json.NewDecoder(resp.Body).Decode(&payload)
		assert.Equal(t, "ARTICLE_NOT_PUBLISHED", payload.Error.Code)
	})
}
