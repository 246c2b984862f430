package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"patternlab/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; each translates HTTP to one service call.
func RegisterRoutes(app *fiber.App, db *sql.DB, todoSvc service.TodoService, catSvc service.CatalogService) {
	// Health endpoints
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Demo todos API — the target of the HTTP-client tutorial
	app.Get("/todos", ListTodos(todoSvc))
	app.Post("/todos", CreateTodo(todoSvc))
	app.Get("/todos/:id", GetTodo(todoSvc))
	app.Put("/todos/:id", UpdateTodo(todoSvc))
	app.Delete("/todos/:id", DeleteTodo(todoSvc))

	// Pattern catalog
	app.Get("/patterns", ListPatterns(catSvc))
	app.Get("/patterns/:slug", GetPattern(catSvc))
	app.Post("/patterns/:slug/run", RunPattern(catSvc))
	app.Get("/patterns/:slug/article", GetPatternArticle(catSvc))
}
