package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"patternlab/docs"
	"patternlab/internal/config"
	"patternlab/internal/database"
	"patternlab/internal/database/migration"
	handlers "patternlab/internal/http/handler"
	"patternlab/internal/http/middleware"
	"patternlab/internal/otel"
	"patternlab/internal/patterns"
	"patternlab/internal/repository/postgres"
	repoproxy "patternlab/internal/repository/proxy"
	"patternlab/internal/service"
	"patternlab/internal/storage"
)

// @title Pattern Lab API
// @version 1.0
// @BasePath /
func main() {
	ctx := context.Background()
	loc := time.UTC

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	// Tracing first so DB and HTTP instrumentation attach to a real provider
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Object storage backend is selected by configuration (minio or memory)
	objStore, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Load the embedded pattern catalog
	cat, err := patterns.Default()
	if err != nil {
		log.Fatalf("failed to load pattern catalog: %v", err)
	}

	// Repositories and services. The todo repository is wrapped in a
	// read-through cache; reads of the same id skip the database.
	todoRepo := repoproxy.NewCachingTodoRepository(postgres.NewTodoPostgres(db))
	articleRepo := postgres.NewArticlePostgres(db)

	todoSvc := service.NewTodoService(todoRepo)
	catSvc := service.NewCatalogService(cat, objStore, articleRepo)

	// Publish embedded articles to object storage at startup; idempotent.
	if err := catSvc.PublishArticles(ctx); err != nil {
		log.Fatalf("failed to publish articles: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	// Trace spans per request
	app.Use(otelfiber.Middleware())

	// Prometheus metrics on a dedicated registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(prom.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, todoSvc, catSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
