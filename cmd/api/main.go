package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"archivo/docs"
	"archivo/internal/auth"
	"archivo/internal/authz"
	"archivo/internal/config"
	"archivo/internal/database"
	"archivo/internal/database/migration"
	"archivo/internal/export"
	"archivo/internal/grid"
	handlers "archivo/internal/http/handler"
	"archivo/internal/http/middleware"
	"archivo/internal/logger"
	"archivo/internal/otel"
	"archivo/internal/repository/postgres"
	"archivo/internal/service"
	"archivo/internal/storage"
)

// @title Archivo API
// @version 1.0
// @description Archive records, FUID inventories and patient record sheets.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.New(cfg.Log)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("tracing_init_failed", zap.Error(err))
	}

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal("db_connect_failed", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			log.Fatal("db_migration_failed", zap.Error(err))
		}
	}

	// Object storage only backs the export archive; without an endpoint it stays disabled.
	var objStore storage.ObjectStore
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			log.Fatal("storage_init_failed", zap.Error(err))
		}
	} else {
		log.Warn("storage_disabled", zap.String("reason", "MINIO_ENDPOINT is empty"))
	}

	loc := cfg.Location()
	policy := authz.NewPolicy(postgres.NewGrantPostgres(db))
	recordRepo := postgres.NewRecordPostgres(db)

	catalogSvc := service.NewCatalogService(postgres.NewCatalogPostgres(db), cfg.Cache)
	recordSvc := service.NewRecordService(recordRepo, catalogSvc, policy)
	svcs := handlers.Services{
		Records: recordSvc,
		FUIDs: service.NewFUIDService(service.FUIDDeps{
			FUIDs:    postgres.NewFUIDPostgres(db),
			Records:  recordRepo,
			Creator:  recordSvc,
			Policy:   policy,
			Exporter: export.NewExporter(loc),
			Store:    objStore,
			LinkTTL:  time.Duration(cfg.Export.LinkTTLSec) * time.Second,
			Location: loc,
		}),
		Patients: service.NewPatientService(postgres.NewPatientPostgres(db), policy),
		Catalog:  catalogSvc,
		Stats:    service.NewStatsService(postgres.NewStatsPostgres(db), log, loc),
	}

	verifier, err := auth.NewVerifier(cfg.Auth)
	if err != nil {
		log.Fatal("auth_init_failed", zap.Error(err))
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("metrics_init_failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/health")
	})))
	app.Use(middleware.Auth(verifier, "/health", "/healthz", "/metrics", "/swagger"))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, db, svcs, grid.Options{DefaultLength: 10, MaxLength: cfg.Grid.MaxPageSize})

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
	go func() {
		log.Info("http_listen", zap.String("addr", addr), zap.String("app_host", cfg.AppHost))
		if err := app.Listen(addr); err != nil {
			log.Error("http_listen_failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown_started")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("http_shutdown_failed", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing_shutdown_failed", zap.Error(err))
	}
}
