package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/prithvinet/backend/internal/config"
	"github.com/prithvinet/backend/internal/delivery/http"
	"github.com/prithvinet/backend/internal/logger"
	"github.com/prithvinet/backend/internal/metrics"
	"github.com/prithvinet/backend/internal/mockdata"
	"github.com/prithvinet/backend/internal/repository/postgres"
	"github.com/prithvinet/backend/internal/service"
	"github.com/prithvinet/backend/internal/session"
)

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	// Configuration
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "prithvi-net-backend")
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.IsProduction() && cfg.UsesDevSecret() {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}

	// Database connection
	ctx, cancel := context.WithTimeout(parent, 10*time.Second)
	defer cancel()

	pool := connectPostgres(ctx, cfg.DatabaseURL, log)
	if pool != nil {
		defer pool.Close()
	}

	// Dependency Injection: Repositories
	var dataRepo service.DataRepository
	if pool != nil {
		dataRepo = postgres.NewPostgresRepository(pool)
	} else {
		dataRepo = postgres.NewMockRepository()
	}

	// Session store: Redis when configured, otherwise in-process
	var store session.Store = session.NewMemoryStore()
	if cfg.RedisAddr != "" {
		redisStore, err := session.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Warn("Could not connect to Redis, keeping sessions in memory", zap.Error(err))
		} else {
			defer redisStore.Close()
			store = redisStore
			log.Info("Connected to Redis", zap.String("addr", cfg.RedisAddr))
		}
	}

	source, err := mockdata.New(cfg.MockSeed)
	if err != nil {
		return err
	}

	// Dependency Injection: Services
	m := metrics.New()
	mlBridge := service.NewMLBridge(cfg.MLServiceURL, source, log)
	monitoringSvc := service.NewMonitoringService(source, dataRepo, m, log)
	simulatorSvc := service.NewSimulatorService(dataRepo, m, log)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "PRITHVI-NET API v" + Version,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: http.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Routes
	http.SetupRoutes(app, http.Services{
		Auth:         service.NewAuthService(store, session.NewTokenManager(cfg.JWTSecret), cfg.SessionTTL, m, log),
		Monitoring:   monitoringSvc,
		Intelligence: service.NewIntelligenceService(monitoringSvc, mlBridge, log),
		Simulator:    simulatorSvc,
		Economy:      service.NewEconomyService(),
		Reports:      service.NewReportService(),
		Awareness:    service.NewAwarenessService(source),
		MLBridge:     mlBridge,
		Repo:         dataRepo,
		Metrics:      m,
		Logger:       log,
	})

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-quit:
	case <-parent.Done():
	}

	log.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Drain background persistence
	monitoringSvc.WaitBackground()
	simulatorSvc.WaitBackground()

	log.Info("Server exited gracefully")
	return nil
}

// connectPostgres returns nil when the database is unset or unreachable,
// which puts the server in mock mode.
func connectPostgres(ctx context.Context, url string, log *zap.Logger) *pgxpool.Pool {
	if url == "" {
		log.Info("DATABASE_URL not set, running with mock data only")
		return nil
	}

	pool, err := pgxpool.New(ctx, url)
	if err == nil {
		err = pool.Ping(ctx)
		if err != nil {
			pool.Close()
		}
	}
	if err != nil {
		log.Warn("Could not connect to database, running with mock data only", zap.Error(err))
		return nil
	}

	log.Info("Connected to PostgreSQL")
	return pool
}
