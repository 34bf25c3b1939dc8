// file: cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"badgehub/internal/cache"
	"badgehub/internal/catalog"
	"badgehub/internal/config"
	"badgehub/internal/database"
	"badgehub/internal/events"
	"badgehub/internal/handlers/api/v1/badges"
	"badgehub/internal/middleware"
	"badgehub/internal/repositories"
	"badgehub/internal/response"
	"badgehub/internal/router"
	"badgehub/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	logger, err := initLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Starting badgehub",
		zap.String("environment", cfg.Server.Environment),
		zap.String("addr", cfg.Server.Addr()),
	)

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Storage: Postgres when configured, in-memory otherwise.
	var (
		db    *database.Manager
		repos repositories.Collection
	)
	if cfg.Database.URL != "" {
		var err error
		db, err = database.NewManager(&cfg.Database, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.WaitForHealthy(rootCtx, cfg.Database.ConnectTimeout); err != nil {
			return err
		}
		if err := db.Migrate(cfg.Database.MigrationsPath); err != nil {
			return err
		}
		db.StartHealthMonitor(rootCtx, cfg.Database.HealthCheckInterval)

		repos = repositories.Collection{
			Progress:      repositories.NewProgressRepository(db, logger),
			Badges:        repositories.NewBadgeRepository(db, logger),
			Notifications: repositories.NewNotificationRepository(db, logger),
		}
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory storage")
		repos = repositories.Collection{
			Progress:      repositories.NewMemoryProgressRepository(),
			Badges:        repositories.NewMemoryBadgeRepository(),
			Notifications: repositories.NewMemoryNotificationRepository(),
		}
	}

	store, err := cache.New(&cfg.Cache, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	cat, err := catalog.New(catalog.DefaultDefinitions())
	if err != nil {
		return err
	}
	logger.Info("Badge catalog loaded", zap.Int("definitions", cat.Len()))

	bus := events.NewMemoryBus(logger, cfg.Events.Workers, cfg.Events.QueueSize)
	services.NewBadgeNotifier(repos.Notifications, logger).Register(bus)
	bus.Start()

	badgeService := services.NewBadgeService(cat, repos.Progress, repos.Badges, bus, logger)

	respConfig := response.DefaultConfig()
	if !cfg.IsProduction() {
		respConfig = response.DevelopmentConfig()
	}
	builder := response.NewBuilder(respConfig, logger)

	controller := badges.NewBadgeController(badgeService, store, builder, logger)
	routes := router.SetupRouter(&router.Dependencies{
		BadgeController: controller,
		DB:              db,
		Cache:           store,
		Builder:         builder,
		Logger:          logger,
	})

	handler := middleware.Chain(
		middleware.RequestID(logger),
		middleware.Logging(),
		middleware.RateLimit(store, builder, cfg.Server.RateLimitPerMin),
		middleware.Recovery(builder),
	)(routes)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-rootCtx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	if err := bus.Stop(shutdownCtx); err != nil {
		logger.Error("Event bus shutdown failed", zap.Error(err))
	}

	logger.Info("Shutdown complete")
	return nil
}

// initLogger builds the zap logger for the configured environment.
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Logging.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
