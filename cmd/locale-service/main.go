// Package main provides the entry point for the locale service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shelfline/locale-service/internal/config"
	"github.com/shelfline/locale-service/internal/metrics"
	"github.com/shelfline/locale-service/internal/server"
	"github.com/shelfline/locale-service/internal/service"
	"github.com/shelfline/locale-service/internal/store"
	"github.com/shelfline/locale-service/internal/validation"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "./config.yaml", "path to config file")
	flag.Parse()

	// Initialize logger
	logger := initLogger()
	defer logger.Sync()

	logger.Info("starting locale service")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	logger.Info("configuration loaded",
		zap.Int("server_port", cfg.Server.Port),
		zap.String("storage_driver", cfg.Storage.Driver),
	)

	// Initialize metrics
	m := metrics.NewMetrics()
	logger.Info("metrics initialized")

	// Initialize settings store
	settingsStore, err := newSettingsStore(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize settings store", zap.Error(err))
	}
	defer settingsStore.Close()
	logger.Info("settings store initialized", zap.String("driver", cfg.Storage.Driver))

	// Initialize cache
	cache := store.NewSettingsCache(cfg.Cache.SettingsTTL, cfg.Cache.MaxSize)
	logger.Info("settings cache initialized")

	// Initialize services
	validator := validation.NewValidator()
	settingsService := service.NewSettingsService(settingsStore, cache, validator, m, logger)
	logger.Info("settings service initialized")

	// Initialize HTTP server
	httpServer := server.NewServer(cfg, settingsService, settingsStore, m, logger)
	httpServer.SetupRoutes()

	// Start HTTP server in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			errChan <- err
		}
	}()

	logger.Info("HTTP server started", zap.Int("port", cfg.Server.Port))

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.Error("server error", zap.Error(err))
	}

	// Graceful shutdown
	logger.Info("initiating graceful shutdown")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown HTTP server", zap.Error(err))
	}

	logger.Info("locale service shutdown complete")
}

// newSettingsStore builds the configured settings store backend.
func newSettingsStore(cfg *config.Config, logger *zap.Logger) (store.SettingsStore, error) {
	if cfg.Storage.Driver == "postgres" {
		return store.NewPostgresSettingsStore(
			cfg.Storage.Postgres.Host,
			cfg.Storage.Postgres.Port,
			cfg.Storage.Postgres.Database,
			cfg.Storage.Postgres.User,
			cfg.Storage.Postgres.Password,
			cfg.Storage.Postgres.MaxConnections,
			cfg.Storage.Postgres.MinConnections,
			logger,
		)
	}
	return store.NewMemorySettingsStore(logger), nil
}

// initLogger initializes the zap logger.
func initLogger() *zap.Logger {
	// Get log level from environment
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	var level zapcore.Level
	switch logLevel {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	// Get log format from environment
	logFormat := os.Getenv("LOG_FORMAT")

	var zapCfg zap.Config
	if logFormat == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stdout"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapCfg.Build()
	if err != nil {
		// Fallback to basic logger
		logger, _ = zap.NewProduction()
	}

	return logger
}
