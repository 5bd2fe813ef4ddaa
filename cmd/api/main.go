// Package main is the entry point for the resource-catalog-service API.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"resource-catalog-service/internal/app/service"
	"resource-catalog-service/internal/config"
	"resource-catalog-service/internal/domain"
	"resource-catalog-service/internal/infra/postgres"
	"resource-catalog-service/internal/infra/postgres/migrations"
	"resource-catalog-service/internal/infra/store"
	"resource-catalog-service/internal/infra/store/rest"
	"resource-catalog-service/internal/logger"
	"resource-catalog-service/internal/transport/httpserver"
	"resource-catalog-service/internal/transport/httpserver/view"
	"resource-catalog-service/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("APP_CONFIG"))
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(
		logger.Config{
			Level:  cfg.Logger.Level,
			Format: cfg.Logger.Format,
			Output: cfg.Logger.Output,
		},
		logger.SentryConfig{
			Enabled:     cfg.Sentry.Enabled,
			DSN:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
			SampleRate:  cfg.Sentry.SampleRate,
		},
	)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting resource-catalog-service",
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
		zap.String("store_driver", cfg.Store.Driver),
	)

	serverCfg := httpserver.ServerConfig{
		Port:         cfg.App.Port,
		BodyLimit:    cfg.HTTP.BodyLimit,
		CacheControl: cfg.HTTP.Cache.Header(),
	}

	var server *httpserver.Server
	cleanup := func() {}

	if cfgErr := cfg.Store.Validate(); cfgErr != nil {
		var missingErr *config.MissingConfigError
		if !errors.As(cfgErr, &missingErr) || cfg.App.IsProduction() {
			log.Fatal("invalid store configuration", zap.Error(cfgErr))
		}

		// Outside production the process stays up and explains what is missing
		log.Warn("store not configured, serving setup screen", zap.Strings("missing", missingErr.Missing))
		server = httpserver.NewSetupServer(
			serverCfg,
			view.Setup{
				Title:   view.PageTitle,
				Missing: missingErr.Missing,
				URLEnv:  config.StoreURLEnv,
				KeyEnv:  config.StoreKeyEnv,
			},
			cfgErr,
			log.Logger,
		)
	} else {
		storeLog := log.WithStore(cfg.Store.Driver)

		var resourceStore domain.ResourceStore
		resourceStore, cleanup = newStore(cfg.Store, storeLog)

		catalogSvc := service.NewCatalogService(resourceStore, storeLog.Named("catalog").Logger)

		server = httpserver.NewServer(serverCfg, catalogSvc, validator.New(), storeLog.Logger)
	}
	defer cleanup()

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.App.ShutdownWithContext(ctx); err != nil {
			log.Error("server shutdown error", zap.Error(err))
		}
	}()

	// Start server
	if err := server.Start(cfg.App.Port); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}

// newStore builds the configured resource store driver. The returned func
// releases its resources.
func newStore(cfg config.StoreConfig, log *logger.Logger) (domain.ResourceStore, func()) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.NewConnection(
			postgres.Config{
				URL:          cfg.URL,
				Password:     cfg.Key,
				MaxOpenConns: cfg.MaxOpenConns,
				MaxIdleConns: cfg.MaxIdleConns,
				MaxLifetime:  cfg.MaxLifetime,
			},
			log.Logger,
		)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}

		if cfg.Migrate {
			if err := migrations.Run(db); err != nil {
				log.Fatal("failed to run migrations", zap.Error(err))
			}
			log.Info("database migrations completed")
		}

		return postgres.NewRepository(db), func() { _ = postgres.Close(db) }

	default:
		client := rest.New(
			store.ClientConfig{
				BaseURL: cfg.URL,
				Key:     cfg.Key,
				Table:   cfg.Table,
				Timeout: cfg.Timeout,
				Retry: store.RetryConfig{
					MaxAttempts: cfg.Retry.MaxAttempts,
					WaitTime:    cfg.Retry.WaitTime,
					MaxWaitTime: cfg.Retry.MaxWaitTime,
				},
				CB: store.CBConfig{
					MaxRequests:  cfg.CB.MaxRequests,
					Interval:     cfg.CB.Interval,
					Timeout:      cfg.CB.Timeout,
					FailureRatio: cfg.CB.FailureRatio,
				},
			},
			log.Named("store").Logger,
		)
		log.Info("using REST store", zap.String("endpoint", cfg.URL+client.Endpoint()))

		return client, func() {}
	}
}
