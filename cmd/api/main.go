package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rwa-market/asset-catalog/db"
	"github.com/rwa-market/asset-catalog/internal/adapter"
	"github.com/rwa-market/asset-catalog/internal/api/server"
	"github.com/rwa-market/asset-catalog/internal/catalog"
	"github.com/rwa-market/asset-catalog/internal/config"
	"github.com/rwa-market/asset-catalog/internal/logger"
	"github.com/rwa-market/asset-catalog/internal/messaging"
	"github.com/rwa-market/asset-catalog/internal/oracle"
	"github.com/rwa-market/asset-catalog/internal/providers/jetstream"
	"github.com/rwa-market/asset-catalog/internal/ratelimit"
	"github.com/rwa-market/asset-catalog/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "asset-catalog-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Asset Catalog API", zap.String("store", cfg.Store.Driver))

	dataStore := openStore(ctx, cfg)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Asset events go to JetStream only when NATS is configured
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			PublishTimeout: cfg.NATS.PublishTimeout,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, asset events will not be published")
		publisher = messaging.NewNoopPublisher()
	}
	defer publisher.Close()

	catalogService := catalog.NewService(dataStore, publisher, clock)

	// Oracle
	httpClient := adapter.NewHTTPClient(cfg.Oracle.Timeout, adapter.RetryConfig{})
	feed := oracle.NewCoinGeckoFeed(oracle.FeedConfig{
		BaseURL: cfg.Oracle.CoinGeckoURL,
		APIKey:  cfg.Oracle.APIKey,
	}, httpClient)
	if cfg.Oracle.RequestsPerMinute > 0 {
		limiter := newOracleLimiter(ctx, cfg, clock)
		defer func() {
			if err := limiter.Close(); err != nil {
				logger.Warn("Failed to close rate limiter", zap.Error(err))
			}
		}()
		feed = oracle.NewRateLimitedFeed(feed, limiter, oracle.SourceCoinGecko)
	}
	valuator := oracle.NewValuator(feed, clock, cfg.Oracle.Workers)
	defer valuator.Close()

	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}

	srv := server.New(serverConfig, catalogService, valuator, feed)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	logger.Info("API server stopped")
}

// newOracleLimiter throttles CoinGecko calls, sharing the budget through Redis when configured
func newOracleLimiter(ctx context.Context, cfg *config.APIConfig, clock adapter.Clock) ratelimit.Limiter {
	var redisClient adapter.RedisClient
	if cfg.Redis.Addr != "" {
		redisClient = adapter.NewRedisClient(adapter.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	limiter, err := ratelimit.NewLimiter(ratelimit.Config{
		KeyPrefix: cfg.Redis.KeyPrefix,
		Providers: map[string]ratelimit.ProviderConfig{
			oracle.SourceCoinGecko: {
				RequestsPerMinute: cfg.Oracle.RequestsPerMinute,
				Burst:             cfg.Oracle.Burst,
				MaxWait:           cfg.Oracle.MaxWait,
			},
		},
	}, redisClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
	}
	return limiter
}

// openStore builds the configured asset store, migrating the schema for postgres
func openStore(ctx context.Context, cfg *config.APIConfig) store.Store {
	if cfg.Store.Driver != config.StoreDriverPostgres {
		logger.InfoCtx(ctx, "Using in-memory asset store")
		return store.NewMemoryStore()
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	if err := store.ConfigureConnectionPool(gormDB, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	if err := db.Migrate(ctx, gormDB); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	return store.NewPGStore(gormDB)
}
