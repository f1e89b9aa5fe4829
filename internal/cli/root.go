package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rwa-market/asset-catalog/internal/adapter"
	"github.com/rwa-market/asset-catalog/internal/catalog"
	"github.com/rwa-market/asset-catalog/internal/config"
	"github.com/rwa-market/asset-catalog/internal/messaging"
	"github.com/rwa-market/asset-catalog/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	EnvPath    string

	// connect opens the backend for a command; tests swap in an in-memory one
	connect func(ctx context.Context, opts *RootOptions) (*Backend, error)
}

// Backend is what a command operates on. DB is nil for the memory store.
type Backend struct {
	Catalog catalog.Service
	DB      *gorm.DB
}

// Close releases the database connection, if any
func (b *Backend) Close() {
	if b.DB == nil {
		return
	}
	if sqlDB, err := b.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// NewRootCommand creates the root command of catalogctl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{connect: connectFromConfig})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Administer the asset catalog",
		Long:          "Inspect and seed the asset catalog directly against its store, bypassing the HTTP API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to configuration file")
	cmd.PersistentFlags().StringVar(&opts.EnvPath, "env", "config/", "path to environment files")

	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newGetCommand(opts))
	cmd.AddCommand(newCreateCommand(opts))

	return cmd
}

// connectFromConfig loads the catalogctl config and opens the configured store
func connectFromConfig(ctx context.Context, opts *RootOptions) (*Backend, error) {
	cfg, err := config.LoadCtlConfig(opts.ConfigFile, opts.EnvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Store.Driver == config.StoreDriverMemory {
		return newMemoryBackend(), nil
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := store.ConfigureConnectionPool(gormDB, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		return nil, fmt.Errorf("failed to configure connection pool: %w", err)
	}

	return &Backend{
		Catalog: catalog.NewService(store.NewPGStore(gormDB), messaging.NewNoopPublisher(), adapter.NewClock()),
		DB:      gormDB,
	}, nil
}

func newMemoryBackend() *Backend {
	return &Backend{
		Catalog: catalog.NewService(store.NewMemoryStore(), messaging.NewNoopPublisher(), adapter.NewClock()),
	}
}

// withBackend opens the backend, runs fn and closes the backend
func withBackend(cmd *cobra.Command, opts *RootOptions, fn func(ctx context.Context, b *Backend) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	b, err := opts.connect(ctx, opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open catalog", err)
	}
	defer b.Close()

	return fn(ctx, b)
}
