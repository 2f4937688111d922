package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/paddyodab/lookup-import/internal/config"
	"github.com/paddyodab/lookup-import/internal/logging"
	_ "github.com/paddyodab/lookup-import/internal/lookup/formats" // Register all formats
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lookup-import",
		Short:         "Import reference data into lookup records",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(
		newImportCmd(),
		newFormatsCmd(),
		newSchemaCmd(),
	)
	return cmd
}

// setup loads .env, configuration, and logging for a run.
func setup() (*config.Config, error) {
	// Overload overwrites existing env vars, matching deploy conventions
	if err := godotenv.Overload(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	return cfg, nil
}

// openPool connects a pgx pool using the configured URL and pool sizing,
// and verifies the connection with a ping.
func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set to reach the store")
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
