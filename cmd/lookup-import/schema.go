package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/paddyodab/lookup-import/internal/sink"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the lookups table and its indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Import.CopyTimeout)
			defer cancel()

			pool, err := openPool(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := sink.NewStore(pool).EnsureSchema(ctx); err != nil {
				return err
			}
			slog.Info("lookups schema applied")
			return nil
		},
	}
}
