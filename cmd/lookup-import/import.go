package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/paddyodab/lookup-import/internal/ingest"
	"github.com/paddyodab/lookup-import/internal/logging"
	"github.com/paddyodab/lookup-import/internal/lookup"
	"github.com/paddyodab/lookup-import/internal/sink"
)

// defaultReviewFile is written when neither --out nor --load is given, so a
// bare import run always leaves something to inspect.
const defaultReviewFile = "lookups_export.json"

func newImportCmd() *cobra.Command {
	var (
		out    string
		load   bool
		tenant string
	)

	cmd := &cobra.Command{
		Use:   "import <format> <file>",
		Short: "Normalize one source file into lookup records",
		Long: `Normalize one source file into canonical lookup records.

By default the records are written to a JSON review file. Pass --load to
bulk-copy them into the lookups table instead (or alongside --out).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}

			formatKey, path := args[0], args[1]
			def, ok := lookup.Get(formatKey)
			if !ok {
				return fmt.Errorf("unknown format %q (run `lookup-import formats` for the list)", formatKey)
			}

			logger := logging.WithRun(formatKey, path)

			rows, err := ingest.ReadRows(path, def.Info.Source)
			if err != nil {
				return err
			}

			res := def.Run(rows)
			logger.Info("normalized source file",
				"records", len(res.Records),
				"namespaces", def.Info.Namespaces,
			)
			if res.Skipped > 0 {
				logger.Warn("dropped malformed rows", "count", res.Skipped)
			}

			if !load && out == "" {
				out = defaultReviewFile
			}

			if out != "" {
				if err := sink.WriteJSON(out, res.Records); err != nil {
					return err
				}
				logger.Info("wrote review file", "path", out, "records", len(res.Records))
			}

			if load {
				tenantID, err := resolveTenant(tenant, cfg.Import.TenantID)
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

				n, err := sink.NewStore(pool).CopyBatch(ctx, tenantID, res.Records)
				if err != nil {
					return err
				}
				logger.Info("loaded lookups", "rows", n, "tenant", tenantID)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write records to a JSON review file")
	cmd.Flags().BoolVar(&load, "load", false, "bulk-load records into the lookups table")
	cmd.Flags().StringVar(&tenant, "tenant", "", "tenant id for loaded records (defaults to IMPORT_TENANT_ID)")
	return cmd
}

// resolveTenant picks the flag value over the configured default and
// parses it as a UUID.
func resolveTenant(flag, configured string) (uuid.UUID, error) {
	raw := flag
	if raw == "" {
		raw = configured
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid tenant id %q: %w", raw, err)
	}
	return id, nil
}
