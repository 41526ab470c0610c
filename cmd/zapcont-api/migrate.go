package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/CathalystLTDA/zapcont-api/internal/repo"
)

func migrateCmd() *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		Long: `Create or update every table used by the API.

Examples:
  zapcont-api migrate
  zapcont-api migrate --purge-idempotency`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setupLogging()
			if err != nil {
				return err
			}
			db, err := repo.Open(cfg.DB)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = repo.Close(db) }()

			if err := repo.AutoMigrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info().Str("driver", cfg.DB.Driver).Msg("schema up to date")

			if purge {
				ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
				defer cancel()
				n, err := repo.PurgeExpiredIdempotency(ctx, db, time.Now())
				if err != nil {
					return fmt.Errorf("purge idempotency keys: %w", err)
				}
				log.Info().Int64("deleted", n).Msg("expired idempotency keys purged")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&purge, "purge-idempotency", false, "also delete expired Idempotency-Key records")
	return cmd
}
