package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/CathalystLTDA/zapcont-api/internal/archive"
	"github.com/CathalystLTDA/zapcont-api/internal/config"
	httpapi "github.com/CathalystLTDA/zapcont-api/internal/http"
	"github.com/CathalystLTDA/zapcont-api/internal/nfeio"
	"github.com/CathalystLTDA/zapcont-api/internal/observability"
	"github.com/CathalystLTDA/zapcont-api/internal/repo"
	"github.com/CathalystLTDA/zapcont-api/internal/services"
	"github.com/CathalystLTDA/zapcont-api/internal/sysutil"
)

const (
	shutdownGrace = 15 * time.Second
	purgeEvery    = time.Hour
)

func serveCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API until SIGINT or SIGTERM.

Configuration comes from the environment (see .env.example). Tables are
migrated on start unless --migrate=false or AUTO_MIGRATE=false.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setupLogging()
			if err != nil {
				return err
			}
			if v, ok := os.LookupEnv("AUTO_MIGRATE"); ok && !cmd.Flags().Changed("migrate") {
				migrate = sysutil.IsTruthy(v)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "migrate tables before serving")
	return cmd
}

func serve(ctx context.Context, cfg config.Config, migrate bool) error {
	gin.SetMode(cfg.GinMode)

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, Version)
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	db, err := repo.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = repo.Close(db) }()
	if migrate {
		if err := repo.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	inv := &services.InvoiceService{API: nfeio.New()}
	arch, err := archive.FromConfig(ctx, cfg.Archive)
	if err != nil {
		return err
	}
	if arch != nil {
		inv.Archive = arch
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, db, inv, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("addr", srv.Addr).
			Str("base_path", cfg.APIBasePath).
			Str("db_driver", cfg.DB.Driver).
			Bool("archive", arch != nil).
			Str("version", Version).
			Msg("listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		purgeIdempotency(gctx, db)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		err := srv.Shutdown(sctx)
		// Let in-flight rendition uploads finish before the process exits.
		inv.Wait()
		log.Info().Msg("server stopped")
		return err
	})
	return g.Wait()
}

// purgeIdempotency deletes expired Idempotency-Key records every hour
// until ctx is done.
func purgeIdempotency(ctx context.Context, db *gorm.DB) {
	t := time.NewTicker(purgeEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			n, err := repo.PurgeExpiredIdempotency(ctx, db, now)
			if err != nil {
				log.Warn().Err(err).Msg("idempotency purge failed")
				continue
			}
			if n > 0 {
				log.Debug().Int64("deleted", n).Msg("expired idempotency keys purged")
			}
		}
	}
}
