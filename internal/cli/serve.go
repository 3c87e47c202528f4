package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"pet-care-insights/internal/adapters/auth/odin"
	pg "pet-care-insights/internal/adapters/storage/postgres"
	"pet-care-insights/internal/config"
	"pet-care-insights/internal/platform/logger"
	"pet-care-insights/internal/platform/metrics"
	"pet-care-insights/internal/ports/auth"
	"pet-care-insights/internal/router"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts.cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := newLogger(cfg)
	m := metrics.New()

	var db *sql.DB
	if cfg.Database.DSN != "" {
		var err error
		db, err = pg.Open(ctx, cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := pg.EnsureSchema(ctx, db); err != nil {
			return err
		}
		log.Info("pets store on postgres", nil)
	} else {
		log.Warn("database.dsn empty, using in-memory pets store", nil)
	}

	detections, closeCache, err := buildDetectionService(ctx, cfg, log, m)
	if err != nil {
		return err
	}
	defer closeCache()

	verifier, err := buildVerifier(cfg, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router.NewRouter(router.Options{
			AuthVerifier:  verifier,
			DB:            db,
			Detections:    detections,
			MaxImageBytes: cfg.Detection.MaxImageBytes,
			Logger:        log,
			Metrics:       m,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// buildVerifier: sin base URL de Odin queda en modo dev (X-Debug-User-ID).
func buildVerifier(cfg *config.Config, log logger.Logger) (auth.AuthVerifier, error) {
	if cfg.Auth.OdinBaseURL == "" {
		log.Warn("auth disabled, accepting X-Debug-User-ID", nil)
		return nil, nil
	}
	client, err := odin.NewClient(odin.Config{
		BaseURL: cfg.Auth.OdinBaseURL,
		APIKey:  cfg.Auth.OdinAPIKey,
	})
	if err != nil {
		return nil, err
	}
	return odin.NewVerifier(client, log.With(map[string]any{"module": "auth"})), nil
}
