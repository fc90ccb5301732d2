package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smilesnaps/smile-rater/internal/config"
	"github.com/smilesnaps/smile-rater/internal/logging"
	"github.com/smilesnaps/smile-rater/internal/smile"
	"github.com/smilesnaps/smile-rater/internal/stats"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, log, svc, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return serve(ctx, cfg, log, newRouter(cfg, log, svc))
		},
	}
}

func newRouter(cfg *config.Config, log *zap.Logger, svc smile.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.AccessLog(log.Named("http")))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	smile.RegisterRoutes(r, smile.NewHandler(svc, cfg.MaxBodyBytes, log.Named("smile")))
	stats.RegisterRoutes(r, stats.NewHandler(stats.NewService(cfg.ShareURL), log.Named("stats")))

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	return r
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger, h http.Handler) error {
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: h}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr), zap.String("provider", cfg.AIProvider))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
