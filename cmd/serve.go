package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"propertyHub/internal/config"
	"propertyHub/internal/dashboard"
	"propertyHub/internal/logger"
	"propertyHub/internal/router"
	"propertyHub/internal/session"
	"propertyHub/internal/submission"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *envFile)
		},
	}
}

func loadConfig(envFile string) (*config.AppConfig, error) {
	if envFile != "" {
		return config.Load(envFile)
	}
	return config.Load()
}

func serve(ctx context.Context, envFile string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Level: logger.ParseLevel(cfg.Log.Level),
		JSON:  cfg.Log.JSON,
		Color: cfg.Log.Color,
	}).With("app", cfg.AppName)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closer, err := openSessionStore(ctx, cfg.Session)
	if err != nil {
		return err
	}
	defer closer.Close()

	c, err := openCatalog(ctx, cfg.Catalog)
	if err != nil {
		return err
	}

	log.Info("Catalog loaded", "source", cfg.Catalog.Source, "properties", c.Len())

	handler := router.New(router.Deps{
		Catalog: c,
		Gate: session.New(store,
			session.WithLoginDelay(cfg.Session.LoginDelay, nil),
			session.WithLogger(log)),
		Submitter: submission.NewSubmitter(
			submission.WithDelays(cfg.Submission.SubmitDelay, cfg.Submission.ContactDelay, nil),
			submission.WithLogger(log)),
		Dashboard: dashboard.New(c, log),
		JWTSecret: []byte(cfg.Session.JWTSecret),
		Logger:    log,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", "port", cfg.Port, "session_backend", cfg.Session.Backend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
