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

	"github.com/cli/browser"
	"github.com/ipupy/tesoreria/internal/app"
	"github.com/ipupy/tesoreria/internal/config"
	"github.com/ipupy/tesoreria/internal/logger"
	"github.com/ipupy/tesoreria/internal/routes"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: routes.SetupRoutes(app),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "app", cfg.AppName, "port", cfg.Port, "env", cfg.AppEnv, "url", cfg.URL())
		errCh <- srv.ListenAndServe()
	}()

	if cfg.OpenBrowser {
		err = browser.OpenURL(cfg.URL())
		if err != nil {
			slog.Warn("failed to open browser", "error", err, "url", cfg.URL())
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = srv.Shutdown(ctx)
		if err != nil {
			slog.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
		slog.Info("server stopped")
	case err = <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}
}
