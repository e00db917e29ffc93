// Package main runs the Bamazon storefront: pick a product, order a quantity, get the total.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/abgdnv/bamazon/internal/bootstrap"
	"github.com/abgdnv/bamazon/internal/config"
	"github.com/abgdnv/bamazon/internal/platform/prompt"
	"github.com/abgdnv/bamazon/internal/platform/session"
	"github.com/abgdnv/bamazon/internal/product/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "bamazon: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := bootstrap.NewLogger(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)
	ctx, sessionID := session.Start(ctx)
	logger.DebugContext(ctx, "Configuration loaded", "config", cfg.String())
	logger.InfoContext(ctx, "Customer session starting", "session", sessionID)

	conn, err := bootstrap.NewDbConn(ctx, cfg.Database.DSN(), cfg.Database.Timeout)
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Close(context.Background()); err != nil {
			logger.ErrorContext(ctx, "Failed to close database connection", "error", err)
		}
	}()

	deps := app.SetupDependencies(conn, logger, cfg)
	err = app.NewCustomer(deps, prompt.NewTerminal(), os.Stdout).Run(ctx)
	if errors.Is(err, prompt.ErrAborted) {
		logger.InfoContext(ctx, "Customer session aborted")
		return nil
	}
	return err
}
