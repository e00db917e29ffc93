// Package app wires the product service into the customer and manager commands.
package app

import (
	"io"
	"log/slog"

	"github.com/abgdnv/bamazon/internal/config"
	"github.com/abgdnv/bamazon/internal/platform/prompt"
	"github.com/abgdnv/bamazon/internal/product/service"
	"github.com/abgdnv/bamazon/internal/product/store"
	"github.com/abgdnv/bamazon/internal/product/store/db"
	"github.com/abgdnv/bamazon/internal/product/transport/cli"
)

type Dependencies struct {
	ProductService service.ProductService
	Logger         *slog.Logger
	Config         *config.Config
}

// SetupDependencies builds the one product service both commands share.
func SetupDependencies(conn db.DBTX, logger *slog.Logger, cfg *config.Config) *Dependencies {
	pService := service.NewService(store.NewPgStore(conn), logger)

	return &Dependencies{
		ProductService: pService,
		Logger:         logger,
		Config:         cfg,
	}
}

// NewCustomer creates the storefront command.
func NewCustomer(deps *Dependencies, prompter prompt.Prompter, out io.Writer) *cli.Customer {
	return cli.NewCustomer(deps.ProductService, prompter, out, deps.Logger)
}

// NewManager creates the inventory console using the configured low stock threshold.
func NewManager(deps *Dependencies, prompter prompt.Prompter, out io.Writer) *cli.Manager {
	return cli.NewManager(deps.ProductService, prompter, out, deps.Logger, deps.Config.Manager.LowStock.Threshold)
}
