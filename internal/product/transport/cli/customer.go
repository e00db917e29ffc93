// Package cli implements the interactive storefront commands on top of ProductService.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/abgdnv/bamazon/internal/platform/prompt"
	perrors "github.com/abgdnv/bamazon/internal/product/errors"
	"github.com/abgdnv/bamazon/internal/product/service"
)

// Customer runs the purchase flow: pick a product, pick a quantity, pay.
type Customer struct {
	service  service.ProductService
	prompter prompt.Prompter
	out      io.Writer
	logger   *slog.Logger
}

// NewCustomer creates the customer command.
func NewCustomer(service service.ProductService, prompter prompt.Prompter, out io.Writer, logger *slog.Logger) *Customer {
	return &Customer{
		service:  service,
		prompter: prompter,
		out:      out,
		logger:   logger.With("component", "customer"),
	}
}

// Run takes one order.
func (c *Customer) Run(ctx context.Context) error {
	products, err := c.service.ListCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}
	if len(products) == 0 {
		fmt.Fprintln(c.out, "No products available.")
		return nil
	}

	choices := make([]string, len(products))
	for i, p := range products {
		choices[i] = catalogChoice(p)
	}
	idx, err := c.prompter.Select("Select a product you want to buy", choices)
	if err != nil {
		return err
	}
	answer, err := c.prompter.Input("How many?", "1", gt(0))
	if err != nil {
		return err
	}
	qty, err := parseInt32(answer)
	if err != nil {
		return err
	}

	product := products[idx]
	c.logger.DebugContext(ctx, "Order placed", "product_id", product.ID, "quantity", qty)
	receipt, err := c.service.Purchase(ctx, product.ID, qty)

	var insufficient *perrors.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		fmt.Fprintf(c.out, "Insufficient quantity! Only %d left (%d asked)\n", insufficient.Available, insufficient.Requested)
		return nil
	case errors.Is(err, perrors.ErrFulfillmentFailed):
		fmt.Fprintln(c.out, "The order fulfillment failed during update.")
		return nil
	case err != nil:
		fmt.Fprintln(c.out, "The order fulfillment failed during update.")
		return fmt.Errorf("failed to purchase product %d: %w", product.ID, err)
	}

	fmt.Fprintf(c.out, "Order Total: $%s\n", receipt.Total.StringFixed(2))
	return nil
}
