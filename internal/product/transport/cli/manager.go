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
	"github.com/go-playground/validator/v10"
)

// Manager runs one inventory administration action chosen from a menu.
type Manager struct {
	service   service.ProductService
	prompter  prompt.Prompter
	validate  *validator.Validate
	out       io.Writer
	logger    *slog.Logger
	threshold int32
}

type action struct {
	label string
	run   func(ctx context.Context) error
}

// NewManager creates the manager command. Products with fewer than threshold items count as low inventory.
func NewManager(service service.ProductService, prompter prompt.Prompter, out io.Writer, logger *slog.Logger, threshold int32) *Manager {
	return &Manager{
		service:   service,
		prompter:  prompter,
		validate:  newValidator(),
		out:       out,
		logger:    logger.With("component", "manager"),
		threshold: threshold,
	}
}

func (m *Manager) actions() []action {
	return []action{
		{label: "View Products for Sale", run: m.viewProducts},
		{label: fmt.Sprintf("View Low Inventory (< %d)", m.threshold), run: m.viewLowInventory},
		{label: "Add to Inventory", run: m.addToInventory},
		{label: "Set Stock Level", run: m.setStockLevel},
		{label: "Add New Product", run: m.addNewProduct},
	}
}

// Run shows the menu and performs the selected action.
func (m *Manager) Run(ctx context.Context) error {
	actions := m.actions()
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.label
	}
	idx, err := m.prompter.Select("Select an option", labels)
	if err != nil {
		return err
	}
	m.logger.DebugContext(ctx, "Action selected", "action", actions[idx].label)
	return actions[idx].run(ctx)
}

func (m *Manager) viewProducts(ctx context.Context) error {
	products, err := m.service.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}
	if len(products) == 0 {
		fmt.Fprintln(m.out, "No products available.")
		return nil
	}
	renderProducts(m.out, products)
	return nil
}

func (m *Manager) viewLowInventory(ctx context.Context) error {
	products, err := m.service.ListLowStock(ctx, m.threshold)
	if err != nil {
		return fmt.Errorf("failed to list low inventory: %w", err)
	}
	if len(products) == 0 {
		fmt.Fprintf(m.out, "All products appear to have >= %d items\n", m.threshold)
		return nil
	}
	renderProducts(m.out, products)
	return nil
}

// selectProduct lists every product with its stock and returns the chosen one.
// It reports false when there is nothing to choose from.
func (m *Manager) selectProduct(ctx context.Context, label string) (service.ProductDto, bool, error) {
	products, err := m.service.ListProducts(ctx)
	if err != nil {
		return service.ProductDto{}, false, fmt.Errorf("failed to list products: %w", err)
	}
	if len(products) == 0 {
		fmt.Fprintln(m.out, "No products available.")
		return service.ProductDto{}, false, nil
	}
	choices := make([]string, len(products))
	for i, p := range products {
		choices[i] = inventoryChoice(p)
	}
	idx, err := m.prompter.Select(label, choices)
	if err != nil {
		return service.ProductDto{}, false, err
	}
	return products[idx], true, nil
}

func (m *Manager) addToInventory(ctx context.Context) error {
	product, ok, err := m.selectProduct(ctx, "Select a product ID to add more items")
	if err != nil || !ok {
		return err
	}
	answer, err := m.prompter.Input("How many items to add?", "10", gte(0))
	if err != nil {
		return err
	}
	qty, err := parseInt32(answer)
	if err != nil {
		return err
	}

	err = m.service.Restock(ctx, product.ID, qty)
	switch {
	case errors.Is(err, perrors.ErrRestockFailed), errors.Is(err, perrors.ErrProductNotFound):
		fmt.Fprintln(m.out, "Failed to add more items.")
		return nil
	case err != nil:
		fmt.Fprintln(m.out, "Failed to add more items.")
		return fmt.Errorf("failed to restock product %d: %w", product.ID, err)
	}
	fmt.Fprintf(m.out, "Added %d to %d\n", qty, product.ID)
	return nil
}

func (m *Manager) setStockLevel(ctx context.Context) error {
	product, ok, err := m.selectProduct(ctx, "Select a product ID to set its stock level")
	if err != nil || !ok {
		return err
	}
	answer, err := m.prompter.Input("How many items are in stock?", fmt.Sprint(product.Stock), gte(0))
	if err != nil {
		return err
	}
	stock, err := parseInt32(answer)
	if err != nil {
		return err
	}

	err = m.service.SetStock(ctx, product.ID, stock)
	switch {
	case errors.Is(err, perrors.ErrSetStockFailed):
		fmt.Fprintln(m.out, "Failed to set stock level.")
		return nil
	case err != nil:
		fmt.Fprintln(m.out, "Failed to set stock level.")
		return fmt.Errorf("failed to set stock of product %d: %w", product.ID, err)
	}
	fmt.Fprintf(m.out, "Stock of %d set to %d\n", product.ID, stock)
	return nil
}

func (m *Manager) addNewProduct(ctx context.Context) error {
	name, err := m.prompter.Input("What is the product name?", "", validateRequired)
	if err != nil {
		return err
	}
	priceAnswer, err := m.prompter.Input("What is the price?", "", validatePrice)
	if err != nil {
		return err
	}
	stockAnswer, err := m.prompter.Input("How many items?", "", gte(0))
	if err != nil {
		return err
	}
	department, err := m.prompter.Input("What is the department name for the product?", "", nil)
	if err != nil {
		return err
	}

	price, err := parsePrice(priceAnswer)
	if err != nil {
		return err
	}
	stock, err := parseInt32(stockAnswer)
	if err != nil {
		return err
	}
	productCreateDto := service.ProductCreateDto{
		Name:       name,
		Price:      price,
		Stock:      stock,
		Department: optional(department),
	}

	if err := m.validate.Struct(productCreateDto); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			m.logger.WarnContext(ctx, "Validation errors occurred", "errors", errorResponse)
			for _, fieldErr := range validationErrors {
				fmt.Fprintf(m.out, "Invalid %s: failed on rule %s\n", fieldErr.Field(), fieldErr.Tag())
			}
			return nil
		}
		return fmt.Errorf("failed to validate product: %w", err)
	}

	id, err := m.service.Create(ctx, productCreateDto)
	if err != nil {
		fmt.Fprintf(m.out, "Failed to add the new product: %v\n", err)
		return fmt.Errorf("failed to add product %q: %w", name, err)
	}
	fmt.Fprintf(m.out, "The new product added successfully as ID %d\n", id)
	return nil
}
