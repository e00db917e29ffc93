// Package service provides the implementation of product-related business logic
// shared by the customer storefront and the manager console.
package service

import (
	"context"
	"fmt"
	"log/slog"

	perrors "github.com/abgdnv/bamazon/internal/product/errors"
	"github.com/abgdnv/bamazon/internal/product/store"
	"github.com/abgdnv/bamazon/internal/product/store/db"
	"github.com/shopspring/decimal"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// ListProducts returns every product with all of its fields.
	// Returns an empty slice if no products exist.
	ListProducts(ctx context.Context) ([]ProductDto, error)

	// ListCatalog returns the products as shown to customers: ID, name and price.
	ListCatalog(ctx context.Context) ([]ProductDto, error)

	// ListLowStock returns the products with fewer than threshold items in stock.
	ListLowStock(ctx context.Context, threshold int32) ([]ProductDto, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int32) (*ProductDto, error)

	// Purchase takes qty items of a product out of stock and returns the order receipt.
	// Returns an InsufficientStockError without touching the stock if fewer than qty items are left,
	// and ErrFulfillmentFailed if the stock update did not apply.
	Purchase(ctx context.Context, id int32, qty int32) (*Receipt, error)

	// Restock adds qty items to the stock of a product.
	// Returns ErrRestockFailed if the stock update did not apply.
	Restock(ctx context.Context, id int32, qty int32) error

	// SetStock overwrites the stock quantity of a product.
	// Returns ErrSetStockFailed if the stock update did not apply.
	SetStock(ctx context.Context, id int32, stock int32) error

	// Create adds a new product to the system and returns its ID.
	Create(ctx context.Context, product ProductCreateDto) (int32, error)
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
	logger     *slog.Logger
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore, logger *slog.Logger) *Service {
	return &Service{
		repository: repo,
		logger:     logger.With("component", "product_service"),
	}
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID         int32
	Name       string
	Department *string
	Price      decimal.Decimal
	Stock      int32
}

// ProductCreateDto represents the data transfer object for creating a new product.
type ProductCreateDto struct {
	Name       string          `validate:"required,max=100"`
	Price      decimal.Decimal `validate:"gte=0"`
	Stock      int32           `validate:"gte=0"`
	Department *string         `validate:"omitempty,max=100"`
}

// Receipt describes a fulfilled order.
type Receipt struct {
	ProductID int32
	Quantity  int32
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// ListProducts retrieves all products and returns them as ProductDTOs.
func (s *Service) ListProducts(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return toDtos(products), nil
}

// ListCatalog retrieves the ID, name and price of all products.
func (s *Service) ListCatalog(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.ListColumns(ctx, store.ColumnID, store.ColumnName, store.ColumnPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	return toDtos(products), nil
}

// ListLowStock retrieves the products whose stock is below threshold.
func (s *Service) ListLowStock(ctx context.Context, threshold int32) ([]ProductDto, error) {
	products, err := s.repository.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch low stock products: %w", err)
	}
	return toDtos(products), nil
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id int32) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}
	dto := toDto(product)
	return &dto, nil
}

// Purchase checks the stock of a product, takes qty items out of it and prices the order.
func (s *Service) Purchase(ctx context.Context, id int32, qty int32) (*Receipt, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: %d", perrors.ErrInvalidQuantity, qty)
	}

	available, err := s.repository.GetStock(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stock for product %d: %w", id, err)
	}
	if qty > available {
		s.logger.InfoContext(ctx, "Order rejected, not enough stock", "product_id", id, "available", available, "requested", qty)
		return nil, &perrors.InsufficientStockError{Available: available, Requested: qty}
	}

	// The update only applies while qty items are still there.
	ok, err := s.repository.DecrementStock(ctx, id, qty)
	if err != nil {
		return nil, fmt.Errorf("failed to update stock for product %d: %w", id, err)
	}
	if !ok {
		s.logger.WarnContext(ctx, "Stock changed between check and update", "product_id", id, "requested", qty)
		return nil, perrors.ErrFulfillmentFailed
	}

	price, err := s.repository.GetPrice(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price for product %d: %w", id, err)
	}

	receipt := &Receipt{
		ProductID: id,
		Quantity:  qty,
		UnitPrice: price,
		Total:     price.Mul(decimal.NewFromInt32(qty)),
	}
	s.logger.InfoContext(ctx, "Order fulfilled", "product_id", id, "quantity", qty, "total", receipt.Total.StringFixed(2))
	return receipt, nil
}

// Restock reads the current stock of a product and adds qty items to it.
func (s *Service) Restock(ctx context.Context, id int32, qty int32) error {
	if qty < 0 {
		return fmt.Errorf("%w: %d", perrors.ErrInvalidQuantity, qty)
	}

	current, err := s.repository.GetStock(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch stock for product %d: %w", id, err)
	}

	ok, err := s.repository.IncrementStock(ctx, id, qty)
	if err != nil {
		return fmt.Errorf("failed to update stock for product %d: %w", id, err)
	}
	if !ok {
		return perrors.ErrRestockFailed
	}
	s.logger.InfoContext(ctx, "Product restocked", "product_id", id, "added", qty, "previous_stock", current)
	return nil
}

// SetStock overwrites the stock quantity of a product.
func (s *Service) SetStock(ctx context.Context, id int32, stock int32) error {
	if stock < 0 {
		return fmt.Errorf("%w: %d", perrors.ErrInvalidQuantity, stock)
	}

	ok, err := s.repository.SetStock(ctx, id, stock)
	if err != nil {
		return fmt.Errorf("failed to set stock for product %d: %w", id, err)
	}
	if !ok {
		return perrors.ErrSetStockFailed
	}
	s.logger.InfoContext(ctx, "Stock level set", "product_id", id, "stock", stock)
	return nil
}

// Create inserts a new product and returns its generated ID.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (int32, error) {
	id, err := s.repository.Insert(ctx, db.InsertProductParams{
		ProductName:    product.Name,
		DepartmentName: product.Department,
		Price:          product.Price,
		StockQuantity:  product.Stock,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}
	s.logger.InfoContext(ctx, "Product created", "product_id", id, "name", product.Name)
	return id, nil
}

// toDto converts a db.Product to a ProductDto.
func toDto(product *db.Product) ProductDto {
	return ProductDto{
		ID:         product.ItemID,
		Name:       product.ProductName,
		Department: product.DepartmentName,
		Price:      product.Price,
		Stock:      product.StockQuantity,
	}
}

func toDtos(products []db.Product) []ProductDto {
	dtos := make([]ProductDto, len(products))
	for i := range products {
		dtos[i] = toDto(&products[i])
	}
	return dtos
}
