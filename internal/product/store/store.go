// Package store provides an interface for product storage operations.
package store

import (
	"context"
	"fmt"

	perrors "github.com/abgdnv/bamazon/internal/product/errors"
	"github.com/abgdnv/bamazon/internal/product/store/db"
	"github.com/shopspring/decimal"
)

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// ListAll returns every product ordered by ID.
	// Returns an empty slice if no products exist.
	ListAll(ctx context.Context) ([]db.Product, error)

	// ListColumns returns every product ordered by ID with only the given columns populated.
	// Returns ErrUnknownColumn if a column is not part of the products table.
	ListColumns(ctx context.Context, cols ...Column) ([]db.Product, error)

	// ListLowStock returns the products whose stock quantity is strictly below threshold.
	ListLowStock(ctx context.Context, threshold int32) ([]db.Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int32) (*db.Product, error)

	// GetStock returns the stock quantity of a product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	GetStock(ctx context.Context, id int32) (int32, error)

	// GetPrice returns the unit price of a product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	GetPrice(ctx context.Context, id int32) (decimal.Decimal, error)

	// SetStock overwrites the stock quantity of a product.
	// Reports whether exactly one row was changed.
	SetStock(ctx context.Context, id int32, stock int32) (bool, error)

	// DecrementStock removes qty items from stock in one statement, only if at least qty are left.
	// Reports false when the product is missing or has fewer than qty items.
	DecrementStock(ctx context.Context, id int32, qty int32) (bool, error)

	// IncrementStock adds qty items to stock in one statement.
	// Reports false when the product is missing.
	IncrementStock(ctx context.Context, id int32, qty int32) (bool, error)

	// Insert adds a new product and returns its generated ID.
	Insert(ctx context.Context, params db.InsertProductParams) (int32, error)
}

// Column names a column of the products table.
type Column string

const (
	ColumnID         Column = "item_id"
	ColumnName       Column = "product_name"
	ColumnDepartment Column = "department_name"
	ColumnPrice      Column = "price"
	ColumnStock      Column = "stock_quantity"
)

// AllColumns lists the products table columns in table order.
var AllColumns = []Column{ColumnID, ColumnName, ColumnDepartment, ColumnPrice, ColumnStock}

// target returns the field of p that holds the column value.
func (c Column) target(p *db.Product) any {
	switch c {
	case ColumnID:
		return &p.ItemID
	case ColumnName:
		return &p.ProductName
	case ColumnDepartment:
		return &p.DepartmentName
	case ColumnPrice:
		return &p.Price
	case ColumnStock:
		return &p.StockQuantity
	}
	return nil
}

// copyTo copies the column value from src into dst.
func (c Column) copyTo(dst, src *db.Product) {
	switch c {
	case ColumnID:
		dst.ItemID = src.ItemID
	case ColumnName:
		dst.ProductName = src.ProductName
	case ColumnDepartment:
		dst.DepartmentName = src.DepartmentName
	case ColumnPrice:
		dst.Price = src.Price
	case ColumnStock:
		dst.StockQuantity = src.StockQuantity
	}
}

// checkColumns defaults an empty selection to all columns and rejects unknown names.
func checkColumns(cols []Column) ([]Column, error) {
	if len(cols) == 0 {
		return AllColumns, nil
	}
	for _, c := range cols {
		if c.target(&db.Product{}) == nil {
			return nil, fmt.Errorf("%w: %q", perrors.ErrUnknownColumn, string(c))
		}
	}
	return cols, nil
}
