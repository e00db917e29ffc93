package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	perrors "github.com/abgdnv/bamazon/internal/product/errors"
	"github.com/abgdnv/bamazon/internal/product/store/db"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db db.DBTX
	q  *db.Queries
}

// NewPgStore creates a new instance of ProductStore on top of a PostgreSQL connection.
func NewPgStore(conn db.DBTX) *PgStore {
	return &PgStore{
		db: conn,
		q:  db.New(conn),
	}
}

// ListAll retrieves all products ordered by ID.
func (p *PgStore) ListAll(ctx context.Context) ([]db.Product, error) {
	products, err := p.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListColumns retrieves all products ordered by ID, selecting only the given columns.
func (p *PgStore) ListColumns(ctx context.Context, cols ...Column) ([]db.Product, error) {
	cols, err := checkColumns(cols)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = pgx.Identifier{string(c)}.Sanitize()
	}
	stmt := fmt.Sprintf("SELECT %s FROM products ORDER BY item_id", strings.Join(names, ", "))

	rows, err := p.db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to list product columns: %w", err)
	}
	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (db.Product, error) {
		var product db.Product
		targets := make([]any, len(cols))
		for i, c := range cols {
			targets[i] = c.target(&product)
		}
		err := row.Scan(targets...)
		return product, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan product columns: %w", err)
	}
	return products, nil
}

// ListLowStock retrieves products whose stock quantity is below threshold.
func (p *PgStore) ListLowStock(ctx context.Context, threshold int32) ([]db.Product, error) {
	products, err := p.q.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	return products, nil
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id int32) (*db.Product, error) {
	product, err := p.q.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return &product, nil
}

// GetStock returns the stock quantity of a product.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) GetStock(ctx context.Context, id int32) (int32, error) {
	stock, err := p.q.GetStock(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, perrors.ErrProductNotFound
		}
		return 0, fmt.Errorf("failed to get product stock: %w", err)
	}
	return stock, nil
}

// GetPrice returns the unit price of a product.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) GetPrice(ctx context.Context, id int32) (decimal.Decimal, error) {
	price, err := p.q.GetPrice(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, perrors.ErrProductNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to get product price: %w", err)
	}
	return price, nil
}

// SetStock overwrites the stock quantity of a product.
func (p *PgStore) SetStock(ctx context.Context, id int32, stock int32) (bool, error) {
	count, err := p.q.SetStock(ctx, db.SetStockParams{ItemID: id, StockQuantity: stock})
	if err != nil {
		return false, fmt.Errorf("failed to set product stock: %w", err)
	}
	return count == 1, nil
}

// DecrementStock removes qty items from the stock of a product if enough are left.
func (p *PgStore) DecrementStock(ctx context.Context, id int32, qty int32) (bool, error) {
	count, err := p.q.DecrementStock(ctx, db.DecrementStockParams{ItemID: id, Quantity: qty})
	if err != nil {
		return false, fmt.Errorf("failed to decrement product stock: %w", err)
	}
	return count == 1, nil
}

// IncrementStock adds qty items to the stock of a product.
func (p *PgStore) IncrementStock(ctx context.Context, id int32, qty int32) (bool, error) {
	count, err := p.q.IncrementStock(ctx, db.IncrementStockParams{ItemID: id, Quantity: qty})
	if err != nil {
		return false, fmt.Errorf("failed to increment product stock: %w", err)
	}
	return count == 1, nil
}

// Insert adds a new product to the system and returns its generated ID.
func (p *PgStore) Insert(ctx context.Context, params db.InsertProductParams) (int32, error) {
	id, err := p.q.InsertProduct(ctx, params)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", perrors.ErrCantCreateProduct, err)
	}
	return id, nil
}
