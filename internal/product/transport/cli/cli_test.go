package cli

import (
	"io"
	"log/slog"

	"github.com/abgdnv/bamazon/internal/product/service"
	"github.com/abgdnv/bamazon/internal/product/store"
	"github.com/abgdnv/bamazon/internal/product/store/db"
	"github.com/shopspring/decimal"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func strPtr(s string) *string { return &s }

// newTestStore returns a store with three products: stock 35, 5 and 4.
func newTestStore() store.ProductStore {
	return store.NewInMemoryStore(
		db.Product{ItemID: 1, ProductName: "Kindle Paperwhite", DepartmentName: strPtr("Electronics"), Price: decimal.RequireFromString("129.99"), StockQuantity: 35},
		db.Product{ItemID: 2, ProductName: "Yoga Mat", DepartmentName: strPtr("Sports"), Price: decimal.RequireFromString("21.50"), StockQuantity: 5},
		db.Product{ItemID: 3, ProductName: "Water Bottle", Price: decimal.RequireFromString("44.95"), StockQuantity: 4},
	)
}

func newTestService(repo store.ProductStore) service.ProductService {
	return service.NewService(repo, discardLogger)
}
