package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	perrors "github.com/abgdnv/bamazon/internal/product/errors"
	"github.com/abgdnv/bamazon/internal/product/store/db"
	"github.com/shopspring/decimal"
)

// inMemory implements ProductStore using an in-memory map.
type inMemory struct {
	mu       sync.RWMutex
	products map[int32]db.Product
	nextID   int32
}

// NewInMemoryStore creates a new instance of ProductStore holding the given products.
// Seeded products keep their IDs; new products get IDs after the highest seeded one.
func NewInMemoryStore(seed ...db.Product) ProductStore {
	s := &inMemory{
		products: make(map[int32]db.Product, len(seed)),
		nextID:   1,
	}
	for _, p := range seed {
		s.products[p.ItemID] = p
		if p.ItemID >= s.nextID {
			s.nextID = p.ItemID + 1
		}
	}
	return s
}

// sorted returns the products ordered by ID. Caller holds the lock.
func (s *inMemory) sorted() []db.Product {
	list := make([]db.Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	slices.SortFunc(list, func(a, b db.Product) int {
		return cmp.Compare(a.ItemID, b.ItemID)
	})
	return list
}

// ListAll retrieves all products.
func (s *inMemory) ListAll(_ context.Context) ([]db.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sorted(), nil
}

// ListColumns retrieves all products with only the given columns set.
func (s *inMemory) ListColumns(_ context.Context, cols ...Column) ([]db.Product, error) {
	cols, err := checkColumns(cols)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.sorted()
	list := make([]db.Product, len(all))
	for i := range all {
		for _, c := range cols {
			c.copyTo(&list[i], &all[i])
		}
	}
	return list, nil
}

// ListLowStock retrieves products with stock below threshold.
func (s *inMemory) ListLowStock(_ context.Context, threshold int32) ([]db.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var list []db.Product
	for _, p := range s.sorted() {
		if p.StockQuantity < threshold {
			list = append(list, p)
		}
	}
	return list, nil
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id int32) (*db.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, perrors.ErrProductNotFound
	}
	return &p, nil
}

// GetStock returns the stock quantity of a product.
func (s *inMemory) GetStock(ctx context.Context, id int32) (int32, error) {
	p, err := s.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return p.StockQuantity, nil
}

// GetPrice returns the price of a product.
func (s *inMemory) GetPrice(ctx context.Context, id int32) (decimal.Decimal, error) {
	p, err := s.FindByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return p.Price, nil
}

// SetStock overwrites the stock quantity of a product.
func (s *inMemory) SetStock(_ context.Context, id int32, stock int32) (bool, error) {
	if stock < 0 {
		return false, perrors.ErrInvalidQuantity
	}
	return s.update(id, func(p *db.Product) bool {
		p.StockQuantity = stock
		return true
	}), nil
}

// DecrementStock removes qty items if at least qty are in stock.
func (s *inMemory) DecrementStock(_ context.Context, id int32, qty int32) (bool, error) {
	return s.update(id, func(p *db.Product) bool {
		if qty < 0 || p.StockQuantity < qty {
			return false
		}
		p.StockQuantity -= qty
		return true
	}), nil
}

// IncrementStock adds qty items to stock.
func (s *inMemory) IncrementStock(_ context.Context, id int32, qty int32) (bool, error) {
	if qty < 0 {
		return false, perrors.ErrInvalidQuantity
	}
	return s.update(id, func(p *db.Product) bool {
		p.StockQuantity += qty
		return true
	}), nil
}

// update applies fn to the stored product under the write lock and keeps the result if fn reports true.
func (s *inMemory) update(id int32, fn func(p *db.Product) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok || !fn(&p) {
		return false
	}
	s.products[id] = p
	return true
}

// Insert creates a new product and returns its ID.
func (s *inMemory) Insert(_ context.Context, params db.InsertProductParams) (int32, error) {
	if params.Price.IsNegative() || params.StockQuantity < 0 {
		return 0, perrors.ErrCantCreateProduct
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := db.Product{
		ItemID:         s.nextID,
		ProductName:    params.ProductName,
		DepartmentName: params.DepartmentName,
		Price:          params.Price,
		StockQuantity:  params.StockQuantity,
	}
	s.nextID++
	s.products[product.ItemID] = product

	return product.ItemID, nil
}
