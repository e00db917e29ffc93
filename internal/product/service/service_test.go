package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	perrors "github.com/abgdnv/bamazon/internal/product/errors"
	"github.com/abgdnv/bamazon/internal/product/store"
	"github.com/abgdnv/bamazon/internal/product/store/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProductStore is a mock implementation of the ProductStore interface.
// It counts the stock updates it receives.
type mockProductStore struct {
	products []db.Product
	product  db.Product
	stock    int32
	price    decimal.Decimal
	updated  bool
	id       int32
	error    error

	updates  int
	lastCols []store.Column
}

func (m *mockProductStore) ListAll(_ context.Context) ([]db.Product, error) {
	return m.products, m.error
}

func (m *mockProductStore) ListColumns(_ context.Context, cols ...store.Column) ([]db.Product, error) {
	m.lastCols = cols
	return m.products, m.error
}

func (m *mockProductStore) ListLowStock(_ context.Context, _ int32) ([]db.Product, error) {
	return m.products, m.error
}

func (m *mockProductStore) FindByID(_ context.Context, _ int32) (*db.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

func (m *mockProductStore) GetStock(_ context.Context, _ int32) (int32, error) {
	return m.stock, m.error
}

func (m *mockProductStore) GetPrice(_ context.Context, _ int32) (decimal.Decimal, error) {
	return m.price, m.error
}

func (m *mockProductStore) SetStock(_ context.Context, _ int32, _ int32) (bool, error) {
	m.updates++
	return m.updated, m.error
}

func (m *mockProductStore) DecrementStock(_ context.Context, _ int32, _ int32) (bool, error) {
	m.updates++
	return m.updated, m.error
}

func (m *mockProductStore) IncrementStock(_ context.Context, _ int32, _ int32) (bool, error) {
	m.updates++
	return m.updated, m.error
}

func (m *mockProductStore) Insert(_ context.Context, _ db.InsertProductParams) (int32, error) {
	return m.id, m.error
}

func newTestService(repo store.ProductStore) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func Test_ProductService_ListCatalog(t *testing.T) {
	// given
	mock := &mockProductStore{
		products: []db.Product{{ItemID: 1, ProductName: "Toy", Price: decimal.RequireFromString("9.99")}},
	}
	service := newTestService(mock)
	// when
	catalog, err := service.ListCatalog(context.Background())
	// then
	require.NoError(t, err)
	assert.Equal(t, []store.Column{store.ColumnID, store.ColumnName, store.ColumnPrice}, mock.lastCols)
	require.Len(t, catalog, 1)
	assert.Equal(t, "Toy", catalog[0].Name)
}

func Test_ProductService_ListProducts(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		expected    []ProductDto
		expectError error
	}{
		{
			name: "Success - products found",
			mockStore: &mockProductStore{
				products: []db.Product{{ItemID: 1, ProductName: "Toy", StockQuantity: 3}},
			},
			expected: []ProductDto{{ID: 1, Name: "Toy", Stock: 3}},
		},
		{
			name:      "Success - no products",
			mockStore: &mockProductStore{},
			expected:  []ProductDto{},
		},
		{
			name:        "Error - store error",
			mockStore:   &mockProductStore{error: ErrStoreError},
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := newTestService(tc.mockStore)
			// when
			found, err := service.ListProducts(context.Background())
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_ProductService_FindByID(t *testing.T) {
	// given
	service := newTestService(&mockProductStore{error: perrors.ErrProductNotFound})
	// when
	found, err := service.FindByID(context.Background(), 42)
	// then
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)
	assert.Nil(t, found)
}

func Test_ProductService_Purchase(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name            string
		mockStore       *mockProductStore
		qty             int32
		expected        *Receipt
		expectError     error
		expectedUpdates int
	}{
		{
			name:      "Success - enough stock",
			mockStore: &mockProductStore{stock: 10, updated: true, price: decimal.RequireFromString("19.99")},
			qty:       3,
			expected: &Receipt{
				ProductID: 7,
				Quantity:  3,
				UnitPrice: decimal.RequireFromString("19.99"),
				Total:     decimal.RequireFromString("59.97"),
			},
			expectedUpdates: 1,
		},
		{
			name:            "Success - buying the whole stock",
			mockStore:       &mockProductStore{stock: 2, updated: true, price: decimal.RequireFromString("0.10")},
			qty:             2,
			expected:        &Receipt{ProductID: 7, Quantity: 2, UnitPrice: decimal.RequireFromString("0.10"), Total: decimal.RequireFromString("0.20")},
			expectedUpdates: 1,
		},
		{
			name:            "Error - insufficient stock issues no update",
			mockStore:       &mockProductStore{stock: 2},
			qty:             3,
			expectError:     perrors.ErrInsufficientStock,
			expectedUpdates: 0,
		},
		{
			name:            "Error - stock changed before the update",
			mockStore:       &mockProductStore{stock: 5, updated: false},
			qty:             3,
			expectError:     perrors.ErrFulfillmentFailed,
			expectedUpdates: 1,
		},
		{
			name:            "Error - invalid quantity",
			mockStore:       &mockProductStore{stock: 5},
			qty:             0,
			expectError:     perrors.ErrInvalidQuantity,
			expectedUpdates: 0,
		},
		{
			name:            "Error - store error",
			mockStore:       &mockProductStore{error: ErrStoreError},
			qty:             1,
			expectError:     ErrStoreError,
			expectedUpdates: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := newTestService(tc.mockStore)
			// when
			receipt, err := service.Purchase(context.Background(), 7, tc.qty)
			// then
			assert.Equal(t, tc.expectedUpdates, tc.mockStore.updates)
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, receipt)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected.ProductID, receipt.ProductID)
			assert.Equal(t, tc.expected.Quantity, receipt.Quantity)
			assert.True(t, tc.expected.UnitPrice.Equal(receipt.UnitPrice))
			assert.True(t, tc.expected.Total.Equal(receipt.Total), "total %s != %s", receipt.Total, tc.expected.Total)
		})
	}
}

func Test_ProductService_Purchase_InsufficientStockDetails(t *testing.T) {
	// given
	service := newTestService(&mockProductStore{stock: 2})
	// when
	_, err := service.Purchase(context.Background(), 1, 5)
	// then
	var insufficient *perrors.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int32(2), insufficient.Available)
	assert.Equal(t, int32(5), insufficient.Requested)
}

func Test_ProductService_Purchase_InMemory(t *testing.T) {
	// given
	ctx := context.Background()
	repo := store.NewInMemoryStore(db.Product{ItemID: 1, ProductName: "Toy", Price: decimal.RequireFromString("2.50"), StockQuantity: 10})
	service := newTestService(repo)
	// when
	receipt, err := service.Purchase(ctx, 1, 4)
	// then
	require.NoError(t, err)
	assert.Equal(t, "10.00", receipt.Total.StringFixed(2))
	stock, err := repo.GetStock(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(6), stock)

	// when
	_, err = service.Purchase(ctx, 1, 7)
	// then
	assert.ErrorIs(t, err, perrors.ErrInsufficientStock)
	stock, err = repo.GetStock(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(6), stock)
}

func Test_ProductService_Restock(t *testing.T) {
	testCases := []struct {
		name            string
		mockStore       *mockProductStore
		qty             int32
		expectError     error
		expectedUpdates int
	}{
		{
			name:            "Success - items added",
			mockStore:       &mockProductStore{stock: 1, updated: true},
			qty:             10,
			expectedUpdates: 1,
		},
		{
			name:            "Success - zero items",
			mockStore:       &mockProductStore{stock: 1, updated: true},
			qty:             0,
			expectedUpdates: 1,
		},
		{
			name:        "Error - negative quantity",
			mockStore:   &mockProductStore{stock: 1},
			qty:         -1,
			expectError: perrors.ErrInvalidQuantity,
		},
		{
			name:        "Error - product not found",
			mockStore:   &mockProductStore{error: perrors.ErrProductNotFound},
			qty:         5,
			expectError: perrors.ErrProductNotFound,
		},
		{
			name:            "Error - update did not apply",
			mockStore:       &mockProductStore{stock: 1, updated: false},
			qty:             5,
			expectError:     perrors.ErrRestockFailed,
			expectedUpdates: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := newTestService(tc.mockStore)
			// when
			err := service.Restock(context.Background(), 3, tc.qty)
			// then
			assert.Equal(t, tc.expectedUpdates, tc.mockStore.updates)
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_ProductService_Restock_InMemory(t *testing.T) {
	// given
	ctx := context.Background()
	repo := store.NewInMemoryStore(db.Product{ItemID: 1, ProductName: "Toy", StockQuantity: 3})
	service := newTestService(repo)
	// when
	err := service.Restock(ctx, 1, 12)
	// then
	require.NoError(t, err)
	stock, err := repo.GetStock(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(15), stock)
}

func Test_ProductService_SetStock(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		stock       int32
		expectError error
	}{
		{
			name:      "Success - stock set",
			mockStore: &mockProductStore{updated: true},
			stock:     8,
		},
		{
			name:        "Error - negative stock",
			mockStore:   &mockProductStore{},
			stock:       -8,
			expectError: perrors.ErrInvalidQuantity,
		},
		{
			name:        "Error - product not found",
			mockStore:   &mockProductStore{updated: false},
			stock:       8,
			expectError: perrors.ErrSetStockFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := newTestService(tc.mockStore)
			// when
			err := service.SetStock(context.Background(), 3, tc.stock)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_ProductService_ListLowStock_Boundary(t *testing.T) {
	// given
	repo := store.NewInMemoryStore(
		db.Product{ItemID: 1, ProductName: "Four", StockQuantity: 4},
		db.Product{ItemID: 2, ProductName: "Five", StockQuantity: 5},
		db.Product{ItemID: 3, ProductName: "Zero", StockQuantity: 0},
	)
	service := newTestService(repo)
	// when
	low, err := service.ListLowStock(context.Background(), 5)
	// then
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "Four", low[0].Name)
	assert.Equal(t, "Zero", low[1].Name)
}

func Test_ProductService_Create(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		expected    int32
		expectError error
	}{
		{
			name:      "Success - product created",
			mockStore: &mockProductStore{id: 11},
			expected:  11,
		},
		{
			name:        "Error - store error",
			mockStore:   &mockProductStore{error: ErrStoreError},
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := newTestService(tc.mockStore)
			// when
			id, err := service.Create(context.Background(), ProductCreateDto{Name: "Toy", Price: decimal.RequireFromString("1.00"), Stock: 1})
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, id)
		})
	}
}

func Test_ProductService_Create_RoundTrip(t *testing.T) {
	// given
	ctx := context.Background()
	repo := store.NewInMemoryStore()
	service := newTestService(repo)
	department := "Books"
	input := ProductCreateDto{Name: "The Pragmatic Programmer", Price: decimal.RequireFromString("39.99"), Stock: 2, Department: &department}
	// when
	id, err := service.Create(ctx, input)
	// then
	require.NoError(t, err)
	found, err := service.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, input.Name, found.Name)
	assert.Equal(t, input.Department, found.Department)
	assert.True(t, input.Price.Equal(found.Price))
	assert.Equal(t, input.Stock, found.Stock)
}
