// Package errors provides custom error types for product-related operations.
package errors

import (
	"errors"
	"fmt"
)

var ErrProductNotFound = errors.New("product not found")
var ErrCantCreateProduct = errors.New("can't create product")
var ErrUnknownColumn = errors.New("unknown product column")

var ErrInvalidQuantity = errors.New("invalid quantity")
var ErrInsufficientStock = errors.New("insufficient quantity")
var ErrFulfillmentFailed = errors.New("order fulfillment failed during update")
var ErrRestockFailed = errors.New("failed to add more items")
var ErrSetStockFailed = errors.New("failed to set stock level")

// InsufficientStockError reports how many items were available when an order asked for more.
type InsufficientStockError struct {
	Available int32
	Requested int32
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: only %d left (%d asked)", ErrInsufficientStock, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
