package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// IntValidator checks a whole number typed at a prompt.
type IntValidator func(input string) error

func newComparisonValidator(valueInClosure int64, rule string, compareFn func(argValue, closedValue int64) bool) IntValidator {
	return func(input string) error {
		n, err := parseInt32(input)
		if err != nil {
			return err
		}
		if !compareFn(int64(n), valueInClosure) {
			return fmt.Errorf("must be %s %d", rule, valueInClosure)
		}
		return nil
	}
}

// gte returns an IntValidator that accepts numbers greater than or equal to the captured value.
func gte(valToCompareAgainst int64) IntValidator {
	return newComparisonValidator(valToCompareAgainst, "at least", func(argValue, closedValue int64) bool {
		return argValue >= closedValue
	})
}

// gt returns an IntValidator that accepts numbers greater than the captured value.
func gt(valToCompareAgainst int64) IntValidator {
	return newComparisonValidator(valToCompareAgainst, "greater than", func(argValue, closedValue int64) bool {
		return argValue > closedValue
	})
}

func parseInt32(input string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", input)
	}
	return int32(n), nil
}

// parsePrice reads a non-negative amount and rounds it to cents.
func parsePrice(input string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), "$")))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a price", input)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("price must not be negative")
	}
	return price.Round(2), nil
}

func validatePrice(input string) error {
	_, err := parsePrice(input)
	return err
}

func validateRequired(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("a value is required")
	}
	return nil
}

// optional turns an empty answer into a missing value.
func optional(input string) *string {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	return &input
}

// newValidator returns a validator that compares decimal.Decimal fields as numbers.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}
