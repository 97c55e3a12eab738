package repository

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// parseDecimal converts a TEXT column into an exact decimal. Monetary values
// are stored as decimal strings, never floats.
func parseDecimal(column, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid decimal in column %s: %w", column, err)
	}
	return d, nil
}
