package service

import (
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// allocationPalette provides stable presentation colors per allocation slot.
var allocationPalette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444",
	"#8B5CF6", "#06B6D4", "#EC4899", "#84CC16",
}

// computeAllocation derives the percentage weight of each holding within
// total portfolio value. Each percentage is marketValue/totalValue x 100
// rounded to two decimal places; the rounding remainder is assigned to the
// largest holding so the rounded values still sum to exactly 100.
// Returns an empty slice when there are no holdings or no positive value.
func computeAllocation(holdings []model.Holding, totalValue decimal.Decimal) []model.Allocation {
	if len(holdings) == 0 || totalValue.Sign() <= 0 {
		return []model.Allocation{}
	}

	hundred := decimal.NewFromInt(100)
	allocation := make([]model.Allocation, len(holdings))
	sum := decimal.Zero
	largest := 0

	for i, h := range holdings {
		pct := h.MarketValue.Div(totalValue).Mul(hundred).Round(2)
		allocation[i] = model.Allocation{
			Name:       h.Symbol,
			Percentage: pct,
			Color:      allocationPalette[i%len(allocationPalette)],
		}
		sum = sum.Add(pct)
		if h.MarketValue.GreaterThan(holdings[largest].MarketValue) {
			largest = i
		}
	}

	if remainder := hundred.Sub(sum); !remainder.IsZero() {
		allocation[largest].Percentage = allocation[largest].Percentage.Add(remainder)
	}
	return allocation
}
