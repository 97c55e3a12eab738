package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a spending or income entry on the dashboard.
// The Category is assigned from a static keyword lookup over the merchant
// name at creation time and can be overridden by the user afterwards.
type Transaction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"-"`
	Date      time.Time       `json:"date"`
	Merchant  string          `json:"merchant"`
	Amount    decimal.Decimal `json:"amount"` // negative for expenses, positive for income
	Category  string          `json:"category"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt,omitempty"`
}

// CategorySpending aggregates one category's transactions within a month.
type CategorySpending struct {
	Category string          `json:"category"`
	Spent    decimal.Decimal `json:"spent"`  // absolute value of negative amounts
	Income   decimal.Decimal `json:"income"` // sum of positive amounts
	Count    int             `json:"count"`
}

// MonthlySummary is the per-month rollup of a user's transactions.
type MonthlySummary struct {
	Month      string             `json:"month"` // YYYY-MM
	TotalSpent decimal.Decimal    `json:"totalSpent"`
	TotalIn    decimal.Decimal    `json:"totalIncome"`
	Categories []CategorySpending `json:"categories"`
}
