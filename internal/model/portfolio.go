package model

import "github.com/shopspring/decimal"

// Allocation is the percentage weight of one holding within total portfolio
// value. Allocations are a derived view: recomputed whenever holdings change,
// never edited directly. Percentages are rounded to two decimal places with
// the rounding remainder assigned to the largest entry so the sum is exactly
// 100 whenever holdings are non-empty.
type Allocation struct {
	Name       string          `json:"name"` // symbol of the holding
	Percentage decimal.Decimal `json:"percentage"`
	Color      string          `json:"color"` // stable presentation hint per slot
}

// ChangeSummary pairs an absolute amount with a percentage.
type ChangeSummary struct {
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// PortfolioSnapshot is the aggregate view emitted to presentation. All fields
// are pure derivations of the holdings; TotalValue equals the sum of all
// holdings' market values after every mutation.
type PortfolioSnapshot struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	DailyChange   ChangeSummary   `json:"dailyChange"`
	OverallReturn ChangeSummary   `json:"overallReturn"`
	Allocation    []Allocation    `json:"allocation"`
	Assets        []Holding       `json:"assets"`
}
