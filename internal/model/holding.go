package model

import "github.com/shopspring/decimal"

// Holding represents a priced position of shares in one instrument.
// Shares change only through trade execution; the priced fields change only
// through repricing or execution.
type Holding struct {
	ID            string          `json:"id"`
	UserID        string          `json:"-"`
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Shares        decimal.Decimal `json:"shares"`
	AvgPrice      decimal.Decimal `json:"avgPrice"`      // volume-weighted average cost per share
	CurrentPrice  decimal.Decimal `json:"currentPrice"`  // last known price, stale-but-present over zero
	MarketValue   decimal.Decimal `json:"marketValue"`   // shares x currentPrice
	GainLoss      decimal.Decimal `json:"gainLoss"`      // marketValue - shares x avgPrice
	ChangeAmount  decimal.Decimal `json:"changeAmount"`  // daily price move per share
	ChangePercent decimal.Decimal `json:"changePercent"` // daily change of the instrument
}

// CostBasis returns shares x avgPrice.
func (h Holding) CostBasis() decimal.Decimal {
	return h.Shares.Mul(h.AvgPrice)
}

// DailyChangeContribution returns shares x changeAmount, the holding's share
// of the portfolio's daily change.
func (h Holding) DailyChangeContribution() decimal.Decimal {
	return h.Shares.Mul(h.ChangeAmount)
}
