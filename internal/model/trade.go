package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeSide distinguishes buy from sell orders.
type TradeSide string

const (
	TradeSideBuy  TradeSide = "buy"
	TradeSideSell TradeSide = "sell"
)

// Valid reports whether the side is one of the two known values.
func (s TradeSide) Valid() bool {
	return s == TradeSideBuy || s == TradeSideSell
}

// TradeOrder is an ephemeral, per-action trade request. It is validated and
// either executed or discarded with a rejection reason; orders are never
// persisted and a rejected order must be resubmitted as a new order.
type TradeOrder struct {
	UserID   string
	Symbol   string
	Side     TradeSide
	Quantity decimal.Decimal
}

// TradeConfirmation is the record of an executed simulated trade. Orders
// execute at the price observed at validation time, even if the feed
// refreshed between validation and execution.
type TradeConfirmation struct {
	ID            string          `json:"id"`
	Symbol        string          `json:"symbol"`
	Side          TradeSide       `json:"side"`
	Quantity      decimal.Decimal `json:"quantity"`
	ExecutedPrice decimal.Decimal `json:"executedPrice"`
	Total         decimal.Decimal `json:"total"` // quantity x executedPrice
	WalletBalance decimal.Decimal `json:"walletBalance"`
	Timestamp     time.Time       `json:"timestamp"`
}

// RealizedGainLoss records the profit or loss locked in by a sell, measured
// against the holding's average cost at execution time.
type RealizedGainLoss struct {
	ID            string          `json:"id"`
	UserID        string          `json:"-"`
	Symbol        string          `json:"symbol"`
	Shares        decimal.Decimal `json:"shares"`
	CostBasis     decimal.Decimal `json:"costBasis"`     // shares x avg price at sale
	SaleProceeds  decimal.Decimal `json:"saleProceeds"`  // shares x executed price
	GainLoss      decimal.Decimal `json:"gainLoss"`      // proceeds - cost basis
	TransactionAt time.Time       `json:"transactionAt"`
}
