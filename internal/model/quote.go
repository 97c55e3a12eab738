package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownExchange is the sentinel exchange value for quotes whose symbol was
// present in the provider response but carried no usable data. An unavailable
// quote keeps its price unset rather than zero so it can never corrupt
// valuation math downstream.
const UnknownExchange = "unknown"

// Quote is a point-in-time price/change observation for a single symbol.
// Quotes are immutable once issued; a refresh cycle replaces the whole
// snapshot, never individual fields.
type Quote struct {
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name,omitempty"`
	Price         decimal.Decimal `json:"price"`
	ChangeAmount  decimal.Decimal `json:"changeAmount"`
	ChangePercent decimal.Decimal `json:"changePercent"`
	Exchange      string          `json:"exchange"`
	Currency      string          `json:"currency"`
	AsOf          time.Time       `json:"asOf"`
	Synthetic     bool            `json:"synthetic"`   // locally generated fallback quote
	Unavailable   bool            `json:"unavailable"` // no usable price for this symbol
}

// HasPrice reports whether the quote carries a usable price.
// Unavailable quotes must be treated as "no quote" by valuation and trading.
func (q Quote) HasPrice() bool {
	return !q.Unavailable
}

// QuoteSnapshot is one immutable refresh result: the latest quote for every
// universe symbol. The feed publishes a new snapshot atomically on each cycle;
// callers holding an older snapshot keep a fully consistent view.
type QuoteSnapshot struct {
	Quotes    map[string]Quote `json:"quotes"` // keyed by symbol
	AsOf      time.Time        `json:"asOf"`
	Synthetic bool             `json:"synthetic"` // entire snapshot generated locally
	Version   uint64           `json:"version"`   // monotonically increasing per publish
}

// Quote returns the snapshot's quote for symbol and whether a usable
// (priced) quote exists.
func (s *QuoteSnapshot) Quote(symbol string) (Quote, bool) {
	if s == nil {
		return Quote{}, false
	}
	q, ok := s.Quotes[symbol]
	if !ok || !q.HasPrice() {
		return q, false
	}
	return q, true
}

// Instrument is one entry of the fixed watch universe.
type Instrument struct {
	Symbol      string `json:"symbol"`
	DisplayName string `json:"displayName"`
}
