package feed

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// Synthetic quote bounds. Prices land in [SyntheticPriceMin, SyntheticPriceMax)
// and daily changes in (-SyntheticChangeSpan, +SyntheticChangeSpan).
const (
	SyntheticPriceMin   = 50.0
	SyntheticPriceMax   = 500.0
	SyntheticChangeSpan = 5.0
)

// syntheticSnapshot generates a full fallback snapshot: one plausible quote
// per universe symbol, all tagged synthetic. Used whenever the provider is
// unreachable, restricted, or unparsable, so presentation never sees an empty
// state.
func (s *Service) syntheticSnapshot(now time.Time) *model.QuoteSnapshot {
	quotes := make(map[string]model.Quote, len(s.universe))
	for _, inst := range s.universe {
		quotes[inst.Symbol] = syntheticQuote(inst, now)
	}
	return &model.QuoteSnapshot{
		Quotes:    quotes,
		AsOf:      now,
		Synthetic: true,
	}
}

func syntheticQuote(inst model.Instrument, now time.Time) model.Quote {
	price := decimal.NewFromFloat(SyntheticPriceMin + rand.Float64()*(SyntheticPriceMax-SyntheticPriceMin)).Round(2)
	change := decimal.NewFromFloat((rand.Float64()*2 - 1) * SyntheticChangeSpan).Round(2)
	percent := decimal.Zero
	if !price.IsZero() {
		percent = change.Div(price).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return model.Quote{
		Symbol:        inst.Symbol,
		Name:          inst.DisplayName,
		Price:         price,
		ChangeAmount:  change,
		ChangePercent: percent,
		Exchange:      "SIM",
		Currency:      "USD",
		AsOf:          now,
		Synthetic:     true,
	}
}
