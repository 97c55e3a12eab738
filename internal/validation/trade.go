package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// ParseTradeRequest validates a trade request and converts it into an order.
// The quantity arrives as free text from the order form; anything that does
// not parse as a positive decimal is rejected here, before the order reaches
// the trading service.
//
// Required fields:
//   - symbol: Must be non-empty; uppercased
//   - side: Must be "buy" or "sell"
//   - quantity: Must parse as a positive decimal
//
// Returns a validation Error with field-specific error messages if validation fails.
func ParseTradeRequest(req request.TradeRequest) (model.TradeOrder, error) {
	errors := make(map[string]string)

	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if symbol == "" {
		errors["symbol"] = "symbol is required"
	}

	side := model.TradeSide(strings.ToLower(strings.TrimSpace(req.Side)))
	if !side.Valid() {
		errors["side"] = "side must be buy or sell"
	}

	quantity, err := decimal.NewFromString(strings.TrimSpace(req.Quantity))
	if err != nil {
		errors["quantity"] = "quantity must be a number"
	} else if !quantity.IsPositive() {
		errors["quantity"] = "quantity must be positive"
	}

	if len(errors) > 0 {
		return model.TradeOrder{}, &Error{Fields: errors}
	}

	return model.TradeOrder{
		Symbol:   symbol,
		Side:     side,
		Quantity: quantity,
	}, nil
}
