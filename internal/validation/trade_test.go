package validation_test

import (
	"errors"
	"testing"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/validation"
)

// TestParseTradeRequest tests conversion of raw order forms into trade orders.
//
// WHY: Quantity arrives as free text from the order form; everything that is
// not a positive number must be caught here, and symbol/side normalization
// must be consistent so "aapl" and "AAPL" are the same instrument.
func TestParseTradeRequest(t *testing.T) {
	t.Run("valid request normalizes symbol and side", func(t *testing.T) {
		// Execute
		order, err := validation.ParseTradeRequest(request.TradeRequest{
			Symbol:   " aapl ",
			Side:     "Buy",
			Quantity: "2.5",
		})

		// Assert
		if err != nil {
			t.Fatalf("ParseTradeRequest() returned unexpected error: %v", err)
		}
		if order.Symbol != "AAPL" {
			t.Errorf("Expected symbol AAPL, got %q", order.Symbol)
		}
		if order.Side != model.TradeSideBuy {
			t.Errorf("Expected side buy, got %q", order.Side)
		}
		if order.Quantity.String() != "2.5" {
			t.Errorf("Expected quantity 2.5, got %s", order.Quantity)
		}
	})

	t.Run("rejects bad quantities", func(t *testing.T) {
		cases := []string{"", "abc", "0", "-3", "1e", "1.2.3"}
		for _, quantity := range cases {
			_, err := validation.ParseTradeRequest(request.TradeRequest{
				Symbol:   "AAPL",
				Side:     "buy",
				Quantity: quantity,
			})
			if err == nil {
				t.Errorf("Expected error for quantity %q, got nil", quantity)
			}
		}
	})

	t.Run("rejects unknown side", func(t *testing.T) {
		_, err := validation.ParseTradeRequest(request.TradeRequest{
			Symbol:   "AAPL",
			Side:     "short",
			Quantity: "1",
		})
		if err == nil {
			t.Fatal("Expected error for unknown side, got nil")
		}
		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected a validation.Error, got %T", err)
		}
		if _, ok := vErr.Fields["side"]; !ok {
			t.Errorf("Expected a side field error, got %v", vErr.Fields)
		}
	})

	t.Run("collects multiple field errors", func(t *testing.T) {
		_, err := validation.ParseTradeRequest(request.TradeRequest{})
		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected a validation.Error, got %T", err)
		}
		for _, field := range []string{"symbol", "side", "quantity"} {
			if _, ok := vErr.Fields[field]; !ok {
				t.Errorf("Expected a %s field error, got %v", field, vErr.Fields)
			}
		}
	})
}
