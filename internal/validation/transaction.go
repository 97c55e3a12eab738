package validation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/request"
)

// ValidateCreateTransaction validates a transaction creation request.
//
// Required fields:
//   - date: Must be in YYYY-MM-DD format
//   - merchant: Must be non-empty
//   - amount: Must parse as a non-zero decimal (negative for expenses)
//
// Category is optional; an empty category is assigned from the merchant name
// by the service layer.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(req.Merchant) == "" {
		errors["merchant"] = "merchant is required"
	}

	validateAmount(req.Amount, errors)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateTransaction validates a transaction update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateUpdateTransaction(req request.UpdateTransactionRequest) error {
	errors := make(map[string]string)

	if req.Date != nil {
		if strings.TrimSpace(*req.Date) == "" {
			errors["date"] = "date is required"
		} else if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			errors["date"] = err.Error()
		}
	}
	if req.Merchant != nil {
		if strings.TrimSpace(*req.Merchant) == "" {
			errors["merchant"] = "merchant is required"
		}
	}
	if req.Amount != nil {
		validateAmount(*req.Amount, errors)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateAmount(amount string, errors map[string]string) {
	if strings.TrimSpace(amount) == "" {
		errors["amount"] = "amount is required"
		return
	}
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		errors["amount"] = "amount must be a number"
		return
	}
	if parsed.IsZero() {
		errors["amount"] = "amount must be non-zero"
	}
}
