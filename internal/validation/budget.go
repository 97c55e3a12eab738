package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/request"
)

// ValidateCreateBudget validates a budget creation request.
//
// Required fields:
//   - category: Must be non-empty
//   - limit: Must parse as a positive decimal
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateBudget(req request.CreateBudgetRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Category) == "" {
		errors["category"] = "category is required"
	}
	validateLimit(req.Limit, errors)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateBudget validates a budget update request.
func ValidateUpdateBudget(req request.UpdateBudgetRequest) error {
	errors := make(map[string]string)

	validateLimit(req.Limit, errors)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateLimit(limit string, errors map[string]string) {
	if strings.TrimSpace(limit) == "" {
		errors["limit"] = "limit is required"
		return
	}
	parsed, err := decimal.NewFromString(limit)
	if err != nil {
		errors["limit"] = "limit must be a number"
		return
	}
	if !parsed.IsPositive() {
		errors["limit"] = "limit must be positive"
	}
}
