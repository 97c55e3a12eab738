package validation

import (
	"net/mail"
	"strings"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/request"
)

// minPasswordLength is the minimum accepted password length for registration.
const minPasswordLength = 8

// ValidateRegister validates a registration request.
//
// Required fields:
//   - name: Must be non-empty
//   - email: Must parse as an address
//   - password: Must be at least 8 characters
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateRegister(req request.RegisterRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if strings.TrimSpace(req.Email) == "" {
		errors["email"] = "email is required"
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errors["email"] = "invalid email address"
	}

	if len(req.Password) < minPasswordLength {
		errors["password"] = "password must be at least 8 characters"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateLogin validates a login request. Both fields are required; content
// checks stay out so login failures do not leak which field was wrong.
func ValidateLogin(req request.LoginRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Email) == "" {
		errors["email"] = "email is required"
	}
	if req.Password == "" {
		errors["password"] = "password is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
