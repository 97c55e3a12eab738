package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a registered dashboard user.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Wallet is a user's cash balance available for purchases. Only trade
// execution may mutate it, and only as the debit/credit of a validated order.
type Wallet struct {
	UserID  string          `json:"userId"`
	Balance decimal.Decimal `json:"balance"`
}
