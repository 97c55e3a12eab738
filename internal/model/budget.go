package model

import "github.com/shopspring/decimal"

// BudgetCategory is a user's monthly spending limit for one category.
type BudgetCategory struct {
	ID       string          `json:"id"`
	UserID   string          `json:"-"`
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"` // per calendar month
}

// BudgetStatus joins a budget category with the current month's spending.
type BudgetStatus struct {
	ID         string          `json:"id"`
	Category   string          `json:"category"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"` // limit - spent, may be negative
	OverBudget bool            `json:"overBudget"`
}
