package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// BudgetRepository provides data access methods for budget categories.
type BudgetRepository struct {
	db *sql.DB
}

// NewBudgetRepository creates a new BudgetRepository with the provided database connection.
func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// Create inserts a new budget category. Returns apperrors.ErrDuplicateEntry
// when the user already budgets that category.
func (r *BudgetRepository) Create(b model.BudgetCategory) error {
	_, err := r.db.Exec(
		"INSERT INTO budget_category (id, user_id, category, monthly_limit) VALUES (?, ?, ?, ?)",
		b.ID, b.UserID, b.Category, b.Limit.String(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return apperrors.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to insert budget category: %w", err)
	}
	return nil
}

// List retrieves a user's budget categories in category order.
func (r *BudgetRepository) List(userID string) ([]model.BudgetCategory, error) {
	rows, err := r.db.Query(
		"SELECT id, user_id, category, monthly_limit FROM budget_category WHERE user_id = ? ORDER BY category",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget categories: %w", err)
	}
	defer rows.Close()

	budgets := []model.BudgetCategory{}
	for rows.Next() {
		var b model.BudgetCategory
		var limit string
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &limit); err != nil {
			return nil, fmt.Errorf("failed to scan budget category: %w", err)
		}
		if b.Limit, err = parseDecimal("monthly_limit", limit); err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budget categories: %w", err)
	}
	return budgets, nil
}

// Update changes a budget category's monthly limit.
func (r *BudgetRepository) Update(b model.BudgetCategory) error {
	result, err := r.db.Exec(
		"UPDATE budget_category SET monthly_limit = ? WHERE id = ? AND user_id = ?",
		b.Limit.String(), b.ID, b.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check budget update: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}

// Delete removes a budget category.
func (r *BudgetRepository) Delete(userID, id string) error {
	result, err := r.db.Exec("DELETE FROM budget_category WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete budget category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check budget delete: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}
