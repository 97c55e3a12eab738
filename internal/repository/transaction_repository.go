package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// TransactionRepository provides data access methods for spending/income
// transactions on the dashboard.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts a new transaction.
func (r *TransactionRepository) Create(t model.Transaction) error {
	_, err := r.db.Exec(`
		INSERT INTO expense_transaction (id, user_id, date, merchant, amount, category, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Date, t.Merchant, t.Amount.String(), t.Category, t.Notes, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// Get retrieves a single transaction by ID, scoped to the user.
func (r *TransactionRepository) Get(userID, id string) (model.Transaction, error) {
	row := r.db.QueryRow(`
		SELECT id, user_id, date, merchant, amount, category, notes, created_at
		FROM expense_transaction
		WHERE id = ? AND user_id = ?`, id, userID)

	t, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.Transaction{}, err
	}
	return t, nil
}

// List retrieves a user's transactions, newest first. When month is non-zero
// only transactions inside that calendar month (UTC) are returned.
func (r *TransactionRepository) List(userID string, month time.Time) ([]model.Transaction, error) {
	query := `
		SELECT id, user_id, date, merchant, amount, category, notes, created_at
		FROM expense_transaction
		WHERE user_id = ?`
	args := []any{userID}

	if !month.IsZero() {
		start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		query += " AND date >= ? AND date < ?"
		args = append(args, start, end)
	}
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}

// Update replaces the mutable fields of a transaction.
func (r *TransactionRepository) Update(t model.Transaction) error {
	result, err := r.db.Exec(`
		UPDATE expense_transaction
		SET date = ?, merchant = ?, amount = ?, category = ?, notes = ?
		WHERE id = ? AND user_id = ?`,
		t.Date, t.Merchant, t.Amount.String(), t.Category, t.Notes, t.ID, t.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check transaction update: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction.
func (r *TransactionRepository) Delete(userID, id string) error {
	result, err := r.db.Exec("DELETE FROM expense_transaction WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check transaction delete: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

func scanTransaction(row rowScanner) (model.Transaction, error) {
	var t model.Transaction
	var amount string
	var notes sql.NullString

	err := row.Scan(&t.ID, &t.UserID, &t.Date, &t.Merchant, &amount, &t.Category, &notes, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Transaction{}, err
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan transaction: %w", err)
	}

	if t.Amount, err = parseDecimal("amount", amount); err != nil {
		return model.Transaction{}, err
	}
	t.Notes = notes.String
	return t, nil
}
