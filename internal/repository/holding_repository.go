package repository

import (
	"database/sql"
	"fmt"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// HoldingRepository provides data access methods for the holding table.
// Share counts are mutated only by TradeRepository; this repository reads
// positions and applies price refreshes.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// GetHoldings retrieves all holdings for a user in stable symbol order.
// MarketValue and GainLoss are derived from the stored columns on read.
func (r *HoldingRepository) GetHoldings(userID string) ([]model.Holding, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, symbol, name, shares, avg_price, current_price, change_amount, change_percent
		FROM holding
		WHERE user_id = ?
		ORDER BY symbol`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}
	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holdings: %w", err)
	}
	return holdings, nil
}

// GetHoldingBySymbol retrieves one holding for a user and symbol.
// Returns apperrors.ErrHoldingNotFound when the position does not exist.
func (r *HoldingRepository) GetHoldingBySymbol(userID, symbol string) (model.Holding, error) {
	row := r.db.QueryRow(`
		SELECT id, user_id, symbol, name, shares, avg_price, current_price, change_amount, change_percent
		FROM holding
		WHERE user_id = ? AND symbol = ?`, userID, symbol)

	h, err := scanHolding(row)
	if err == sql.ErrNoRows {
		return model.Holding{}, apperrors.ErrHoldingNotFound
	}
	if err != nil {
		return model.Holding{}, err
	}
	return h, nil
}

// UpdatePrices applies a price refresh to every holding whose symbol appears
// in prices. Share counts are never touched; holdings with no entry keep
// their last known price. All updates commit in one transaction so readers
// never observe a half-refreshed position set.
func (r *HoldingRepository) UpdatePrices(prices map[string]model.Quote) error {
	if len(prices) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin price update: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		UPDATE holding SET current_price = ?, change_amount = ?, change_percent = ?
		WHERE symbol = ?`)
	if err != nil {
		return fmt.Errorf("failed to prepare price update: %w", err)
	}
	defer stmt.Close()

	for symbol, quote := range prices {
		if !quote.HasPrice() {
			continue
		}
		if _, err := stmt.Exec(quote.Price.String(), quote.ChangeAmount.String(), quote.ChangePercent.String(), symbol); err != nil {
			return fmt.Errorf("failed to update price for %s: %w", symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit price update: %w", err)
	}
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanHolding(row rowScanner) (model.Holding, error) {
	var h model.Holding
	var shares, avgPrice, currentPrice, changeAmount, changePercent string

	err := row.Scan(&h.ID, &h.UserID, &h.Symbol, &h.Name, &shares, &avgPrice, &currentPrice, &changeAmount, &changePercent)
	if err == sql.ErrNoRows {
		return model.Holding{}, err
	}
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to scan holding: %w", err)
	}

	if h.Shares, err = parseDecimal("shares", shares); err != nil {
		return model.Holding{}, err
	}
	if h.AvgPrice, err = parseDecimal("avg_price", avgPrice); err != nil {
		return model.Holding{}, err
	}
	if h.CurrentPrice, err = parseDecimal("current_price", currentPrice); err != nil {
		return model.Holding{}, err
	}
	if h.ChangeAmount, err = parseDecimal("change_amount", changeAmount); err != nil {
		return model.Holding{}, err
	}
	if h.ChangePercent, err = parseDecimal("change_percent", changePercent); err != nil {
		return model.Holding{}, err
	}

	h.MarketValue = h.Shares.Mul(h.CurrentPrice)
	h.GainLoss = h.MarketValue.Sub(h.Shares.Mul(h.AvgPrice))
	return h, nil
}
