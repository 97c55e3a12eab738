package repository

import (
	"database/sql"
	"fmt"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// RealizedGainLossRepository provides read access to realized gain/loss
// records. Records are written only by TradeRepository.ExecuteSell.
type RealizedGainLossRepository struct {
	db *sql.DB
}

// NewRealizedGainLossRepository creates a new RealizedGainLossRepository with the provided database connection.
func NewRealizedGainLossRepository(db *sql.DB) *RealizedGainLossRepository {
	return &RealizedGainLossRepository{db: db}
}

// List retrieves a user's realized gain/loss records, most recent first.
func (r *RealizedGainLossRepository) List(userID string) ([]model.RealizedGainLoss, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, symbol, shares, cost_basis, sale_proceeds, gain_loss, transaction_at
		FROM realized_gain_loss
		WHERE user_id = ?
		ORDER BY transaction_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query realized gains: %w", err)
	}
	defer rows.Close()

	records := []model.RealizedGainLoss{}
	for rows.Next() {
		var rec model.RealizedGainLoss
		var shares, costBasis, proceeds, gainLoss string

		err := rows.Scan(&rec.ID, &rec.UserID, &rec.Symbol, &shares, &costBasis, &proceeds, &gainLoss, &rec.TransactionAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan realized gain: %w", err)
		}

		if rec.Shares, err = parseDecimal("shares", shares); err != nil {
			return nil, err
		}
		if rec.CostBasis, err = parseDecimal("cost_basis", costBasis); err != nil {
			return nil, err
		}
		if rec.SaleProceeds, err = parseDecimal("sale_proceeds", proceeds); err != nil {
			return nil, err
		}
		if rec.GainLoss, err = parseDecimal("gain_loss", gainLoss); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate realized gains: %w", err)
	}
	return records, nil
}
