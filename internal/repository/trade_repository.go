package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// TradeRepository applies validated trade orders. Each execution runs in a
// single transaction spanning the wallet and holding tables, so an order is
// either fully applied (shares and cash) or not at all. The preconditions are
// re-checked inside the transaction; a concurrent mutation between validation
// and execution surfaces as the same rejection the validator would have given.
type TradeRepository struct {
	db *sql.DB
}

// NewTradeRepository creates a new TradeRepository with the provided database connection.
func NewTradeRepository(db *sql.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// ExecuteBuy debits the wallet by quantity x price and adds the shares to
// the user's holding (creating it if absent, otherwise recomputing the
// volume-weighted average cost). Returns the wallet balance after the debit.
func (r *TradeRepository) ExecuteBuy(order model.TradeOrder, price decimal.Decimal, name string, at time.Time) (decimal.Decimal, error) {
	cost := order.Quantity.Mul(price)

	tx, err := r.db.Begin()
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to begin buy: %w", err)
	}
	defer tx.Rollback()

	balance, err := walletBalanceTx(tx, order.UserID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if cost.GreaterThan(balance) {
		return decimal.Decimal{}, apperrors.ErrInsufficientFunds
	}
	newBalance := balance.Sub(cost)

	var holdingID, sharesStr, avgStr string
	err = tx.QueryRow(
		"SELECT id, shares, avg_price FROM holding WHERE user_id = ? AND symbol = ?",
		order.UserID, order.Symbol,
	).Scan(&holdingID, &sharesStr, &avgStr)

	switch {
	case err == sql.ErrNoRows:
		_, err = tx.Exec(`
			INSERT INTO holding (id, user_id, symbol, name, shares, avg_price, current_price, change_amount, change_percent)
			VALUES (?, ?, ?, ?, ?, ?, ?, '0', '0')`,
			uuid.New().String(), order.UserID, order.Symbol, name,
			order.Quantity.String(), price.String(), price.String(),
		)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("failed to insert holding: %w", err)
		}
	case err != nil:
		return decimal.Decimal{}, fmt.Errorf("failed to query holding: %w", err)
	default:
		shares, err := parseDecimal("shares", sharesStr)
		if err != nil {
			return decimal.Decimal{}, err
		}
		avgPrice, err := parseDecimal("avg_price", avgStr)
		if err != nil {
			return decimal.Decimal{}, err
		}

		// Volume-weighted average cost across the old position and the buy.
		newShares := shares.Add(order.Quantity)
		newAvg := shares.Mul(avgPrice).Add(cost).Div(newShares)

		_, err = tx.Exec(
			"UPDATE holding SET shares = ?, avg_price = ?, current_price = ? WHERE id = ?",
			newShares.String(), newAvg.String(), price.String(), holdingID,
		)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("failed to update holding: %w", err)
		}
	}

	if err := updateWalletTx(tx, order.UserID, newBalance); err != nil {
		return decimal.Decimal{}, err
	}

	if err := tx.Commit(); err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to commit buy: %w", err)
	}
	return newBalance, nil
}

// ExecuteSell removes the shares from the holding, credits the wallet with
// quantity x price, and records the realized gain/loss against the holding's
// average cost. A holding sold down to exactly zero shares is deleted so it
// can never linger as a zero-weight allocation entry. Returns the wallet
// balance after the credit.
func (r *TradeRepository) ExecuteSell(order model.TradeOrder, price decimal.Decimal, at time.Time) (decimal.Decimal, error) {
	proceeds := order.Quantity.Mul(price)

	tx, err := r.db.Begin()
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to begin sell: %w", err)
	}
	defer tx.Rollback()

	var holdingID, sharesStr, avgStr string
	err = tx.QueryRow(
		"SELECT id, shares, avg_price FROM holding WHERE user_id = ? AND symbol = ?",
		order.UserID, order.Symbol,
	).Scan(&holdingID, &sharesStr, &avgStr)
	if err == sql.ErrNoRows {
		return decimal.Decimal{}, apperrors.ErrInsufficientShares
	}
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to query holding: %w", err)
	}

	shares, err := parseDecimal("shares", sharesStr)
	if err != nil {
		return decimal.Decimal{}, err
	}
	avgPrice, err := parseDecimal("avg_price", avgStr)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if order.Quantity.GreaterThan(shares) {
		return decimal.Decimal{}, apperrors.ErrInsufficientShares
	}

	remaining := shares.Sub(order.Quantity)
	if remaining.IsZero() {
		if _, err := tx.Exec("DELETE FROM holding WHERE id = ?", holdingID); err != nil {
			return decimal.Decimal{}, fmt.Errorf("failed to delete holding: %w", err)
		}
	} else {
		_, err := tx.Exec(
			"UPDATE holding SET shares = ?, current_price = ? WHERE id = ?",
			remaining.String(), price.String(), holdingID,
		)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("failed to update holding: %w", err)
		}
	}

	costBasis := order.Quantity.Mul(avgPrice)
	_, err = tx.Exec(`
		INSERT INTO realized_gain_loss (id, user_id, symbol, shares, cost_basis, sale_proceeds, gain_loss, transaction_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), order.UserID, order.Symbol,
		order.Quantity.String(), costBasis.String(), proceeds.String(),
		proceeds.Sub(costBasis).String(), at,
	)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to record realized gain/loss: %w", err)
	}

	balance, err := walletBalanceTx(tx, order.UserID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	newBalance := balance.Add(proceeds)
	if err := updateWalletTx(tx, order.UserID, newBalance); err != nil {
		return decimal.Decimal{}, err
	}

	if err := tx.Commit(); err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to commit sell: %w", err)
	}
	return newBalance, nil
}

func walletBalanceTx(tx *sql.Tx, userID string) (decimal.Decimal, error) {
	var balance string
	err := tx.QueryRow("SELECT balance FROM wallet WHERE user_id = ?", userID).Scan(&balance)
	if err == sql.ErrNoRows {
		return decimal.Decimal{}, apperrors.ErrWalletNotFound
	}
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to query wallet: %w", err)
	}
	return parseDecimal("balance", balance)
}

func updateWalletTx(tx *sql.Tx, userID string, balance decimal.Decimal) error {
	if _, err := tx.Exec("UPDATE wallet SET balance = ? WHERE user_id = ?", balance.String(), userID); err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}
	return nil
}
