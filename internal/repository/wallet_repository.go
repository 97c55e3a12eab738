package repository

import (
	"database/sql"
	"fmt"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// WalletRepository provides read access to user wallets. Balance mutations
// happen exclusively inside TradeRepository's execution transaction, so this
// repository deliberately exposes no write methods.
type WalletRepository struct {
	db *sql.DB
}

// NewWalletRepository creates a new WalletRepository with the provided database connection.
func NewWalletRepository(db *sql.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetWallet retrieves the wallet for a user.
func (r *WalletRepository) GetWallet(userID string) (model.Wallet, error) {
	var balance string
	err := r.db.QueryRow("SELECT balance FROM wallet WHERE user_id = ?", userID).Scan(&balance)
	if err == sql.ErrNoRows {
		return model.Wallet{}, apperrors.ErrWalletNotFound
	}
	if err != nil {
		return model.Wallet{}, fmt.Errorf("failed to query wallet: %w", err)
	}

	amount, err := parseDecimal("balance", balance)
	if err != nil {
		return model.Wallet{}, err
	}
	return model.Wallet{UserID: userID, Balance: amount}, nil
}
