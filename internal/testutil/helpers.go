package testutil

import (
	"database/sql"
	"testing"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/service"
)

func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	return service.NewPortfolioService(
		repository.NewHoldingRepository(db),
		repository.NewWalletRepository(db),
		repository.NewRealizedGainLossRepository(db),
	)
}

func NewTestTradeService(t *testing.T, db *sql.DB) *service.TradeService {
	t.Helper()

	return service.NewTradeService(
		repository.NewTradeRepository(db),
		repository.NewHoldingRepository(db),
		repository.NewWalletRepository(db),
		repository.NewInstrumentRepository(db),
	)
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	return service.NewTransactionService(
		repository.NewTransactionRepository(db),
	)
}

func NewTestBudgetService(t *testing.T, db *sql.DB) *service.BudgetService {
	t.Helper()

	return service.NewBudgetService(
		repository.NewBudgetRepository(db),
		repository.NewTransactionRepository(db),
	)
}
