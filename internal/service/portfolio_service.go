package service

import (
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
)

// PortfolioService owns the portfolio ledger: it reprices holdings from quote
// snapshots and derives the aggregate view (total value, daily change,
// overall return, allocation) consumed by presentation. Aggregates are pure
// derivations recomputed on read; they are never the source of truth.
type PortfolioService struct {
	holdingRepo *repository.HoldingRepository
	walletRepo  *repository.WalletRepository
	gainsRepo   *repository.RealizedGainLossRepository
}

// NewPortfolioService creates a new PortfolioService with the provided repository dependencies.
func NewPortfolioService(
	holdingRepo *repository.HoldingRepository,
	walletRepo *repository.WalletRepository,
	gainsRepo *repository.RealizedGainLossRepository,
) *PortfolioService {
	return &PortfolioService{
		holdingRepo: holdingRepo,
		walletRepo:  walletRepo,
		gainsRepo:   gainsRepo,
	}
}

// Reprice applies a quote snapshot to every holding. Holdings whose symbol
// has a known price take the new price; the rest keep their last known price
// (stale-but-present is preferred over zeroing valuation). Reprice never
// creates, removes, or reorders holdings and never changes share counts.
func (s *PortfolioService) Reprice(snapshot *model.QuoteSnapshot) error {
	if snapshot == nil {
		return nil
	}
	return s.holdingRepo.UpdatePrices(snapshot.Quotes)
}

// Snapshot builds the aggregate portfolio view for a user. TotalValue always
// equals the sum of the holdings' market values, and allocation percentages
// sum to exactly 100 whenever holdings are non-empty.
func (s *PortfolioService) Snapshot(userID string) (model.PortfolioSnapshot, error) {
	holdings, err := s.holdingRepo.GetHoldings(userID)
	if err != nil {
		return model.PortfolioSnapshot{}, err
	}

	hundred := decimal.NewFromInt(100)
	totalValue := decimal.Zero
	totalCost := decimal.Zero
	dailyAmount := decimal.Zero
	for _, h := range holdings {
		totalValue = totalValue.Add(h.MarketValue)
		totalCost = totalCost.Add(h.CostBasis())
		dailyAmount = dailyAmount.Add(h.DailyChangeContribution())
	}

	// Daily percentage is measured against the value at the previous close.
	dailyChange := model.ChangeSummary{Amount: dailyAmount}
	if prev := totalValue.Sub(dailyAmount); prev.Sign() > 0 {
		dailyChange.Percentage = dailyAmount.Div(prev).Mul(hundred).Round(2)
	}

	overall := model.ChangeSummary{Amount: totalValue.Sub(totalCost)}
	if totalCost.Sign() > 0 {
		overall.Percentage = overall.Amount.Div(totalCost).Mul(hundred).Round(2)
	}

	return model.PortfolioSnapshot{
		ID:            "portfolio-" + userID,
		UserID:        userID,
		TotalValue:    totalValue,
		DailyChange:   dailyChange,
		OverallReturn: overall,
		Allocation:    computeAllocation(holdings, totalValue),
		Assets:        holdings,
	}, nil
}

// Wallet retrieves the user's cash balance.
func (s *PortfolioService) Wallet(userID string) (model.Wallet, error) {
	return s.walletRepo.GetWallet(userID)
}

// RealizedGains retrieves the user's realized gain/loss records.
func (s *PortfolioService) RealizedGains(userID string) ([]model.RealizedGainLoss, error) {
	return s.gainsRepo.List(userID)
}
