package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
)

// WatchUniverse is the fixed symbol set the dashboard tracks. It seeds the
// instrument table and drives the quote feed's refresh cycle.
var WatchUniverse = []model.Instrument{
	{Symbol: "AAPL", DisplayName: "Apple Inc."},
	{Symbol: "AMZN", DisplayName: "Amazon.com, Inc."},
	{Symbol: "GOOGL", DisplayName: "Alphabet Inc."},
	{Symbol: "META", DisplayName: "Meta Platforms, Inc."},
	{Symbol: "MSFT", DisplayName: "Microsoft Corporation"},
	{Symbol: "NFLX", DisplayName: "Netflix, Inc."},
	{Symbol: "NVDA", DisplayName: "NVIDIA Corporation"},
	{Symbol: "TSLA", DisplayName: "Tesla, Inc."},
}

// SeedService populates the in-memory database at startup: the instrument
// universe, a demo account, and a handful of sample transactions and budgets
// so the dashboard has something to show on first load.
type SeedService struct {
	instrumentRepo  *repository.InstrumentRepository
	transactionRepo *repository.TransactionRepository
	budgetRepo      *repository.BudgetRepository
	authService     *AuthService
}

// NewSeedService creates a new SeedService with the provided dependencies.
func NewSeedService(
	instrumentRepo *repository.InstrumentRepository,
	transactionRepo *repository.TransactionRepository,
	budgetRepo *repository.BudgetRepository,
	authService *AuthService,
) *SeedService {
	return &SeedService{
		instrumentRepo:  instrumentRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		authService:     authService,
	}
}

// Run seeds the instrument universe and, when demoEmail is non-empty, a demo
// user with sample transactions and budgets. Safe to call on every startup;
// the database is fresh each run.
func (s *SeedService) Run(demoEmail, demoPassword string) error {
	if err := s.instrumentRepo.Seed(WatchUniverse); err != nil {
		return fmt.Errorf("failed to seed instruments: %w", err)
	}

	if demoEmail == "" {
		return nil
	}

	user, err := s.authService.Register("Demo User", demoEmail, demoPassword)
	if errors.Is(err, apperrors.ErrEmailTaken) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}
	log.Printf("Seeded demo user %s", demoEmail)

	if err := s.seedSampleData(user.ID); err != nil {
		return err
	}
	return nil
}

func (s *SeedService) seedSampleData(userID string) error {
	now := time.Now().UTC()
	samples := []struct {
		daysAgo  int
		merchant string
		amount   string
	}{
		{1, "Corner Grocer", "-54.20"},
		{2, "Netflix", "-12.99"},
		{3, "Uber", "-18.50"},
		{5, "Downtown Cafe", "-9.75"},
		{8, "City Electric", "-88.00"},
		{14, "Acme Payroll", "3200.00"},
	}
	for _, sample := range samples {
		amount, err := decimal.NewFromString(sample.amount)
		if err != nil {
			return fmt.Errorf("invalid sample amount %s: %w", sample.amount, err)
		}
		t := model.Transaction{
			UserID:   userID,
			Date:     now.AddDate(0, 0, -sample.daysAgo),
			Merchant: sample.merchant,
			Amount:   amount,
		}
		t.Category = LookupCategory(t.Merchant)
		t.ID = uuid.New().String()
		t.CreatedAt = now

		if err := s.transactionRepo.Create(t); err != nil {
			return fmt.Errorf("failed to seed transaction: %w", err)
		}
	}

	budgets := map[string]string{
		"Groceries":     "400",
		"Dining":        "150",
		"Entertainment": "50",
		"Transport":     "120",
	}
	for category, limit := range budgets {
		amount, err := decimal.NewFromString(limit)
		if err != nil {
			return fmt.Errorf("invalid budget limit %s: %w", limit, err)
		}
		b := model.BudgetCategory{
			ID:       uuid.New().String(),
			UserID:   userID,
			Category: category,
			Limit:    amount,
		}
		if err := s.budgetRepo.Create(b); err != nil {
			return fmt.Errorf("failed to seed budget %s: %w", category, err)
		}
	}
	return nil
}
