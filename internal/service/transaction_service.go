package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
)

// TransactionService handles business logic for spending and income
// transactions, including the keyword-based category assignment.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService with the provided repository.
func NewTransactionService(transactionRepo *repository.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// Create records a new transaction. When the category is empty it is assigned
// from the merchant name via the static keyword table.
//
// Parameters:
//   - t: the transaction to create; ID and CreatedAt are set here
//
// Returns:
//   - model.Transaction: the stored transaction
//   - error: any error from the insert
func (s *TransactionService) Create(t model.Transaction) (model.Transaction, error) {
	t.ID = uuid.New().String()
	t.CreatedAt = time.Now().UTC()
	if t.Category == "" {
		t.Category = LookupCategory(t.Merchant)
	}
	if t.Date.IsZero() {
		t.Date = t.CreatedAt
	}

	if err := s.transactionRepo.Create(t); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	return t, nil
}

// Get retrieves a single transaction scoped to the user.
func (s *TransactionService) Get(userID, id string) (model.Transaction, error) {
	return s.transactionRepo.Get(userID, id)
}

// List retrieves a user's transactions, optionally filtered to one calendar
// month. A zero month means all transactions.
func (s *TransactionService) List(userID string, month time.Time) ([]model.Transaction, error) {
	return s.transactionRepo.List(userID, month)
}

// Update replaces the mutable fields of a transaction. An empty category is
// re-derived from the merchant name, matching Create.
func (s *TransactionService) Update(t model.Transaction) (model.Transaction, error) {
	if t.Category == "" {
		t.Category = LookupCategory(t.Merchant)
	}
	if err := s.transactionRepo.Update(t); err != nil {
		return model.Transaction{}, err
	}
	return s.transactionRepo.Get(t.UserID, t.ID)
}

// Delete removes a transaction.
func (s *TransactionService) Delete(userID, id string) error {
	return s.transactionRepo.Delete(userID, id)
}

// MonthlySummary rolls a month's transactions up per category. Spent is the
// absolute value of negative amounts, Income the sum of positive ones.
func (s *TransactionService) MonthlySummary(userID string, month time.Time) (model.MonthlySummary, error) {
	transactions, err := s.transactionRepo.List(userID, month)
	if err != nil {
		return model.MonthlySummary{}, err
	}

	byCategory := map[string]*model.CategorySpending{}
	totalSpent := decimal.Zero
	totalIn := decimal.Zero

	for _, t := range transactions {
		cs, ok := byCategory[t.Category]
		if !ok {
			cs = &model.CategorySpending{Category: t.Category}
			byCategory[t.Category] = cs
		}
		cs.Count++
		if t.Amount.IsNegative() {
			cs.Spent = cs.Spent.Add(t.Amount.Neg())
			totalSpent = totalSpent.Add(t.Amount.Neg())
		} else {
			cs.Income = cs.Income.Add(t.Amount)
			totalIn = totalIn.Add(t.Amount)
		}
	}

	categories := make([]model.CategorySpending, 0, len(byCategory))
	for _, cs := range byCategory {
		categories = append(categories, *cs)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Category < categories[j].Category
	})

	return model.MonthlySummary{
		Month:      month.Format("2006-01"),
		TotalSpent: totalSpent,
		TotalIn:    totalIn,
		Categories: categories,
	}, nil
}
