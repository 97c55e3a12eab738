package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
)

// BudgetService handles business logic for monthly budget categories and
// joins them with the current month's spending for status reporting.
type BudgetService struct {
	budgetRepo      *repository.BudgetRepository
	transactionRepo *repository.TransactionRepository
}

// NewBudgetService creates a new BudgetService with the provided repositories.
func NewBudgetService(budgetRepo *repository.BudgetRepository, transactionRepo *repository.TransactionRepository) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo, transactionRepo: transactionRepo}
}

// Create adds a budget category for the user. One budget per category is
// allowed; duplicates surface as apperrors.ErrDuplicateEntry.
func (s *BudgetService) Create(b model.BudgetCategory) (model.BudgetCategory, error) {
	b.ID = uuid.New().String()
	if err := s.budgetRepo.Create(b); err != nil {
		return model.BudgetCategory{}, err
	}
	return b, nil
}

// List retrieves a user's budget categories.
func (s *BudgetService) List(userID string) ([]model.BudgetCategory, error) {
	return s.budgetRepo.List(userID)
}

// Update changes a budget category's monthly limit.
func (s *BudgetService) Update(b model.BudgetCategory) error {
	return s.budgetRepo.Update(b)
}

// Delete removes a budget category.
func (s *BudgetService) Delete(userID, id string) error {
	return s.budgetRepo.Delete(userID, id)
}

// Summary joins each budget category with the given month's spending in that
// category. Only negative transaction amounts count toward Spent; income in a
// budgeted category does not offset it.
//
// Parameters:
//   - userID: the owner of the budgets
//   - month: the calendar month to aggregate, typically time.Now()
//
// Returns:
//   - []model.BudgetStatus: one entry per budget category, in category order
//   - error: any error from the underlying queries
func (s *BudgetService) Summary(userID string, month time.Time) ([]model.BudgetStatus, error) {
	budgets, err := s.budgetRepo.List(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	transactions, err := s.transactionRepo.List(userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for budget summary: %w", err)
	}

	spentByCategory := map[string]decimal.Decimal{}
	for _, t := range transactions {
		if t.Amount.IsNegative() {
			spentByCategory[t.Category] = spentByCategory[t.Category].Add(t.Amount.Neg())
		}
	}

	statuses := make([]model.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.Category]
		remaining := b.Limit.Sub(spent)
		statuses = append(statuses, model.BudgetStatus{
			ID:         b.ID,
			Category:   b.Category,
			Limit:      b.Limit,
			Spent:      spent,
			Remaining:  remaining,
			OverBudget: remaining.IsNegative(),
		})
	}
	return statuses, nil
}
