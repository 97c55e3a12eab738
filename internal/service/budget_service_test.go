package service_test

import (
	"testing"
	"time"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/testutil"
)

// TestBudgetService_Summary tests the budget status join.
//
// WHY: The budget page shows limit, spent, and remaining side by side.
// Remaining may legitimately go negative, income must never offset
// spending, and categories without transactions must still appear.
func TestBudgetService_Summary(t *testing.T) {
	t.Run("joins limits with the month's spending", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBudgetService(t, db)
		user := testutil.NewUser().Build(t, db)
		month := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)

		testutil.NewBudget(user.ID, "Groceries").WithLimit("400").Build(t, db)
		testutil.NewBudget(user.ID, "Dining").WithLimit("100").Build(t, db)
		testutil.NewBudget(user.ID, "Transport").WithLimit("50").Build(t, db)

		testutil.NewTransaction(user.ID).WithDate(month).WithAmount("-150").WithCategory("Groceries").Build(t, db)
		testutil.NewTransaction(user.ID).WithDate(month).WithAmount("-120").WithCategory("Dining").Build(t, db)
		// Income in a budgeted category must not reduce Spent
		testutil.NewTransaction(user.ID).WithDate(month).WithAmount("500").WithCategory("Dining").Build(t, db)
		// Previous month, excluded
		testutil.NewTransaction(user.ID).WithDate(month.AddDate(0, -1, 0)).WithAmount("-75").WithCategory("Transport").Build(t, db)

		// Execute
		statuses, err := svc.Summary(user.ID, month)

		// Assert
		if err != nil {
			t.Fatalf("Summary() returned unexpected error: %v", err)
		}
		if len(statuses) != 3 {
			t.Fatalf("Expected 3 budget statuses, got %d", len(statuses))
		}

		byCategory := map[string]int{}
		for i, s := range statuses {
			byCategory[s.Category] = i
		}

		groceries := statuses[byCategory["Groceries"]]
		if !groceries.Spent.Equal(testutil.MustDecimal(t, "150")) {
			t.Errorf("Expected Groceries spent 150, got %s", groceries.Spent)
		}
		if !groceries.Remaining.Equal(testutil.MustDecimal(t, "250")) {
			t.Errorf("Expected Groceries remaining 250, got %s", groceries.Remaining)
		}
		if groceries.OverBudget {
			t.Error("Groceries should not be over budget")
		}

		dining := statuses[byCategory["Dining"]]
		if !dining.Spent.Equal(testutil.MustDecimal(t, "120")) {
			t.Errorf("Expected Dining spent 120, got %s", dining.Spent)
		}
		if !dining.Remaining.Equal(testutil.MustDecimal(t, "-20")) {
			t.Errorf("Expected Dining remaining -20, got %s", dining.Remaining)
		}
		if !dining.OverBudget {
			t.Error("Dining should be over budget")
		}

		transport := statuses[byCategory["Transport"]]
		if !transport.Spent.IsZero() {
			t.Errorf("Expected Transport spent 0, got %s", transport.Spent)
		}
		if transport.OverBudget {
			t.Error("Transport should not be over budget")
		}
	})

	t.Run("no budgets yields an empty summary", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBudgetService(t, db)
		user := testutil.NewUser().Build(t, db)

		// Execute
		statuses, err := svc.Summary(user.ID, time.Now().UTC())

		// Assert
		if err != nil {
			t.Fatalf("Summary() returned unexpected error: %v", err)
		}
		if len(statuses) != 0 {
			t.Errorf("Expected empty summary, got %d entries", len(statuses))
		}
	})
}
