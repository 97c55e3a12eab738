package service_test

import (
	"testing"
	"time"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/testutil"
)

// TestLookupCategory tests the keyword-based category table.
//
// WHY: Categorization is a static lookup and the frontend labels it as such;
// the table must be deterministic and fall back to "Other" rather than guess.
func TestLookupCategory(t *testing.T) {
	cases := []struct {
		merchant string
		want     string
	}{
		{"Corner Grocer", "Groceries"},
		{"NETFLIX.COM", "Entertainment"},
		{"Uber *Trip", "Transport"},
		{"Acme Payroll", "Income"},
		{"Mysterious Shop", "Other"},
		{"", "Other"},
	}

	for _, tc := range cases {
		t.Run(tc.merchant, func(t *testing.T) {
			if got := service.LookupCategory(tc.merchant); got != tc.want {
				t.Errorf("LookupCategory(%q) = %q, want %q", tc.merchant, got, tc.want)
			}
		})
	}
}

// TestTransactionService_Create tests transaction creation.
//
// WHY: The category must be assigned at creation when the caller leaves it
// empty, and an explicit category must win over the lookup.
func TestTransactionService_Create(t *testing.T) {
	t.Run("empty category is derived from the merchant", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		user := testutil.NewUser().Build(t, db)

		// Execute
		created, err := svc.Create(model.Transaction{
			UserID:   user.ID,
			Date:     time.Now().UTC(),
			Merchant: "Downtown Cafe",
			Amount:   testutil.MustDecimal(t, "-9.75"),
		})

		// Assert
		if err != nil {
			t.Fatalf("Create() returned unexpected error: %v", err)
		}
		if created.Category != "Dining" {
			t.Errorf("Expected category Dining, got %q", created.Category)
		}
		if created.ID == "" {
			t.Error("Expected a generated ID")
		}
	})

	t.Run("explicit category overrides the lookup", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		user := testutil.NewUser().Build(t, db)

		// Execute
		created, err := svc.Create(model.Transaction{
			UserID:   user.ID,
			Date:     time.Now().UTC(),
			Merchant: "Downtown Cafe",
			Amount:   testutil.MustDecimal(t, "-50.00"),
			Category: "Business",
		})

		// Assert
		if err != nil {
			t.Fatalf("Create() returned unexpected error: %v", err)
		}
		if created.Category != "Business" {
			t.Errorf("Expected category Business, got %q", created.Category)
		}
	})
}

// TestTransactionService_MonthlySummary tests the per-month rollup.
//
// WHY: The summary splits flows by sign: expenses count into Spent as
// absolute values, income into Income, and only the requested month's
// transactions participate.
func TestTransactionService_MonthlySummary(t *testing.T) {
	t.Run("aggregates spending and income per category", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		user := testutil.NewUser().Build(t, db)
		month := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

		testutil.NewTransaction(user.ID).WithDate(month).WithAmount("-30").WithCategory("Groceries").Build(t, db)
		testutil.NewTransaction(user.ID).WithDate(month).WithAmount("-20").WithCategory("Groceries").Build(t, db)
		testutil.NewTransaction(user.ID).WithDate(month).WithAmount("1000").WithCategory("Income").Build(t, db)
		// Outside the month, must be excluded
		testutil.NewTransaction(user.ID).WithDate(month.AddDate(0, -1, 0)).WithAmount("-99").WithCategory("Groceries").Build(t, db)

		// Execute
		summary, err := svc.MonthlySummary(user.ID, month)

		// Assert
		if err != nil {
			t.Fatalf("MonthlySummary() returned unexpected error: %v", err)
		}
		if summary.Month != "2026-08" {
			t.Errorf("Expected month 2026-08, got %q", summary.Month)
		}
		if !summary.TotalSpent.Equal(testutil.MustDecimal(t, "50")) {
			t.Errorf("Expected total spent 50, got %s", summary.TotalSpent)
		}
		if !summary.TotalIn.Equal(testutil.MustDecimal(t, "1000")) {
			t.Errorf("Expected total income 1000, got %s", summary.TotalIn)
		}

		var groceries *model.CategorySpending
		for i := range summary.Categories {
			if summary.Categories[i].Category == "Groceries" {
				groceries = &summary.Categories[i]
			}
		}
		if groceries == nil {
			t.Fatal("Expected a Groceries category entry")
		}
		if !groceries.Spent.Equal(testutil.MustDecimal(t, "50")) {
			t.Errorf("Expected Groceries spent 50, got %s", groceries.Spent)
		}
		if groceries.Count != 2 {
			t.Errorf("Expected 2 Groceries transactions, got %d", groceries.Count)
		}
	})
}
