package service_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/testutil"
)

// TestPortfolioService_Allocation tests the allocation breakdown.
//
// WHY: The allocation chart is only trustworthy if the slices cover the whole
// pie. Rounding three-way splits naturally loses a cent; the remainder must
// land on the largest holding so the percentages still sum to exactly 100.
func TestPortfolioService_Allocation(t *testing.T) {
	t.Run("equal three-way split sums to exactly 100", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		user := testutil.NewUser().Build(t, db)
		for _, symbol := range []string{"AAPL", "MSFT", "GOOGL"} {
			testutil.NewHolding(user.ID, symbol).WithShares("1").WithAvgPrice("100").WithCurrentPrice("100").Build(t, db)
		}

		// Execute
		snapshot, err := svc.Snapshot(user.ID)

		// Assert
		if err != nil {
			t.Fatalf("Snapshot() returned unexpected error: %v", err)
		}
		if len(snapshot.Allocation) != 3 {
			t.Fatalf("Expected 3 allocation entries, got %d", len(snapshot.Allocation))
		}

		sum := decimal.Zero
		for _, a := range snapshot.Allocation {
			sum = sum.Add(a.Percentage)
		}
		if !sum.Equal(decimal.NewFromInt(100)) {
			t.Errorf("Expected allocation to sum to 100, got %s", sum)
		}
	})

	t.Run("remainder lands on the largest holding", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		user := testutil.NewUser().Build(t, db)
		// AAPL dominates; the 1/3 split remainder must go to it
		testutil.NewHolding(user.ID, "AAPL").WithShares("2").WithAvgPrice("100").WithCurrentPrice("100").Build(t, db)
		testutil.NewHolding(user.ID, "MSFT").WithShares("1").WithAvgPrice("100").WithCurrentPrice("50").Build(t, db)
		testutil.NewHolding(user.ID, "GOOGL").WithShares("1").WithAvgPrice("100").WithCurrentPrice("50").Build(t, db)

		// Execute
		snapshot, err := svc.Snapshot(user.ID)

		// Assert
		if err != nil {
			t.Fatalf("Snapshot() returned unexpected error: %v", err)
		}

		sum := decimal.Zero
		var largest decimal.Decimal
		for _, a := range snapshot.Allocation {
			sum = sum.Add(a.Percentage)
			if a.Name == "AAPL" {
				largest = a.Percentage
			}
		}
		if !sum.Equal(decimal.NewFromInt(100)) {
			t.Errorf("Expected allocation to sum to 100, got %s", sum)
		}
		// 200/300 rounds to 66.67; with the remainder it stays 66.66..67 range
		if largest.LessThan(testutil.MustDecimal(t, "66.66")) || largest.GreaterThan(testutil.MustDecimal(t, "66.68")) {
			t.Errorf("Expected AAPL near 66.67%%, got %s", largest)
		}
	})

	t.Run("every entry carries a presentation color", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		user := testutil.NewUser().Build(t, db)
		testutil.NewHolding(user.ID, "AAPL").Build(t, db)
		testutil.NewHolding(user.ID, "MSFT").Build(t, db)

		// Execute
		snapshot, err := svc.Snapshot(user.ID)

		// Assert
		if err != nil {
			t.Fatalf("Snapshot() returned unexpected error: %v", err)
		}
		seen := map[string]bool{}
		for _, a := range snapshot.Allocation {
			if a.Color == "" {
				t.Errorf("Allocation %s has no color", a.Name)
			}
			if seen[a.Color] {
				t.Errorf("Color %s reused across adjacent entries", a.Color)
			}
			seen[a.Color] = true
		}
	})
}
