package feed_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/feed"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/testutil"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/twelvedata"
)

var testUniverse = []model.Instrument{
	{Symbol: "AAPL", DisplayName: "Apple Inc."},
	{Symbol: "MSFT", DisplayName: "Microsoft Corporation"},
	{Symbol: "TSLA", DisplayName: "Tesla, Inc."},
}

func newTestFeed(client feed.QuoteClient) *feed.Service {
	return feed.NewService(client, testUniverse, time.Minute, 15*time.Second)
}

// TestFeed_Refresh tests snapshot construction from provider batches.
//
// WHY: Every snapshot must cover the full universe: real quotes where the
// provider delivered, unavailable sentinels where it did not. A partial
// snapshot would make holdings silently vanish from valuation.
func TestFeed_Refresh(t *testing.T) {
	t.Run("maps a well-formed batch onto the universe", func(t *testing.T) {
		// Setup
		client := testutil.NewMockQuoteClient("AAPL", "MSFT", "TSLA")
		svc := newTestFeed(client)

		// Execute
		snapshot := svc.Refresh(context.Background())

		// Assert
		if snapshot.Synthetic {
			t.Error("Expected a real snapshot, got synthetic")
		}
		if len(snapshot.Quotes) != len(testUniverse) {
			t.Fatalf("Expected %d quotes, got %d", len(testUniverse), len(snapshot.Quotes))
		}
		quote, ok := snapshot.Quote("AAPL")
		if !ok {
			t.Fatal("Expected AAPL quote")
		}
		if !quote.Price.Equal(decimal.RequireFromString("100.00")) {
			t.Errorf("Expected price 100.00, got %s", quote.Price)
		}
		if quote.Unavailable {
			t.Error("Expected AAPL to be available")
		}
	})

	t.Run("missing and malformed entries become unavailable sentinels", func(t *testing.T) {
		// Setup: TSLA missing entirely, MSFT present but with a garbage price
		client := testutil.NewMockQuoteClient("AAPL", "MSFT").
			WithEntry("MSFT", twelvedata.QuoteEntry{Symbol: "MSFT", Close: "not-a-number"})
		svc := newTestFeed(client)

		// Execute
		snapshot := svc.Refresh(context.Background())

		// Assert
		if len(snapshot.Quotes) != len(testUniverse) {
			t.Fatalf("Expected full universe coverage, got %d quotes", len(snapshot.Quotes))
		}
		for _, symbol := range []string{"MSFT", "TSLA"} {
			// Quote() hides unavailable entries from callers, so inspect the
			// sentinel through the map directly.
			quote, ok := snapshot.Quotes[symbol]
			if !ok {
				t.Fatalf("Expected %s sentinel to exist", symbol)
			}
			if !quote.Unavailable {
				t.Errorf("Expected %s unavailable, got %+v", symbol, quote)
			}
			if _, usable := snapshot.Quote(symbol); usable {
				t.Errorf("Expected %s to be unusable for trading", symbol)
			}
			if quote.HasPrice() {
				t.Errorf("Expected %s to carry no price", symbol)
			}
			if quote.Exchange != model.UnknownExchange {
				t.Errorf("Expected %s exchange %q, got %q", symbol, model.UnknownExchange, quote.Exchange)
			}
		}
		if quote, _ := snapshot.Quote("AAPL"); quote.Unavailable {
			t.Error("AAPL should still be available")
		}
	})

	t.Run("provider failure degrades to synthetic quotes within bounds", func(t *testing.T) {
		// Setup
		client := testutil.NewMockQuoteClient().WithError(errors.New("connection refused"))
		svc := newTestFeed(client)

		// Execute
		snapshot := svc.Refresh(context.Background())

		// Assert
		if !snapshot.Synthetic {
			t.Fatal("Expected a synthetic snapshot")
		}
		if len(snapshot.Quotes) != len(testUniverse) {
			t.Fatalf("Expected one quote per universe symbol, got %d", len(snapshot.Quotes))
		}

		min := decimal.NewFromFloat(feed.SyntheticPriceMin)
		max := decimal.NewFromFloat(feed.SyntheticPriceMax)
		span := decimal.NewFromFloat(feed.SyntheticChangeSpan)
		for symbol, quote := range snapshot.Quotes {
			if !quote.Synthetic {
				t.Errorf("Expected %s tagged synthetic", symbol)
			}
			if quote.Price.LessThan(min) || quote.Price.GreaterThanOrEqual(max) {
				t.Errorf("%s price %s outside [%s, %s)", symbol, quote.Price, min, max)
			}
			if quote.ChangeAmount.Abs().GreaterThan(span) {
				t.Errorf("%s change %s outside +/-%s", symbol, quote.ChangeAmount, span)
			}
		}
	})
}

// TestFeed_Publish tests snapshot publication semantics.
//
// WHY: Readers hold snapshot pointers across request handling; publication
// must swap atomically with monotonically increasing versions, notify
// subscribers, and drop late results after Stop so a cancelled schedule can
// never roll the state back.
func TestFeed_Publish(t *testing.T) {
	t.Run("snapshot is nil before the first refresh", func(t *testing.T) {
		// Setup
		svc := newTestFeed(testutil.NewMockQuoteClient("AAPL"))

		// Assert
		if svc.Snapshot() != nil {
			t.Error("Expected nil snapshot before first refresh")
		}
	})

	t.Run("each refresh publishes a new version", func(t *testing.T) {
		// Setup
		client := testutil.NewMockQuoteClient("AAPL", "MSFT", "TSLA")
		svc := newTestFeed(client)

		// Execute
		first := svc.Refresh(context.Background())
		second := svc.Refresh(context.Background())

		// Assert
		if first.Version >= second.Version {
			t.Errorf("Expected increasing versions, got %d then %d", first.Version, second.Version)
		}
		if svc.Snapshot() != second {
			t.Error("Expected the latest snapshot to be the second refresh")
		}
		// The first snapshot must remain fully usable for readers holding it
		if _, ok := first.Quote("AAPL"); !ok {
			t.Error("Old snapshot lost its quotes after the swap")
		}
	})

	t.Run("subscribers see every publish in order", func(t *testing.T) {
		// Setup
		client := testutil.NewMockQuoteClient("AAPL", "MSFT", "TSLA")
		svc := newTestFeed(client)

		var versions []uint64
		svc.Subscribe(func(s *model.QuoteSnapshot) {
			versions = append(versions, s.Version)
		})

		// Execute
		svc.Refresh(context.Background())
		svc.Refresh(context.Background())

		// Assert
		if len(versions) != 2 {
			t.Fatalf("Expected 2 notifications, got %d", len(versions))
		}
		if versions[0] >= versions[1] {
			t.Errorf("Expected ordered versions, got %v", versions)
		}
	})

	t.Run("results arriving after Stop are discarded", func(t *testing.T) {
		// Setup
		client := testutil.NewMockQuoteClient("AAPL", "MSFT", "TSLA")
		svc := newTestFeed(client)
		before := svc.Refresh(context.Background())

		// Execute
		svc.Stop()
		svc.Refresh(context.Background())

		// Assert
		if svc.Snapshot() != before {
			t.Error("Expected the pre-Stop snapshot to remain current")
		}
	})
}
