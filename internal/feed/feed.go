// Package feed implements the quote feed: a cancellable scheduled task that
// fetches current prices for the fixed watch universe and publishes each
// cycle's result as an atomically swapped immutable snapshot. On any provider
// failure the feed degrades to synthetic quotes so the valuation layer never
// sees an empty or error state.
package feed

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/twelvedata"
)

// QuoteClient is the provider interface the feed depends on.
// *twelvedata.Client satisfies it; tests substitute a mock.
type QuoteClient interface {
	Quotes(ctx context.Context, symbols []string) (twelvedata.BatchResponse, error)
}

// Subscriber receives every published snapshot, in publish order.
type Subscriber func(*model.QuoteSnapshot)

// Service periodically refreshes quotes for a fixed universe of instruments.
//
// Scheduling rules:
//   - one refresh immediately on Start, then one per interval
//   - refreshes never overlap (a running refresh makes the next tick a no-op)
//   - Stop cancels future ticks; a refresh still in flight at Stop time has
//     its result discarded, never applied
type Service struct {
	client   QuoteClient
	universe []model.Instrument
	interval time.Duration
	timeout  time.Duration

	cron    *cron.Cron
	stopped atomic.Bool
	version atomic.Uint64
	latest  atomic.Pointer[model.QuoteSnapshot]
	group   singleflight.Group

	mu   sync.Mutex
	subs []Subscriber
}

// NewService creates a feed service for the given universe. The request
// timeout should stay below the refresh interval so a hung fetch resolves as
// a failure (and therefore a synthetic snapshot) before the next tick.
func NewService(client QuoteClient, universe []model.Instrument, interval, timeout time.Duration) *Service {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	if timeout <= 0 || timeout >= interval {
		timeout = interval / 2
	}
	return &Service{
		client:   client,
		universe: universe,
		interval: interval,
		timeout:  timeout,
	}
}

// Universe returns the fixed watch set the feed refreshes.
func (s *Service) Universe() []model.Instrument {
	return s.universe
}

// Subscribe registers fn to be called synchronously after every publish.
// Subscriptions cannot be removed; subscribe before Start.
func (s *Service) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Start performs the initial refresh and begins the periodic schedule.
func (s *Service) Start() {
	s.Refresh(context.Background())

	s.cron = cron.New()
	job := cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(func() {
		s.Refresh(context.Background())
	}))
	s.cron.Schedule(cron.Every(s.interval), job)
	s.cron.Start()
}

// Stop cancels the periodic schedule. It does not abort an in-flight fetch;
// a late result is discarded instead of applied.
func (s *Service) Stop() {
	s.stopped.Store(true)
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Snapshot returns the most recently published snapshot, or nil before the
// first refresh completes.
func (s *Service) Snapshot() *model.QuoteSnapshot {
	return s.latest.Load()
}

// Refresh fetches quotes for the whole universe and publishes the result.
// Concurrent calls collapse into a single provider request. The returned
// snapshot always contains exactly one quote per universe symbol.
func (s *Service) Refresh(ctx context.Context) *model.QuoteSnapshot {
	snap, _, _ := s.group.Do("refresh", func() (interface{}, error) {
		return s.refresh(ctx), nil
	})
	return snap.(*model.QuoteSnapshot)
}

func (s *Service) refresh(ctx context.Context) *model.QuoteSnapshot {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	symbols := make([]string, len(s.universe))
	for i, inst := range s.universe {
		symbols[i] = inst.Symbol
	}

	now := time.Now().UTC()
	var snapshot *model.QuoteSnapshot

	batch, err := s.client.Quotes(ctx, symbols)
	if err != nil {
		log.Printf("quote feed: provider unavailable, serving synthetic quotes: %v", err)
		snapshot = s.syntheticSnapshot(now)
	} else {
		snapshot = s.buildSnapshot(batch, now)
	}

	s.publish(snapshot)
	return snapshot
}

// buildSnapshot maps a provider batch onto the universe. Symbols without a
// well-formed entry get an unavailable sentinel quote so the snapshot always
// covers the full universe.
func (s *Service) buildSnapshot(batch twelvedata.BatchResponse, now time.Time) *model.QuoteSnapshot {
	quotes := make(map[string]model.Quote, len(s.universe))
	for _, inst := range s.universe {
		entry, ok := batch[inst.Symbol]
		if !ok || !entry.WellFormed() {
			quotes[inst.Symbol] = unavailableQuote(inst, now)
			continue
		}

		price, err := decimal.NewFromString(entry.Close)
		if err != nil || price.Sign() <= 0 {
			quotes[inst.Symbol] = unavailableQuote(inst, now)
			continue
		}

		// A missing or malformed change value degrades to zero; it only
		// affects the daily-change display, not valuation.
		change, err := decimal.NewFromString(entry.Change)
		if err != nil {
			change = decimal.Zero
		}
		percent, err := decimal.NewFromString(entry.PercentChange)
		if err != nil {
			percent = decimal.Zero
		}

		name := entry.Name
		if name == "" {
			name = inst.DisplayName
		}
		quotes[inst.Symbol] = model.Quote{
			Symbol:        inst.Symbol,
			Name:          name,
			Price:         price,
			ChangeAmount:  change,
			ChangePercent: percent,
			Exchange:      entry.Exchange,
			Currency:      entry.Currency,
			AsOf:          now,
		}
	}

	return &model.QuoteSnapshot{
		Quotes: quotes,
		AsOf:   now,
	}
}

// publish atomically swaps in the new snapshot and notifies subscribers.
// The old snapshot remains fully valid for readers still holding it. After
// Stop, results are dropped so a cancelled schedule can never corrupt state.
func (s *Service) publish(snapshot *model.QuoteSnapshot) {
	if s.stopped.Load() {
		return
	}
	snapshot.Version = s.version.Add(1)
	s.latest.Store(snapshot)

	s.mu.Lock()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

func unavailableQuote(inst model.Instrument, now time.Time) model.Quote {
	return model.Quote{
		Symbol:      inst.Symbol,
		Name:        inst.DisplayName,
		Exchange:    model.UnknownExchange,
		Currency:    model.UnknownExchange,
		AsOf:        now,
		Unavailable: true,
	}
}
