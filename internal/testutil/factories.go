package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// MakeID returns a fresh UUID string for test entities.
func MakeID() string {
	return uuid.New().String()
}

// MustDecimal parses a decimal string, failing the test on bad input.
func MustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", value, err)
	}
	return d
}

// UserBuilder provides a fluent interface for creating test users with wallets.
//
// Example usage:
//
//	user := testutil.NewUser().WithBalance("2000").Build(t, db)
type UserBuilder struct {
	ID      string
	Name    string
	Email   string
	Balance string
}

// NewUser creates a UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	id := MakeID()
	return &UserBuilder{
		ID:      id,
		Name:    "Test User",
		Email:   id + "@example.com",
		Balance: "10000",
	}
}

// WithID sets a custom ID.
func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.ID = id
	return b
}

// WithEmail sets a custom email.
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

// WithBalance sets the starting wallet balance.
func (b *UserBuilder) WithBalance(balance string) *UserBuilder {
	b.Balance = balance
	return b
}

// Build inserts the user and wallet rows and returns the user.
func (b *UserBuilder) Build(t *testing.T, db *sql.DB) model.User {
	t.Helper()

	user := model.User{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		CreatedAt: time.Now().UTC(),
	}
	_, err := db.Exec(
		"INSERT INTO user (id, name, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)",
		user.ID, user.Name, user.Email, "test-hash", user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to insert test user: %v", err)
	}

	_, err = db.Exec("INSERT INTO wallet (user_id, balance) VALUES (?, ?)", user.ID, b.Balance)
	if err != nil {
		t.Fatalf("Failed to insert test wallet: %v", err)
	}
	return user
}

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	holding := testutil.NewHolding(user.ID, "AAPL").
//	    WithShares("10").
//	    WithAvgPrice("100").
//	    WithCurrentPrice("150").
//	    Build(t, db)
type HoldingBuilder struct {
	ID            string
	UserID        string
	Symbol        string
	Name          string
	Shares        string
	AvgPrice      string
	CurrentPrice  string
	ChangeAmount  string
	ChangePercent string
}

// NewHolding creates a HoldingBuilder with sensible defaults.
func NewHolding(userID, symbol string) *HoldingBuilder {
	return &HoldingBuilder{
		ID:            MakeID(),
		UserID:        userID,
		Symbol:        symbol,
		Name:          symbol + " Test Corp",
		Shares:        "10",
		AvgPrice:      "100",
		CurrentPrice:  "100",
		ChangeAmount:  "0",
		ChangePercent: "0",
	}
}

// WithShares sets the share count.
func (b *HoldingBuilder) WithShares(shares string) *HoldingBuilder {
	b.Shares = shares
	return b
}

// WithAvgPrice sets the average purchase price.
func (b *HoldingBuilder) WithAvgPrice(price string) *HoldingBuilder {
	b.AvgPrice = price
	return b
}

// WithCurrentPrice sets the current market price.
func (b *HoldingBuilder) WithCurrentPrice(price string) *HoldingBuilder {
	b.CurrentPrice = price
	return b
}

// WithChange sets the daily change amount and percent.
func (b *HoldingBuilder) WithChange(amount, percent string) *HoldingBuilder {
	b.ChangeAmount = amount
	b.ChangePercent = percent
	return b
}

// Build inserts the holding row and returns its ID.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) string {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO holding (id, user_id, symbol, name, shares, avg_price, current_price, change_amount, change_percent)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.UserID, b.Symbol, b.Name, b.Shares, b.AvgPrice, b.CurrentPrice, b.ChangeAmount, b.ChangePercent,
	)
	if err != nil {
		t.Fatalf("Failed to insert test holding: %v", err)
	}
	return b.ID
}

// TransactionBuilder provides a fluent interface for creating test transactions.
type TransactionBuilder struct {
	ID       string
	UserID   string
	Date     time.Time
	Merchant string
	Amount   string
	Category string
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction(userID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:       MakeID(),
		UserID:   userID,
		Date:     time.Now().UTC(),
		Merchant: "Test Merchant",
		Amount:   "-25.00",
		Category: "Other",
	}
}

// WithDate sets the transaction date.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	b.Date = date
	return b
}

// WithMerchant sets the merchant name.
func (b *TransactionBuilder) WithMerchant(merchant string) *TransactionBuilder {
	b.Merchant = merchant
	return b
}

// WithAmount sets the amount (negative for expenses).
func (b *TransactionBuilder) WithAmount(amount string) *TransactionBuilder {
	b.Amount = amount
	return b
}

// WithCategory sets the category.
func (b *TransactionBuilder) WithCategory(category string) *TransactionBuilder {
	b.Category = category
	return b
}

// Build inserts the transaction row and returns its ID.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) string {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO expense_transaction (id, user_id, date, merchant, amount, category, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.UserID, b.Date, b.Merchant, b.Amount, b.Category, "", time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("Failed to insert test transaction: %v", err)
	}
	return b.ID
}

// BudgetBuilder provides a fluent interface for creating test budget categories.
type BudgetBuilder struct {
	ID       string
	UserID   string
	Category string
	Limit    string
}

// NewBudget creates a BudgetBuilder with sensible defaults.
func NewBudget(userID, category string) *BudgetBuilder {
	return &BudgetBuilder{
		ID:       MakeID(),
		UserID:   userID,
		Category: category,
		Limit:    "100",
	}
}

// WithLimit sets the monthly limit.
func (b *BudgetBuilder) WithLimit(limit string) *BudgetBuilder {
	b.Limit = limit
	return b
}

// Build inserts the budget row and returns its ID.
func (b *BudgetBuilder) Build(t *testing.T, db *sql.DB) string {
	t.Helper()

	_, err := db.Exec(
		"INSERT INTO budget_category (id, user_id, category, monthly_limit) VALUES (?, ?, ?, ?)",
		b.ID, b.UserID, b.Category, b.Limit,
	)
	if err != nil {
		t.Fatalf("Failed to insert test budget: %v", err)
	}
	return b.ID
}

// SeedInstrument inserts one instrument into the watch universe table.
func SeedInstrument(t *testing.T, db *sql.DB, symbol, name string) {
	t.Helper()

	_, err := db.Exec("INSERT OR IGNORE INTO instrument (symbol, display_name) VALUES (?, ?)", symbol, name)
	if err != nil {
		t.Fatalf("Failed to seed test instrument: %v", err)
	}
}

// MakeSnapshot builds a quote snapshot from symbol to price mappings, for
// driving valuation and trade tests without a feed.
func MakeSnapshot(t *testing.T, prices map[string]string) *model.QuoteSnapshot {
	t.Helper()

	now := time.Now().UTC()
	quotes := make(map[string]model.Quote, len(prices))
	for symbol, price := range prices {
		quotes[symbol] = model.Quote{
			Symbol:   symbol,
			Name:     symbol + " Test Corp",
			Price:    MustDecimal(t, price),
			Exchange: "NASDAQ",
			Currency: "USD",
			AsOf:     now,
		}
	}
	return &model.QuoteSnapshot{Quotes: quotes, AsOf: now}
}

// MakeUnavailableSnapshot builds a snapshot where every given symbol carries
// the unavailable sentinel instead of a price.
func MakeUnavailableSnapshot(symbols ...string) *model.QuoteSnapshot {
	now := time.Now().UTC()
	quotes := make(map[string]model.Quote, len(symbols))
	for _, symbol := range symbols {
		quotes[symbol] = model.Quote{
			Symbol:      symbol,
			Exchange:    model.UnknownExchange,
			Currency:    model.UnknownExchange,
			AsOf:        now,
			Unavailable: true,
		}
	}
	return &model.QuoteSnapshot{Quotes: quotes, AsOf: now}
}
