package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrUserNotFound indicates that a user with the given ID or email does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrHoldingNotFound indicates that no holding exists for the given symbol.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrWalletNotFound indicates that no wallet exists for the given user.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrInstrumentNotFound indicates that a symbol is not part of the watch universe.
	ErrInstrumentNotFound = errors.New("instrument not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrBudgetNotFound indicates that a budget category with the given ID does not exist.
	ErrBudgetNotFound = errors.New("budget category not found")
)

// Trade validation errors represent rejected orders. A rejected order causes
// no state change and must be resubmitted by the caller as a new order.
var (
	// ErrQuoteUnavailable indicates that no usable price exists for the
	// order's symbol in the current quote snapshot.
	ErrQuoteUnavailable = errors.New("quote unavailable for symbol")

	// ErrInvalidQuantity indicates that the order quantity is missing,
	// non-numeric, or not strictly positive.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInsufficientShares indicates that a sell order exceeds the shares held.
	ErrInsufficientShares = errors.New("insufficient shares for sale")

	// ErrInsufficientFunds indicates that a buy order exceeds the wallet balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Feed errors are recovered locally via the synthetic fallback and are never
// surfaced to the user as errors.
var (
	// ErrFeedUnavailable indicates a transport, parse, or access failure
	// on the quote provider.
	ErrFeedUnavailable = errors.New("quote feed unavailable")

	// ErrFeatureRestricted indicates the provider rejected the request as
	// outside the current plan. Treated identically to ErrFeedUnavailable.
	ErrFeatureRestricted = errors.New("quote feed feature restricted")
)

// Auth errors represent authentication failures.
var (
	// ErrInvalidCredentials indicates that the email/password pair did not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken indicates that a registration email is already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidToken indicates a missing, malformed, or expired session token.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data.
var (
	ErrFailedToRetrievePortfolio    = errors.New("failed to retrieve portfolio")
	ErrFailedToRetrieveWallet       = errors.New("failed to retrieve wallet")
	ErrFailedToRetrieveQuotes       = errors.New("failed to retrieve quotes")
	ErrFailedToRetrieveWatchlist    = errors.New("failed to retrieve watchlist")
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveBudgets      = errors.New("failed to retrieve budgets")
	ErrFailedToRetrieveGains        = errors.New("failed to retrieve realized gains")
	ErrFailedToExecuteTrade         = errors.New("failed to execute trade")
)
