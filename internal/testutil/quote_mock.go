package testutil

import (
	"context"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/twelvedata"
)

// MockQuoteClient is a mock implementation of feed.QuoteClient for testing.
// It returns predefined test data instead of making actual API calls.
type MockQuoteClient struct {
	// MockResponse is the batch to return from Quotes
	MockResponse twelvedata.BatchResponse
	// MockError is the error to return from Quotes
	MockError error
	// QueryCount tracks how many times Quotes was called
	QueryCount int
	// LastSymbols records the symbols of the most recent call
	LastSymbols []string
}

// NewMockQuoteClient creates a mock quote client with default test data for
// the given symbols, priced 100.00 with a +1.00 (1%) daily change.
func NewMockQuoteClient(symbols ...string) *MockQuoteClient {
	return &MockQuoteClient{
		MockResponse: CreateMockBatch(symbols...),
	}
}

// Quotes returns the configured batch and error, recording the call.
func (m *MockQuoteClient) Quotes(_ context.Context, symbols []string) (twelvedata.BatchResponse, error) {
	m.QueryCount++
	m.LastSymbols = symbols
	if m.MockError != nil {
		return nil, m.MockError
	}
	return m.MockResponse, nil
}

// WithError configures the mock to return the specified error.
func (m *MockQuoteClient) WithError(err error) *MockQuoteClient {
	m.MockError = err
	return m
}

// WithResponse configures the mock to return the specified batch.
func (m *MockQuoteClient) WithResponse(batch twelvedata.BatchResponse) *MockQuoteClient {
	m.MockResponse = batch
	return m
}

// WithEntry overrides a single symbol's entry in the configured batch.
func (m *MockQuoteClient) WithEntry(symbol string, entry twelvedata.QuoteEntry) *MockQuoteClient {
	if m.MockResponse == nil {
		m.MockResponse = twelvedata.BatchResponse{}
	}
	m.MockResponse[symbol] = entry
	return m
}

// CreateMockBatch creates a well-formed batch response for the given symbols.
func CreateMockBatch(symbols ...string) twelvedata.BatchResponse {
	batch := make(twelvedata.BatchResponse, len(symbols))
	for _, symbol := range symbols {
		batch[symbol] = twelvedata.QuoteEntry{
			Symbol:        symbol,
			Name:          symbol + " Test Corp",
			Exchange:      "NASDAQ",
			Currency:      "USD",
			Close:         "100.00",
			Change:        "1.00",
			PercentChange: "1.00",
		}
	}
	return batch
}
