package twelvedata_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/twelvedata"
)

// TestClient_Quotes tests the batch quote request against a stub server.
//
// WHY: The provider has three distinct failure shapes (transport, HTTP
// status, and in-band error payloads with a 2xx status) and the feed's
// fallback policy depends on each being reported as an error rather than an
// empty batch.
func TestClient_Quotes(t *testing.T) {
	t.Run("decodes a keyed batch response", func(t *testing.T) {
		// Setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("symbol"); got != "AAPL,MSFT" {
				t.Errorf("Expected symbol=AAPL,MSFT, got %q", got)
			}
			if got := r.URL.Query().Get("apikey"); got != "test-key" {
				t.Errorf("Expected apikey=test-key, got %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"AAPL": {"symbol":"AAPL","name":"Apple Inc","exchange":"NASDAQ","currency":"USD","close":"189.30","change":"1.20","percent_change":"0.64"},
				"MSFT": {"symbol":"MSFT","name":"Microsoft","exchange":"NASDAQ","currency":"USD","close":"410.10","change":"-2.00","percent_change":"-0.49"}
			}`))
		}))
		defer server.Close()
		client := twelvedata.NewClient("test-key", twelvedata.WithBaseURL(server.URL))

		// Execute
		batch, err := client.Quotes(context.Background(), []string{"AAPL", "MSFT"})

		// Assert
		if err != nil {
			t.Fatalf("Quotes() returned unexpected error: %v", err)
		}
		if len(batch) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(batch))
		}
		if !batch["AAPL"].WellFormed() {
			t.Errorf("Expected AAPL entry to be well-formed: %+v", batch["AAPL"])
		}
		if batch["AAPL"].Close != "189.30" {
			t.Errorf("Expected close 189.30, got %q", batch["AAPL"].Close)
		}
	})

	t.Run("key source overrides the construction-time key per request", func(t *testing.T) {
		// Setup
		var gotKeys []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKeys = append(gotKeys, r.URL.Query().Get("apikey"))
			w.Write([]byte(`{"AAPL": {"symbol":"AAPL","close":"189.30","change":"1.20","percent_change":"0.64"}}`))
		}))
		defer server.Close()

		storedKey := ""
		client := twelvedata.NewClient("env-key",
			twelvedata.WithBaseURL(server.URL),
			twelvedata.WithKeySource(func() string { return storedKey }),
		)

		// Execute: first request before a key is stored, second after
		if _, err := client.Quotes(context.Background(), []string{"AAPL"}); err != nil {
			t.Fatalf("Quotes() returned unexpected error: %v", err)
		}
		storedKey = "stored-key"
		if _, err := client.Quotes(context.Background(), []string{"AAPL"}); err != nil {
			t.Fatalf("Quotes() returned unexpected error: %v", err)
		}

		// Assert
		if len(gotKeys) != 2 {
			t.Fatalf("Expected 2 requests, got %d", len(gotKeys))
		}
		if gotKeys[0] != "env-key" {
			t.Errorf("Expected fallback to env-key before a key is stored, got %q", gotKeys[0])
		}
		if gotKeys[1] != "stored-key" {
			t.Errorf("Expected stored-key after the update, got %q", gotKeys[1])
		}
	})

	t.Run("decodes a flattened single-quote response", func(t *testing.T) {
		// Setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"symbol":"AAPL","name":"Apple Inc","exchange":"NASDAQ","currency":"USD","close":"189.30","change":"1.20","percent_change":"0.64"}`))
		}))
		defer server.Close()
		client := twelvedata.NewClient("test-key", twelvedata.WithBaseURL(server.URL))

		// Execute
		batch, err := client.Quotes(context.Background(), []string{"AAPL"})

		// Assert
		if err != nil {
			t.Fatalf("Quotes() returned unexpected error: %v", err)
		}
		if !batch["AAPL"].WellFormed() {
			t.Errorf("Expected well-formed AAPL entry, got %+v", batch["AAPL"])
		}
	})

	t.Run("keeps per-symbol error entries in the batch", func(t *testing.T) {
		// Setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"AAPL": {"symbol":"AAPL","close":"189.30"},
				"ZZZZ": {"code":400,"status":"error","message":"symbol not found"}
			}`))
		}))
		defer server.Close()
		client := twelvedata.NewClient("test-key", twelvedata.WithBaseURL(server.URL))

		// Execute
		batch, err := client.Quotes(context.Background(), []string{"AAPL", "ZZZZ"})

		// Assert
		if err != nil {
			t.Fatalf("Quotes() returned unexpected error: %v", err)
		}
		if !batch["AAPL"].WellFormed() {
			t.Error("Expected AAPL to be well-formed")
		}
		if batch["ZZZZ"].WellFormed() {
			t.Error("Expected ZZZZ error entry to be rejected by WellFormed")
		}
	})

	t.Run("plan restriction payload maps to ErrFeatureRestricted", func(t *testing.T) {
		// Setup: 200 status, top-level error object
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":403,"status":"error","message":"upgrade your plan"}`))
		}))
		defer server.Close()
		client := twelvedata.NewClient("test-key", twelvedata.WithBaseURL(server.URL))

		// Execute
		_, err := client.Quotes(context.Background(), []string{"AAPL"})

		// Assert
		if !errors.Is(err, apperrors.ErrFeatureRestricted) {
			t.Fatalf("Expected ErrFeatureRestricted, got %v", err)
		}
	})

	t.Run("non-2xx status maps to ErrFeedUnavailable", func(t *testing.T) {
		// Setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()
		client := twelvedata.NewClient("test-key", twelvedata.WithBaseURL(server.URL))

		// Execute
		_, err := client.Quotes(context.Background(), []string{"AAPL"})

		// Assert
		if !errors.Is(err, apperrors.ErrFeedUnavailable) {
			t.Fatalf("Expected ErrFeedUnavailable, got %v", err)
		}
	})

	t.Run("unparsable body maps to ErrFeedUnavailable", func(t *testing.T) {
		// Setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>gateway error</html>`))
		}))
		defer server.Close()
		client := twelvedata.NewClient("test-key", twelvedata.WithBaseURL(server.URL))

		// Execute
		_, err := client.Quotes(context.Background(), []string{"AAPL"})

		// Assert
		if !errors.Is(err, apperrors.ErrFeedUnavailable) {
			t.Fatalf("Expected ErrFeedUnavailable, got %v", err)
		}
	})

	t.Run("empty symbol list short-circuits without a request", func(t *testing.T) {
		// Setup
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()
		client := twelvedata.NewClient("test-key", twelvedata.WithBaseURL(server.URL))

		// Execute
		batch, err := client.Quotes(context.Background(), nil)

		// Assert
		if err != nil {
			t.Fatalf("Quotes() returned unexpected error: %v", err)
		}
		if len(batch) != 0 {
			t.Errorf("Expected empty batch, got %d entries", len(batch))
		}
		if called {
			t.Error("Expected no HTTP request for an empty symbol list")
		}
	})
}
