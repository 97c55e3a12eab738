package service_test

import (
	"strings"
	"testing"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/testutil"
)

// TestSettingsService_QuoteAPIKey tests encrypted storage of the provider key.
//
// WHY: The API key is a credential; the settings table must never hold it in
// the clear, and the masked form shown on the settings page must not leak
// more than the last four characters.
func TestSettingsService_QuoteAPIKey(t *testing.T) {
	t.Run("round-trips through encryption", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc, err := service.NewSettingsService(repository.NewSettingRepository(db), "")
		if err != nil {
			t.Fatalf("NewSettingsService() failed: %v", err)
		}

		// Execute
		if err := svc.SetQuoteAPIKey("td-secret-key-1234"); err != nil {
			t.Fatalf("SetQuoteAPIKey() returned unexpected error: %v", err)
		}
		apiKey, ok, err := svc.QuoteAPIKey()

		// Assert
		if err != nil {
			t.Fatalf("QuoteAPIKey() returned unexpected error: %v", err)
		}
		if !ok {
			t.Fatal("Expected a stored key")
		}
		if apiKey != "td-secret-key-1234" {
			t.Errorf("Expected round-tripped key, got %q", apiKey)
		}

		// The stored value must not contain the plaintext
		var stored string
		if err := db.QueryRow("SELECT value FROM setting WHERE key = 'quote_api_key'").Scan(&stored); err != nil {
			t.Fatalf("Failed to read stored setting: %v", err)
		}
		if strings.Contains(stored, "td-secret-key-1234") {
			t.Error("Stored setting contains the plaintext key")
		}
	})

	t.Run("masked key reveals only the last four characters", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc, err := service.NewSettingsService(repository.NewSettingRepository(db), "")
		if err != nil {
			t.Fatalf("NewSettingsService() failed: %v", err)
		}
		if err := svc.SetQuoteAPIKey("abcdef123456"); err != nil {
			t.Fatalf("SetQuoteAPIKey() returned unexpected error: %v", err)
		}

		// Execute
		masked, ok, err := svc.MaskedQuoteAPIKey()

		// Assert
		if err != nil {
			t.Fatalf("MaskedQuoteAPIKey() returned unexpected error: %v", err)
		}
		if !ok {
			t.Fatal("Expected a stored key")
		}
		if masked != "********3456" {
			t.Errorf("Expected ********3456, got %q", masked)
		}
	})

	t.Run("unset key reports not configured", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc, err := service.NewSettingsService(repository.NewSettingRepository(db), "")
		if err != nil {
			t.Fatalf("NewSettingsService() failed: %v", err)
		}

		// Execute
		_, ok, err := svc.QuoteAPIKey()

		// Assert
		if err != nil {
			t.Fatalf("QuoteAPIKey() returned unexpected error: %v", err)
		}
		if ok {
			t.Error("Expected no stored key")
		}
	})

	t.Run("invalid encryption key is rejected at construction", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)

		// Execute
		_, err := service.NewSettingsService(repository.NewSettingRepository(db), "not-base64!!")

		// Assert
		if err == nil {
			t.Fatal("Expected error for invalid encryption key, got nil")
		}
	})
}
