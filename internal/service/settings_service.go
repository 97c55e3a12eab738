package service

import (
	"fmt"
	"strings"

	"github.com/fernet/fernet-go"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
)

// settingQuoteAPIKey is the settings-table key under which the encrypted
// quote-provider API key is stored.
const settingQuoteAPIKey = "quote_api_key"

// SettingsService manages application settings. The quote-provider API key is
// encrypted with a fernet key before it reaches the repository, so the table
// never holds the secret in the clear.
type SettingsService struct {
	settingRepo *repository.SettingRepository
	key         *fernet.Key
}

// NewSettingsService creates a SettingsService. encryptionKey is a
// base64-encoded fernet key; when empty a process-local key is generated,
// which fits the in-memory database where nothing outlives the process anyway.
func NewSettingsService(settingRepo *repository.SettingRepository, encryptionKey string) (*SettingsService, error) {
	var key *fernet.Key
	if encryptionKey == "" {
		key = &fernet.Key{}
		if err := key.Generate(); err != nil {
			return nil, fmt.Errorf("failed to generate encryption key: %w", err)
		}
	} else {
		var err error
		key, err = fernet.DecodeKey(encryptionKey)
		if err != nil {
			return nil, fmt.Errorf("invalid encryption key: %w", err)
		}
	}
	return &SettingsService{settingRepo: settingRepo, key: key}, nil
}

// SetQuoteAPIKey encrypts and stores the quote-provider API key.
func (s *SettingsService) SetQuoteAPIKey(apiKey string) error {
	token, err := fernet.EncryptAndSign([]byte(apiKey), s.key)
	if err != nil {
		return fmt.Errorf("failed to encrypt quote API key: %w", err)
	}
	return s.settingRepo.Set(settingQuoteAPIKey, string(token))
}

// QuoteAPIKey decrypts and returns the stored quote-provider API key.
// Returns ok=false when no key has been stored.
func (s *SettingsService) QuoteAPIKey() (string, bool, error) {
	token, ok, err := s.settingRepo.Get(settingQuoteAPIKey)
	if err != nil || !ok {
		return "", false, err
	}
	plaintext := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{s.key})
	if plaintext == nil {
		return "", false, fmt.Errorf("failed to decrypt quote API key")
	}
	return string(plaintext), true, nil
}

// MaskedQuoteAPIKey returns the stored API key with all but the last four
// characters replaced, for display on the settings page.
func (s *SettingsService) MaskedQuoteAPIKey() (string, bool, error) {
	apiKey, ok, err := s.QuoteAPIKey()
	if err != nil || !ok {
		return "", ok, err
	}
	if len(apiKey) <= 4 {
		return strings.Repeat("*", len(apiKey)), true, nil
	}
	return strings.Repeat("*", len(apiKey)-4) + apiKey[len(apiKey)-4:], true, nil
}
