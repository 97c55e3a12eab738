package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Quote    QuoteConfig
	Auth     AuthConfig
	CORS     CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration.
// The default ":memory:" keeps all state in-process for the lifetime of the
// server; nothing is persisted across restarts.
type DatabaseConfig struct {
	Path string
}

// QuoteConfig holds quote-provider configuration.
type QuoteConfig struct {
	BaseURL         string
	APIKey          string
	RefreshInterval time.Duration // period of the scheduled feed refresh
	RequestTimeout  time.Duration // per-request bound, kept below the interval
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	EncryptionKey string // base64 fernet key for secrets at rest; generated if empty
	DemoUserEmail string // seeded demo account, empty disables seeding
	DemoPassword  string
	StartingCash  string // initial wallet balance for new users
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	refreshInterval, err := getEnvDuration("QUOTE_REFRESH_INTERVAL", 60*time.Second)
	if err != nil {
		return nil, err
	}
	requestTimeout, err := getEnvDuration("QUOTE_REQUEST_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	tokenTTL, err := getEnvDuration("AUTH_TOKEN_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	if requestTimeout >= refreshInterval {
		// A hung fetch must resolve as a failure before the next tick.
		requestTimeout = refreshInterval / 2
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", ":memory:"),
		},
		Quote: QuoteConfig{
			BaseURL:         getEnv("QUOTE_BASE_URL", "https://api.twelvedata.com"),
			APIKey:          getEnv("QUOTE_API_KEY", ""),
			RefreshInterval: refreshInterval,
			RequestTimeout:  requestTimeout,
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("AUTH_JWT_SECRET", "dev-only-secret-change-me"),
			TokenTTL:      tokenTTL,
			EncryptionKey: getEnv("AUTH_ENCRYPTION_KEY", ""),
			DemoUserEmail: getEnv("DEMO_USER_EMAIL", "demo@example.com"),
			DemoPassword:  getEnv("DEMO_USER_PASSWORD", "demo1234"),
			StartingCash:  getEnv("STARTING_CASH", "10000"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration gets a duration environment variable expressed in seconds
// (plain integer) or Go duration syntax ("90s", "2m").
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return d, nil
}
