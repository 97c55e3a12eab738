package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

// Open opens the SQLite database and creates the schema. The default path
// ":memory:" keeps every table in-process: state lives for the lifetime of
// the server and nothing survives a restart.
func Open(dbPath string) (*sql.DB, error) {
	// Open database connection
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// An in-memory database exists per connection; pin the pool to one so
	// every query sees the same database.
	db.SetMaxOpenConns(1)

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := createSchema(db); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// HealthCheck performs a simple health check on the database
func HealthCheck(db *sql.DB) error {
	return db.Ping()
}

// createSchema creates all tables. The schema is recreated on every startup
// since the store is in-memory; monetary columns are TEXT holding exact
// decimal strings.
func createSchema(db *sql.DB) error {
	schema := `
		-- Registered users
		CREATE TABLE IF NOT EXISTS user (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(100) NOT NULL,
			created_at TIMESTAMP NOT NULL
		);

		-- Cash balance per user
		CREATE TABLE IF NOT EXISTS wallet (
			user_id VARCHAR(36) NOT NULL PRIMARY KEY,
			balance TEXT NOT NULL,
			FOREIGN KEY (user_id) REFERENCES user(id)
		);

		-- Fixed watch universe
		CREATE TABLE IF NOT EXISTS instrument (
			symbol VARCHAR(10) NOT NULL PRIMARY KEY,
			display_name VARCHAR(100) NOT NULL
		);

		-- Priced positions, one per user and symbol
		CREATE TABLE IF NOT EXISTS holding (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			symbol VARCHAR(10) NOT NULL,
			name VARCHAR(100) NOT NULL,
			shares TEXT NOT NULL,
			avg_price TEXT NOT NULL,
			current_price TEXT NOT NULL,
			change_amount TEXT NOT NULL DEFAULT '0',
			change_percent TEXT NOT NULL DEFAULT '0',
			UNIQUE (user_id, symbol),
			FOREIGN KEY (user_id) REFERENCES user(id)
		);

		-- Profit/loss locked in by sells
		CREATE TABLE IF NOT EXISTS realized_gain_loss (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			symbol VARCHAR(10) NOT NULL,
			shares TEXT NOT NULL,
			cost_basis TEXT NOT NULL,
			sale_proceeds TEXT NOT NULL,
			gain_loss TEXT NOT NULL,
			transaction_at TIMESTAMP NOT NULL,
			FOREIGN KEY (user_id) REFERENCES user(id)
		);

		-- Spending/income entries
		CREATE TABLE IF NOT EXISTS expense_transaction (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			date TIMESTAMP NOT NULL,
			merchant VARCHAR(255) NOT NULL,
			amount TEXT NOT NULL,
			category VARCHAR(50) NOT NULL,
			notes TEXT,
			created_at TIMESTAMP NOT NULL,
			FOREIGN KEY (user_id) REFERENCES user(id)
		);

		-- Monthly spending limits per category
		CREATE TABLE IF NOT EXISTS budget_category (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			category VARCHAR(50) NOT NULL,
			monthly_limit TEXT NOT NULL,
			UNIQUE (user_id, category),
			FOREIGN KEY (user_id) REFERENCES user(id)
		);

		-- Encrypted application settings
		CREATE TABLE IF NOT EXISTS setting (
			key VARCHAR(50) NOT NULL PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		return err
	}
	return nil
}
