package repository

import (
	"database/sql"
	"fmt"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// InstrumentRepository provides data access methods for the fixed watch universe.
type InstrumentRepository struct {
	db *sql.DB
}

// NewInstrumentRepository creates a new InstrumentRepository with the provided database connection.
func NewInstrumentRepository(db *sql.DB) *InstrumentRepository {
	return &InstrumentRepository{db: db}
}

// Seed inserts the watch universe, ignoring symbols that already exist.
// Run once at startup; the universe is static configuration afterwards.
func (r *InstrumentRepository) Seed(instruments []model.Instrument) error {
	for _, inst := range instruments {
		_, err := r.db.Exec(
			"INSERT OR IGNORE INTO instrument (symbol, display_name) VALUES (?, ?)",
			inst.Symbol, inst.DisplayName,
		)
		if err != nil {
			return fmt.Errorf("failed to seed instrument %s: %w", inst.Symbol, err)
		}
	}
	return nil
}

// Get retrieves a single instrument by symbol.
// Returns apperrors.ErrInstrumentNotFound for symbols outside the universe.
func (r *InstrumentRepository) Get(symbol string) (model.Instrument, error) {
	var inst model.Instrument
	err := r.db.QueryRow(
		"SELECT symbol, display_name FROM instrument WHERE symbol = ?", symbol,
	).Scan(&inst.Symbol, &inst.DisplayName)
	if err == sql.ErrNoRows {
		return model.Instrument{}, apperrors.ErrInstrumentNotFound
	}
	if err != nil {
		return model.Instrument{}, fmt.Errorf("failed to query instrument: %w", err)
	}
	return inst, nil
}

// List retrieves all instruments in symbol order.
func (r *InstrumentRepository) List() ([]model.Instrument, error) {
	rows, err := r.db.Query("SELECT symbol, display_name FROM instrument ORDER BY symbol")
	if err != nil {
		return nil, fmt.Errorf("failed to query instruments: %w", err)
	}
	defer rows.Close()

	instruments := []model.Instrument{}
	for rows.Next() {
		var inst model.Instrument
		if err := rows.Scan(&inst.Symbol, &inst.DisplayName); err != nil {
			return nil, fmt.Errorf("failed to scan instrument: %w", err)
		}
		instruments = append(instruments, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate instruments: %w", err)
	}
	return instruments, nil
}
