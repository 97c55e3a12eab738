package service

import (
	"database/sql"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/database"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns build and feature information for the frontend.
func (s *SystemService) CheckVersion() model.VersionInfo {
	return model.VersionInfo{
		AppVersion: version.Version,
		Features: map[string]bool{
			"quotes":       true,
			"portfolio":    true,
			"trading":      true,
			"transactions": true,
			"budgets":      true,
		},
	}
}
