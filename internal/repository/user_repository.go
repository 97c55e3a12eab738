package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// UserRepository provides data access methods for the user and wallet tables.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a user together with their starting wallet in one
// transaction. Returns apperrors.ErrEmailTaken if the email is already in use.
func (r *UserRepository) CreateUser(user model.User, startingBalance decimal.Decimal) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO user (id, name, email, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return apperrors.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	_, err = tx.Exec(
		"INSERT INTO wallet (user_id, balance) VALUES (?, ?)",
		user.ID, startingBalance.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert wallet: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user creation: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by email address.
func (r *UserRepository) GetUserByEmail(email string) (model.User, error) {
	var u model.User
	err := r.db.QueryRow(`
		SELECT id, name, email, password_hash, created_at
		FROM user WHERE email = ?`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query user by email: %w", err)
	}
	return u, nil
}

// GetUserByID retrieves a user by ID.
func (r *UserRepository) GetUserByID(id string) (model.User, error) {
	var u model.User
	err := r.db.QueryRow(`
		SELECT id, name, email, password_hash, created_at
		FROM user WHERE id = ?`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query user by id: %w", err)
	}
	return u, nil
}
