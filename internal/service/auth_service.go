package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
)

// AuthService handles registration, login, and session token verification.
// Passwords are stored as bcrypt hashes; sessions are stateless HS256 JWTs.
type AuthService struct {
	userRepo     *repository.UserRepository
	jwtSecret    []byte
	tokenTTL     time.Duration
	startingCash decimal.Decimal
}

// NewAuthService creates a new AuthService. startingCash is the wallet
// balance granted to every new registration.
func NewAuthService(userRepo *repository.UserRepository, jwtSecret string, tokenTTL time.Duration, startingCash decimal.Decimal) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
		startingCash: startingCash,
	}
}

// Register creates a new user with a bcrypt-hashed password and a starting
// wallet balance. Returns apperrors.ErrEmailTaken for duplicate emails.
func (s *AuthService) Register(name, email, password string) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.CreateUser(user, s.startingCash); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Login verifies the email/password pair and issues a session token.
// Both unknown emails and wrong passwords return ErrInvalidCredentials so
// the response does not leak which accounts exist.
func (s *AuthService) Login(email, password string) (model.User, string, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return model.User{}, "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return model.User{}, "", err
	}
	return user, token, nil
}

// VerifyToken parses and validates a session token, returning the user ID.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperrors.ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", apperrors.ErrInvalidToken
	}
	return sub, nil
}

func (s *AuthService) issueToken(user model.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
