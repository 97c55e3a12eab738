package handlers

import (
	"errors"
	"net/http"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/response"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/validation"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler with the provided service dependency.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// AuthResponse carries a session token and the user it belongs to.
type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Register handles POST requests to create a new account. The new user gets
// a wallet with the configured starting balance and is logged in immediately.
//
// Endpoint: POST /api/auth/register
// Request Body: RegisterRequest (name, email, password)
// Response: 201 Created with AuthResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 409 Conflict if the email is already registered
// Error: 500 Internal Server Error if creation fails
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.RegisterRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateRegister(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if _, err := h.authService.Register(req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrEmailTaken.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to register user", err.Error())
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to start session", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, AuthResponse{Token: token, User: user})
}

// Login handles POST requests to authenticate a user.
//
// Endpoint: POST /api/auth/login
// Request Body: LoginRequest (email, password)
// Response: 200 OK with AuthResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 401 Unauthorized if the credentials are wrong
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.LoginRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateLogin(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			response.RespondError(w, http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to log in", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, AuthResponse{Token: token, User: user})
}
