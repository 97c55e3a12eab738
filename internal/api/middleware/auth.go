// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/response"
)

// TokenVerifier checks a bearer token and returns the user ID it belongs to.
// Satisfied by service.AuthService.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

type contextKey string

// userIDKey is the context key under which Auth stores the authenticated user ID.
const userIDKey contextKey = "userID"

// Auth returns middleware that requires a valid "Authorization: Bearer" token
// and injects the authenticated user ID into the request context.
// Returns 401 Unauthorized when the header is missing or the token is invalid.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				response.RespondError(w, http.StatusUnauthorized, "authorization required", "")
				return
			}

			userID, err := verifier.VerifyToken(token)
			if err != nil {
				response.RespondError(w, http.StatusUnauthorized, "invalid or expired token", "")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID extracts the authenticated user ID set by Auth. Returns an empty
// string on routes the middleware does not guard.
func UserID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	return userID
}

// WithUserID returns a copy of ctx carrying the given user ID, for tests that
// exercise handlers without the full middleware chain.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
