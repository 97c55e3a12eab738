package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/middleware"
)

type stubVerifier struct {
	userID string
	err    error
}

func (s stubVerifier) VerifyToken(string) (string, error) {
	return s.userID, s.err
}

// TestAuthMiddleware tests the bearer token guard.
//
// WHY: Every guarded endpoint trusts the user ID this middleware injects;
// missing or invalid tokens must stop the request before any handler runs.
func TestAuthMiddleware(t *testing.T) {
	handler := func(t *testing.T, wantUserID string, called *bool) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*called = true
			if got := middleware.UserID(r); got != wantUserID {
				t.Errorf("Expected user ID %q in context, got %q", wantUserID, got)
			}
		})
	}

	t.Run("valid bearer token passes through with user ID", func(t *testing.T) {
		// Setup
		called := false
		guard := middleware.Auth(stubVerifier{userID: "user-1"})
		req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()

		// Execute
		guard(handler(t, "user-1", &called)).ServeHTTP(rec, req)

		// Assert
		if !called {
			t.Error("Expected handler to be called")
		}
		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", rec.Code)
		}
	})

	t.Run("missing header is rejected with 401", func(t *testing.T) {
		// Setup
		called := false
		guard := middleware.Auth(stubVerifier{userID: "user-1"})
		req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
		rec := httptest.NewRecorder()

		// Execute
		guard(handler(t, "", &called)).ServeHTTP(rec, req)

		// Assert
		if called {
			t.Error("Expected handler not to be called")
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", rec.Code)
		}
	})

	t.Run("invalid token is rejected with 401", func(t *testing.T) {
		// Setup
		called := false
		guard := middleware.Auth(stubVerifier{err: errors.New("expired")})
		req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		rec := httptest.NewRecorder()

		// Execute
		guard(handler(t, "", &called)).ServeHTTP(rec, req)

		// Assert
		if called {
			t.Error("Expected handler not to be called")
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", rec.Code)
		}
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		// Setup
		called := false
		guard := middleware.Auth(stubVerifier{userID: "user-1"})
		req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()

		// Execute
		guard(handler(t, "", &called)).ServeHTTP(rec, req)

		// Assert
		if called {
			t.Error("Expected handler not to be called")
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", rec.Code)
		}
	})
}
