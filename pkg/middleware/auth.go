// Package middleware provides the HTTP middleware chain for the bistro API,
// including the two-stage access control gate: bearer-token verification
// followed by an admin role lookup for privileged routes.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/bistro/pkg/auth"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/response"
)

// AdminChecker reports whether the identity behind an email holds the admin
// role. Implemented by the user repository; faked in tests.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// VerifyToken is the authentication stage. A missing Authorization header
// fails with 401 before any token parsing. A present header must carry
// "Bearer <token>"; verification failure also maps to 401. On success the
// decoded claims are attached to the request context.
func VerifyToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			response.Unauthorized(w)
			return
		}

		_, token, found := strings.Cut(header, " ")
		if !found {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := auth.WithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VerifyAdmin is the authorization stage for admin-only routes. It looks up
// the authenticated identity and fails with 403 unless its role is admin.
// Must be chained after VerifyToken.
func VerifyAdmin(users AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.ClaimsFromCtx(r.Context())
			if !ok {
				response.Unauthorized(w)
				return
			}

			isAdmin, err := users.IsAdmin(r.Context(), claims.Email)
			if err != nil {
				logger.WithCtx(r.Context()).Error("admin lookup failed", "email", claims.Email, "error", err)
				response.Error(w, http.StatusInternalServerError, "Internal Server Error")
				return
			}
			if !isAdmin {
				response.Forbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// VerifySelf guards personal-data routes: the email path parameter must
// equal the authenticated email. Any mismatch is 403 regardless of role.
// Must be chained after VerifyToken.
func VerifySelf(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.ClaimsFromCtx(r.Context())
			if !ok {
				response.Unauthorized(w)
				return
			}

			if chi.URLParam(r, param) != claims.Email {
				response.Forbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
