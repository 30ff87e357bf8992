package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/bistro/pkg/auth"
	"github.com/shashiranjanraj/bistro/pkg/middleware"
	"github.com/shashiranjanraj/bistro/pkg/router"
)

// fakeChecker answers admin lookups from a map.
type fakeChecker struct {
	admins map[string]bool
	err    error
}

func (f fakeChecker) IsAdmin(_ context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.admins[email], nil
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"ok":true}`)) //nolint:errcheck
}

func bearer(t *testing.T, email string) string {
	t.Helper()
	token, err := auth.GenerateToken(email, "")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + token
}

func messageOf(t *testing.T, body []byte) string {
	t.Helper()
	var out map[string]string
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode body %q: %v", body, err)
	}
	return out["message"]
}

func TestVerifyTokenMissingHeader(t *testing.T) {
	h := middleware.VerifyToken(http.HandlerFunc(okHandler))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := messageOf(t, rec.Body.Bytes()); got != "Unauthorized Access" {
		t.Errorf("message = %q", got)
	}
}

func TestVerifyTokenBadToken(t *testing.T) {
	h := middleware.VerifyToken(http.HandlerFunc(okHandler))

	for _, header := range []string{"Bearer", "Bearer not-a-token", "Basic abc def"} {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
}

func TestVerifyTokenAttachesClaims(t *testing.T) {
	var seen *auth.Claims
	h := middleware.VerifyToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = auth.ClaimsFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", bearer(t, "alice@example.com"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seen == nil || seen.Email != "alice@example.com" {
		t.Errorf("claims = %+v", seen)
	}
}

func TestVerifyAdmin(t *testing.T) {
	checker := fakeChecker{admins: map[string]bool{"root@example.com": true}}
	h := middleware.VerifyToken(middleware.VerifyAdmin(checker)(http.HandlerFunc(okHandler)))

	cases := []struct {
		name   string
		email  string
		status int
	}{
		{"admin passes", "root@example.com", http.StatusOK},
		{"non-admin forbidden", "alice@example.com", http.StatusForbidden},
		{"unknown email forbidden", "ghost@example.com", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin-stats", nil)
			req.Header.Set("Authorization", bearer(t, tc.email))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			if tc.status == http.StatusForbidden {
				if got := messageOf(t, rec.Body.Bytes()); got != "Forbidden Access" {
					t.Errorf("message = %q", got)
				}
			}
		})
	}
}

func TestVerifyAdminLookupError(t *testing.T) {
	checker := fakeChecker{err: errors.New("store down")}
	h := middleware.VerifyToken(middleware.VerifyAdmin(checker)(http.HandlerFunc(okHandler)))

	req := httptest.NewRequest(http.MethodGet, "/admin-stats", nil)
	req.Header.Set("Authorization", bearer(t, "root@example.com"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestVerifyAdminWithoutClaims(t *testing.T) {
	// Misconfigured chain: admin gate without the token stage.
	h := middleware.VerifyAdmin(fakeChecker{})(http.HandlerFunc(okHandler))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin-stats", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestVerifySelf(t *testing.T) {
	// Mount through the router so the path parameter resolves.
	r := router.New()
	r.Get("/payment/{email}", "payment.history", okHandler, middleware.VerifyToken, middleware.VerifySelf("email"))
	srv := r.Handler()

	cases := []struct {
		name   string
		caller string
		path   string
		status int
	}{
		{"own data", "alice@example.com", "/payment/alice@example.com", http.StatusOK},
		{"other user", "alice@example.com", "/payment/bob@example.com", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set("Authorization", bearer(t, tc.caller))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
		})
	}
}
