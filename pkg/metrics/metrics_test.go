package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/shashiranjanraj/bistro/pkg/metrics"
	"github.com/shashiranjanraj/bistro/pkg/router"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	r := router.New()
	r.Use(metrics.Middleware())
	r.Get("/payment/{email}", "payment.history", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payment/alice@example.com", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	// The path label must be the route pattern, never the raw path with the
	// email in it.
	pattern := metrics.RequestTotal.WithLabelValues(http.MethodGet, "/payment/{email}", "200")
	if got := testutil.ToFloat64(pattern); got != 1 {
		t.Errorf("pattern-labelled count = %v, want 1", got)
	}

	raw := metrics.RequestTotal.WithLabelValues(http.MethodGet, "/payment/alice@example.com", "200")
	if got := testutil.ToFloat64(raw); got != 0 {
		t.Errorf("raw-path-labelled count = %v, want 0", got)
	}
}
