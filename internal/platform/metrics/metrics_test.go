package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"livestock-records/internal/domain/livestock"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	b, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(b)
}

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	m := New("rodeo")

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/cows/{cowID}", func(w http.ResponseWriter, r *http.Request) {
		FromContext(r.Context()).ObserveError(livestock.Errorf(livestock.KindNotFound, "cow not found"))
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cows/"+id, nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	out := scrape(t, m)
	assert.Contains(t, out, `rodeo_http_requests_total{method="GET",route="/cows/{cowID}",status="404"} 2`)
	assert.Contains(t, out, `rodeo_domain_errors_total{code="NotFound"} 2`)
	assert.Contains(t, out, `rodeo_http_request_duration_seconds_count{method="GET",route="/cows/{cowID}"} 2`)
}

func TestObserveError_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveError(livestock.ErrNotFound) })
	assert.Nil(t, FromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
