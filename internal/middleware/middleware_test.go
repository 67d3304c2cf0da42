package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"livestock-records/internal/domain/livestock"
	"livestock-records/internal/platform/logger"
	"livestock-records/internal/platform/respond"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(buf *bytes.Buffer) http.Handler {
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Out: buf})

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(RequestLogger(log))
	r.Use(Recover)

	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Info("handler", nil)
		respond.JSON(w, http.StatusOK, "ok", nil)
	})
	r.Get("/missing", func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, r, livestock.Errorf(livestock.KindNotFound, "cow not found"))
	})
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("se cayó el corral")
	})
	return r
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		out = append(out, m)
	}
	return out
}

func TestRequestLogger_AttachesRequestID(t *testing.T) {
	var buf bytes.Buffer
	h := newTestRouter(&buf)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	lines := logLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "handler", lines[0]["msg"])
	assert.NotEmpty(t, lines[0]["request_id"])
	assert.Equal(t, lines[0]["request_id"], lines[1]["request_id"])

	assert.Equal(t, "request", lines[1]["msg"])
	assert.Equal(t, "info", lines[1]["level"])
	assert.Equal(t, float64(http.StatusOK), lines[1]["status"])
	assert.Equal(t, "/ok", lines[1]["path"])
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	var buf bytes.Buffer
	h := newTestRouter(&buf)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	lines := logLines(t, &buf)
	require.NotEmpty(t, lines)
	last := lines[len(lines)-1]
	assert.Equal(t, "warn", last["level"])
	assert.Equal(t, float64(http.StatusNotFound), last["status"])
}

func TestRecover_RespondsWithEnvelope(t *testing.T) {
	var buf bytes.Buffer
	h := newTestRouter(&buf)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "internal error", env.Message)
	assert.Equal(t, "StoreError", env.Error.Code)

	var sawPanic bool
	for _, l := range logLines(t, &buf) {
		if l["msg"] == "panic" {
			sawPanic = true
			assert.Equal(t, "se cayó el corral", l["panic"])
			assert.NotEmpty(t, l["stack"])
		}
	}
	assert.True(t, sawPanic)
}
