package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
		default:
			http.Error(w, "nope", http.StatusServiceUnavailable)
		}
	}))
	defer ts.Close()

	c, err := New(ts.URL+"/", time.Second)
	require.NoError(t, err)
	assert.Equal(t, ts.URL, c.BaseURL)

	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, c.GetJSON(context.Background(), "health", &out))
	assert.True(t, out.Success)
	assert.Equal(t, "ok", out.Message)

	err = c.GetJSON(context.Background(), "/down", nil)
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.Equal(t, "nope", httpErr.Body)
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New("localhost:8080", 0)
	assert.Error(t, err)

	_, err = New("rodeo sin url", 0)
	assert.Error(t, err)
}
