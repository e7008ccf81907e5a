package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func setupRouter(db Pinger) *gin.Engine {
	h := NewHealthHandler(db)
	r := gin.New()
	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.OPTIONS("/healthz", h.Health)
	return r
}

func TestHealth_ResponseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method         string
		expectedStatus int
		emptyBody      bool
	}{
		{http.MethodGet, http.StatusOK, false},
		{http.MethodHead, http.StatusOK, true},
		{http.MethodOptions, http.StatusNoContent, true},
	}

	router := setupRouter(nil)

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, "/healthz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			if tt.emptyBody {
				assert.Zero(t, w.Body.Len())
			}
		})
	}
}

func TestHealth_DatabaseUp(t *testing.T) {
	t.Parallel()

	pinged := false
	router := setupRouter(pingFunc(func(context.Context) error {
		pinged = true
		return nil
	}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, pinged)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHealth_DatabaseDown(t *testing.T) {
	t.Parallel()

	router := setupRouter(pingFunc(func(context.Context) error { return errors.New("dial tcp: refused") }))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable","database":"down"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "refused")
}

func TestHealth_HeadSkipsDatabase(t *testing.T) {
	t.Parallel()

	router := setupRouter(pingFunc(func(context.Context) error {
		t.Error("HEAD must not ping the database")
		return nil
	}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodHead, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
