package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loangate/internal/eligibility"
	eligibilityhandler "loangate/internal/eligibility/handler"
	"loangate/internal/platform/middleware"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eligHandler := eligibilityhandler.New(eligibility.NewService(logger, nil), logger)
	return NewRouter(logger, nil, eligHandler)
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t)

	t.Run("service info at root", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"running"`)
		assert.Contains(t, w.Body.String(), "/api/calculate-eligibility")
	})

	t.Run("metrics endpoint mounted", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("registered handler reachable", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := strings.NewReader(`{"business_data": {"annual_turnover": 1000000}}`)
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/calculate-eligibility", body))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"decision"`)
	})

	t.Run("request id header set", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("unknown route is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("wrong method is 405", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/calculate-eligibility", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}
