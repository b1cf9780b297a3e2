package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	New(logger).Register(r)
	return r
}

func TestHandleParse(t *testing.T) {
	router := newRouter()

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/parse-gst-report", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("normalizes report", func(t *testing.T) {
		w := post(`{"report": {
			"business_name": "FINAGG TECHNOLOGIES PRIVATE LIMITED",
			"annual_turnover": 24148440.33,
			"credit_score": "CMR-3",
			"existing_loans": 2710443
		}}`)

		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, float64(650), got["credit_score_numeric"])
		assert.Equal(t, "CMR-3", got["credit_score_text"])
		assert.Equal(t, 2710443.0, got["existing_debt"])
	})

	t.Run("missing report rejected", func(t *testing.T) {
		w := post(`{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "report field is required")
	})

	t.Run("empty report normalizes with defaults", func(t *testing.T) {
		w := post(`{"report": {}}`)
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, float64(750), got["credit_score_numeric"])
		assert.Equal(t, float64(0), got["annual_turnover"])
	})
}
