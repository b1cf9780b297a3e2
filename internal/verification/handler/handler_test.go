package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"loangate/internal/verification"
)

type VerificationHandlerSuite struct {
	suite.Suite
	router chi.Router
}

func TestVerificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(VerificationHandlerSuite))
}

func (s *VerificationHandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := verification.NewService(
		verification.MockGSTClient{}, verification.MockPANClient{},
		nil, nil, logger, nil, 24*time.Hour)

	s.router = chi.NewRouter()
	New(service, logger).Register(s.router)
}

func (s *VerificationHandlerSuite) post(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *VerificationHandlerSuite) TestVerifyGST() {
	s.Run("demo number verifies", func() {
		w := s.post("/api/verify-gst", `{"gst_number": "09AADCF8429L1Z4"}`)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"verified":true`)
		s.Contains(w.Body.String(), "FINAGG TECHNOLOGIES PRIVATE LIMITED")
	})

	s.Run("unknown number is 200 unverified", func() {
		w := s.post("/api/verify-gst", `{"gst_number": "27ZZZZZ9999Z1Z9"}`)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"verified":false`)
	})

	s.Run("missing gst_number rejected", func() {
		w := s.post("/api/verify-gst", `{}`)

		s.Equal(http.StatusBadRequest, w.Code)
		s.Contains(w.Body.String(), "gst_number field is required")
	})
}

func (s *VerificationHandlerSuite) TestVerifyPAN() {
	s.Run("demo number verifies", func() {
		w := s.post("/api/verify-pan", `{"pan_number": "AADCF8429L"}`)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"verified":true`)
	})

	s.Run("missing pan_number rejected", func() {
		w := s.post("/api/verify-pan", `{}`)

		s.Equal(http.StatusBadRequest, w.Code)
		s.Contains(w.Body.String(), "pan_number field is required")
	})
}
