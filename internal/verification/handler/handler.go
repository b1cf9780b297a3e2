package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"loangate/internal/verification"
	dErrors "loangate/pkg/domain-errors"
	"loangate/pkg/platform/httputil"
	"loangate/pkg/requestcontext"
)

// VerifyGSTRequest is the wire shape for a GST verification.
type VerifyGSTRequest struct {
	GSTNumber string `json:"gst_number"`
}

func (r *VerifyGSTRequest) Prepare() error {
	if r.GSTNumber == "" {
		return dErrors.New(dErrors.CodeBadRequest, "gst_number field is required")
	}
	return nil
}

// VerifyPANRequest is the wire shape for a PAN verification.
type VerifyPANRequest struct {
	PANNumber string `json:"pan_number"`
}

func (r *VerifyPANRequest) Prepare() error {
	if r.PANNumber == "" {
		return dErrors.New(dErrors.CodeBadRequest, "pan_number field is required")
	}
	return nil
}

// Handler wires verification endpoints to the verification service.
type Handler struct {
	service *verification.Service
	logger  *slog.Logger
}

// New constructs a verification handler.
func New(service *verification.Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts verification endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/verify-gst", h.HandleVerifyGST)
	r.Post("/api/verify-pan", h.HandleVerifyPAN)
}

// HandleVerifyGST handles POST /api/verify-gst requests.
func (h *Handler) HandleVerifyGST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[VerifyGSTRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.VerifyGST(ctx, req.GSTNumber)
	if err != nil {
		h.logger.ErrorContext(ctx, "gst verification failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleVerifyPAN handles POST /api/verify-pan requests.
func (h *Handler) HandleVerifyPAN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[VerifyPANRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.VerifyPAN(ctx, req.PANNumber)
	if err != nil {
		h.logger.ErrorContext(ctx, "pan verification failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}
