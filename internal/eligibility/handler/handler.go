package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"loangate/internal/eligibility"
	dErrors "loangate/pkg/domain-errors"
	"loangate/pkg/platform/httputil"
	"loangate/pkg/requestcontext"
)

// CalculateRequest is the wire envelope for an eligibility calculation.
type CalculateRequest struct {
	BusinessData *eligibility.Input `json:"business_data"`
}

// Prepare enforces the top-level contract; field-level defaults belong to the
// engine input itself.
func (r *CalculateRequest) Prepare() error {
	if r.BusinessData == nil {
		return dErrors.New(dErrors.CodeBadRequest, "business_data field is required")
	}
	return nil
}

// Handler wires the eligibility endpoint to the decision engine.
type Handler struct {
	service *eligibility.Service
	logger  *slog.Logger
}

// New constructs an eligibility handler.
func New(service *eligibility.Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts eligibility endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/calculate-eligibility", h.HandleCalculate)
}

// HandleCalculate handles POST /api/calculate-eligibility requests.
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CalculateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result := h.service.Evaluate(ctx, *req.BusinessData)
	httputil.WriteJSON(w, http.StatusOK, result)
}
