package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"loangate/internal/assessment"
	dErrors "loangate/pkg/domain-errors"
	"loangate/pkg/platform/httputil"
	"loangate/pkg/requestcontext"
)

// AssessBusinessRequest is the wire shape for a composite assessment.
type AssessBusinessRequest struct {
	GSTNumber           string  `json:"gst_number"`
	RequestedAmount     float64 `json:"requested_amount"`
	CollateralAvailable bool    `json:"collateral_available"`
}

// Prepare validates the request after decoding.
func (r *AssessBusinessRequest) Prepare() error {
	if r.GSTNumber == "" {
		return dErrors.New(dErrors.CodeBadRequest, "gst_number field is required")
	}
	return nil
}

// Handler wires the composite assessment endpoint to the assessment service.
type Handler struct {
	service *assessment.Service
	logger  *slog.Logger
}

// New constructs an assessment handler.
func New(service *assessment.Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts assessment endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/assess-business", h.HandleAssessBusiness)
}

// HandleAssessBusiness handles POST /api/assess-business requests.
func (h *Handler) HandleAssessBusiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[AssessBusinessRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Assess(ctx, assessment.Request{
		GSTNumber:           req.GSTNumber,
		RequestedAmount:     req.RequestedAmount,
		CollateralAvailable: req.CollateralAvailable,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}
