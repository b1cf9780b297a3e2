package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"loangate/internal/report"
	dErrors "loangate/pkg/domain-errors"
	"loangate/pkg/platform/httputil"
	"loangate/pkg/requestcontext"
)

// ParseRequest is the wire envelope for report normalization.
type ParseRequest struct {
	Report *report.Raw `json:"report"`
}

func (r *ParseRequest) Prepare() error {
	if r.Report == nil {
		return dErrors.New(dErrors.CodeBadRequest, "report field is required")
	}
	return nil
}

// Handler wires the report normalization endpoint.
type Handler struct {
	logger *slog.Logger
}

// New constructs a report handler.
func New(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Register mounts report endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/parse-gst-report", h.HandleParse)
}

// HandleParse handles POST /api/parse-gst-report requests.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ParseRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	normalized := report.Normalize(*req.Report, requestcontext.Now(ctx))
	httputil.WriteJSON(w, http.StatusOK, normalized)
}
