package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"loangate/internal/lender"
	"loangate/pkg/platform/httputil"
	"loangate/pkg/requestcontext"
)

// GetLendersRequest is the wire shape for a lender lookup. Filters are
// optional; an absent object matches every active lender.
type GetLendersRequest struct {
	Filters *lender.Filters `json:"filters"`
}

// GetLendersResponse wraps the matched lenders.
type GetLendersResponse struct {
	Lenders []lender.Lender `json:"lenders"`
}

// Handler wires the lender endpoint to the lender service.
type Handler struct {
	service *lender.Service
	logger  *slog.Logger
}

// New constructs a lender handler.
func New(service *lender.Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts lender endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/get-lenders", h.HandleGetLenders)
}

// HandleGetLenders handles POST /api/get-lenders requests.
func (h *Handler) HandleGetLenders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[GetLendersRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	filters := lender.Filters{}
	if req.Filters != nil {
		filters = *req.Filters
	}

	lenders, err := h.service.Match(ctx, filters)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, GetLendersResponse{Lenders: lenders})
}
