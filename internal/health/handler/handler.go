package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"loangate/internal/health"
	"loangate/pkg/platform/httputil"
)

// Handler exposes the health check endpoint.
type Handler struct {
	service *health.Service
}

// New constructs a health handler.
func New(service *health.Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the health endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.HandleHealth)
}

// HandleHealth handles GET /health requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.Check(r.Context()))
}
