// Package httptransport assembles the HTTP surface: middleware chain, service
// info, health, metrics, and every API endpoint. Business logic stays in the
// domain services; handlers only decode, delegate, and encode.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"loangate/internal/platform/middleware"
	"loangate/pkg/platform/httputil"
)

// ServiceName appears in the root service-info payload.
const ServiceName = "Loan Origination Server"

// Registrar mounts a handler's routes on the router. Every module handler
// implements it.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires middleware and all registered handlers into the servable
// root handler. httpMetrics may be nil in tests.
func NewRouter(logger *slog.Logger, httpMetrics *middleware.HTTPMetrics, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(httpMetrics.Middleware)

	r.Get("/", handleServiceInfo)
	r.Handle("/metrics", promhttp.Handler())

	for _, h := range handlers {
		h.Register(r)
	}

	return r
}

// handleServiceInfo handles GET / with a service directory.
func handleServiceInfo(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"service": ServiceName,
		"version": "production-claude-api",
		"status":  "running",
		"endpoints": map[string]string{
			"health":                "/health",
			"extract_intent":        "/api/extract-intent (POST)",
			"explain_decision":      "/api/explain-decision (POST)",
			"verify_gst":            "/api/verify-gst (POST)",
			"verify_pan":            "/api/verify-pan (POST)",
			"parse_gst_report":      "/api/parse-gst-report (POST)",
			"calculate_eligibility": "/api/calculate-eligibility (POST)",
			"get_lenders":           "/api/get-lenders (POST)",
			"assess_business":       "/api/assess-business (POST)",
		},
	})
}
