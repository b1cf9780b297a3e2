package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"loangate/internal/intent"
	dErrors "loangate/pkg/domain-errors"
	"loangate/pkg/platform/httputil"
	"loangate/pkg/requestcontext"
)

// ExtractIntentRequest is the wire shape for intent extraction.
type ExtractIntentRequest struct {
	Message string `json:"message"`
}

// Prepare validates the request after decoding.
func (r *ExtractIntentRequest) Prepare() error {
	if r.Message == "" {
		return dErrors.New(dErrors.CodeBadRequest, "message field is required")
	}
	return nil
}

// ExtractIntentResponse carries the structured intent plus extraction
// provenance.
type ExtractIntentResponse struct {
	Extracted        bool           `json:"extracted"`
	Intent           *intent.Intent `json:"intent"`
	OriginalMessage  string         `json:"original_message"`
	ExtractedAt      time.Time      `json:"extracted_at"`
	ExtractionMethod string         `json:"extraction_method"`
}

// ExplainDecisionRequest is the wire shape for decision explanations. Both
// fields are optional; absent objects are treated as empty.
type ExplainDecisionRequest struct {
	Assessment     map[string]any `json:"assessment"`
	Recommendation map[string]any `json:"recommendation"`
}

// Prepare validates the request after decoding.
func (r *ExplainDecisionRequest) Prepare() error {
	return nil
}

// ExplainDecisionResponse carries the rendered explanation.
type ExplainDecisionResponse struct {
	Explanation string    `json:"explanation"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Handler wires the intent endpoints to the intent service.
type Handler struct {
	service *intent.Service
	logger  *slog.Logger
}

// New constructs an intent handler.
func New(service *intent.Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts intent endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/extract-intent", h.HandleExtractIntent)
	r.Post("/api/explain-decision", h.HandleExplainDecision)
}

// HandleExtractIntent handles POST /api/extract-intent requests.
func (h *Handler) HandleExtractIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ExtractIntentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	extracted, err := h.service.ExtractIntent(ctx, req.Message)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ExtractIntentResponse{
		Extracted:        true,
		Intent:           extracted,
		OriginalMessage:  req.Message,
		ExtractedAt:      requestcontext.Now(ctx),
		ExtractionMethod: "claude-api",
	})
}

// HandleExplainDecision handles POST /api/explain-decision requests.
func (h *Handler) HandleExplainDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ExplainDecisionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	explanation, err := h.service.ExplainDecision(ctx, req.Assessment, req.Recommendation)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ExplainDecisionResponse{
		Explanation: explanation,
		GeneratedAt: requestcontext.Now(ctx),
	})
}
