package mcptransport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"loangate/internal/assessment"
	"loangate/internal/eligibility"
	"loangate/internal/health"
	"loangate/internal/intent"
	"loangate/internal/lender"
	"loangate/internal/report"
	"loangate/internal/verification"
	dErrors "loangate/pkg/domain-errors"
	"loangate/pkg/requestcontext"
)

// errUnknownTool reports a tools/call against a name that was never listed.
var errUnknownTool = errors.New("unknown tool")

// Descriptor is one entry in the tools/list reply.
type Descriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// Toolbox maps tool names to the domain services behind them.
type Toolbox struct {
	health      *health.Service
	intents     *intent.Service
	verifier    *verification.Service
	eligibility *eligibility.Service
	lenders     *lender.Service
	assessments *assessment.Service
}

// NewToolbox constructs the tool dispatch table.
func NewToolbox(
	healthSvc *health.Service,
	intents *intent.Service,
	verifier *verification.Service,
	elig *eligibility.Service,
	lenders *lender.Service,
	assessments *assessment.Service,
) *Toolbox {
	return &Toolbox{
		health:      healthSvc,
		intents:     intents,
		verifier:    verifier,
		eligibility: elig,
		lenders:     lenders,
		assessments: assessments,
	}
}

var descriptors = []Descriptor{
	{
		Name:        "health_check",
		Description: "Check server health and dependencies.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{}}`),
	},
	{
		Name:        "extract_intent",
		Description: "Extract structured loan intent (amount, purpose, urgency, collateral) from a free-form customer message.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"message":{"type":"string","description":"Customer message in natural language"}},"required":["message"]}`),
	},
	{
		Name:        "explain_decision",
		Description: "Generate a customer-friendly explanation of a loan assessment and lender recommendation.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"assessment":{"type":"object"},"recommendation":{"type":"object"}}}`),
	},
	{
		Name:        "verify_gst",
		Description: "Verify a GST number against the registry and return the business profile on record.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"gst_number":{"type":"string"}},"required":["gst_number"]}`),
	},
	{
		Name:        "verify_pan",
		Description: "Verify a PAN number against the registry.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"pan_number":{"type":"string"}},"required":["pan_number"]}`),
	},
	{
		Name:        "parse_gst_report",
		Description: "Normalize a raw GST credit report into the fixed business profile schema, translating bureau grades to numeric scores.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"report":{"type":"object"}},"required":["report"]}`),
	},
	{
		Name:        "calculate_eligibility",
		Description: "Run the underwriting decision engine over a business financial profile.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"business_data":{"type":"object"}},"required":["business_data"]}`),
	},
	{
		Name:        "get_lenders",
		Description: "Match lending partners for a loan amount and credit score.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"filters":{"type":"object","properties":{"min_amount":{"type":"number"},"credit_score":{"type":"integer"}}}}}`),
	},
	{
		Name:        "assess_business",
		Description: "Run the full origination pipeline for a GST number: verification, report normalization, eligibility, and lender matching.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"gst_number":{"type":"string"},"requested_amount":{"type":"number"},"collateral_available":{"type":"boolean"}},"required":["gst_number"]}`),
	},
}

// Descriptors lists every tool the server offers.
func (t *Toolbox) Descriptors() []Descriptor {
	return descriptors
}

// Call dispatches one tool invocation. The returned payload is the JSON body
// for the tool result text.
func (t *Toolbox) Call(ctx context.Context, name string, args json.RawMessage) ([]byte, error) {
	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}
	switch name {
	case "health_check":
		return t.callHealthCheck(ctx)
	case "extract_intent":
		return t.callExtractIntent(ctx, args)
	case "explain_decision":
		return t.callExplainDecision(ctx, args)
	case "verify_gst":
		return t.callVerifyGST(ctx, args)
	case "verify_pan":
		return t.callVerifyPAN(ctx, args)
	case "parse_gst_report":
		return t.callParseReport(ctx, args)
	case "calculate_eligibility":
		return t.callCalculateEligibility(ctx, args)
	case "get_lenders":
		return t.callGetLenders(ctx, args)
	case "assess_business":
		return t.callAssessBusiness(ctx, args)
	default:
		return nil, errUnknownTool
	}
}

func (t *Toolbox) callHealthCheck(ctx context.Context) ([]byte, error) {
	return marshalResult(t.health.Check(ctx))
}

func (t *Toolbox) callExtractIntent(ctx context.Context, args json.RawMessage) ([]byte, error) {
	var in struct {
		Message string `json:"message"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.Message == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "message field is required")
	}

	extracted, err := t.intents.ExtractIntent(ctx, in.Message)
	if err != nil {
		return nil, err
	}
	return marshalResult(map[string]any{
		"extracted":         true,
		"intent":            extracted,
		"original_message":  in.Message,
		"extracted_at":      requestcontext.Now(ctx),
		"extraction_method": "claude-api",
	})
}

func (t *Toolbox) callExplainDecision(ctx context.Context, args json.RawMessage) ([]byte, error) {
	var in struct {
		Assessment     map[string]any `json:"assessment"`
		Recommendation map[string]any `json:"recommendation"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	explanation, err := t.intents.ExplainDecision(ctx, in.Assessment, in.Recommendation)
	if err != nil {
		return nil, err
	}
	return marshalResult(map[string]any{
		"explanation":  explanation,
		"generated_at": requestcontext.Now(ctx),
	})
}

func (t *Toolbox) callVerifyGST(ctx context.Context, args json.RawMessage) ([]byte, error) {
	var in struct {
		GSTNumber string `json:"gst_number"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.GSTNumber == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "gst_number field is required")
	}

	result, err := t.verifier.VerifyGST(ctx, in.GSTNumber)
	if err != nil {
		return nil, err
	}
	return marshalResult(result)
}

func (t *Toolbox) callVerifyPAN(ctx context.Context, args json.RawMessage) ([]byte, error) {
	var in struct {
		PANNumber string `json:"pan_number"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.PANNumber == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "pan_number field is required")
	}

	result, err := t.verifier.VerifyPAN(ctx, in.PANNumber)
	if err != nil {
		return nil, err
	}
	return marshalResult(result)
}

func (t *Toolbox) callParseReport(ctx context.Context, args json.RawMessage) ([]byte, error) {
	var in struct {
		Report *report.Raw `json:"report"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.Report == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "report field is required")
	}
	return marshalResult(report.Normalize(*in.Report, requestcontext.Now(ctx)))
}

func (t *Toolbox) callCalculateEligibility(ctx context.Context, args json.RawMessage) ([]byte, error) {
	var in struct {
		BusinessData *eligibility.Input `json:"business_data"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.BusinessData == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "business_data field is required")
	}
	return marshalResult(t.eligibility.Evaluate(ctx, *in.BusinessData))
}

func (t *Toolbox) callGetLenders(ctx context.Context, args json.RawMessage) ([]byte, error) {
	var in struct {
		Filters *lender.Filters `json:"filters"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	filters := lender.Filters{}
	if in.Filters != nil {
		filters = *in.Filters
	}

	matched, err := t.lenders.Match(ctx, filters)
	if err != nil {
		return nil, err
	}
	return marshalResult(map[string]any{"lenders": matched})
}

func (t *Toolbox) callAssessBusiness(ctx context.Context, args json.RawMessage) ([]byte, error) {
	var in struct {
		GSTNumber           string  `json:"gst_number"`
		RequestedAmount     float64 `json:"requested_amount"`
		CollateralAvailable bool    `json:"collateral_available"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	result, err := t.assessments.Assess(ctx, assessment.Request{
		GSTNumber:           in.GSTNumber,
		RequestedAmount:     in.RequestedAmount,
		CollateralAvailable: in.CollateralAvailable,
	})
	if err != nil {
		return nil, err
	}
	return marshalResult(result)
}

func decodeArgs(args json.RawMessage, dst any) error {
	if err := json.Unmarshal(args, dst); err != nil {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid tool arguments")
	}
	return nil
}

func marshalResult(v any) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return payload, nil
}
