// Package mcptransport serves the tool-calling protocol over stdio: JSON-RPC
// 2.0 messages, one per line, dispatched to the same domain services the HTTP
// transport uses. Tool failures travel inside tool results; only malformed
// protocol traffic produces JSON-RPC errors.
package mcptransport

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"loangate/pkg/requestcontext"
)

const (
	protocolVersion = "2024-11-05"
	serverVersion   = "production-claude-api"

	// maxLineBytes bounds a single incoming message.
	maxLineBytes = 1 << 20
)

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toolResult is the tools/call payload. Failures set IsError and carry the
// message as text content so the calling model can react to them.
type toolResult struct {
	Content []contentItem `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

type contentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type callParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// Server speaks the stdio tool protocol.
type Server struct {
	tools  *Toolbox
	logger *slog.Logger

	mu  sync.Mutex
	out io.Writer
}

// NewServer constructs a protocol server over the given streams.
func NewServer(tools *Toolbox, logger *slog.Logger, out io.Writer) *Server {
	return &Server{tools: tools, logger: logger, out: out}
}

// Serve reads messages from in until EOF or context cancellation. Each line
// is one JSON-RPC message; notifications get no reply.
func (s *Server) Serve(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		s.handleMessage(ctx, line)
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read protocol stream: %w", err)
	}
	return nil
}

func (s *Server) handleMessage(ctx context.Context, line []byte) {
	var req request
	if err := json.Unmarshal(line, &req); err != nil {
		s.writeError(nil, codeParseError, "parse error")
		return
	}

	// Stamp every call with its own correlation ID, mirroring the HTTP
	// middleware chain.
	ctx = requestcontext.WithRequestID(ctx, uuid.NewString())

	switch req.Method {
	case "initialize":
		s.writeResult(req.ID, map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities":    map[string]any{"tools": map[string]any{}},
			"serverInfo": map[string]any{
				"name":    "Loan Origination Server",
				"version": serverVersion,
			},
		})
	case "notifications/initialized":
		// Notification, no reply.
	case "ping":
		s.writeResult(req.ID, map[string]any{})
	case "tools/list":
		s.writeResult(req.ID, map[string]any{"tools": s.tools.Descriptors()})
	case "tools/call":
		s.handleCall(ctx, req)
	default:
		if req.ID == nil {
			return
		}
		s.writeError(req.ID, codeMethodNotFound, "method not found: "+req.Method)
	}
}

func (s *Server) handleCall(ctx context.Context, req request) {
	var params callParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.Name == "" {
		s.writeError(req.ID, codeInvalidParams, "invalid tools/call params")
		return
	}

	ctx = requestcontext.WithToolName(ctx, params.Name)
	payload, err := s.tools.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		if errors.Is(err, errUnknownTool) {
			s.writeError(req.ID, codeInvalidParams, "unknown tool: "+params.Name)
			return
		}
		if s.logger != nil {
			s.logger.WarnContext(ctx, "tool call failed",
				"request_id", requestcontext.RequestID(ctx),
				"tool", params.Name,
				"error", err,
			)
		}
		s.writeResult(req.ID, toolResult{
			Content: []contentItem{{Type: "text", Text: err.Error()}},
			IsError: true,
		})
		return
	}

	s.writeResult(req.ID, toolResult{
		Content: []contentItem{{Type: "text", Text: string(payload)}},
	})
}

func (s *Server) writeResult(id json.RawMessage, result any) {
	s.write(response{JSONRPC: "2.0", ID: id, Result: result})
}

func (s *Server) writeError(id json.RawMessage, code int, msg string) {
	s.write(response{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: msg}})
}

func (s *Server) write(resp response) {
	s.mu.Lock()
	defer s.mu.Unlock()

	encoded, err := json.Marshal(resp)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("encode protocol response", "error", err)
		}
		return
	}
	encoded = append(encoded, '\n')
	if _, err := s.out.Write(encoded); err != nil && s.logger != nil {
		s.logger.Error("write protocol response", "error", err)
	}
}
