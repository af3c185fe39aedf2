package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonwraymond/toolfoundation/model"
)

// MCPRequest represents an incoming MCP JSON-RPC request.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an MCP JSON-RPC response.
type MCPResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *MCPError `json:"error,omitempty"`
}

// MCPError is a JSON-RPC error object.
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// HandleRequest processes an MCP request and returns a response.
func (r *Registry) HandleRequest(ctx context.Context, req MCPRequest) MCPResponse {
	if req.JSONRPC != "" && req.JSONRPC != "2.0" {
		return errorResponse(req.ID, ErrCodeInvalidRequest,
			fmt.Sprintf("%v: unsupported jsonrpc version %q", ErrInvalidRequest, req.JSONRPC))
	}

	switch req.Method {
	case "initialize":
		return r.handleInitialize(ctx, req.ID, req.Params)
	case "tools/list":
		return r.handleToolsList(ctx, req.ID, req.Params)
	case "tools/call":
		return r.handleToolsCall(ctx, req.ID, req.Params)
	default:
		return errorResponse(req.ID, ErrCodeMethodNotFound, fmt.Sprintf("method %s not found", req.Method))
	}
}

func errorResponse(id any, code int, message string) MCPResponse {
	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &MCPError{Code: code, Message: message},
	}
}

func (r *Registry) handleInitialize(ctx context.Context, id any, params json.RawMessage) MCPResponse {
	result := map[string]any{
		"protocolVersion": model.MCPVersion,
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    r.config.ServerInfo.Name,
			"version": r.config.ServerInfo.Version,
		},
	}

	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
}

func (r *Registry) handleToolsList(ctx context.Context, id any, params json.RawMessage) MCPResponse {
	tools, err := r.ListAll(ctx)
	if err != nil {
		return errorResponse(id, ErrCodeInternal, err.Error())
	}

	mcpTools := make([]map[string]any, 0, len(tools))
	for _, tool := range tools {
		mcpTools = append(mcpTools, toMCPTool(tool))
	}

	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  map[string]any{"tools": mcpTools},
	}
}

type toolsCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

func (r *Registry) handleToolsCall(ctx context.Context, id any, params json.RawMessage) MCPResponse {
	var callParams toolsCallParams
	if err := json.Unmarshal(params, &callParams); err != nil {
		return errorResponse(id, ErrCodeInvalidParams, err.Error())
	}
	if callParams.Name == "" {
		return errorResponse(id, ErrCodeInvalidParams, "missing tool name")
	}

	result, err := r.Execute(ctx, callParams.Name, callParams.Arguments)
	if err != nil {
		code := ErrCodeToolExecFailed
		switch {
		case errors.Is(err, ErrToolNotFound):
			code = ErrCodeToolNotFound
		case errors.Is(err, ErrInvalidRequest):
			code = ErrCodeInvalidParams
		case errors.Is(err, ErrHandlerNotFound):
			code = ErrCodeInternal
		}
		return errorResponse(id, code, err.Error())
	}

	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
}

// toMCPTool advertises a tool under its canonical ID so tools/call can
// resolve it unambiguously.
func toMCPTool(tool model.Tool) map[string]any {
	return map[string]any{
		"name":        tool.ToolID(),
		"description": tool.Description,
		"inputSchema": tool.InputSchema,
	}
}
