package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ExpertVagabond/solana-mcp-server/internal/model"
	"github.com/ExpertVagabond/solana-mcp-server/internal/tool"
)

type initializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	Capabilities    capabilities `json:"capabilities"`
	ServerInfo      serverInfo   `json:"serverInfo"`
}

type capabilities struct {
	Tools toolsCapability `json:"tools"`
}

type toolsCapability struct{}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type toolDescriptor struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	InputSchema tool.InputSchema `json:"inputSchema"`
}

type listToolsResult struct {
	Tools []toolDescriptor `json:"tools"`
}

type callParams struct {
	Name      string    `json:"name"`
	Arguments tool.Args `json:"arguments"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// callResult is the invocation envelope. Every outcome, success or failure,
// is a single text block; IsError distinguishes the two.
type callResult struct {
	Content []contentBlock `json:"content"`
	IsError bool           `json:"isError"`
}

func (s *Server) dispatch(ctx context.Context, method string, rawParams json.RawMessage) (any, *rpcError) {
	switch method {
	case "initialize":
		return initializeResult{
			ProtocolVersion: protocolVersion,
			Capabilities:    capabilities{},
			ServerInfo:      serverInfo{Name: s.name, Version: s.version},
		}, nil

	case "notifications/initialized", "notifications/cancelled":
		return nil, nil

	case "ping":
		return struct{}{}, nil

	case "tools/list":
		return s.listTools(), nil

	case "tools/call":
		return s.callTool(ctx, rawParams)

	default:
		return nil, &rpcError{Code: codeMethodNotFound, Message: fmt.Sprintf("method not found: %s", method)}
	}
}

func (s *Server) listTools() listToolsResult {
	tools := s.registry.List()
	out := listToolsResult{Tools: make([]toolDescriptor, 0, len(tools))}
	for _, t := range tools {
		out.Tools = append(out.Tools, toolDescriptor{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.Schema,
		})
	}
	return out
}

func (s *Server) callTool(ctx context.Context, rawParams json.RawMessage) (any, *rpcError) {
	var params callParams
	if err := json.Unmarshal(rawParams, &params); err != nil {
		return nil, &rpcError{Code: codeInvalidParams, Message: "invalid params"}
	}
	if params.Name == "" {
		return nil, &rpcError{Code: codeInvalidParams, Message: "missing tool name"}
	}
	if params.Arguments == nil {
		params.Arguments = tool.Args{}
	}

	t, ok := s.registry.Get(params.Name)
	if !ok {
		// Unknown tool is a handled outcome, not a protocol error.
		return errorEnvelope(model.InvalidArgumentf("unknown tool %q", params.Name)), nil
	}
	if err := t.ValidateArgs(params.Arguments); err != nil {
		return errorEnvelope(err), nil
	}

	result, err := t.Handler(ctx, s.session, params.Arguments)
	if err != nil {
		return errorEnvelope(err), nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, &rpcError{Code: codeInternalError, Message: "failed to encode result"}
	}
	return callResult{
		Content: []contentBlock{{Type: "text", Text: string(payload)}},
		IsError: false,
	}, nil
}

// errorEnvelope renders a handler failure as an error-flagged text result.
// Typed faults carry their kind and hint alongside the message.
func errorEnvelope(err error) callResult {
	text := "Error: " + err.Error()
	if kind := model.KindOf(err); kind != "" {
		detail := map[string]string{"kind": string(kind)}
		if hint := model.HintOf(err); hint != "" {
			detail["hint"] = hint
		}
		if extra, mErr := json.Marshal(detail); mErr == nil {
			text += "\n" + string(extra)
		}
	}
	return callResult{
		Content: []contentBlock{{Type: "text", Text: text}},
		IsError: true,
	}
}
