package server

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ExpertVagabond/solana-mcp-server/internal/client"
	"github.com/ExpertVagabond/solana-mcp-server/internal/config"
	"github.com/ExpertVagabond/solana-mcp-server/internal/network"
	"github.com/ExpertVagabond/solana-mcp-server/internal/tool"
	"github.com/ExpertVagabond/solana-mcp-server/internal/wallet"
)

func newTestServer() *Server {
	cfg := &config.Config{
		Network:        "devnet",
		DevnetRPCURL:   "https://api.devnet.solana.com",
		RequestTimeout: 5 * time.Second,
		HealthTimeout:  time.Second,
	}
	session := &tool.Session{
		Wallets:  wallet.NewStore(),
		Networks: network.NewManager(cfg, func(string) client.Ledger { return nil }),
		Cfg:      cfg,
		Log:      zap.NewNop(),
	}
	return New(session, tool.DefaultRegistry(), "test-server", "0.0.1")
}

// roundTrip feeds newline-delimited requests through Serve and returns the
// decoded response lines.
func roundTrip(t *testing.T, s *Server, lines ...string) []map[string]any {
	t.Helper()

	var out bytes.Buffer
	err := s.Serve(context.Background(), strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	require.NoError(t, err)

	var responses []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var resp map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &resp))
		responses = append(responses, resp)
	}
	return responses
}

func TestInitializeHandshake(t *testing.T) {
	resps := roundTrip(t, newTestServer(),
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05"}}`)
	require.Len(t, resps, 1)

	result := resps[0]["result"].(map[string]any)
	require.Equal(t, "2024-11-05", result["protocolVersion"])
	info := result["serverInfo"].(map[string]any)
	require.Equal(t, "test-server", info["name"])
	require.Contains(t, result["capabilities"], "tools")
}

func TestNotificationGetsNoReply(t *testing.T) {
	resps := roundTrip(t, newTestServer(),
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`)
	require.Len(t, resps, 1)
	require.Equal(t, float64(2), resps[0]["id"])
}

func TestToolsList(t *testing.T) {
	resps := roundTrip(t, newTestServer(),
		`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	require.Len(t, resps, 1)

	tools := resps[0]["result"].(map[string]any)["tools"].([]any)
	require.NotEmpty(t, tools)
	first := tools[0].(map[string]any)
	require.Contains(t, first, "name")
	require.Contains(t, first, "description")
	require.Contains(t, first, "inputSchema")
}

func TestToolCallSuccessEnvelope(t *testing.T) {
	resps := roundTrip(t, newTestServer(),
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"create_wallet","arguments":{"name":"alice"}}}`)
	require.Len(t, resps, 1)

	result := resps[0]["result"].(map[string]any)
	require.Equal(t, false, result["isError"])

	content := result["content"].([]any)
	require.Len(t, content, 1)
	block := content[0].(map[string]any)
	require.Equal(t, "text", block["type"])

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(block["text"].(string)), &payload))
	require.Equal(t, "alice", payload["name"])
	require.NotEmpty(t, payload["address"])
	require.NotEmpty(t, payload["privateKey"])
}

func TestToolCallFailureEnvelope(t *testing.T) {
	resps := roundTrip(t, newTestServer(),
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"get_wallet_address","arguments":{"name":"nobody"}}}`)
	require.Len(t, resps, 1)

	// Handler failures are results, not protocol errors.
	require.NotContains(t, resps[0], "error")
	result := resps[0]["result"].(map[string]any)
	require.Equal(t, true, result["isError"])

	text := result["content"].([]any)[0].(map[string]any)["text"].(string)
	require.True(t, strings.HasPrefix(text, "Error: "))
	require.Contains(t, text, "identity_not_found")
}

func TestToolCallUnknownTool(t *testing.T) {
	resps := roundTrip(t, newTestServer(),
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"no_such_tool","arguments":{}}}`)
	require.Len(t, resps, 1)

	require.NotContains(t, resps[0], "error")
	result := resps[0]["result"].(map[string]any)
	require.Equal(t, true, result["isError"])
	text := result["content"].([]any)[0].(map[string]any)["text"].(string)
	require.True(t, strings.HasPrefix(text, "Error: "))
}

func TestToolCallSchemaViolation(t *testing.T) {
	resps := roundTrip(t, newTestServer(),
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"transfer_sol","arguments":{"from":"a"}}}`)
	require.Len(t, resps, 1)

	result := resps[0]["result"].(map[string]any)
	require.Equal(t, true, result["isError"])
	text := result["content"].([]any)[0].(map[string]any)["text"].(string)
	require.Contains(t, text, "missing required argument")
}

func TestMethodNotFound(t *testing.T) {
	resps := roundTrip(t, newTestServer(),
		`{"jsonrpc":"2.0","id":1,"method":"resources/list"}`)
	require.Len(t, resps, 1)

	rpcErr := resps[0]["error"].(map[string]any)
	require.Equal(t, float64(codeMethodNotFound), rpcErr["code"])
}

func TestParseError(t *testing.T) {
	resps := roundTrip(t, newTestServer(), `{not json`)
	require.Len(t, resps, 1)

	rpcErr := resps[0]["error"].(map[string]any)
	require.Equal(t, float64(codeParseError), rpcErr["code"])
}

func TestInvalidRequest(t *testing.T) {
	resps := roundTrip(t, newTestServer(),
		`{"jsonrpc":"1.0","id":1,"method":"ping"}`)
	require.Len(t, resps, 1)

	rpcErr := resps[0]["error"].(map[string]any)
	require.Equal(t, float64(codeInvalidRequest), rpcErr["code"])
}

func TestOverlongLineDoesNotKillSession(t *testing.T) {
	big := `{"jsonrpc":"2.0","id":1,"method":"ping","params":{"pad":"` +
		strings.Repeat("x", 2<<20) + `"}}`
	resps := roundTrip(t, newTestServer(), big,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`)
	require.Len(t, resps, 2)

	rpcErr := resps[0]["error"].(map[string]any)
	require.Equal(t, float64(codeInvalidRequest), rpcErr["code"])

	// The request queued behind the oversized one is still served.
	require.Equal(t, float64(2), resps[1]["id"])
	require.Contains(t, resps[1], "result")
}

func TestParseErrorCarriesNullID(t *testing.T) {
	resps := roundTrip(t, newTestServer(), `{not json`)
	require.Len(t, resps, 1)

	id, ok := resps[0]["id"]
	require.True(t, ok)
	require.Nil(t, id)
}

func TestNotificationMethodWithIDGetsResult(t *testing.T) {
	resps := roundTrip(t, newTestServer(),
		`{"jsonrpc":"2.0","id":7,"method":"notifications/initialized"}`)
	require.Len(t, resps, 1)

	require.Equal(t, float64(7), resps[0]["id"])
	require.NotContains(t, resps[0], "error")
	require.Contains(t, resps[0], "result")
}

func TestBlankLinesSkipped(t *testing.T) {
	var out bytes.Buffer
	s := newTestServer()
	err := s.Serve(context.Background(),
		strings.NewReader("\n\n"+`{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n\n"), &out)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(out.String(), "\n"))
}

func TestSequentialSession(t *testing.T) {
	resps := roundTrip(t, newTestServer(),
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"create_wallet","arguments":{"name":"alice"}}}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"create_wallet","arguments":{"name":"alice"}}}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"list_wallets","arguments":{}}}`)
	require.Len(t, resps, 3)

	second := resps[1]["result"].(map[string]any)
	require.Equal(t, true, second["isError"])
	text := second["content"].([]any)[0].(map[string]any)["text"].(string)
	require.Contains(t, text, "duplicate_identity")

	third := resps[2]["result"].(map[string]any)
	require.Equal(t, false, third["isError"])
	var payload map[string]any
	listText := third["content"].([]any)[0].(map[string]any)["text"].(string)
	require.NoError(t, json.Unmarshal([]byte(listText), &payload))
	require.Len(t, payload["wallets"], 1)
}
