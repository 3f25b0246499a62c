// Package server implements the line-oriented JSON-RPC 2.0 front-end over
// stdio. Each request is one line on stdin, each response one line on stdout;
// notifications get no reply. Logging goes to stderr only.
package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/ExpertVagabond/solana-mcp-server/internal/tool"
)

const protocolVersion = "2024-11-05"

const maxLineBytes = 1 << 20 // 1 MiB

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

// Server wires a tool registry and a session to a stdio transport.
type Server struct {
	session  *tool.Session
	registry *tool.Registry
	log      *zap.Logger

	name    string
	version string
}

func New(session *tool.Session, registry *tool.Registry, name, version string) *Server {
	return &Server{
		session:  session,
		registry: registry,
		log:      session.Log,
		name:     name,
		version:  version,
	}
}

// Serve reads requests from r until EOF or ctx cancellation and writes
// responses to w. Requests are handled sequentially in arrival order. An
// oversized request line is answered with an error response and the session
// continues; only transport-level failures end the loop.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	in := bufio.NewReaderSize(r, 64*1024)
	out := bufio.NewWriter(w)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, tooLong, err := readLine(in)
		if tooLong {
			s.log.Warn("request line too long")
			resp := rpcResponse{
				JSONRPC: "2.0",
				ID:      nullID,
				Error:   &rpcError{Code: codeInvalidRequest, Message: "request too large"},
			}
			if werr := writeResponse(out, resp); werr != nil {
				return fmt.Errorf("write response: %w", werr)
			}
			if err != nil {
				return fmt.Errorf("read request: %w", err)
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return ctx.Err()
		}
		if err != nil {
			return fmt.Errorf("read request: %w", err)
		}
		if len(line) == 0 {
			continue
		}

		resp, reply := s.handleLine(ctx, line)
		if !reply {
			continue
		}
		if err := writeResponse(out, resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
}

// readLine reads one newline-terminated line, enforcing maxLineBytes. An
// overlong line is consumed to its end and reported via tooLong so the
// caller can answer it without losing the rest of the stream. io.EOF is only
// returned once the input is exhausted with no pending content.
func readLine(r *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		chunk, rerr := r.ReadSlice('\n')
		line = append(line, chunk...)

		if len(line) > maxLineBytes {
			if errors.Is(rerr, bufio.ErrBufferFull) {
				rerr = discardLine(r)
			}
			if errors.Is(rerr, io.EOF) {
				rerr = nil
			}
			return nil, true, rerr
		}

		switch {
		case rerr == nil:
			return bytes.TrimRight(line, "\r\n"), false, nil
		case errors.Is(rerr, bufio.ErrBufferFull):
			continue
		case errors.Is(rerr, io.EOF):
			if len(line) == 0 {
				return nil, false, io.EOF
			}
			return bytes.TrimRight(line, "\r\n"), false, nil
		default:
			return nil, false, rerr
		}
	}
}

// discardLine consumes input up to and including the next newline.
func discardLine(r *bufio.Reader) error {
	for {
		_, err := r.ReadSlice('\n')
		switch {
		case err == nil, errors.Is(err, io.EOF):
			return err
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		default:
			return err
		}
	}
}

// nullID is the id of error responses for requests whose id could not be
// read, as the protocol requires.
var nullID = json.RawMessage("null")

func idOrNull(id json.RawMessage) json.RawMessage {
	if len(id) == 0 {
		return nullID
	}
	return id
}

// handleLine parses and dispatches one request line. reply is false for
// notifications, which must not produce output.
func (s *Server) handleLine(ctx context.Context, line []byte) (rpcResponse, bool) {
	var req rpcRequest
	if err := json.Unmarshal(line, &req); err != nil {
		return rpcResponse{
			JSONRPC: "2.0",
			ID:      nullID,
			Error:   &rpcError{Code: codeParseError, Message: "parse error"},
		}, true
	}
	if req.JSONRPC != "2.0" || req.Method == "" {
		return rpcResponse{
			JSONRPC: "2.0",
			ID:      idOrNull(req.ID),
			Error:   &rpcError{Code: codeInvalidRequest, Message: "invalid request"},
		}, true
	}

	notification := len(req.ID) == 0
	started := time.Now()
	s.log.Info("rpc request", zap.String("method", req.Method))

	result, rpcErr := s.dispatch(ctx, req.Method, req.Params)
	if rpcErr != nil {
		s.log.Warn("rpc failed",
			zap.String("method", req.Method),
			zap.Int("code", rpcErr.Code),
			zap.Duration("latency", time.Since(started)))
	} else {
		s.log.Info("rpc response",
			zap.String("method", req.Method),
			zap.Duration("latency", time.Since(started)))
	}

	if notification {
		return rpcResponse{}, false
	}
	// A notification-shaped method invoked with an id still needs a result
	// member; a response with neither result nor error is malformed.
	if rpcErr == nil && result == nil {
		result = struct{}{}
	}
	return rpcResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
		Error:   rpcErr,
	}, true
}

func writeResponse(out *bufio.Writer, resp rpcResponse) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	if _, err := out.Write(payload); err != nil {
		return err
	}
	if err := out.WriteByte('\n'); err != nil {
		return err
	}
	return out.Flush()
}
