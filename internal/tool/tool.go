// Package tool defines the catalog of invokable operations and their
// handlers. Each tool declares a name, a description and a structural
// argument schema; the dispatcher validates arguments against the schema
// before the handler runs.
package tool

import (
	"context"
	"errors"
	"strings"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/ExpertVagabond/solana-mcp-server/internal/client"
	"github.com/ExpertVagabond/solana-mcp-server/internal/config"
	"github.com/ExpertVagabond/solana-mcp-server/internal/model"
	"github.com/ExpertVagabond/solana-mcp-server/internal/network"
	"github.com/ExpertVagabond/solana-mcp-server/internal/timeout"
	"github.com/ExpertVagabond/solana-mcp-server/internal/wallet"
)

// Session carries all mutable server state. It is constructed once at
// startup and passed to every handler; there are no package-level statics,
// so multiple independent sessions can coexist in one process.
type Session struct {
	Wallets  *wallet.Store
	Networks *network.Manager
	Cfg      *config.Config
	Log      *zap.Logger
}

// Args is the named-argument bag of one invocation, already validated
// against the tool's schema by the time a handler sees it.
type Args map[string]any

func (a Args) String(key string) string {
	s, _ := a[key].(string)
	return s
}

func (a Args) Number(key string) float64 {
	n, _ := a[key].(float64)
	return n
}

func (a Args) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Property describes one named argument.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// InputSchema is the structural schema of a tool's argument bag.
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// HandlerFunc executes one operation and returns its result payload.
type HandlerFunc func(ctx context.Context, s *Session, args Args) (any, error)

// Tool is one registered operation.
type Tool struct {
	Name        string
	Description string
	Schema      InputSchema
	Handler     HandlerFunc
}

// ValidateArgs checks args against the tool's schema: required arguments
// present, no unknown names, primitive types matching.
func (t *Tool) ValidateArgs(args Args) error {
	for _, req := range t.Schema.Required {
		if !args.Has(req) {
			return model.InvalidArgumentf("%s: missing required argument %q", t.Name, req)
		}
	}
	for name, value := range args {
		prop, ok := t.Schema.Properties[name]
		if !ok {
			return model.InvalidArgumentf("%s: unknown argument %q", t.Name, name)
		}
		switch prop.Type {
		case "string":
			if _, ok := value.(string); !ok {
				return model.InvalidArgumentf("%s: argument %q must be a string", t.Name, name)
			}
		case "number":
			if _, ok := value.(float64); !ok {
				return model.InvalidArgumentf("%s: argument %q must be a number", t.Name, name)
			}
		case "boolean":
			if _, ok := value.(bool); !ok {
				return model.InvalidArgumentf("%s: argument %q must be a boolean", t.Name, name)
			}
		}
	}
	return nil
}

// Registry is the fixed catalog of tools, built once at startup.
type Registry struct {
	order  []*Tool
	byName map[string]*Tool
}

func NewRegistry(tools ...*Tool) *Registry {
	r := &Registry{byName: make(map[string]*Tool, len(tools))}
	for _, t := range tools {
		r.order = append(r.order, t)
		r.byName[t.Name] = t
	}
	return r
}

// Get looks up a tool by name.
func (r *Registry) Get(name string) (*Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// List returns the tools in registration order.
func (r *Registry) List() []*Tool {
	return r.order
}

// ledgerCall runs one ledger operation against the current connection under
// the request deadline, converting untyped failures to network rejections.
func ledgerCall[T any](ctx context.Context, s *Session, op string, fn func(ctx context.Context, led client.Ledger) (T, error)) (T, error) {
	led := s.Networks.Client()
	return timeout.Run(ctx, s.Cfg.RequestTimeout, op, func(ctx context.Context) (T, error) {
		v, err := fn(ctx, led)
		if err != nil {
			return v, asFault(op, err)
		}
		return v, nil
	})
}

// asFault passes typed faults through untouched and wraps everything else as
// an underlying-network rejection.
func asFault(op string, err error) error {
	var f *model.Fault
	if errors.As(err, &f) {
		return f
	}
	return model.NetworkRejection(op, err)
}

// resolveOwner turns a wallet name or a base58 address into a public key.
// Wallet names win: a stored identity shadows an identically spelled address.
func resolveOwner(s *Session, field, value string) (solana.PublicKey, error) {
	if id, err := s.Wallets.Get(value); err == nil {
		return id.Address(), nil
	}
	return parseAddress(field, value)
}

func parseAddress(field, value string) (solana.PublicKey, error) {
	pk, err := solana.PublicKeyFromBase58(strings.TrimSpace(value))
	if err != nil {
		return solana.PublicKey{}, model.InvalidAddress(field, err)
	}
	return pk, nil
}
