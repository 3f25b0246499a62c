package model

import (
	"errors"
	"fmt"
	"time"
)

// FaultKind classifies an operation failure. The set is closed: handlers and
// stores only ever return one of these kinds, and the dispatch layer maps
// them to the wire envelope without string matching.
type FaultKind string

const (
	FaultDuplicateIdentity     FaultKind = "duplicate_identity"
	FaultIdentityNotFound      FaultKind = "identity_not_found"
	FaultInvalidKeyMaterial    FaultKind = "invalid_key_material"
	FaultInvalidAddress        FaultKind = "invalid_address"
	FaultInvalidArgument       FaultKind = "invalid_argument"
	FaultOperationNotPermitted FaultKind = "operation_not_permitted"
	FaultNetworkTimeout        FaultKind = "network_timeout"
	FaultNetworkRejection      FaultKind = "network_rejection"
)

// Fault is the single typed error value used across the server.
type Fault struct {
	Kind    FaultKind
	Message string
	Hint    string // optional remediation hint for the caller
}

func (f *Fault) Error() string {
	return f.Message
}

// IsKind reports whether err is a Fault of the given kind.
func IsKind(err error, kind FaultKind) bool {
	var f *Fault
	return errors.As(err, &f) && f.Kind == kind
}

// KindOf returns the fault kind of err, or empty string for untyped errors.
func KindOf(err error) FaultKind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}

// HintOf returns the remediation hint of err, if any.
func HintOf(err error) string {
	var f *Fault
	if errors.As(err, &f) {
		return f.Hint
	}
	return ""
}

func DuplicateIdentity(name string) *Fault {
	return &Fault{
		Kind:    FaultDuplicateIdentity,
		Message: fmt.Sprintf("wallet %q already exists", name),
		Hint:    "choose a different name; existing wallets are never overwritten",
	}
}

func IdentityNotFound(name string) *Fault {
	return &Fault{
		Kind:    FaultIdentityNotFound,
		Message: fmt.Sprintf("wallet %q not found", name),
		Hint:    "use list_wallets to see known wallet names",
	}
}

func InvalidKeyMaterial(err error) *Fault {
	return &Fault{
		Kind:    FaultInvalidKeyMaterial,
		Message: fmt.Sprintf("invalid private key: %v", err),
		Hint:    "the key must be the base58 encoding of a 64-byte ed25519 keypair",
	}
}

func InvalidAddress(field string, err error) *Fault {
	return &Fault{
		Kind:    FaultInvalidAddress,
		Message: fmt.Sprintf("invalid %s address: %v", field, err),
	}
}

func InvalidArgumentf(format string, args ...any) *Fault {
	return &Fault{
		Kind:    FaultInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}

func OperationNotPermitted(message, hint string) *Fault {
	return &Fault{
		Kind:    FaultOperationNotPermitted,
		Message: message,
		Hint:    hint,
	}
}

func NetworkTimeout(op string, after time.Duration) *Fault {
	return &Fault{
		Kind:    FaultNetworkTimeout,
		Message: fmt.Sprintf("%s timed out after %s", op, after),
		Hint:    "the call was abandoned client-side; it may still complete on the network",
	}
}

// NetworkRejection wraps a failure reported by the ledger. The underlying
// message is passed through as-is; sub-kinds (insufficient funds, expired
// blockhash, ...) are not distinguished here.
func NetworkRejection(op string, err error) *Fault {
	return &Fault{
		Kind:    FaultNetworkRejection,
		Message: fmt.Sprintf("%s failed: %v", op, err),
	}
}
