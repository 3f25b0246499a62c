// Package wallet holds the in-process identity store: named keypairs the
// server controls for the lifetime of the process. Nothing here is persisted.
package wallet

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"

	"github.com/ExpertVagabond/solana-mcp-server/internal/model"
)

// ed25519 keypair: 32-byte seed followed by the 32-byte public key.
const privateKeyLen = 64

// Identity is a named keypair.
type Identity struct {
	Name string
	Key  solana.PrivateKey
}

// Address returns the public key of the identity.
func (id Identity) Address() solana.PublicKey {
	return id.Key.PublicKey()
}

// Store maps caller-chosen names to keypairs. Names are unique and bindings
// are immutable: no operation updates or removes an identity.
type Store struct {
	mu     sync.RWMutex
	byName map[string]Identity
}

func NewStore() *Store {
	return &Store{byName: make(map[string]Identity)}
}

// Create generates a fresh keypair and binds it to name. The private key is
// returned (inside the Identity) exactly once, at creation.
func (s *Store) Create(name string) (Identity, error) {
	name, err := normalizeName(name)
	if err != nil {
		return Identity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[name]; exists {
		return Identity{}, model.DuplicateIdentity(name)
	}

	id := Identity{Name: name, Key: solana.NewWallet().PrivateKey}
	s.byName[name] = id
	return id, nil
}

// Import decodes a base58-encoded private key and binds it to name.
func (s *Store) Import(name, encoded string) (Identity, error) {
	name, err := normalizeName(name)
	if err != nil {
		return Identity{}, err
	}

	raw, err := base58.Decode(strings.TrimSpace(encoded))
	if err != nil {
		return Identity{}, model.InvalidKeyMaterial(err)
	}
	if len(raw) != privateKeyLen {
		return Identity{}, model.InvalidKeyMaterial(fmt.Errorf("key is %d bytes, want %d", len(raw), privateKeyLen))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[name]; exists {
		return Identity{}, model.DuplicateIdentity(name)
	}

	id := Identity{Name: name, Key: solana.PrivateKey(raw)}
	s.byName[name] = id
	return id, nil
}

// Get returns the identity bound to name.
func (s *Store) Get(name string) (Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[strings.TrimSpace(name)]
	if !ok {
		return Identity{}, model.IdentityNotFound(name)
	}
	return id, nil
}

// List returns all bound identities. Order is unspecified.
func (s *Store) List() []Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Identity, 0, len(s.byName))
	for _, id := range s.byName {
		out = append(out, id)
	}
	return out
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", model.InvalidArgumentf("wallet name must not be empty")
	}
	return name, nil
}
