package network

import (
	"strings"
	"sync"

	"github.com/ExpertVagabond/solana-mcp-server/internal/client"
	"github.com/ExpertVagabond/solana-mcp-server/internal/config"
)

// DialFunc builds a ledger client for an endpoint. Injected so tests can
// substitute fakes for the real RPC dialer.
type DialFunc func(endpoint string) client.Ledger

// Manager owns the process's single ledger connection and the currently
// selected network identifier. The connection is built lazily on first use
// and rebuilt unconditionally on every switch, so the live handle always
// matches the current selection.
//
// A switch takes effect only for operations that call Client after Switch
// returns; in-flight operations keep the handle they captured.
type Manager struct {
	mu        sync.Mutex
	cfg       *config.Config
	dial      DialFunc
	id        ID
	endpoint  string
	customURL string
	cli       client.Ledger
}

// NewManager selects the configured initial network without dialing it.
func NewManager(cfg *config.Config, dial DialFunc) *Manager {
	id := Normalize(cfg.Network)
	return &Manager{
		cfg:      cfg,
		dial:     dial,
		id:       id,
		endpoint: Endpoint(cfg, id),
	}
}

// Client returns the live ledger client, dialing the current network on
// first use. Subsequent calls reuse the handle.
func (m *Manager) Client() client.Ledger {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cli == nil {
		m.cli = m.dial(m.endpoint)
	}
	return m.cli
}

// Switch re-resolves the endpoint for raw and rebuilds the connection
// against it. It always succeeds: reachability of the new endpoint is only
// discovered by the next operation that uses the connection. raw may be a
// known identifier or a full URL, which selects the custom slot.
func (m *Manager) Switch(raw string) (ID, string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var id ID
	if strings.Contains(raw, "://") {
		id = Custom
		m.customURL = strings.TrimSpace(raw)
	} else {
		id = Normalize(raw)
	}

	endpoint := m.resolve(id)
	m.id = id
	m.endpoint = endpoint
	m.cli = m.dial(endpoint)
	return id, endpoint
}

// Current returns the selected network and its endpoint without dialing.
func (m *Manager) Current() (ID, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id, m.endpoint
}

// Cluster returns the explorer cluster qualifier for the current network.
func (m *Manager) Cluster() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.id == Custom && m.customURL != "" {
		return m.customURL
	}
	return Cluster(m.cfg, m.id)
}

func (m *Manager) resolve(id ID) string {
	if id == Custom && m.customURL != "" {
		return m.customURL
	}
	return Endpoint(m.cfg, id)
}
