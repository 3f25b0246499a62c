package network

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ExpertVagabond/solana-mcp-server/internal/client"
)

// dialRecorder counts dials and remembers the endpoints it was handed.
type dialRecorder struct {
	endpoints []string
}

type stubLedger struct {
	client.Ledger
	endpoint string
}

func (s *stubLedger) Endpoint() string { return s.endpoint }

func (d *dialRecorder) dial(endpoint string) client.Ledger {
	d.endpoints = append(d.endpoints, endpoint)
	return &stubLedger{endpoint: endpoint}
}

func TestManagerDialsLazilyAndOnce(t *testing.T) {
	rec := &dialRecorder{}
	m := NewManager(testConfig(), rec.dial)
	require.Empty(t, rec.endpoints)

	c1 := m.Client()
	c2 := m.Client()
	require.Same(t, c1, c2)
	require.Equal(t, []string{"https://api.devnet.solana.com"}, rec.endpoints)
}

func TestManagerSwitchRebuildsConnection(t *testing.T) {
	rec := &dialRecorder{}
	m := NewManager(testConfig(), rec.dial)

	old := m.Client()
	id, endpoint := m.Switch("testnet")
	require.Equal(t, Testnet, id)
	require.Equal(t, "https://api.testnet.solana.com", endpoint)
	require.NotSame(t, old, m.Client())

	id, endpoint = m.Current()
	require.Equal(t, Testnet, id)
	require.Equal(t, "https://api.testnet.solana.com", endpoint)
}

func TestManagerSwitchSameNetworkStillRebuilds(t *testing.T) {
	rec := &dialRecorder{}
	m := NewManager(testConfig(), rec.dial)

	old := m.Client()
	m.Switch("devnet")
	require.NotSame(t, old, m.Client())
}

func TestManagerSwitchToURLSelectsCustomSlot(t *testing.T) {
	rec := &dialRecorder{}
	m := NewManager(testConfig(), rec.dial)

	id, endpoint := m.Switch("http://rpc.internal:8899")
	require.Equal(t, Custom, id)
	require.Equal(t, "http://rpc.internal:8899", endpoint)
	require.Equal(t, "http://rpc.internal:8899", m.Cluster())
}

func TestManagerSwitchUnknownFallsBack(t *testing.T) {
	rec := &dialRecorder{}
	m := NewManager(testConfig(), rec.dial)

	id, endpoint := m.Switch("betanet")
	require.Equal(t, DefaultID, id)
	require.Equal(t, "https://api.devnet.solana.com", endpoint)
}
