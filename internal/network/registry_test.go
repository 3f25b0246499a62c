package network

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ExpertVagabond/solana-mcp-server/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Network:        "devnet",
		MainnetRPCURL:  "https://api.mainnet-beta.solana.com",
		DevnetRPCURL:   "https://api.devnet.solana.com",
		TestnetRPCURL:  "https://api.testnet.solana.com",
		LocalnetRPCURL: "http://127.0.0.1:8899",
	}
}

func TestNormalize(t *testing.T) {
	require.Equal(t, Mainnet, Normalize("mainnet-beta"))
	require.Equal(t, Mainnet, Normalize("mainnet"))
	require.Equal(t, Mainnet, Normalize(" MAINNET "))
	require.Equal(t, Devnet, Normalize("devnet"))
	require.Equal(t, Testnet, Normalize("testnet"))
	require.Equal(t, Localnet, Normalize("localnet"))
	require.Equal(t, Localnet, Normalize("localhost"))
	require.Equal(t, Custom, Normalize("custom"))
}

func TestNormalizeUnknownFallsBack(t *testing.T) {
	require.Equal(t, DefaultID, Normalize("betanet"))
	require.Equal(t, DefaultID, Normalize(""))
}

func TestEndpointOverride(t *testing.T) {
	cfg := testConfig()
	cfg.DevnetRPCURL = "https://rpc.example.com"
	require.Equal(t, "https://rpc.example.com", Endpoint(cfg, Devnet))
	require.Equal(t, "https://api.testnet.solana.com", Endpoint(cfg, Testnet))
}

func TestEndpointCustomUnconfigured(t *testing.T) {
	require.Equal(t, "", Endpoint(testConfig(), Custom))
}

func TestCluster(t *testing.T) {
	cfg := testConfig()
	require.Equal(t, "", Cluster(cfg, Mainnet))
	require.Equal(t, "devnet", Cluster(cfg, Devnet))
	require.Equal(t, "testnet", Cluster(cfg, Testnet))
	require.Equal(t, "http://127.0.0.1:8899", Cluster(cfg, Localnet))
}
