// Package network maps network identifiers to RPC endpoints and owns the
// single live connection to the currently selected network.
package network

import (
	"strings"

	"github.com/ExpertVagabond/solana-mcp-server/internal/config"
)

// ID identifies one of the known ledger networks.
type ID string

const (
	Mainnet  ID = "mainnet-beta"
	Devnet   ID = "devnet"
	Testnet  ID = "testnet"
	Localnet ID = "localnet"
	Custom   ID = "custom"
)

// DefaultID is the network unknown identifiers resolve to. Switching to an
// unrecognized name succeeds against this network instead of failing; the
// normalized identifier in the response is how callers detect the coercion.
const DefaultID = Devnet

// Normalize maps a caller-supplied identifier to a known network ID.
func Normalize(raw string) ID {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "mainnet-beta", "mainnet":
		return Mainnet
	case "devnet":
		return Devnet
	case "testnet":
		return Testnet
	case "localnet", "localhost":
		return Localnet
	case "custom":
		return Custom
	default:
		return DefaultID
	}
}

// Endpoint resolves the RPC URL for id: configured override first, hardcoded
// default otherwise. The custom slot has no default and resolves to empty
// when unconfigured.
func Endpoint(cfg *config.Config, id ID) string {
	switch id {
	case Mainnet:
		return cfg.MainnetRPCURL
	case Testnet:
		return cfg.TestnetRPCURL
	case Localnet:
		return cfg.LocalnetRPCURL
	case Custom:
		return cfg.CustomRPCURL
	default:
		return cfg.DevnetRPCURL
	}
}

// Cluster returns the explorer-link cluster qualifier for id.
func Cluster(cfg *config.Config, id ID) string {
	switch id {
	case Mainnet:
		return ""
	case Devnet, Testnet:
		return string(id)
	default:
		return Endpoint(cfg, id)
	}
}
