package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the server. One RPC URL
// override per network identifier; absence means the hardcoded default.
type Config struct {
	Network string `envconfig:"SOLANA_NETWORK" default:"devnet"`

	MainnetRPCURL  string `envconfig:"SOLANA_MAINNET_RPC_URL" default:"https://api.mainnet-beta.solana.com"`
	DevnetRPCURL   string `envconfig:"SOLANA_DEVNET_RPC_URL" default:"https://api.devnet.solana.com"`
	TestnetRPCURL  string `envconfig:"SOLANA_TESTNET_RPC_URL" default:"https://api.testnet.solana.com"`
	LocalnetRPCURL string `envconfig:"SOLANA_LOCALNET_RPC_URL" default:"http://127.0.0.1:8899"`
	CustomRPCURL   string `envconfig:"SOLANA_CUSTOM_RPC_URL"`

	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
	HealthTimeout  time.Duration `envconfig:"HEALTH_TIMEOUT" default:"5s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from environment variables. The returned value is
// passed explicitly to everything that needs it; there is no package-level
// instance.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return cfg, nil
}
