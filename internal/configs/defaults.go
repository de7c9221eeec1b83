package configs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/setavenger/ethwallet-demo/internal/logging"
)

// DefaultDataDir returns the default data dir "~/.ethwallet-demo/"
// if homedir is not found falls back to current directory "."
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logging.L.Err(err).Msg("error getting home directory")
		logging.L.Info().Msg("falling back to current directory")
		homeDir = "."
	}
	dataDir := filepath.Join(homeDir, ".ethwallet-demo")
	logging.L.Trace().Str("data_dir", dataDir).Msg("data directory")
	return dataDir
}

const (
	DefaultNetworkName    = "Sepolia"
	DefaultChainID        = 11155111
	DefaultAddress        = "0x742d35Cc6634C0532925a3b8D7c9fa368F067E6b"
	DefaultSendAmount     = 0.01
	DefaultAdjustStep     = 0.1
	DefaultConnectTimeout = 10 * time.Second
	DefaultBalanceTimeout = 10 * time.Second
	configName            = "ethwallet"
	configType            = "toml"
)

// DefaultEndpoints are public Sepolia JSON-RPC endpoints, tried in order.
var DefaultEndpoints = []string{
	"https://rpc.sepolia.org",
	"https://rpc2.sepolia.org",
	"https://eth-sepolia.g.alchemy.com/v2/demo",
	"https://11155111.rpc.thirdweb.com",
}
