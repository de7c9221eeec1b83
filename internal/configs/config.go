// Package configs holds the defaults and the on-disk configuration of the demo wallet.
package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/setavenger/ethwallet-demo/internal/logging"
)

// Config is the resolved configuration. Nothing in it is written back while the app runs.
type Config struct {
	DataDir         string
	NetworkName     string
	Endpoints       []string
	ExpectedChainID uint64
	ConnectTimeout  time.Duration
	BalanceTimeout  time.Duration
	DefaultAddress  string
	SendAmount      float64
	AdjustStep      float64
}

// Default returns the built-in configuration, used when no file can be read.
func Default() *Config {
	return &Config{
		NetworkName:     DefaultNetworkName,
		Endpoints:       append([]string(nil), DefaultEndpoints...),
		ExpectedChainID: DefaultChainID,
		ConnectTimeout:  DefaultConnectTimeout,
		BalanceTimeout:  DefaultBalanceTimeout,
		DefaultAddress:  DefaultAddress,
		SendAmount:      DefaultSendAmount,
		AdjustStep:      DefaultAdjustStep,
	}
}

// setDefaultConfig sets default configuration values
func setDefaultConfig(config *viper.Viper) {
	config.SetDefault("network_name", DefaultNetworkName)
	config.SetDefault("endpoints", DefaultEndpoints)
	config.SetDefault("expected_chain_id", DefaultChainID)
	config.SetDefault("connect_timeout", DefaultConnectTimeout.String())
	config.SetDefault("balance_timeout", DefaultBalanceTimeout.String())
	config.SetDefault("default_address", DefaultAddress)
	config.SetDefault("default_send_amount", DefaultSendAmount)
	config.SetDefault("adjust_step", DefaultAdjustStep)
}

// ConfigPath is where Load reads and writes the config file for dataDir.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, configName+"."+configType)
}

// Load reads <dataDir>/ethwallet.toml, creating it with defaults when missing.
// An empty dataDir falls back to DefaultDataDir.
func Load(dataDir string) (*Config, error) {
	if dataDir == "" {
		dataDir = DefaultDataDir()
	} else {
		dataDir = ResolvePath(dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	config := viper.New()
	config.SetConfigName(configName)
	config.SetConfigType(configType)
	config.AddConfigPath(dataDir)

	setDefaultConfig(config)

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := config.WriteConfigAs(ConfigPath(dataDir)); err != nil {
			logging.L.Err(err).Msg("error writing default config")
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
		logging.L.Info().Str("path", ConfigPath(dataDir)).Msg("default config file created")
	} else {
		logging.L.Info().Str("path", config.ConfigFileUsed()).Msg("existing config loaded")
	}

	cfg := fromViper(config)
	cfg.DataDir = dataDir
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(config *viper.Viper) *Config {
	return &Config{
		NetworkName:     config.GetString("network_name"),
		Endpoints:       config.GetStringSlice("endpoints"),
		ExpectedChainID: config.GetUint64("expected_chain_id"),
		ConnectTimeout:  config.GetDuration("connect_timeout"),
		BalanceTimeout:  config.GetDuration("balance_timeout"),
		DefaultAddress:  config.GetString("default_address"),
		SendAmount:      config.GetFloat64("default_send_amount"),
		AdjustStep:      config.GetFloat64("adjust_step"),
	}
}

// Validate rejects configurations the UI cannot work with.
func (c *Config) Validate() error {
	if len(c.Endpoints) == 0 {
		return errors.New("config: endpoints must not be empty")
	}
	for i, ep := range c.Endpoints {
		if strings.TrimSpace(ep) == "" {
			return fmt.Errorf("config: endpoint %d is empty", i)
		}
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("config: connect_timeout must be positive, got %s", c.ConnectTimeout)
	}
	if c.BalanceTimeout <= 0 {
		return fmt.Errorf("config: balance_timeout must be positive, got %s", c.BalanceTimeout)
	}
	return nil
}

// ResolvePath expands a leading ~ and makes the path absolute.
func ResolvePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
