package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ClientConfig is the configuration of the CLI client.
type ClientConfig struct {
	// Adapter holds the server URL, timeout and session file.
	Adapter Adapter
	// HashKey, when set, signs entry save requests with HashSHA256.
	HashKey string
}

// GetClientConfig builds the client configuration from the environment, the
// JSON file named by CONFIG and defaults. Command flags are applied by the
// CLI on top of the returned value.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().withEnv().withJSON().withDefaults().merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		HashKey: cfg.App.HashKey,
	}
	if clientCfg.Adapter.SessionFile == "" {
		clientCfg.Adapter.SessionFile = defaultSessionFile()
	}

	return clientCfg, clientCfg.validate()
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".diary-session"
	}
	return filepath.Join(home, ".diary-session")
}
