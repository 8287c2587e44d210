// Package config loads the client configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the client configuration.
type Config struct {
	// ServerURL is the websocket address of the game server.
	ServerURL string `yaml:"server_url"`
	// PlayerID is the local player's object identifier.
	PlayerID string `yaml:"player_id"`
	// AnimationSpeed controls unit animations. Zero disables them.
	AnimationSpeed int `yaml:"animation_speed"`
	// JournalPath is the SQLite file recording message traffic.
	// ":memory:" keeps the journal for the lifetime of the process.
	JournalPath string `yaml:"journal_path"`
	// DebugAddr is the listen address of the HTTP debug server. Empty
	// disables it.
	DebugAddr string `yaml:"debug_addr"`
	// LogLevel is one of error, warn, info, debug, trace.
	LogLevel string `yaml:"log_level"`
}

func defaults() Config {
	return Config{
		ServerURL:      "ws://localhost:8888",
		AnimationSpeed: 3,
		JournalPath:    ":memory:",
		LogLevel:       "info",
	}
}

// Load reads the configuration at path, filling unset fields with
// defaults.
func Load(path string) (Config, error) {
	cfg := defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %v", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %v", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server_url must not be empty")
	}
	if c.PlayerID == "" {
		return fmt.Errorf("player_id must not be empty")
	}
	if c.JournalPath == "" {
		return fmt.Errorf("journal_path must not be empty")
	}
	return nil
}
