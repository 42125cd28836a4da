package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Config holds user-configurable defaults. Command-line flags override it.
type Config struct {
	IntervalMS int      `json:"interval_ms"`
	Command    string   `json:"command"`
	Args       []string `json:"args"`
	Fallback   bool     `json:"fallback"`
}

// Default returns a config with sensible defaults: the stock `sensors`
// command, refreshed twice a second, with the gopsutil fallback enabled.
func Default() Config {
	return Config{
		IntervalMS: 500,
		Command:    "sensors",
		Fallback:   true,
	}
}

// Path returns ~/.config/sensory/config.json (or XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "sensory", "config.json")
}

// Load loads config from disk; returns defaults on error.
func Load() Config {
	cfg := Default()
	p := Path()
	if p == "" {
		return cfg
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("sensory: warning: config parse error: %v", err)
	}
	if cfg.IntervalMS <= 0 {
		cfg.IntervalMS = Default().IntervalMS
	}
	if cfg.Command == "" {
		cfg.Command = Default().Command
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
