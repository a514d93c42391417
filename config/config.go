package config

import (
	"encoding/json"
	"os"
)

// Page identifies a top-level view
type Page int

const (
	PageSend Page = iota
	PageSettings
)

// Config represents the application configuration. Only presets live here;
// submitted transfers and signing secrets are never written to disk.
type Config struct {
	Endpoints  []Endpoint `json:"endpoints"`
	TronAPIKey string     `json:"tron_api_key,omitempty"`
	Logger     bool       `json:"logger"`
}

// Endpoint represents a saved RPC endpoint preset
type Endpoint struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

// ActiveEndpoint returns the active preset, or false if none is marked
func (c Config) ActiveEndpoint() (Endpoint, bool) {
	for _, e := range c.Endpoints {
		if e.Active {
			return e, true
		}
	}
	return Endpoint{}, false
}

// Load reads the config from the specified path
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}

	return cfg
}

// Save writes the config to the specified path
func Save(path string, cfg Config) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0644)
}

// DefaultConfig returns a new configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		Endpoints: []Endpoint{
			{
				Name:   "Public Mainnet",
				URL:    "https://ethereum-rpc.publicnode.com",
				Active: true,
			},
		},
		Logger: false,
	}
}

// LoadOrCreate loads config from path, or creates a default one if not found
func LoadOrCreate(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		// File doesn't exist, create default
		cfg := DefaultConfig()
		Save(path, cfg)
		return cfg
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		// Invalid config, return default
		return DefaultConfig()
	}

	return cfg
}
