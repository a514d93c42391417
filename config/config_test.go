package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	t.Run("creates default on first run", func(t *testing.T) {
		cfg := LoadOrCreate(path)

		if len(cfg.Endpoints) != 1 {
			t.Fatalf("expected one default endpoint, got %d", len(cfg.Endpoints))
		}
		if !cfg.Endpoints[0].Active {
			t.Error("default endpoint should be active")
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("default config not written: %v", err)
		}
	})

	t.Run("round trips", func(t *testing.T) {
		cfg := LoadOrCreate(path)
		cfg.TronAPIKey = "trongrid-key"
		cfg.Logger = true
		cfg.Endpoints = append(cfg.Endpoints, Endpoint{Name: "Backup", URL: "https://backup"})
		Save(path, cfg)

		got := Load(path)
		if !reflect.DeepEqual(got, cfg) {
			t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
		}
	})

	t.Run("invalid json falls back to default", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(bad, []byte("{nope"), 0644); err != nil {
			t.Fatal(err)
		}
		cfg := LoadOrCreate(bad)
		if len(cfg.Endpoints) != 1 {
			t.Errorf("expected default config, got %+v", cfg)
		}
	})
}

func TestLoadMissingFile(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.json"))
	if len(cfg.Endpoints) != 0 || cfg.TronAPIKey != "" || cfg.Logger {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestActiveEndpoint(t *testing.T) {
	cfg := Config{Endpoints: []Endpoint{
		{Name: "A", URL: "https://a"},
		{Name: "B", URL: "https://b", Active: true},
	}}

	ep, ok := cfg.ActiveEndpoint()
	if !ok || ep.Name != "B" {
		t.Fatalf("expected B active, got %+v ok=%v", ep, ok)
	}

	cfg.Endpoints[1].Active = false
	if _, ok := cfg.ActiveEndpoint(); ok {
		t.Error("expected no active endpoint")
	}
}
