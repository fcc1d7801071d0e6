package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Server.Port != 20275 {
		t.Fatalf("default port: got %d", cfg.Server.Port)
	}
	if cfg.Data.DataDir != "data" {
		t.Fatalf("default data dir: got %q", cfg.Data.DataDir)
	}
	if cfg.Business.DefaultHourlyRate != 25 || cfg.Business.DefaultRoundingInterval != 60 {
		t.Fatalf("business defaults: %+v", cfg.Business)
	}
}

func TestConfigTOMLRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Server.Port = 9090
	cfg.Business.DefaultHourlyRate = 80

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	loaded := DefaultConfig()
	if err := toml.Unmarshal(data, loaded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if loaded.Server.Port != 9090 || loaded.Business.DefaultHourlyRate != 80 {
		t.Fatalf("round trip: %+v", loaded)
	}
}

func TestEnsureDataDir(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Data.DataDir = filepath.Join(t.TempDir(), "appdata")

	dir, err := EnsureDataDir(cfg)
	if err != nil {
		t.Fatalf("EnsureDataDir failed: %v", err)
	}
	if dir != cfg.Data.DataDir {
		t.Fatalf("absolute dir must be used as-is: %q", dir)
	}

	for _, sub := range []string{"uploads", "exports", "backups"} {
		if _, err := os.Stat(filepath.Join(dir, sub)); err != nil {
			t.Fatalf("subdir %s: %v", sub, err)
		}
	}
}
