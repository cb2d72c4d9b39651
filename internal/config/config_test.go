package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadGameServerMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadGameServer(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadGameServer() error = %v, want defaults for a missing file", err)
	}

	want := DefaultGameServer()
	if cfg != want {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadGameServerOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	data := `
[server]
SERVER_IP = "10.0.0.1"
SERVER_PORT = 9999
MAX_PLAYER = 4

[simulation]
tick_rate = 60
vision_interval_ms = 50
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGameServer(path)
	if err != nil {
		t.Fatalf("LoadGameServer() error = %v", err)
	}

	if cfg.Server.IP != "10.0.0.1" || cfg.Server.Port != 9999 || cfg.Server.MaxPlayer != 4 {
		t.Errorf("server = %+v, want overridden values", cfg.Server)
	}
	// Unset keys keep their defaults.
	if cfg.Server.Map != "castle_siege" {
		t.Errorf("Map = %q, want default castle_siege", cfg.Server.Map)
	}
	if cfg.Simulation.VisionMaxAge != 0.2 {
		t.Errorf("VisionMaxAge = %v, want default 0.2", cfg.Simulation.VisionMaxAge)
	}

	if got := cfg.TickStep(); got != time.Second/60 {
		t.Errorf("TickStep() = %v, want %v", got, time.Second/60)
	}
	if got := cfg.Simulation.VisionInterval(); got != 50*time.Millisecond {
		t.Errorf("VisionInterval() = %v, want 50ms", got)
	}
}

func TestLoadGameServerMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte("[server\nbroken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadGameServer(path); err == nil {
		t.Error("LoadGameServer() on malformed TOML should fail")
	}
}
