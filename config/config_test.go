package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		t.Fatalf("unmarshal embedded default: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("embedded default drifted from Default():\n%+v\n%+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("player:\n  max_health: 5\nlevels:\n  - only.json\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player.MaxHealth != 5 {
		t.Fatalf("max_health = %d, want 5", cfg.Player.MaxHealth)
	}
	if len(cfg.Levels) != 1 || cfg.Levels[0] != "only.json" {
		t.Fatalf("levels = %v", cfg.Levels)
	}
	// untouched sections keep their defaults
	if cfg.Player.JumpSpeed != 11 || cfg.Window.Width != 1280 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("window: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("levels: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		invalid bool
	}{
		{"missing", filepath.Join(dir, "nope.yaml"), false},
		{"malformed", bad, false},
		{"no_levels", invalid, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.invalid && !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero_width", func(c *Config) { c.Window.Width = 0 }},
		{"zero_zoom", func(c *Config) { c.Window.Zoom = 0 }},
		{"no_iterations", func(c *Config) { c.Physics.Iterations = 0 }},
		{"no_health", func(c *Config) { c.Player.MaxHealth = 0 }},
		{"no_characters", func(c *Config) { c.Player.Characters = nil }},
		{"negative_duration", func(c *Config) { c.Player.DashCooldown = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestBlinkInterval(t *testing.T) {
	if got := BlinkInterval(10); got != 6 {
		t.Fatalf("BlinkInterval(10) = %d", got)
	}
	if got := BlinkInterval(20); got != 3 {
		t.Fatalf("BlinkInterval(20) = %d", got)
	}
	if got := BlinkInterval(0); got != 0 {
		t.Fatalf("BlinkInterval(0) = %d", got)
	}
}
