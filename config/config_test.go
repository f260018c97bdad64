package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"control char symbol", func(c *Config) { c.Theme.Symbols.BlackStone = '\t' }, false},
		{"C1 destination symbol", func(c *Config) { c.Theme.Symbols.Destination = 130 }, false},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"debug level", func(c *Config) { c.Log.Level = "debug" }, true},
		{"empty level", func(c *Config) { c.Log.Level = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid {
				var invalid *InvalidConfig
				if !errors.As(err, &invalid) {
					t.Errorf("got %v, want *InvalidConfig", err)
				}
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig
	cfg.Theme.Colors.MarginColor = 52
	cfg.Theme.Symbols.BlackStone = 'x'
	cfg.Log = LogConfig{File: "/tmp/towerkrieg.log", Level: "debug"}
	if err := cfg.SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if *got != cfg {
		t.Errorf("loaded %+v, want %+v", *got, cfg)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"log": {"level": "warn"}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.Log.Level != "warn" {
		t.Errorf("level = %q, want warn", got.Log.Level)
	}
	if got.Theme != DefaultTheme {
		t.Error("missing keys should keep their defaults")
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"broken.json":    `{"theme": `,
		"badlevel.json":  `{"log": {"level": "chatty"}}`,
		"badsymbol.json": `{"theme": {"symbols": {"black": 7}}}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			var invalid *InvalidConfig
			if _, err := LoadFile(path); !errors.As(err, &invalid) {
				t.Errorf("got %v, want *InvalidConfig", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	got, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if *got != DefaultConfig {
		t.Error("missing file should yield the defaults")
	}
}
