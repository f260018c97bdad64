package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"towerkrieg-local/config"
)

func TestNewDisabled(t *testing.T) {
	log, err := New(config.LogConfig{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Infow("dropped")
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	log, err := New(config.LogConfig{File: path, Level: "info"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debugw("hidden")
	log.Infow("move played", "move", "c3-c4")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1:\n%s", len(lines), data)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "move played" || entry["move"] != "c3-c4" || entry["service"] != Service {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNewBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	if _, err := New(config.LogConfig{File: path, Level: "shout"}); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
