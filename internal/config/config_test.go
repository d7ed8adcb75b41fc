package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keypad.yaml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" || cfg.Chain.ShortDepth != 2 || cfg.Chain.LongDepth != 25 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadAppliesDefaultsForOmittedFields(t *testing.T) {
	path := writeConfig(t, "server:\n  addr: \":9090\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Chain.MaxDepth != 64 {
		t.Fatalf("max_depth = %d, want default 64", cfg.Chain.MaxDepth)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("level = %q, want default info", cfg.Logging.Level)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `chain:
  short_depth: 3
  long_depth: 12
  max_depth: 30
logging:
  level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Chain.ShortDepth != 3 || cfg.Chain.LongDepth != 12 || cfg.Chain.MaxDepth != 30 {
		t.Fatalf("chain config not honored: %+v", cfg.Chain)
	}
	lvl, err := ParseLevel(cfg.Logging.Level)
	if err != nil || lvl != slog.LevelDebug {
		t.Fatalf("level = %v, err = %v", lvl, err)
	}
}

func TestLoadRejectsBadLevel(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: loud\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected Load to fail for unknown logging.level")
	}
}

func TestLoadRejectsLongDepthAboveMax(t *testing.T) {
	path := writeConfig(t, "chain:\n  long_depth: 99\n  max_depth: 30\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected Load to fail when long_depth exceeds max_depth")
	}
}
