package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.SurrealDBURL != "ws://localhost:8000/rpc" {
		t.Errorf("unexpected default URL: %q", cfg.SurrealDBURL)
	}
	if cfg.SurrealDBNamespace != "staffing" {
		t.Errorf("unexpected default namespace: %q", cfg.SurrealDBNamespace)
	}
	if cfg.QueryTimeout != 30*time.Second {
		t.Errorf("unexpected default query timeout: %v", cfg.QueryTimeout)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("STAFFGRAPH_SURREALDB_URL", "ws://db.internal:9000/rpc")
	t.Setenv("STAFFGRAPH_LOG_LEVEL", "debug")
	t.Setenv("STAFFGRAPH_QUERY_TIMEOUT", "5s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.SurrealDBURL != "ws://db.internal:9000/rpc" {
		t.Errorf("env override not applied: %q", cfg.SurrealDBURL)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.Level())
	}
	if cfg.QueryTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.QueryTimeout)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staffgraph.yaml")
	content := "surrealdb-namespace: acme\nlog-level: WARN\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SurrealDBNamespace != "acme" {
		t.Errorf("config file not applied: %q", cfg.SurrealDBNamespace)
	}
	if cfg.Level() != slog.LevelWarn {
		t.Errorf("expected warn level, got %v", cfg.Level())
	}
}

func TestLevelUnknownDefaultsToInfo(t *testing.T) {
	cfg := Config{LogLevel: "chatty"}
	if cfg.Level() != slog.LevelInfo {
		t.Errorf("unknown level should map to info, got %v", cfg.Level())
	}
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)

	logger.Info("hello", "key", "value")

	if stderr.Len() == 0 {
		t.Error("expected text output on stderr writer")
	}
	if file.Len() == 0 {
		t.Error("expected JSON output on file writer")
	}
}
