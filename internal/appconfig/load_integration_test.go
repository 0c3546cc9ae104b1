// internal/appconfig/load_integration_test.go
package appconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldCwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldCwd) })
}

func TestLoadDefaultPath(t *testing.T) {
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("mkdir config: %v", err)
	}

	payload := `{
  "profile": "strict",
  "colors": { "zstd": "#000000", "xz": "#8c564b" },
  "chartWidth": 1200
}`
	if err := os.WriteFile(filepath.Join(configDir, "compbench.json"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	chdir(t, tempDir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ConfigPath != DefaultConfigPath {
		t.Fatalf("expected ConfigPath %q, got %q", DefaultConfigPath, cfg.ConfigPath)
	}
	if len(cfg.Colors) != 2 {
		t.Fatalf("expected 2 colours, got %d", len(cfg.Colors))
	}
	if w, h := cfg.ChartSize(); w != "1200px" || h != "500px" {
		t.Fatalf("unexpected chart size %s x %s", w, h)
	}
}

func TestLoadLegacyFallback(t *testing.T) {
	tempDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tempDir, "compbench.json"), []byte(`{"lenientDurations": true}`), 0o644); err != nil {
		t.Fatalf("write legacy config: %v", err)
	}
	chdir(t, tempDir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.LenientDurations {
		t.Fatal("expected lenient durations from legacy config")
	}
	if cfg.ConfigPath != "compbench.json" {
		t.Fatalf("expected legacy ConfigPath, got %q", cfg.ConfigPath)
	}
}

func TestLoadInvalidColorError(t *testing.T) {
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("mkdir config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "compbench.json"), []byte(`{"colors":{"zstd":""}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	chdir(t, tempDir)

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for empty colour")
	}
}

func TestLoadMissingFileError(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for missing config")
	}
}
