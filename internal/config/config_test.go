package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_ValidConfig(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `indent: 2
header: true
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Indent != 2 {
		t.Errorf("Expected indent 2, got %d", cfg.Indent)
	}
	if !cfg.Header {
		t.Error("Expected header to be enabled")
	}
}

func TestLoadConfig_NonExistentFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig should return default config for nonexistent file, got error: %v", err)
	}

	if cfg.Indent != 4 {
		t.Errorf("Expected default indent 4, got %d", cfg.Indent)
	}
	if cfg.Header {
		t.Error("Header should be off by default")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := "indent: [2\nheader: yes: no\n"

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Error("LoadConfig should return error for invalid YAML")
	}
}

func TestLoadConfig_EmptyConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "empty.yaml")

	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed for empty config: %v", err)
	}

	// Empty config keeps the defaults
	if cfg.Indent != 4 {
		t.Errorf("Expected indent 4, got %d", cfg.Indent)
	}
}

func TestLoadConfig_PartialConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	if err := os.WriteFile(configPath, []byte("header: true\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Indent != 4 || !cfg.Header {
		t.Errorf("Expected indent 4 and header on, got %+v", cfg)
	}
}

func TestLoadConfig_IndentBelowOne(t *testing.T) {
	for _, indent := range []string{"-1", "0"} {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "indent.yaml")

		if err := os.WriteFile(configPath, []byte("indent: "+indent+"\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		if _, err := LoadConfig(configPath); err == nil {
			t.Errorf("LoadConfig should reject indent %s", indent)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
	if cfg.Indent != 4 {
		t.Errorf("Expected default indent 4, got %d", cfg.Indent)
	}
}
