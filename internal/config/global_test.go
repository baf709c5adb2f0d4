package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeGlobalConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	ResetGlobalConfigCache()
	t.Cleanup(ResetGlobalConfigCache)

	cfgDir := filepath.Join(dir, GlobalConfigDir)
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, GlobalConfigFile), []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}

func TestLoadGlobalConfig(t *testing.T) {
	writeGlobalConfig(t, "ncbi_api_key: secret\ntool: pmbib\nemail: dev@example.org\n")

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	if cfg.NCBIAPIKey != "secret" {
		t.Errorf("NCBIAPIKey = %q, want secret", cfg.NCBIAPIKey)
	}
	if cfg.Tool != "pmbib" {
		t.Errorf("Tool = %q, want pmbib", cfg.Tool)
	}
	if cfg.Email != "dev@example.org" {
		t.Errorf("Email = %q, want dev@example.org", cfg.Email)
	}
}

func TestLoadGlobalConfig_MissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	ResetGlobalConfigCache()
	t.Cleanup(ResetGlobalConfigCache)

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	if cfg.NCBIAPIKey != "" || cfg.Tool != "" || cfg.Email != "" {
		t.Errorf("LoadGlobalConfig() = %+v, want empty config", cfg)
	}
}

func TestLoadGlobalConfig_InvalidYAML(t *testing.T) {
	writeGlobalConfig(t, "ncbi_api_key: [unclosed\n")

	if _, err := LoadGlobalConfig(); err == nil {
		t.Error("LoadGlobalConfig() should fail on invalid YAML")
	}
}

func TestAccessors(t *testing.T) {
	writeGlobalConfig(t, "ncbi_api_key: abc\ntool: mytool\n")

	if got := GetNCBIAPIKey(); got != "abc" {
		t.Errorf("GetNCBIAPIKey() = %q, want abc", got)
	}
	if got := GetTool(); got != "mytool" {
		t.Errorf("GetTool() = %q, want mytool", got)
	}
	if got := GetEmail(); got != "" {
		t.Errorf("GetEmail() = %q, want empty", got)
	}
}
