package config

import (
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Backend.Provider != "anthropic" {
		t.Errorf("Provider = %q", cfg.Backend.Provider)
	}
	if cfg.Review.Analyzer != "ai" {
		t.Errorf("Analyzer = %q", cfg.Review.Analyzer)
	}
	if cfg.Review.Concurrency != 4 {
		t.Errorf("Concurrency = %d", cfg.Review.Concurrency)
	}
	if cfg.Review.MaxFileBytes != 100000 {
		t.Errorf("MaxFileBytes = %d", cfg.Review.MaxFileBytes)
	}
	if len(cfg.Review.Extensions) == 0 {
		t.Error("default extensions list is empty")
	}
	if !cfg.Cache.Enabled {
		t.Error("cache should default to enabled")
	}
	if !cfg.Privacy.RedactSecrets {
		t.Error("redaction should default to enabled")
	}
	if cfg.Review.CaseSensitivePaths {
		t.Error("paths should default to case-insensitive handling")
	}
}

func TestMergeEnv(t *testing.T) {
	t.Setenv("CRITIC_PROVIDER", "ollama")
	t.Setenv("CRITIC_MODEL", "llama3")
	t.Setenv("CRITIC_ANALYZER", "static")
	t.Setenv("CRITIC_CONCURRENCY", "8")

	cfg := Default()
	mergeEnv(&cfg)

	if cfg.Backend.Provider != "ollama" {
		t.Errorf("Provider = %q", cfg.Backend.Provider)
	}
	if cfg.Backend.Model != "llama3" {
		t.Errorf("Model = %q", cfg.Backend.Model)
	}
	if cfg.Review.Analyzer != "static" {
		t.Errorf("Analyzer = %q", cfg.Review.Analyzer)
	}
	if cfg.Review.Concurrency != 8 {
		t.Errorf("Concurrency = %d", cfg.Review.Concurrency)
	}
}

func TestMergeEnv_InvalidConcurrency(t *testing.T) {
	t.Setenv("CRITIC_CONCURRENCY", "many")
	cfg := Default()
	mergeEnv(&cfg)
	if cfg.Review.Concurrency != 4 {
		t.Errorf("invalid env value should keep default, got %d", cfg.Review.Concurrency)
	}
}

func TestMergeOverrides(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, map[string]string{
		"provider":    "ollama",
		"model":       "qwen",
		"analyzer":    "static",
		"concurrency": "2",
		"suggestions": "true",
	})

	if cfg.Backend.Provider != "ollama" || cfg.Backend.Model != "qwen" {
		t.Errorf("backend = %+v", cfg.Backend)
	}
	if cfg.Review.Analyzer != "static" {
		t.Errorf("Analyzer = %q", cfg.Review.Analyzer)
	}
	if cfg.Review.Concurrency != 2 {
		t.Errorf("Concurrency = %d", cfg.Review.Concurrency)
	}
	if !cfg.Review.IncludeSuggestions {
		t.Error("suggestions override ignored")
	}
}

func TestMergeOverrides_Nil(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, nil)
	if cfg.Backend.Provider != "anthropic" {
		t.Errorf("nil overrides mutated config: %+v", cfg.Backend)
	}
}

func TestConfigPrecedence(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CRITIC_PROVIDER", "ollama")

	fileCfg := Default()
	fileCfg.Backend.Provider = "from-file"
	fileCfg.Backend.Model = "file-model"
	if err := Save(fileCfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cfg, err := Load(map[string]string{"model": "flag-model"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// env beats file, flag beats both
	if cfg.Backend.Provider != "ollama" {
		t.Errorf("Provider = %q, want env value", cfg.Backend.Provider)
	}
	if cfg.Backend.Model != "flag-model" {
		t.Errorf("Model = %q, want flag value", cfg.Backend.Model)
	}
}

func TestSetField(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"provider", "ollama"},
		{"model", "llama3"},
		{"analyzer", "static"},
		{"concurrency", "6"},
		{"maxFileBytes", "5000"},
		{"maxLines", "200"},
		{"includeSuggestions", "true"},
		{"caseSensitivePaths", "true"},
		{"cacheEnabled", "false"},
	}
	cfg := Default()
	for _, tt := range tests {
		if err := SetField(&cfg, tt.key, tt.value); err != nil {
			t.Errorf("SetField(%q, %q) error: %v", tt.key, tt.value, err)
		}
	}
	if cfg.Review.Concurrency != 6 || cfg.Review.MaxFileBytes != 5000 {
		t.Errorf("numeric fields not applied: %+v", cfg.Review)
	}
	if !cfg.Review.CaseSensitivePaths || cfg.Cache.Enabled {
		t.Errorf("bool fields not applied: %+v", cfg)
	}
}

func TestSetField_UnknownKey(t *testing.T) {
	cfg := Default()
	if err := SetField(&cfg, "nonexistent", "v"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestSetField_InvalidInt(t *testing.T) {
	cfg := Default()
	if err := SetField(&cfg, "concurrency", "lots"); err == nil {
		t.Error("expected error for non-integer value")
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Review.MaxLines = 123
	cfg.Backend.Model = "roundtrip"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.Review.MaxLines != 123 || got.Backend.Model != "roundtrip" {
		t.Errorf("roundtrip lost values: %+v", got)
	}
}

func TestLoadFile_NoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := LoadFile()
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Backend.Provider != "" {
		t.Errorf("missing file should yield zero config: %+v", cfg)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if got != filepath.Join(dir, "critic") {
		t.Errorf("ConfigDir = %q", got)
	}
}
