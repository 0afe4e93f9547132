package cli

import (
	"testing"

	"github.com/dshills/critic/internal/config"
)

// resetFlags resets all package-level flag variables to their zero values.
func resetFlags() {
	flagRepo = "."
	flagFormat = "text"
	flagOut = ""
	flagAnalyzer = ""
	flagProvider = ""
	flagModel = ""
	flagSuggestions = false
	flagConcurrency = 0
	flagFailOnIssues = false
}

func TestBuildOverrides(t *testing.T) {
	resetFlags()
	flagAnalyzer = "static"
	flagProvider = "ollama"
	flagModel = "llama3"
	flagConcurrency = 8
	flagSuggestions = true
	defer resetFlags()

	m := buildOverrides()

	want := map[string]string{
		"analyzer":    "static",
		"provider":    "ollama",
		"model":       "llama3",
		"concurrency": "8",
		"suggestions": "true",
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("overrides[%q] = %q, want %q", k, m[k], v)
		}
	}
}

func TestBuildOverrides_Empty(t *testing.T) {
	resetFlags()
	if m := buildOverrides(); len(m) != 0 {
		t.Errorf("zero flags should produce no overrides, got %v", m)
	}
}

func TestBuildAnalyzer_Static(t *testing.T) {
	cfg := config.Default()
	cfg.Review.Analyzer = "static"

	az, err := buildAnalyzer(cfg)
	if err != nil {
		t.Fatalf("buildAnalyzer: %v", err)
	}
	if az.Name() != "static" {
		t.Errorf("Name = %q", az.Name())
	}
}

func TestBuildAnalyzer_AIWithMockProvider(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cfg := config.Default()
	cfg.Backend.Provider = "mock"

	az, err := buildAnalyzer(cfg)
	if err != nil {
		t.Fatalf("buildAnalyzer: %v", err)
	}
	if az.Name() != "ai" {
		t.Errorf("Name = %q", az.Name())
	}
}

func TestBuildAnalyzer_AIMissingKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	cfg := config.Default()

	if _, err := buildAnalyzer(cfg); err == nil {
		t.Fatal("expected configuration error for anthropic provider without API key")
	}
}

func TestBuildAnalyzer_UnknownStrategy(t *testing.T) {
	cfg := config.Default()
	cfg.Review.Analyzer = "psychic"

	if _, err := buildAnalyzer(cfg); err == nil {
		t.Fatal("expected error for unknown analyzer")
	}
}
