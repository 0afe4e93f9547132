package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the critic configuration, grouped by concern.
type Config struct {
	Review  ReviewConfig  `yaml:"review"`
	Backend BackendConfig `yaml:"backend"`
	Git     GitConfig     `yaml:"git"`
	Cache   CacheConfig   `yaml:"cache"`
	Privacy PrivacyConfig `yaml:"privacy"`
}

// ReviewConfig controls file selection, filtering, and analysis behavior.
type ReviewConfig struct {
	Extensions         []string `yaml:"extensions"`
	ExcludePatterns    []string `yaml:"excludePatterns"`
	MaxFileBytes       int      `yaml:"maxFileBytes"`
	MaxLines           int      `yaml:"maxLines"`
	MaxFunctions       int      `yaml:"maxFunctions"`
	MaxClasses         int      `yaml:"maxClasses"`
	Concurrency        int      `yaml:"concurrency"`
	Analyzer           string   `yaml:"analyzer"`
	IncludeSuggestions bool     `yaml:"includeSuggestions"`
	CaseSensitivePaths bool     `yaml:"caseSensitivePaths"`
}

// BackendConfig names the model backend used by the AI analyzer.
type BackendConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

// GitConfig controls repository access.
type GitConfig struct {
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}

// CacheConfig controls backend response caching.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Dir        string `yaml:"dir,omitempty"`
	TTLSeconds int    `yaml:"ttlSeconds"`
}

// PrivacyConfig controls secret redaction before content leaves the machine.
type PrivacyConfig struct {
	RedactSecrets  bool     `yaml:"redactSecrets"`
	RedactPatterns []string `yaml:"redactPatterns,omitempty"`
	RedactPaths    []string `yaml:"redactPaths,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Review: ReviewConfig{
			Extensions: []string{
				".go", ".ts", ".tsx", ".js", ".jsx", ".py", ".rb",
				".java", ".kt", ".rs", ".c", ".h", ".cpp", ".cs",
			},
			ExcludePatterns: []string{
				`\.d\.ts$`,
				`\.min\.js$`,
				`\.gen\.go$`,
				`_test\.go$`,
				`(^|/)node_modules/`,
				`(^|/)vendor/`,
				`(^|/)dist/`,
				`(^|/)build/`,
				`\.(test|spec)\.(ts|tsx|js|jsx)$`,
			},
			MaxFileBytes: 100000,
			MaxLines:     1000,
			MaxFunctions: 50,
			MaxClasses:   10,
			Concurrency:  4,
			Analyzer:     "ai",
		},
		Backend: BackendConfig{
			Provider: "anthropic",
			Model:    "claude-sonnet-4-20250514",
		},
		Git: GitConfig{
			TimeoutSeconds: 10,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: 86400,
		},
		Privacy: PrivacyConfig{
			RedactSecrets: true,
			RedactPaths:   []string{"**/.env", "**/*secrets*"},
		},
	}
}

// ConfigDir returns the platform-appropriate config directory for critic.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "critic"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "critic"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "critic"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "critic"), nil
	default:
		return filepath.Join(home, ".config", "critic"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadFile loads config from the config file. A missing file is not an
// error; it returns a zero Config.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if len(src.Review.Extensions) > 0 {
		dst.Review.Extensions = src.Review.Extensions
	}
	if len(src.Review.ExcludePatterns) > 0 {
		dst.Review.ExcludePatterns = src.Review.ExcludePatterns
	}
	if src.Review.MaxFileBytes > 0 {
		dst.Review.MaxFileBytes = src.Review.MaxFileBytes
	}
	if src.Review.MaxLines > 0 {
		dst.Review.MaxLines = src.Review.MaxLines
	}
	if src.Review.MaxFunctions > 0 {
		dst.Review.MaxFunctions = src.Review.MaxFunctions
	}
	if src.Review.MaxClasses > 0 {
		dst.Review.MaxClasses = src.Review.MaxClasses
	}
	if src.Review.Concurrency > 0 {
		dst.Review.Concurrency = src.Review.Concurrency
	}
	if src.Review.Analyzer != "" {
		dst.Review.Analyzer = src.Review.Analyzer
	}
	// Bool fields: YAML's zero value is indistinguishable from unset, so
	// true in either source wins for opt-in flags.
	dst.Review.IncludeSuggestions = src.Review.IncludeSuggestions || dst.Review.IncludeSuggestions
	dst.Review.CaseSensitivePaths = src.Review.CaseSensitivePaths || dst.Review.CaseSensitivePaths

	if src.Backend.Provider != "" {
		dst.Backend.Provider = src.Backend.Provider
	}
	if src.Backend.Model != "" {
		dst.Backend.Model = src.Backend.Model
	}

	if src.Git.TimeoutSeconds > 0 {
		dst.Git.TimeoutSeconds = src.Git.TimeoutSeconds
	}

	dst.Cache.Enabled = src.Cache.Enabled || dst.Cache.Enabled
	if src.Cache.Dir != "" {
		dst.Cache.Dir = src.Cache.Dir
	}
	if src.Cache.TTLSeconds > 0 {
		dst.Cache.TTLSeconds = src.Cache.TTLSeconds
	}

	dst.Privacy.RedactSecrets = src.Privacy.RedactSecrets || dst.Privacy.RedactSecrets
	if len(src.Privacy.RedactPatterns) > 0 {
		dst.Privacy.RedactPatterns = src.Privacy.RedactPatterns
	}
	if len(src.Privacy.RedactPaths) > 0 {
		dst.Privacy.RedactPaths = src.Privacy.RedactPaths
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("CRITIC_PROVIDER"); v != "" {
		cfg.Backend.Provider = v
	}
	if v := os.Getenv("CRITIC_MODEL"); v != "" {
		cfg.Backend.Model = v
	}
	if v := os.Getenv("CRITIC_ANALYZER"); v != "" {
		cfg.Review.Analyzer = v
	}
	if v := os.Getenv("CRITIC_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Review.Concurrency = n
		}
	}
	if v := os.Getenv("CRITIC_MAX_FILE_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Review.MaxFileBytes = n
		}
	}
	if v := os.Getenv("CRITIC_GIT_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Git.TimeoutSeconds = n
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["provider"]; ok && v != "" {
		cfg.Backend.Provider = v
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Backend.Model = v
	}
	if v, ok := overrides["analyzer"]; ok && v != "" {
		cfg.Review.Analyzer = v
	}
	if v, ok := overrides["concurrency"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Review.Concurrency = n
		}
	}
	if v, ok := overrides["suggestions"]; ok && v != "" {
		cfg.Review.IncludeSuggestions = v == "true"
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "provider":
		cfg.Backend.Provider = value
	case "model":
		cfg.Backend.Model = value
	case "analyzer":
		cfg.Review.Analyzer = value
	case "concurrency":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("concurrency must be an integer: %w", err)
		}
		cfg.Review.Concurrency = n
	case "maxFileBytes":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxFileBytes must be an integer: %w", err)
		}
		cfg.Review.MaxFileBytes = n
	case "maxLines":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxLines must be an integer: %w", err)
		}
		cfg.Review.MaxLines = n
	case "maxFunctions":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxFunctions must be an integer: %w", err)
		}
		cfg.Review.MaxFunctions = n
	case "maxClasses":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxClasses must be an integer: %w", err)
		}
		cfg.Review.MaxClasses = n
	case "includeSuggestions":
		cfg.Review.IncludeSuggestions = value == "true"
	case "caseSensitivePaths":
		cfg.Review.CaseSensitivePaths = value == "true"
	case "gitTimeoutSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("gitTimeoutSeconds must be an integer: %w", err)
		}
		cfg.Git.TimeoutSeconds = n
	case "cacheEnabled":
		cfg.Cache.Enabled = value == "true"
	case "cacheTTLSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cacheTTLSeconds must be an integer: %w", err)
		}
		cfg.Cache.TTLSeconds = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
