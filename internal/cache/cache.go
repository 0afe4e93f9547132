package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// entry is the on-disk shape of one cached backend response.
type entry struct {
	Key       string    `json:"key"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"createdAt"`
}

// Cache is a file-based store for backend analysis responses. A disabled
// Cache is a valid no-op value: Get always misses and Put discards.
type Cache struct {
	dir     string
	ttl     time.Duration
	enabled bool
}

// New creates a Cache rooted at dir (the platform cache directory when dir is
// empty). ttl <= 0 means entries never expire.
func New(enabled bool, dir string, ttl time.Duration) (*Cache, error) {
	if !enabled {
		return &Cache{}, nil
	}
	if dir == "" {
		d, err := defaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &Cache{dir: dir, ttl: ttl, enabled: true}, nil
}

// Key derives the cache key for one analysis call. The prompt already
// contains the redacted file content, so identical prompts to the same
// backend are interchangeable.
func Key(provider, model, prompt string) string {
	h := sha256.Sum256([]byte(provider + ":" + model + ":" + prompt))
	return fmt.Sprintf("%x", h)
}

// Get returns the cached response for key, or ("", false) on miss or expiry.
func (c *Cache) Get(key string) (string, bool) {
	if !c.enabled {
		return "", false
	}
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return "", false
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return "", false
	}
	if c.ttl > 0 && time.Since(e.CreatedAt) > c.ttl {
		os.Remove(c.path(key))
		return "", false
	}
	return e.Response, true
}

// Put stores a response under key.
func (c *Cache) Put(key, response string) error {
	if !c.enabled {
		return nil
	}
	data, err := json.Marshal(entry{Key: key, Response: response, CreatedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("marshaling cache entry: %w", err)
	}
	return os.WriteFile(c.path(key), data, 0o644)
}

// Clear removes every entry.
func (c *Cache) Clear() error {
	if !c.enabled || c.dir == "" {
		return nil
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading cache directory: %w", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".json" {
			os.Remove(filepath.Join(c.dir, e.Name()))
		}
	}
	return nil
}

// Stats summarizes cache contents for the CLI.
type Stats struct {
	Dir        string `json:"dir"`
	Entries    int    `json:"entries"`
	TotalBytes int64  `json:"totalBytes"`
}

// GetStats reports entry count and total size.
func (c *Cache) GetStats() (Stats, error) {
	stats := Stats{Dir: c.dir}
	if !c.enabled || c.dir == "" {
		return stats, nil
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return stats, nil
		}
		return stats, fmt.Errorf("reading cache directory: %w", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".json" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		stats.Entries++
		stats.TotalBytes += info.Size()
	}
	return stats, nil
}

// Enabled reports whether the cache stores anything.
func (c *Cache) Enabled() bool { return c.enabled }

// Dir returns the cache directory path.
func (c *Cache) Dir() string { return c.dir }

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

func defaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "critic"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "critic"), nil
	case "windows":
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, "critic", "cache"), nil
		}
		return filepath.Join(home, "AppData", "Local", "critic", "cache"), nil
	default:
		return filepath.Join(home, ".cache", "critic"), nil
	}
}
