// Package cache provides a file-based cache for backend analysis responses.
//
// Entries are keyed by a SHA-256 hash of the backend name, model, and full
// prompt (which already contains the redacted file content). Each entry
// stores the raw response text with a creation timestamp; expired entries are
// skipped on read and removed lazily.
//
// The default cache directory is $XDG_CACHE_HOME/critic or the OS-appropriate
// equivalent.
package cache
