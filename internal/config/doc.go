// Package config loads and merges critic configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (CRITIC_PROVIDER, CRITIC_MODEL, CRITIC_ANALYZER, etc.)
//  3. Config file ($XDG_CONFIG_HOME/critic/config.yaml)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config] and [SetField] to update a single
// key before saving.
package config
