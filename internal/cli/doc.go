// Package cli wires together the Cobra command tree for the critic binary.
//
// It defines the root command and all subcommands (review, config, cache,
// hook, version), binds flags, reads configuration, runs the review pipeline,
// and returns deterministic exit codes for CI gating.
package cli
