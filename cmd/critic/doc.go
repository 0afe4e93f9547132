// Critic is a CLI that reviews changed files in a git repository with AI or
// static analysis.
//
// It selects files from git status (staged, modified, or everything including
// untracked), filters out files that are too large or not reviewable, and
// fans the rest out to the configured analysis strategy, emitting structured
// reports with deterministic exit codes suitable for CI gating and git hooks.
//
// Usage:
//
//	critic review staged              # review staged files
//	critic review modified            # review staged + working-tree changes
//	critic review full                # also include untracked files
//	critic config init                # write a default config file
//	critic hook install               # gate commits on review results
package main
