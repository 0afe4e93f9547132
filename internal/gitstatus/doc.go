// Package gitstatus reads the state of a git working tree by shelling out to
// git and parsing porcelain-v1 status output.
//
// A [Status] snapshot contains the current branch, ahead/behind counts
// relative to the configured upstream (a missing upstream reads as 0/0), and
// the staged, modified, untracked, and deleted path lists. A path staged and
// then re-edited appears in both the staged and modified lists; callers that
// want a flat set must deduplicate themselves.
//
// All queries are read-only. Failures are reported as [*AccessError] with a
// generalized message so raw subprocess output never reaches end users.
package gitstatus
