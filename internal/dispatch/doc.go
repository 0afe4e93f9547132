// Package dispatch fans a per-item task out over a list of inputs under a
// bounded concurrency limit.
//
// The limit is clamped to [MinLimit, MaxLimit] before use. Results come back
// in submission order, one [Outcome] per input, with per-task failures
// captured as data: one failing task never aborts or cancels the rest of the
// batch.
package dispatch
