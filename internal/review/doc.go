// Package review orchestrates the end-to-end pipeline: read repository
// status, select candidate files for the requested review type, resolve each
// path inside the repository boundary, filter for suitability, and fan the
// survivors out to the analysis strategy under a bounded concurrency limit.
//
// The pipeline fails fast only on configuration and repository access errors.
// Per-file problems never abort a run; each file ends in exactly one terminal
// status (reviewed, skipped, inaccessible, or error) with a reason a report
// can show directly.
package review
