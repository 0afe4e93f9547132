// Package suitability decides whether a changed file is eligible for
// analysis based on its extension, path shape, size, line count, and rough
// structural complexity.
//
// Checks run in a fixed order and short-circuit, so the reason a file is
// skipped is deterministic and always names the actual value against the
// configured limit. All thresholds come from a [Limits] value supplied at
// construction; nothing here is hard-coded.
package suitability
