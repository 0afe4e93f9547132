// Package analysis turns file content into structured review findings.
//
// Two strategies implement the same [Strategy] interface: an AI strategy
// that prompts a backend model and parses its sectioned response, and a
// static strategy built on lexical heuristics for offline use. Both are
// wrapped so they never fail outright; any internal error or panic becomes a
// degraded [Result] that names the file and the cause, keeping one bad file
// from taking down a batch.
package analysis
