// Package pathsec confines candidate file paths to a trusted base directory.
//
// [Resolver.Resolve] normalizes a relative or absolute candidate, strips any
// duplication between the candidate's leading segments and the base's trailing
// segments, resolves symlinks to real filesystem paths, and verifies
// containment with a segment-aware prefix check (case-insensitive on
// platforms whose filesystems are). Escaping candidates fail with a
// [*TraversalError] before any file is read.
package pathsec
