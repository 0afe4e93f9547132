package pathsec

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// TraversalError indicates a candidate path resolves outside the trusted base.
// It deliberately echoes only the candidate as given, never the resolved
// absolute path.
type TraversalError struct {
	Candidate string
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("invalid path: %q is outside the repository", e.Candidate)
}

// Resolver resolves candidate paths against a trusted base directory.
type Resolver struct {
	base          string
	caseSensitive bool
}

// NewResolver creates a Resolver rooted at base. The base must exist; it is
// canonicalized (absolute, symlinks resolved) so containment checks compare
// real filesystem paths. Case sensitivity defaults to the platform convention
// and can be overridden with [Resolver.SetCaseSensitive].
func NewResolver(base string) (*Resolver, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolving base directory: %w", err)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("base directory is not accessible")
	}
	return &Resolver{
		base:          real,
		caseSensitive: runtime.GOOS != "darwin" && runtime.GOOS != "windows",
	}, nil
}

// SetCaseSensitive overrides the platform default for containment comparison.
func (r *Resolver) SetCaseSensitive(sensitive bool) { r.caseSensitive = sensitive }

// Base returns the canonical base directory.
func (r *Resolver) Base() string { return r.base }

// Resolve turns candidate into a canonical absolute path inside the base,
// or returns a [*TraversalError] if the result would escape it.
//
// Relative candidates whose leading segments duplicate the trailing segments
// of the base (a caller passing "repo/src/a.go" against ".../repo") have the
// overlap stripped before joining, so the path is not doubled. Symlinks are
// resolved before the containment check: a link inside the base pointing
// outside it is rejected.
func (r *Resolver) Resolve(candidate string) (string, error) {
	clean := filepath.Clean(candidate)

	var joined string
	if filepath.IsAbs(clean) {
		joined = clean
	} else {
		joined = filepath.Join(r.base, r.stripOverlap(clean))
	}

	resolved := resolveSymlinks(joined)
	if !r.contains(resolved) {
		return "", &TraversalError{Candidate: candidate}
	}
	return resolved, nil
}

// stripOverlap removes the longest run of leading candidate segments that
// duplicates the trailing segments of the base.
func (r *Resolver) stripOverlap(rel string) string {
	relSegs := splitSegments(rel)
	baseSegs := splitSegments(r.base)

	max := len(relSegs)
	if len(baseSegs) < max {
		max = len(baseSegs)
	}
	for k := max; k > 0; k-- {
		if r.segmentsEqual(baseSegs[len(baseSegs)-k:], relSegs[:k]) {
			return filepath.Join(relSegs[k:]...)
		}
	}
	return rel
}

func (r *Resolver) segmentsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !r.sameSegment(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (r *Resolver) sameSegment(a, b string) bool {
	if r.caseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

// contains performs a segment-aware containment check. A plain string prefix
// comparison would wrongly treat "/repo-extra" as inside "/repo".
func (r *Resolver) contains(path string) bool {
	base, p := r.base, path
	if !r.caseSensitive {
		base = strings.ToLower(base)
		p = strings.ToLower(p)
	}
	rel, err := filepath.Rel(base, p)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// resolveSymlinks canonicalizes path through the filesystem. When the final
// element does not exist yet, the deepest existing ancestor is resolved and
// the remainder re-joined lexically.
func resolveSymlinks(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	dir, file := filepath.Split(filepath.Clean(path))
	if dir != "" && dir != path {
		if resolvedDir, err := filepath.EvalSymlinks(filepath.Clean(dir)); err == nil {
			return filepath.Join(resolvedDir, file)
		}
	}
	return filepath.Clean(path)
}

func splitSegments(path string) []string {
	var segs []string
	for _, s := range strings.Split(filepath.ToSlash(path), "/") {
		if s != "" && s != "." {
			segs = append(segs, s)
		}
	}
	return segs
}
