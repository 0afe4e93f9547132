package suitability

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Limits holds the thresholds a file must stay within to be analyzable.
// A zero value for any numeric limit disables that check.
type Limits struct {
	Extensions      []string
	ExcludePatterns []string
	MaxFileBytes    int
	MaxLines        int
	MaxFunctions    int
	MaxClasses      int
}

// Result reports eligibility. Reason is set whenever Suitable is false and
// names the failed check with actual vs. configured values.
type Result struct {
	Suitable bool   `json:"suitable"`
	Reason   string `json:"reason,omitempty"`
}

// Heuristic declaration shapes across the reviewable languages. These are
// deliberately rough: the point is a cheap structural count, not parsing.
var (
	functionPattern = regexp.MustCompile(`(?m)\b(?:function\s+\w+|func\s+(?:\([^)]*\)\s*)?\w+|def\s+\w+)\s*\(|=>\s*[{(]`)
	classPattern    = regexp.MustCompile(`(?m)\b(?:class|interface|struct|enum|trait)\s+\w+`)
)

// Filter decides whether files are eligible for analysis. It is pure and
// performs no I/O; content is supplied by the caller.
type Filter struct {
	limits  Limits
	exclude []*regexp.Regexp
}

// New compiles the exclusion patterns and returns a Filter. An invalid
// pattern is a configuration error.
func New(limits Limits) (*Filter, error) {
	exclude := make([]*regexp.Regexp, 0, len(limits.ExcludePatterns))
	for _, p := range limits.ExcludePatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclusion pattern %q: %w", p, err)
		}
		exclude = append(exclude, re)
	}
	return &Filter{limits: limits, exclude: exclude}, nil
}

// Check runs the eligibility checks in a fixed order, stopping at the first
// failure so the reported reason is deterministic:
// extension, exclusion patterns, byte size, line count, function count,
// class count. All numeric limits are inclusive: content at exactly the limit
// passes, one unit over fails.
func (f *Filter) Check(path, content string) Result {
	if len(f.limits.Extensions) > 0 && !f.extensionAllowed(path) {
		return Result{Reason: fmt.Sprintf("extension %q is not in the reviewable set", filepath.Ext(path))}
	}

	for i, re := range f.exclude {
		if re.MatchString(path) {
			return Result{Reason: fmt.Sprintf("path matches exclusion pattern %q", f.limits.ExcludePatterns[i])}
		}
	}

	if f.limits.MaxFileBytes > 0 && len(content) > f.limits.MaxFileBytes {
		return Result{Reason: fmt.Sprintf("file is %d bytes, limit is %d", len(content), f.limits.MaxFileBytes)}
	}

	if f.limits.MaxLines > 0 {
		if lines := countLines(content); lines > f.limits.MaxLines {
			return Result{Reason: fmt.Sprintf("file has %d lines, limit is %d", lines, f.limits.MaxLines)}
		}
	}

	if f.limits.MaxFunctions > 0 {
		if n := len(functionPattern.FindAllStringIndex(content, -1)); n > f.limits.MaxFunctions {
			return Result{Reason: fmt.Sprintf("file declares ~%d functions, limit is %d", n, f.limits.MaxFunctions)}
		}
	}

	if f.limits.MaxClasses > 0 {
		if n := len(classPattern.FindAllStringIndex(content, -1)); n > f.limits.MaxClasses {
			return Result{Reason: fmt.Sprintf("file declares ~%d classes, limit is %d", n, f.limits.MaxClasses)}
		}
	}

	return Result{Suitable: true}
}

func (f *Filter) extensionAllowed(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range f.limits.Extensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
