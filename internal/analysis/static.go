package analysis

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// staticStrategy is the offline fallback: cheap lexical heuristics that run
// without any backend. Findings are coarse by design and phrased as such.
type staticStrategy struct{}

const (
	complexityThreshold   = 15
	longFunctionThreshold = 80
)

var (
	branchPattern     = regexp.MustCompile(`(?m)\b(if|for|while|case|catch|elif|switch)\b|&&|\|\|`)
	functionDecl      = regexp.MustCompile(`(?m)^\s*(?:export\s+)?(?:async\s+)?(?:function\s+\w+|func\s+(?:\([^)]*\)\s*)?\w+|def\s+\w+|(?:public|private|protected)\s+[\w<>\[\]]+\s+\w+\s*\()`)
	emptyCatch        = regexp.MustCompile(`catch\s*(?:\([^)]*\))?\s*\{\s*\}`)
	todoPattern       = regexp.MustCompile(`(?i)\b(TODO|FIXME|HACK|XXX)\b`)
	hardcodedSecret   = regexp.MustCompile(`(?i)(password|secret|api[_-]?key|token)\s*[:=]\s*["'][^"']{4,}["']`)
	sqlConcatenation  = regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)\b[^"\n]*["']\s*\+`)
	nestedLoopPattern = regexp.MustCompile(`(?ms)\bfor\b[^\n]*\{[^{}]*\bfor\b`)
)

func (s *staticStrategy) name() string { return "static" }

func (s *staticStrategy) analyze(_ context.Context, content, path string, includeSuggestions bool) (Result, error) {
	lines := strings.Count(content, "\n") + 1
	if content == "" {
		lines = 0
	}

	res := Result{
		Context: fmt.Sprintf("Static analysis of %s: %d lines inspected with lexical heuristics; findings are approximate.",
			filepath.Base(path), lines),
	}

	if m := hardcodedSecret.FindString(content); m != "" {
		res.SecurityIssues = append(res.SecurityIssues,
			"possible hardcoded credential detected; move secrets to environment or a secret store")
	}
	if sqlConcatenation.MatchString(content) {
		res.SecurityIssues = append(res.SecurityIssues,
			"SQL statement built by string concatenation; use parameterized queries")
	}

	if nestedLoopPattern.MatchString(content) {
		res.PerformanceIssues = append(res.PerformanceIssues,
			"nested loops detected; verify the inner loop does not scan the full input")
	}

	branches := len(branchPattern.FindAllString(content, -1))
	funcs := len(functionDecl.FindAllString(content, -1))
	if funcs > 0 {
		if per := branches / funcs; per > complexityThreshold {
			res.ArchitectureIssues = append(res.ArchitectureIssues,
				fmt.Sprintf("average branching complexity ~%d per function exceeds %d; consider extracting helpers", per, complexityThreshold))
		}
		if longest := longestFunctionLines(content); longest > longFunctionThreshold {
			res.ArchitectureIssues = append(res.ArchitectureIssues,
				fmt.Sprintf("longest function spans ~%d lines (threshold %d); consider splitting it", longest, longFunctionThreshold))
		}
	}

	if emptyCatch.MatchString(content) {
		res.LogicIssues = append(res.LogicIssues,
			"empty catch block swallows errors silently")
	}

	if includeSuggestions {
		if todos := len(todoPattern.FindAllString(content, -1)); todos > 0 {
			res.Suggestions = append(res.Suggestions,
				fmt.Sprintf("%d TODO/FIXME markers present; resolve or file issues for them", todos))
		}
	}

	return res, nil
}

// longestFunctionLines walks brace-delimited bodies following a function
// declaration and reports the longest one in lines. Brace-free languages
// (Python) fall through to 0, which disables the long-function check.
func longestFunctionLines(content string) int {
	longest := 0
	locs := functionDecl.FindAllStringIndex(content, -1)
	for _, loc := range locs {
		open := strings.IndexByte(content[loc[1]:], '{')
		if open < 0 {
			continue
		}
		start := loc[1] + open
		depth := 0
		end := -1
		for i := start; i < len(content); i++ {
			switch content[i] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					end = i
				}
			}
			if end >= 0 {
				break
			}
		}
		if end < 0 {
			continue
		}
		if n := strings.Count(content[start:end], "\n"); n > longest {
			longest = n
		}
	}
	return longest
}
