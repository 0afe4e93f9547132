package analysis

import (
	"context"
	"fmt"
	"path/filepath"
)

// Result is the normalized shape every strategy fills, whatever its internal
// taxonomy. Strategies with different category schemes remap onto these five
// buckets rather than inventing new ones.
type Result struct {
	Context            string   `json:"context"`
	SecurityIssues     []string `json:"securityIssues"`
	PerformanceIssues  []string `json:"performanceIssues"`
	ArchitectureIssues []string `json:"architectureIssues"`
	LogicIssues        []string `json:"logicIssues"`
	Suggestions        []string `json:"suggestions,omitempty"`
}

// IssueCount returns the total number of findings across the four issue
// buckets (suggestions are advisory and excluded).
func (r Result) IssueCount() int {
	return len(r.SecurityIssues) + len(r.PerformanceIssues) +
		len(r.ArchitectureIssues) + len(r.LogicIssues)
}

// Strategy turns file content into a Result. Implementations obtained from
// [New] never fail: internal errors are converted into a degraded Result
// whose Context explains what went wrong.
type Strategy interface {
	Analyze(ctx context.Context, content, path string, includeSuggestions bool) Result
	Name() string
}

// Degraded builds the well-formed Result that stands in for a failed
// analysis. Only the file's base name appears, never an absolute path.
func Degraded(path string, cause error) Result {
	reason := "unknown failure"
	if cause != nil {
		reason = cause.Error()
	}
	return Result{
		Context: fmt.Sprintf("Analysis of %s did not complete: %s", filepath.Base(path), reason),
	}
}
