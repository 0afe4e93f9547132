package output

import (
	"io"

	"github.com/dshills/critic/internal/review"
)

// MarkdownWriter outputs a report suitable for pasting into a PR description.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, res *review.Result) error {
	ew := &errWriter{w: w}

	ew.println("# Code Review")
	ew.println("")
	ew.printf("**Branch:** `%s`", res.Repository.Branch)
	if res.Repository.Ahead > 0 || res.Repository.Behind > 0 {
		ew.printf(" (%d ahead, %d behind)", res.Repository.Ahead, res.Repository.Behind)
	}
	ew.println("")
	ew.println("")
	ew.printf("%s\n", res.Summary)
	ew.println("")

	ew.println("| File | Status | Notes |")
	ew.println("|------|--------|-------|")
	for _, f := range res.Files {
		note := f.Reason
		if f.Status == review.StatusReviewed && f.Analysis != nil {
			note = f.Analysis.Context
		}
		ew.printf("| `%s` | %s | %s |\n", f.Path, f.Status, note)
	}

	for _, f := range res.Files {
		if f.Analysis == nil || f.Analysis.IssueCount()+len(f.Analysis.Suggestions) == 0 {
			continue
		}
		ew.println("")
		ew.printf("## %s\n", f.Path)
		ew.println("")
		mdBucket(ew, "Security Issues", f.Analysis.SecurityIssues)
		mdBucket(ew, "Performance Issues", f.Analysis.PerformanceIssues)
		mdBucket(ew, "Architecture Issues", f.Analysis.ArchitectureIssues)
		mdBucket(ew, "Logic Issues", f.Analysis.LogicIssues)
		mdBucket(ew, "Suggestions", f.Analysis.Suggestions)
	}

	return ew.err
}

func mdBucket(ew *errWriter, label string, items []string) {
	if len(items) == 0 {
		return
	}
	ew.printf("### %s\n", label)
	ew.println("")
	for _, item := range items {
		ew.printf("- %s\n", item)
	}
	ew.println("")
}
