package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/critic/internal/analysis"
	"github.com/dshills/critic/internal/review"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// TextWriter outputs a human-readable report for terminals.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, res *review.Result) error {
	ew := &errWriter{w: w}

	ew.printf("%s\n", titleStyle.Render("Critic Code Review"))
	ew.printf("Branch: %s", branchStyle.Render(res.Repository.Branch))
	if res.Repository.Ahead > 0 || res.Repository.Behind > 0 {
		ew.printf(" (%d ahead, %d behind)", res.Repository.Ahead, res.Repository.Behind)
	}
	ew.println("")
	ew.println(strings.Repeat("─", 60))

	for _, f := range res.Files {
		ew.printf("\n%s %s\n", statusIcon(f.Status), f.Path)
		if f.Reason != "" {
			ew.printf("  %s\n", dimStyle.Render(f.Reason))
		}
		if f.Analysis != nil {
			writeAnalysis(ew, f.Analysis)
		}
	}

	ew.printf("\n%s\n", strings.Repeat("─", 60))
	ew.printf("%s\n", res.Summary)

	return ew.err
}

func writeAnalysis(ew *errWriter, a *analysis.Result) {
	if a.Context != "" {
		ew.printf("  %s\n", a.Context)
	}
	writeBucket(ew, "Security", a.SecurityIssues)
	writeBucket(ew, "Performance", a.PerformanceIssues)
	writeBucket(ew, "Architecture", a.ArchitectureIssues)
	writeBucket(ew, "Logic", a.LogicIssues)
	writeBucket(ew, "Suggestions", a.Suggestions)
}

func writeBucket(ew *errWriter, label string, items []string) {
	if len(items) == 0 {
		return
	}
	ew.printf("  %s\n", sectionStyle.Render(label))
	for _, item := range items {
		ew.printf("    - %s\n", item)
	}
}

func statusIcon(st review.FileStatus) string {
	switch st {
	case review.StatusReviewed:
		return okStyle.Render("✓")
	case review.StatusSkipped:
		return warnStyle.Render("~")
	case review.StatusInaccessible:
		return warnStyle.Render("!")
	case review.StatusError:
		return errStyle.Render("✗")
	default:
		return "?"
	}
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
