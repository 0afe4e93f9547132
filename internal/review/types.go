package review

import (
	"fmt"

	"github.com/dshills/critic/internal/analysis"
	"github.com/dshills/critic/internal/gitstatus"
)

// Type selects which repository state feeds the review. The types are
// inclusive: modified covers everything staged does, full covers everything
// modified does.
type Type string

const (
	TypeStaged   Type = "staged"
	TypeModified Type = "modified"
	TypeFull     Type = "full"
)

// ParseType validates a review type from user input.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeStaged, TypeModified, TypeFull:
		return Type(s), nil
	default:
		return "", fmt.Errorf("unknown review type %q (want staged, modified, or full)", s)
	}
}

// FileStatus is the terminal state of one file's trip through the pipeline.
// Every selected file ends in exactly one of these.
type FileStatus string

const (
	// StatusReviewed means analysis ran and produced findings (possibly none).
	StatusReviewed FileStatus = "reviewed"
	// StatusSkipped means the suitability filter rejected the file.
	StatusSkipped FileStatus = "skipped"
	// StatusInaccessible means the file could not be read from disk.
	StatusInaccessible FileStatus = "inaccessible"
	// StatusError covers path-security rejections and internal failures.
	StatusError FileStatus = "error"
)

// ReviewedFile is the per-file record in a Result. Analysis is set only when
// Status is StatusReviewed; Reason is set for every other status.
type ReviewedFile struct {
	Path     string           `json:"path"`
	Status   FileStatus       `json:"status"`
	Reason   string           `json:"reason,omitempty"`
	Analysis *analysis.Result `json:"analysis,omitempty"`
}

// Result is the complete outcome of one pipeline run.
type Result struct {
	Summary    string           `json:"summary"`
	Files      []ReviewedFile   `json:"files"`
	Repository gitstatus.Status `json:"repositoryStatus"`
}

// IssueCount totals findings across all reviewed files.
func (r *Result) IssueCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Analysis != nil {
			n += f.Analysis.IssueCount()
		}
	}
	return n
}

// Counts tallies files by terminal status.
func (r *Result) Counts() (reviewed, skipped, inaccessible, failed int) {
	for _, f := range r.Files {
		switch f.Status {
		case StatusReviewed:
			reviewed++
		case StatusSkipped:
			skipped++
		case StatusInaccessible:
			inaccessible++
		case StatusError:
			failed++
		}
	}
	return
}
