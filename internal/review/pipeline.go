package review

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dshills/critic/internal/analysis"
	"github.com/dshills/critic/internal/dispatch"
	"github.com/dshills/critic/internal/gitstatus"
	"github.com/dshills/critic/internal/pathsec"
	"github.com/dshills/critic/internal/suitability"
)

// StatusReader abstracts repository status access so tests can run the full
// pipeline against a fixed status without a git binary.
type StatusReader interface {
	Read(ctx context.Context, repoPath string) (gitstatus.Status, error)
}

// Request describes one review run.
type Request struct {
	RepoPath           string
	Type               Type
	IncludeSuggestions bool
	Analyzer           analysis.Strategy
}

// Pipeline wires status reading, selection, path security, suitability
// filtering, and bounded-concurrency analysis into one run. Configuration
// errors and repository access failures abort the run; everything that goes
// wrong with an individual file is recorded in that file's entry instead.
type Pipeline struct {
	Status             StatusReader
	Limits             suitability.Limits
	Concurrency        int
	CaseSensitivePaths bool
}

// Execute runs the pipeline. The returned error is non-nil only for failures
// that invalidate the whole run; per-file failures appear as entries with a
// non-reviewed status.
func (p *Pipeline) Execute(ctx context.Context, req Request) (*Result, error) {
	if req.Analyzer == nil {
		return nil, errors.New("review requires a configured analysis strategy")
	}
	status := p.Status
	if status == nil {
		status = gitstatus.NewReader(0)
	}

	st, err := status.Read(ctx, req.RepoPath)
	if err != nil {
		return nil, err
	}

	resolver, err := pathsec.NewResolver(req.RepoPath)
	if err != nil {
		return nil, err
	}
	resolver.SetCaseSensitive(p.CaseSensitivePaths)

	filter, err := suitability.New(p.Limits)
	if err != nil {
		return nil, err
	}

	files := FilesForReview(st, req.Type, SelectOptions{
		Extensions:    p.Limits.Extensions,
		CaseSensitive: p.CaseSensitivePaths,
	})

	outcomes := dispatch.Map(ctx, files, p.Concurrency, func(ctx context.Context, path string) (ReviewedFile, error) {
		return p.reviewOne(ctx, resolver, filter, req, path), nil
	})

	res := &Result{
		Files:      make([]ReviewedFile, len(outcomes)),
		Repository: st,
	}
	for i, out := range outcomes {
		if out.Err != nil {
			// Dispatcher-level failure (panic, cancelled before start). The
			// underlying error can reference internals, so the record stays
			// generic.
			res.Files[i] = ReviewedFile{
				Path:   files[i],
				Status: StatusError,
				Reason: "internal error during review",
			}
			continue
		}
		res.Files[i] = out.Value
	}

	res.Summary = buildSummary(res)
	return res, nil
}

// reviewOne walks a single file through its terminal states. The path in the
// returned record is always the repo-relative one from git, never an absolute
// filesystem path.
func (p *Pipeline) reviewOne(ctx context.Context, resolver *pathsec.Resolver, filter *suitability.Filter, req Request, path string) ReviewedFile {
	abs, err := resolver.Resolve(path)
	if err != nil {
		return ReviewedFile{Path: path, Status: StatusError, Reason: err.Error()}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return ReviewedFile{Path: path, Status: StatusInaccessible, Reason: "file is not accessible"}
	}
	if info.IsDir() {
		return ReviewedFile{Path: path, Status: StatusInaccessible, Reason: "path is a directory"}
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return ReviewedFile{Path: path, Status: StatusInaccessible, Reason: "file could not be read"}
	}
	content := string(data)

	if verdict := filter.Check(path, content); !verdict.Suitable {
		return ReviewedFile{Path: path, Status: StatusSkipped, Reason: verdict.Reason}
	}

	result := req.Analyzer.Analyze(ctx, content, path, req.IncludeSuggestions)
	return ReviewedFile{Path: path, Status: StatusReviewed, Analysis: &result}
}

func buildSummary(res *Result) string {
	reviewed, skipped, inaccessible, failed := res.Counts()
	s := fmt.Sprintf("Reviewed %d of %d files on branch %s",
		reviewed, len(res.Files), res.Repository.Branch)
	if skipped > 0 {
		s += fmt.Sprintf(", %d skipped", skipped)
	}
	if inaccessible > 0 {
		s += fmt.Sprintf(", %d inaccessible", inaccessible)
	}
	if failed > 0 {
		s += fmt.Sprintf(", %d failed", failed)
	}
	if issues := res.IssueCount(); issues > 0 {
		s += fmt.Sprintf("; %d issues found", issues)
	} else if reviewed > 0 {
		s += "; no issues found"
	}
	return s + "."
}
