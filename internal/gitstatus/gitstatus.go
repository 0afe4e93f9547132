package gitstatus

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Status is a snapshot of the working tree and index at read time.
// A path can legitimately appear in both Staged and Modified when it was
// staged and then edited again; the parser preserves that duplication.
type Status struct {
	Branch    string   `json:"branch"`
	Ahead     int      `json:"ahead"`
	Behind    int      `json:"behind"`
	Staged    []string `json:"staged"`
	Modified  []string `json:"modified"`
	Untracked []string `json:"untracked"`
	Deleted   []string `json:"deleted"`
}

// AccessError indicates the repository could not be queried at all.
// Its message is intentionally generic; the underlying git error (which can
// contain stderr text and absolute paths) stays behind Unwrap.
type AccessError struct {
	Op  string
	Err error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("repository access failed (%s): not a git repository or git is unavailable", e.Op)
}

func (e *AccessError) Unwrap() error { return e.Err }

const defaultTimeout = 10 * time.Second

// Reader runs read-only status queries against a repository.
type Reader struct {
	timeout time.Duration
}

// NewReader creates a Reader. A non-positive timeout selects the default.
func NewReader(timeout time.Duration) *Reader {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Reader{timeout: timeout}
}

// Read produces a fresh Status for the repository at repoPath. Results are
// never cached: the underlying repository can change between calls.
func (r *Reader) Read(ctx context.Context, repoPath string) (Status, error) {
	branch, err := r.git(ctx, repoPath, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return Status{}, &AccessError{Op: "branch", Err: err}
	}

	ahead, behind, err := r.aheadBehind(ctx, repoPath)
	if err != nil {
		return Status{}, &AccessError{Op: "ahead-behind", Err: err}
	}

	porcelain, err := r.git(ctx, repoPath, "status", "--porcelain")
	if err != nil {
		return Status{}, &AccessError{Op: "status", Err: err}
	}

	st := parsePorcelain(porcelain)
	st.Branch = strings.TrimSpace(branch)
	st.Ahead = ahead
	st.Behind = behind
	return st, nil
}

// aheadBehind returns commit counts relative to the configured upstream.
// A missing upstream is common and not an error; only that specific failure
// is folded to 0/0.
func (r *Reader) aheadBehind(ctx context.Context, repoPath string) (ahead, behind int, err error) {
	out, err := r.git(ctx, repoPath, "rev-list", "--left-right", "--count", "@{upstream}...HEAD")
	if err != nil {
		if isNoUpstream(err) {
			return 0, 0, nil
		}
		return 0, 0, err
	}
	return parseAheadBehind(out)
}

// parseAheadBehind parses "rev-list --left-right --count @{upstream}...HEAD"
// output: "<behind>\t<ahead>".
func parseAheadBehind(out string) (ahead, behind int, err error) {
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list count output")
	}
	behind, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing behind count: %w", err)
	}
	ahead, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing ahead count: %w", err)
	}
	return ahead, behind, nil
}

// parsePorcelain classifies porcelain-v1 status lines.
//
// Classification rules:
//   - index character in {A, M, R}  => staged
//   - working-tree character == M   => modified (independent of the index)
//   - both characters == ?          => untracked
//   - either character == D         => deleted
//
// Rename entries ("old -> new") keep only the new path.
func parsePorcelain(out string) Status {
	var st Status
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		index, work := line[0], line[1]
		path := line[3:]
		if i := strings.Index(path, " -> "); i >= 0 {
			path = path[i+len(" -> "):]
		}

		if index == 'A' || index == 'M' || index == 'R' {
			st.Staged = append(st.Staged, path)
		}
		if work == 'M' {
			st.Modified = append(st.Modified, path)
		}
		if index == '?' && work == '?' {
			st.Untracked = append(st.Untracked, path)
		}
		if index == 'D' || work == 'D' {
			st.Deleted = append(st.Deleted, path)
		}
	}
	return st
}

// isNoUpstream reports whether a git failure is the "no upstream configured"
// case, as opposed to a genuinely broken repository.
func isNoUpstream(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no upstream") ||
		strings.Contains(msg, "does not point to a branch")
}

func (r *Reader) git(ctx context.Context, repoPath string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", repoPath}, args...)...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("git %s: %s: %s", args[0], err, string(exitErr.Stderr))
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return string(out), nil
}
