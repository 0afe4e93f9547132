package gitstatus

import (
	"errors"
	"strings"
	"testing"
)

func TestParsePorcelain_StagedAndModified(t *testing.T) {
	// Staged then re-edited: index=M, worktree=M. The path must land in both lists.
	st := parsePorcelain("MM src/app.ts\n")

	if len(st.Staged) != 1 || st.Staged[0] != "src/app.ts" {
		t.Errorf("Staged = %v, want [src/app.ts]", st.Staged)
	}
	if len(st.Modified) != 1 || st.Modified[0] != "src/app.ts" {
		t.Errorf("Modified = %v, want [src/app.ts]", st.Modified)
	}
}

func TestParsePorcelain_IndexCodes(t *testing.T) {
	for _, code := range []string{"A ", "M ", "R "} {
		st := parsePorcelain(code + " a.go\n")
		if len(st.Staged) != 1 {
			t.Errorf("code %q: Staged = %v, want one entry", code, st.Staged)
		}
		if len(st.Modified) != 0 {
			t.Errorf("code %q: Modified = %v, want empty", code, st.Modified)
		}
	}
}

func TestParsePorcelain_WorktreeModifiedOnly(t *testing.T) {
	st := parsePorcelain(" M a.go\n")
	if len(st.Modified) != 1 || st.Modified[0] != "a.go" {
		t.Errorf("Modified = %v, want [a.go]", st.Modified)
	}
	if len(st.Staged) != 0 {
		t.Errorf("Staged = %v, want empty", st.Staged)
	}
}

func TestParsePorcelain_Untracked(t *testing.T) {
	st := parsePorcelain("?? new.go\n")
	if len(st.Untracked) != 1 || st.Untracked[0] != "new.go" {
		t.Errorf("Untracked = %v, want [new.go]", st.Untracked)
	}
	if len(st.Staged) != 0 || len(st.Modified) != 0 || len(st.Deleted) != 0 {
		t.Errorf("untracked path leaked into other lists: %+v", st)
	}
}

func TestParsePorcelain_Deleted(t *testing.T) {
	// "D " deleted in index; " D" deleted in worktree; "AD" added then deleted.
	st := parsePorcelain("D  gone.go\nAD also.go\n")
	st2 := parsePorcelain(" D gone.go\n")
	if len(st.Deleted) != 2 {
		t.Errorf("Deleted = %v, want 2 entries", st.Deleted)
	}
	if len(st2.Deleted) != 1 {
		t.Errorf("worktree-deleted path missing from Deleted: %+v", st2)
	}
}

func TestParsePorcelain_RenameKeepsNewPath(t *testing.T) {
	st := parsePorcelain("R  old_name.go -> new_name.go\n")
	if len(st.Staged) != 1 || st.Staged[0] != "new_name.go" {
		t.Errorf("Staged = %v, want [new_name.go]", st.Staged)
	}
}

func TestParsePorcelain_MultipleLines(t *testing.T) {
	out := "M  a.go\n?? b.go\nMM c.go\n D d.go\n"
	st := parsePorcelain(out)

	if len(st.Staged) != 2 {
		t.Errorf("Staged = %v, want 2 entries", st.Staged)
	}
	if len(st.Modified) != 1 || st.Modified[0] != "c.go" {
		t.Errorf("Modified = %v, want [c.go]", st.Modified)
	}
	if len(st.Untracked) != 1 {
		t.Errorf("Untracked = %v, want 1 entry", st.Untracked)
	}
	if len(st.Deleted) != 1 || st.Deleted[0] != "d.go" {
		t.Errorf("Deleted = %v, want [d.go]", st.Deleted)
	}
}

func TestParsePorcelain_EmptyAndShortLines(t *testing.T) {
	st := parsePorcelain("\nM\n??\n")
	if len(st.Staged)+len(st.Modified)+len(st.Untracked)+len(st.Deleted) != 0 {
		t.Errorf("short lines should be ignored, got %+v", st)
	}
}

func TestParseAheadBehind(t *testing.T) {
	ahead, behind, err := parseAheadBehind("2\t5\n")
	if err != nil {
		t.Fatalf("parseAheadBehind error: %v", err)
	}
	if behind != 2 || ahead != 5 {
		t.Errorf("got ahead=%d behind=%d, want ahead=5 behind=2", ahead, behind)
	}
}

func TestParseAheadBehind_Malformed(t *testing.T) {
	if _, _, err := parseAheadBehind("garbage"); err == nil {
		t.Error("expected error for malformed count output")
	}
}

func TestIsNoUpstream(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{errors.New("git rev-list: exit status 128: fatal: no upstream configured for branch 'main'"), true},
		{errors.New("fatal: HEAD does not point to a branch"), true},
		{errors.New("fatal: not a git repository"), false},
	}
	for _, tc := range cases {
		if got := isNoUpstream(tc.err); got != tc.want {
			t.Errorf("isNoUpstream(%q) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestAccessError_Generalized(t *testing.T) {
	inner := errors.New("fatal: /home/user/secret-project/.git not found")
	err := &AccessError{Op: "status", Err: inner}

	msg := err.Error()
	if msg == "" {
		t.Fatal("empty error message")
	}
	// The user-facing message must not leak the underlying path.
	if strings.Contains(msg, "secret-project") {
		t.Errorf("AccessError message leaks underlying detail: %q", msg)
	}
	if !errors.Is(err, inner) {
		t.Error("AccessError should unwrap to the underlying error")
	}
}
