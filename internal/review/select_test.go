package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/critic/internal/gitstatus"
)

func TestParseType(t *testing.T) {
	for _, s := range []string{"staged", "modified", "full"} {
		got, err := ParseType(s)
		require.NoError(t, err)
		assert.Equal(t, Type(s), got)
	}

	_, err := ParseType("everything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "everything")
}

func TestFilesForReview_TypeScope(t *testing.T) {
	st := gitstatus.Status{
		Staged:    []string{"a.ts"},
		Modified:  []string{"b.ts"},
		Untracked: []string{"c.ts"},
		Deleted:   []string{"gone.ts"},
	}
	opts := SelectOptions{}

	assert.Equal(t, []string{"a.ts"}, FilesForReview(st, TypeStaged, opts))
	assert.Equal(t, []string{"a.ts", "b.ts"}, FilesForReview(st, TypeModified, opts))
	assert.Equal(t, []string{"a.ts", "b.ts", "c.ts"}, FilesForReview(st, TypeFull, opts))
}

// Each review type must select a superset of the narrower one.
func TestFilesForReview_Monotonic(t *testing.T) {
	st := gitstatus.Status{
		Staged:    []string{"x.go", "shared.go"},
		Modified:  []string{"shared.go", "y.go"},
		Untracked: []string{"z.go", "x.go"},
	}
	opts := SelectOptions{}

	staged := FilesForReview(st, TypeStaged, opts)
	modified := FilesForReview(st, TypeModified, opts)
	full := FilesForReview(st, TypeFull, opts)

	assert.Subset(t, modified, staged)
	assert.Subset(t, full, modified)
}

func TestFilesForReview_DedupKeepsFirstSeen(t *testing.T) {
	st := gitstatus.Status{
		Staged:   []string{"app.ts"},
		Modified: []string{"app.ts", "other.ts"},
	}
	got := FilesForReview(st, TypeModified, SelectOptions{})
	assert.Equal(t, []string{"app.ts", "other.ts"}, got)
}

func TestFilesForReview_CaseInsensitiveDedup(t *testing.T) {
	st := gitstatus.Status{
		Staged:   []string{"README.md"},
		Modified: []string{"readme.md"},
	}

	insensitive := FilesForReview(st, TypeModified, SelectOptions{})
	assert.Equal(t, []string{"README.md"}, insensitive)

	sensitive := FilesForReview(st, TypeModified, SelectOptions{CaseSensitive: true})
	assert.Len(t, sensitive, 2)
}

func TestFilesForReview_ExtensionFilter(t *testing.T) {
	st := gitstatus.Status{
		Staged: []string{"main.go", "logo.png", "notes.TXT", "script.TS"},
	}
	got := FilesForReview(st, TypeStaged, SelectOptions{Extensions: []string{".go", ".ts"}})
	assert.Equal(t, []string{"main.go", "script.TS"}, got)
}

func TestFilesForReview_DeletedNeverSelected(t *testing.T) {
	st := gitstatus.Status{Deleted: []string{"gone.go"}}
	assert.Empty(t, FilesForReview(st, TypeFull, SelectOptions{}))
}
