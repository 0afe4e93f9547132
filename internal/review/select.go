package review

import (
	"path/filepath"
	"strings"

	"github.com/dshills/critic/internal/gitstatus"
)

// SelectOptions tunes file selection. An empty Extensions list admits every
// extension. CaseSensitive controls whether paths differing only in case are
// treated as distinct files.
type SelectOptions struct {
	Extensions    []string
	CaseSensitive bool
}

// FilesForReview picks the candidate set for a review type:
//
//	staged    staged files only
//	modified  staged plus working-tree modified
//	full      modified plus untracked
//
// Within one type the sources are unioned in first-seen order, so a file both
// staged and modified appears once, at its staged position. Deleted files are
// never candidates.
func FilesForReview(st gitstatus.Status, t Type, opts SelectOptions) []string {
	var sources [][]string
	switch t {
	case TypeStaged:
		sources = [][]string{st.Staged}
	case TypeModified:
		sources = [][]string{st.Staged, st.Modified}
	case TypeFull:
		sources = [][]string{st.Staged, st.Modified, st.Untracked}
	default:
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	for _, src := range sources {
		for _, path := range src {
			if !extensionAllowed(path, opts.Extensions) {
				continue
			}
			key := path
			if !opts.CaseSensitive {
				key = strings.ToLower(path)
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, path)
		}
	}
	return out
}

func extensionAllowed(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range extensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}
