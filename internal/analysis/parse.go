package analysis

import "strings"

// bucket identifies which Result field a heading feeds.
type bucket int

const (
	bucketNone bucket = iota
	bucketContext
	bucketSecurity
	bucketPerformance
	bucketArchitecture
	bucketLogic
	bucketSuggestions
)

// headingBuckets maps normalized heading text to a Result bucket. Backends
// paraphrase headings more often than they obey them, so common synonyms are
// accepted alongside the requested forms.
var headingBuckets = map[string]bucket{
	"context":             bucketContext,
	"summary":             bucketContext,
	"overview":            bucketContext,
	"security issues":     bucketSecurity,
	"security":            bucketSecurity,
	"vulnerabilities":     bucketSecurity,
	"performance issues":  bucketPerformance,
	"performance":         bucketPerformance,
	"architecture issues": bucketArchitecture,
	"architecture":        bucketArchitecture,
	"design issues":       bucketArchitecture,
	"design":              bucketArchitecture,
	"logic issues":        bucketLogic,
	"logic":               bucketLogic,
	"bugs":                bucketLogic,
	"correctness":         bucketLogic,
	"suggestions":         bucketSuggestions,
	"recommendations":     bucketSuggestions,
	"improvements":        bucketSuggestions,
	"other":               bucketSuggestions,
}

// parseResponse splits a backend response into the five Result buckets by
// heading. Text before the first recognized heading becomes Context, and
// items under unrecognized headings land in Suggestions so nothing the
// backend reported is silently dropped.
func parseResponse(response string) Result {
	var res Result
	current := bucketNone
	var contextLines []string

	for _, rawLine := range strings.Split(response, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if b, rest, ok := matchHeading(line); ok {
			current = b
			if rest != "" {
				appendTo(&res, &contextLines, current, rest)
			}
			continue
		}

		switch current {
		case bucketNone, bucketContext:
			contextLines = append(contextLines, line)
		default:
			appendTo(&res, &contextLines, current, line)
		}
	}

	res.Context = strings.Join(contextLines, " ")
	return res
}

// matchHeading recognizes "Heading:" or "## Heading" style lines. It returns
// the bucket and any trailing text on the same line ("Context: fine.").
func matchHeading(line string) (bucket, string, bool) {
	stripped := strings.TrimLeft(line, "#")
	stripped = strings.TrimSpace(stripped)
	stripped = strings.Trim(stripped, "*")

	name := stripped
	rest := ""
	if i := strings.Index(stripped, ":"); i >= 0 {
		name = stripped[:i]
		rest = strings.TrimSpace(stripped[i+1:])
	}
	name = strings.TrimSpace(strings.Trim(name, "*"))

	b, ok := headingBuckets[strings.ToLower(name)]
	if !ok {
		// Lines with a colon but an unknown left side are content, not
		// headings ("port: 8080"). Bare markdown headings we did not ask for
		// collect under Suggestions.
		if strings.HasPrefix(line, "#") && !strings.Contains(stripped, ":") {
			return bucketSuggestions, "", true
		}
		return bucketNone, "", false
	}
	return b, rest, true
}

func appendTo(res *Result, contextLines *[]string, b bucket, line string) {
	item := stripBullet(line)
	if item == "" || strings.EqualFold(item, "none") || strings.EqualFold(item, "n/a") {
		return
	}
	switch b {
	case bucketContext:
		*contextLines = append(*contextLines, item)
	case bucketSecurity:
		res.SecurityIssues = append(res.SecurityIssues, item)
	case bucketPerformance:
		res.PerformanceIssues = append(res.PerformanceIssues, item)
	case bucketArchitecture:
		res.ArchitectureIssues = append(res.ArchitectureIssues, item)
	case bucketLogic:
		res.LogicIssues = append(res.LogicIssues, item)
	case bucketSuggestions:
		res.Suggestions = append(res.Suggestions, item)
	}
}

// stripBullet removes leading list markers ("-", "*", "1.", "2)").
func stripBullet(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "- ")
	s = strings.TrimPrefix(s, "* ")
	if len(s) > 1 && s[0] >= '0' && s[0] <= '9' {
		i := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i < len(s) && (s[i] == '.' || s[i] == ')') {
			s = strings.TrimSpace(s[i+1:])
		}
	}
	return strings.TrimSpace(s)
}
