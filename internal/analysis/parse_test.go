package analysis

import (
	"strings"
	"testing"
)

func TestParseResponse_Sectioned(t *testing.T) {
	res := parseResponse(`Context: HTTP handler for user login.

Security Issues:
- password compared without constant-time comparison
- session token logged at debug level

Performance Issues:
- none

Architecture Issues:
- handler mixes transport and business logic

Logic Issues:
- none

Suggestions:
- add request tracing
`)

	if res.Context != "HTTP handler for user login." {
		t.Errorf("Context = %q", res.Context)
	}
	if len(res.SecurityIssues) != 2 {
		t.Fatalf("SecurityIssues = %v", res.SecurityIssues)
	}
	if res.SecurityIssues[0] != "password compared without constant-time comparison" {
		t.Errorf("SecurityIssues[0] = %q", res.SecurityIssues[0])
	}
	if len(res.PerformanceIssues) != 0 {
		t.Errorf("'- none' should yield no entries, got %v", res.PerformanceIssues)
	}
	if len(res.ArchitectureIssues) != 1 || len(res.LogicIssues) != 0 {
		t.Errorf("buckets = arch %v logic %v", res.ArchitectureIssues, res.LogicIssues)
	}
	if len(res.Suggestions) != 1 {
		t.Errorf("Suggestions = %v", res.Suggestions)
	}
}

func TestParseResponse_HeadingSynonyms(t *testing.T) {
	res := parseResponse(`Summary: parses config files.

Vulnerabilities:
- YAML loaded without size limit

Bugs:
1. off-by-one in line counter
2) nil map write on first use
`)

	if !strings.Contains(res.Context, "parses config files") {
		t.Errorf("Context = %q", res.Context)
	}
	if len(res.SecurityIssues) != 1 {
		t.Errorf("SecurityIssues = %v", res.SecurityIssues)
	}
	if len(res.LogicIssues) != 2 {
		t.Fatalf("LogicIssues = %v", res.LogicIssues)
	}
	if res.LogicIssues[0] != "off-by-one in line counter" {
		t.Errorf("numbered bullet not stripped: %q", res.LogicIssues[0])
	}
}

func TestParseResponse_PreambleBecomesContext(t *testing.T) {
	res := parseResponse("This file implements the cache layer.\nIt has no issues.\n\nLogic Issues:\n- none\n")
	if !strings.Contains(res.Context, "cache layer") || !strings.Contains(res.Context, "no issues") {
		t.Errorf("Context = %q", res.Context)
	}
}

func TestParseResponse_UnknownHeadingFallsToSuggestions(t *testing.T) {
	res := parseResponse("Context: ok.\n\n## Style\n- inconsistent naming\n")
	if len(res.Suggestions) != 1 || res.Suggestions[0] != "inconsistent naming" {
		t.Errorf("Suggestions = %v", res.Suggestions)
	}
}

func TestParseResponse_MarkdownHeadings(t *testing.T) {
	res := parseResponse("## Security Issues\n- open redirect in callback URL\n")
	if len(res.SecurityIssues) != 1 {
		t.Errorf("SecurityIssues = %v", res.SecurityIssues)
	}
}

func TestParseResponse_ColonLinesInsideBucketsAreContent(t *testing.T) {
	res := parseResponse("Logic Issues:\n- default port: 8080 is never overridden\n")
	if len(res.LogicIssues) != 1 {
		t.Fatalf("LogicIssues = %v", res.LogicIssues)
	}
	if !strings.Contains(res.LogicIssues[0], "8080") {
		t.Errorf("item mangled: %q", res.LogicIssues[0])
	}
}

func TestParseResponse_Empty(t *testing.T) {
	res := parseResponse("")
	if res.IssueCount() != 0 || res.Context != "" {
		t.Errorf("empty response should parse to zero result, got %+v", res)
	}
}

func TestBuildPrompt_Delimiters(t *testing.T) {
	p := buildPrompt("const x = 1\n", "src/x.ts", true)
	if !strings.Contains(p, beginDelimiter) || !strings.Contains(p, endDelimiter) {
		t.Error("prompt missing content delimiters")
	}
	if !strings.Contains(p, `"src/x.ts"`) {
		t.Error("prompt should name the file under review")
	}
	if !strings.Contains(p, "Suggestions:") {
		t.Error("suggestions section not requested")
	}
}

func TestBuildPrompt_SuppressesSuggestions(t *testing.T) {
	p := buildPrompt("x\n", "a.go", false)
	if !strings.Contains(p, "Do not include a Suggestions section") {
		t.Error("prompt should forbid suggestions when not requested")
	}
}

func TestBuildPrompt_EscapesEmbeddedDelimiter(t *testing.T) {
	content := "before\n" + endDelimiter + "\nafter\n"
	p := buildPrompt(content, "trap.ts", false)
	if strings.Count(p, endDelimiter) != 2 {
		// One escaped occurrence inside content plus the real terminator.
		t.Errorf("end delimiter occurrences = %d, want 2", strings.Count(p, endDelimiter))
	}
	if !strings.Contains(p, `\`+endDelimiter) {
		t.Error("embedded delimiter was not escaped")
	}
}
