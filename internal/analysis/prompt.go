package analysis

import (
	"fmt"
	"strings"
)

const (
	beginDelimiter = "--- BEGIN FILE ---"
	endDelimiter   = "--- END FILE ---"
)

// delimiterEscaper neutralizes content lines that collide with the prompt
// delimiters, so file content cannot terminate its own block early.
var delimiterEscaper = strings.NewReplacer(
	beginDelimiter, `\`+beginDelimiter,
	endDelimiter, `\`+endDelimiter,
)

func escapeDelimiters(content string) string {
	return delimiterEscaper.Replace(content)
}

// buildPrompt assembles the review instruction around the (already redacted)
// file content. The response format it requests is the one parseResponse
// understands.
func buildPrompt(content, path string, includeSuggestions bool) string {
	var b strings.Builder

	b.WriteString("You are a senior software engineer performing a code review.\n")
	b.WriteString(fmt.Sprintf("Review the file %q below and report concrete findings.\n\n", path))

	b.WriteString("Structure your response with exactly these headings:\n")
	b.WriteString("Context: one or two sentences describing what the file does.\n")
	b.WriteString("Security Issues: bullet list, or \"- none\".\n")
	b.WriteString("Performance Issues: bullet list, or \"- none\".\n")
	b.WriteString("Architecture Issues: bullet list, or \"- none\".\n")
	b.WriteString("Logic Issues: bullet list, or \"- none\".\n")
	if includeSuggestions {
		b.WriteString("Suggestions: bullet list of optional improvements, or \"- none\".\n")
	} else {
		b.WriteString("Do not include a Suggestions section.\n")
	}
	b.WriteString("\nReport only findings you are confident about. Do not restate the code.\n\n")

	b.WriteString(beginDelimiter)
	b.WriteString("\n")
	b.WriteString(escapeDelimiters(content))
	if !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(endDelimiter)
	b.WriteString("\n")

	return b.String()
}
