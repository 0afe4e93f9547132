package redact

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

const placeholder = "[REDACTED]"

// rule pairs a secret shape with a name so pattern failures are debuggable.
type rule struct {
	name    string
	pattern *regexp.Regexp
}

var builtinRules = []rule{
	{"generic-api-key", regexp.MustCompile(`(?i)(api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?([A-Za-z0-9/+=_-]{20,})["']?`)},
	{"aws-access-key-id", regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
	{"aws-secret-access-key", regexp.MustCompile(`(?i)(aws[_-]?secret[_-]?access[_-]?key)\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`)},
	{"assignment-secret", regexp.MustCompile(`(?i)(secret|token|password|passwd|credential)\s*[:=]\s*["']([^"']{8,})["']`)},
	{"bearer-token", regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`)},
	{"jwt", regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`)},
	{"private-key-block", regexp.MustCompile(`-----BEGIN\s+(RSA\s+)?PRIVATE KEY-----`)},
	{"github-token", regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`)},
	{"slack-token", regexp.MustCompile(`xox[bporas]-[A-Za-z0-9-]{10,}`)},
	{"anthropic-key", regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`)},
	{"openai-key", regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`)},
	{"hex-secret", regexp.MustCompile(`(?i)(key|secret|token)\s*[:=]\s*["']?[0-9a-f]{32,}["']?`)},
}

// Redactor scrubs secret material from file content before it is embedded in
// a backend prompt. Instances are immutable after construction, so one
// Redactor is safe to share across concurrent analysis tasks.
type Redactor struct {
	rules     []rule
	pathGlobs []string
}

// New builds a Redactor from the built-in rules plus any extra patterns from
// configuration. pathGlobs name files whose entire content is replaced rather
// than scanned (e.g. "**/.env").
func New(extraPatterns, pathGlobs []string) (*Redactor, error) {
	rules := make([]rule, len(builtinRules), len(builtinRules)+len(extraPatterns))
	copy(rules, builtinRules)
	for _, p := range extraPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid redaction pattern %q: %w", p, err)
		}
		rules = append(rules, rule{name: "custom", pattern: re})
	}
	return &Redactor{rules: rules, pathGlobs: pathGlobs}, nil
}

// Secrets replaces every detected secret in text with [REDACTED].
func (r *Redactor) Secrets(text string) string {
	out := text
	for _, ru := range r.rules {
		out = ru.pattern.ReplaceAllString(out, placeholder)
	}
	return out
}

// Content prepares file content for prompting: content of path-matched files
// is dropped wholesale, everything else goes through secret scanning.
func (r *Redactor) Content(content, path string) string {
	if r.matchesPathGlob(path) {
		return placeholder + " (file content withheld by path policy)\n"
	}
	return r.Secrets(content)
}

func (r *Redactor) matchesPathGlob(path string) bool {
	for _, pattern := range r.pathGlobs {
		if ok, err := filepath.Match(pattern, path); err == nil && ok {
			return true
		}
		// "**/.env" style patterns also match on the basename.
		if clean := strings.TrimPrefix(pattern, "**/"); clean != pattern {
			if ok, err := filepath.Match(clean, filepath.Base(path)); err == nil && ok {
				return true
			}
		}
	}
	return false
}
