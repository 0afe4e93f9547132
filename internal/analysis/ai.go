package analysis

import (
	"context"
	"fmt"

	"github.com/dshills/critic/internal/cache"
)

// aiStrategy sends redacted file content to a backend model and parses the
// sectioned response. Responses are cached by prompt digest when a cache is
// configured.
type aiStrategy struct {
	client   clientIface
	model    string
	cache    cacheIface
	redactor redactorIface
}

// Narrow views of the collaborators, so tests can substitute them without
// standing up the real packages.
type clientIface interface {
	Analyze(ctx context.Context, prompt string) (string, error)
	Name() string
}

type cacheIface interface {
	Get(key string) (string, bool)
	Put(key, response string) error
}

type redactorIface interface {
	Content(content, path string) string
}

func (s *aiStrategy) name() string { return "ai" }

func (s *aiStrategy) analyze(ctx context.Context, content, path string, includeSuggestions bool) (Result, error) {
	if s.redactor != nil {
		content = s.redactor.Content(content, path)
	}
	prompt := buildPrompt(content, path, includeSuggestions)

	response, err := s.fetch(ctx, prompt)
	if err != nil {
		return Result{}, err
	}

	res := parseResponse(response)
	if !includeSuggestions {
		res.Suggestions = nil
	}
	return res, nil
}

func (s *aiStrategy) fetch(ctx context.Context, prompt string) (string, error) {
	var key string
	if s.cache != nil {
		key = cache.Key(s.client.Name(), s.model, prompt)
		if cached, ok := s.cache.Get(key); ok {
			return cached, nil
		}
	}

	response, err := s.client.Analyze(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("backend analysis failed: %w", err)
	}

	if s.cache != nil {
		// A failed cache write only costs a repeat call later.
		_ = s.cache.Put(key, response)
	}
	return response, nil
}
