package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/dshills/critic/internal/backend"
	"github.com/dshills/critic/internal/cache"
	"github.com/dshills/critic/internal/redact"
)

// Strategy kinds accepted by New.
const (
	KindAI     = "ai"
	KindStatic = "static"
)

// Deps carries the collaborators a strategy may need. Cache and Redactor are
// optional; Client is required for the AI strategy. Model feeds the response
// cache key so different models never share entries.
type Deps struct {
	Client   backend.Client
	Model    string
	Cache    *cache.Cache
	Redactor *redact.Redactor
}

// fallible is the internal strategy surface. The guard wrapper turns its
// errors and panics into degraded Results before callers see them.
type fallible interface {
	analyze(ctx context.Context, content, path string, includeSuggestions bool) (Result, error)
	name() string
}

// New builds the named strategy. Requesting the AI strategy without a backend
// client is a configuration error, reported here rather than surfacing later
// as per-file failures.
func New(kind string, deps Deps) (Strategy, error) {
	switch kind {
	case KindAI:
		if deps.Client == nil {
			return nil, errors.New("ai analysis requires a configured backend client")
		}
		s := &aiStrategy{client: deps.Client, model: deps.Model}
		// Interface fields must stay untyped-nil when the collaborator is
		// absent, so the strategy's nil checks keep working.
		if deps.Cache != nil {
			s.cache = deps.Cache
		}
		if deps.Redactor != nil {
			s.redactor = deps.Redactor
		}
		return guard{inner: s}, nil
	case KindStatic:
		return guard{inner: &staticStrategy{}}, nil
	default:
		return nil, fmt.Errorf("unknown analysis strategy: %s", kind)
	}
}

// guard adapts a fallible strategy to the non-failing Strategy contract.
type guard struct {
	inner fallible
}

func (g guard) Name() string { return g.inner.name() }

func (g guard) Analyze(ctx context.Context, content, path string, includeSuggestions bool) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Degraded(path, fmt.Errorf("internal failure: %v", r))
		}
	}()
	res, err := g.inner.analyze(ctx, content, path, includeSuggestions)
	if err != nil {
		return Degraded(path, err)
	}
	return res
}
