package backend

import (
	"context"
	"fmt"
)

// Client is the single contract the analysis layer needs from an external
// review backend: prompt text in, response text out. No structure is assumed
// on the response; parsing is the strategy's problem.
type Client interface {
	Analyze(ctx context.Context, prompt string) (string, error)
	Name() string
}

// New creates a Client by provider name.
func New(provider, model string) (Client, error) {
	switch provider {
	case "anthropic":
		return NewAnthropic(model)
	case "ollama", "lmstudio":
		return NewOllama(model)
	case "mock":
		return NewMock(""), nil
	default:
		return nil, fmt.Errorf("unknown backend provider: %s", provider)
	}
}
