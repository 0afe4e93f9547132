package backend

import (
	"context"
	"fmt"
)

// MockClient is a deterministic Client for tests and offline runs. When
// Response is set it is returned verbatim for every call; otherwise a
// well-formed sectioned response derived from the prompt length is produced,
// so downstream parsing always has something to chew on.
type MockClient struct {
	Response string
	// Err, when set, is returned by every Analyze call.
	Err error
	// Calls counts Analyze invocations. The mock is not safe for concurrent
	// use when a test inspects Calls while a batch is running.
	Calls int
}

// NewMock creates a MockClient with a fixed response ("" selects the
// generated default).
func NewMock(response string) *MockClient {
	return &MockClient{Response: response}
}

func (m *MockClient) Name() string { return "mock" }

func (m *MockClient) Analyze(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return fmt.Sprintf(`Context: Mock review of a %d-byte prompt.

Security Issues:
- none

Performance Issues:
- none

Architecture Issues:
- none

Logic Issues:
- none

Suggestions:
- none
`, len(prompt)), nil
}
