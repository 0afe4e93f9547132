// Package backend implements the Client interface for each supported
// external review backend.
//
// Supported backends: Anthropic (Claude) and Ollama / LM Studio for local
// models. A [MockClient] with deterministic output stands in for either
// during tests and offline runs.
//
// All backends share a retry helper with exponential back-off for rate-limit
// and server errors; auth failures surface immediately as typed errors that
// [IsAuthError] recognizes. Timeouts are enforced at the HTTP client, so a
// hung backend call degrades a single file's analysis instead of hanging the
// batch.
package backend
