// Package redact removes secrets from file content before it is sent to any
// analysis backend.
//
// Detection uses regex heuristics covering common secret shapes: API keys,
// JWTs, private key blocks, AWS credentials, bearer tokens, and
// provider-specific token formats. Extra patterns can be supplied from
// configuration.
//
// Path-based redaction is also supported: files whose paths match configured
// glob patterns have their entire content withheld rather than scanned.
package redact
