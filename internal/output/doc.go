// Package output renders review results in text, JSON, and markdown formats.
//
// The text writer targets terminals and uses lipgloss styling, which degrades
// to plain text when stdout is not a TTY. JSON output is stable and intended
// for tooling; markdown is shaped for PR descriptions.
package output
