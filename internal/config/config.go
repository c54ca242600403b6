// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pwned-check application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Breach holds the range API endpoint and request settings.
	Breach Breach `envPrefix:"BREACH_"`

	// Prompt selects how the candidate secret is acquired.
	Prompt Prompt `envPrefix:"PROMPT_"`

	// Output controls how the result line is rendered.
	Output Output `envPrefix:"OUTPUT_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// ShowVersion is set by the -version flag only.
	ShowVersion bool
}

// Breach holds settings for the k-anonymity range API.
type Breach struct {
	// Endpoint is the base URL of the range API; "/range/{PREFIX}" is
	// appended to it (e.g. "https://api.pwnedpasswords.com").
	// Env: BREACH_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// RequestTimeout bounds the single range request (e.g. "10s").
	// Env: BREACH_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every request. The public API rejects requests
	// without one.
	// Env: BREACH_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// AddPadding asks the API to pad responses with zero-count entries so
	// that response size does not leak the prefix population.
	// Env: BREACH_ADD_PADDING
	AddPadding bool `env:"ADD_PADDING"`
}

// Prompt holds the secret acquisition settings.
type Prompt struct {
	// Mode is one of the PromptMode* constants.
	// Env: PROMPT_MODE
	Mode string `env:"MODE"`
}

// Output holds result rendering settings.
type Output struct {
	// NoColor disables lipgloss styling of the result line.
	// Env: OUTPUT_NO_COLOR
	NoColor bool `env:"NO_COLOR"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is an optional path the JSON log is appended to. Stderr is used
	// when empty.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Prompt modes.
const (
	PromptModeTerminal  = "terminal"
	PromptModeStdin     = "stdin"
	PromptModeClipboard = "clipboard"
	PromptModeTUI       = "tui"
)

// Defaults applied to every field left empty by the other sources.
const (
	DefaultEndpoint       = "https://api.pwnedpasswords.com"
	DefaultRequestTimeout = 10 * time.Second
	DefaultUserAgent      = "go-pwned-check"
	DefaultPromptMode     = PromptModeTerminal
	DefaultLogLevel       = "warn"
)

// GetStructuredConfig loads and merges the application configuration from all
// available sources for the given command-line arguments (without the
// program name).
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
