// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by the validate methods when a configuration
// group is incomplete or invalid.
var (
	// ErrInvalidBreachConfigs indicates invalid range API settings (for
	// example, an endpoint without scheme and host, or a non-positive
	// request timeout).
	ErrInvalidBreachConfigs = errors.New("invalid breach service configuration")
	// ErrInvalidPromptConfigs indicates an unknown prompt mode.
	ErrInvalidPromptConfigs = errors.New("invalid prompt configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
