// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks source-independent constraints of the merged
// [StructuredConfig]: values that are set must be usable.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Breach.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout %s", ErrInvalidBreachConfigs, cfg.Breach.RequestTimeout)
	}

	return nil
}

func (cfg *CheckerConfig) validate() error {
	u, err := url.Parse(strings.TrimSpace(cfg.Breach.Endpoint))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: endpoint %q must include scheme and host", ErrInvalidBreachConfigs, cfg.Breach.Endpoint)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported endpoint scheme %q", ErrInvalidBreachConfigs, u.Scheme)
	}

	if cfg.Breach.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidBreachConfigs)
	}

	switch cfg.PromptMode {
	case PromptModeTerminal, PromptModeStdin, PromptModeClipboard, PromptModeTUI:
	default:
		return fmt.Errorf("%w: unknown prompt mode %q", ErrInvalidPromptConfigs, cfg.PromptMode)
	}

	if cfg.LogLevel != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
			return fmt.Errorf("%w: unknown log level %q", ErrInvalidLogConfigs, cfg.LogLevel)
		}
	}

	return nil
}
