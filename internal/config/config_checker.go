// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// CheckerBreach holds the range API settings used by the HTTP adapter.
type CheckerBreach struct {
	// Endpoint is the range API base URL.
	Endpoint string
	// RequestTimeout bounds the single outbound request.
	RequestTimeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
	// AddPadding enables the Add-Padding request header.
	AddPadding bool
}

// CheckerConfig is the validated configuration view consumed by the
// pwncheck CLI, assembled from [StructuredConfig].
type CheckerConfig struct {
	// Breach contains range API settings.
	Breach CheckerBreach
	// PromptMode selects the secret source.
	PromptMode string
	// NoColor disables styled output.
	NoColor bool
	// LogLevel and LogFile configure the client logger.
	LogLevel string
	LogFile  string
	// ShowVersion asks the CLI to print build info and exit.
	ShowVersion bool
}

// GetCheckerConfig builds and validates a checker-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the checker runtime, and validates the resulting
// [CheckerConfig].
func GetCheckerConfig(args []string) (*CheckerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	checkerCfg := newCheckerConfig(cfg)

	return checkerCfg, checkerCfg.validate()
}

func newCheckerConfig(cfg *StructuredConfig) *CheckerConfig {
	return &CheckerConfig{
		Breach: CheckerBreach{
			Endpoint:       cfg.Breach.Endpoint,
			RequestTimeout: cfg.Breach.RequestTimeout,
			UserAgent:      cfg.Breach.UserAgent,
			AddPadding:     cfg.Breach.AddPadding,
		},
		PromptMode:  cfg.Prompt.Mode,
		NoColor:     cfg.Output.NoColor,
		LogLevel:    cfg.Log.Level,
		LogFile:     cfg.Log.File,
		ShowVersion: cfg.ShowVersion,
	}
}
