// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validCheckerConfig() *CheckerConfig {
	return &CheckerConfig{
		Breach: CheckerBreach{
			Endpoint:       "https://api.pwnedpasswords.com",
			RequestTimeout: 5 * time.Second,
			UserAgent:      "test",
		},
		PromptMode: PromptModeTerminal,
		LogLevel:   "warn",
	}
}

func TestCheckerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *CheckerConfig)
		wantErr error
	}{
		{"valid", func(*CheckerConfig) {}, nil},
		{"plain http endpoint", func(c *CheckerConfig) { c.Breach.Endpoint = "http://127.0.0.1:8080" }, nil},
		{"empty endpoint", func(c *CheckerConfig) { c.Breach.Endpoint = "" }, ErrInvalidBreachConfigs},
		{"endpoint without scheme", func(c *CheckerConfig) { c.Breach.Endpoint = "api.pwnedpasswords.com" }, ErrInvalidBreachConfigs},
		{"ftp endpoint", func(c *CheckerConfig) { c.Breach.Endpoint = "ftp://example.com" }, ErrInvalidBreachConfigs},
		{"zero timeout", func(c *CheckerConfig) { c.Breach.RequestTimeout = 0 }, ErrInvalidBreachConfigs},
		{"unknown prompt", func(c *CheckerConfig) { c.PromptMode = "voice" }, ErrInvalidPromptConfigs},
		{"empty prompt", func(c *CheckerConfig) { c.PromptMode = "" }, ErrInvalidPromptConfigs},
		{"unknown log level", func(c *CheckerConfig) { c.LogLevel = "loud" }, ErrInvalidLogConfigs},
		{"empty log level", func(c *CheckerConfig) { c.LogLevel = "" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validCheckerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
