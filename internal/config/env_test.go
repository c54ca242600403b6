// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"BREACH_ENDPOINT":        "https://range.example.com",
		"BREACH_REQUEST_TIMEOUT": "3s",
		"BREACH_USER_AGENT":      "agent/1.0",
		"BREACH_ADD_PADDING":     "true",

		"PROMPT_MODE":     "stdin",
		"OUTPUT_NO_COLOR": "true",

		"LOG_LEVEL": "debug",
		"LOG_FILE":  "/tmp/pwncheck.log",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "https://range.example.com", cfg.Breach.Endpoint)
	assert.Equal(t, 3*time.Second, cfg.Breach.RequestTimeout)
	assert.Equal(t, "agent/1.0", cfg.Breach.UserAgent)
	assert.True(t, cfg.Breach.AddPadding)
	assert.Equal(t, "stdin", cfg.Prompt.Mode)
	assert.True(t, cfg.Output.NoColor)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/pwncheck.log", cfg.Log.File)
	assert.False(t, cfg.ShowVersion)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"BREACH_REQUEST_TIMEOUT": "soon",
	})

	// Act
	err := parseEnv(&StructuredConfig{})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{
		"BREACH_ADD_PADDING": "maybe",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"minutes", "1m", time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"millis", "1500ms", 1500 * time.Millisecond},
		{"combined", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{
				"BREACH_REQUEST_TIMEOUT": tt.envValue,
			})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.expected, cfg.Breach.RequestTimeout)
		})
	}
}
