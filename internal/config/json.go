// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the optional JSON file.
// Durations may be written as strings ("10s") or as nanosecond numbers.
type StructuredJSONConfig struct {
	Breach struct {
		Endpoint       string   `json:"endpoint"`
		RequestTimeout Duration `json:"request_timeout"`
		UserAgent      string   `json:"user_agent"`
		AddPadding     bool     `json:"add_padding"`
	} `json:"breach,omitempty"`

	Prompt struct {
		Mode string `json:"mode"`
	} `json:"prompt,omitempty"`

	Output struct {
		NoColor bool `json:"no_color"`
	} `json:"output,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Breach: Breach{
			Endpoint:       jsonCfg.Breach.Endpoint,
			RequestTimeout: time.Duration(jsonCfg.Breach.RequestTimeout),
			UserAgent:      jsonCfg.Breach.UserAgent,
			AddPadding:     jsonCfg.Breach.AddPadding,
		},
		Prompt: Prompt{Mode: jsonCfg.Prompt.Mode},
		Output: Output{NoColor: jsonCfg.Output.NoColor},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
