// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// parseFlags parses the command-line arguments into a [StructuredConfig].
// Unset flags stay at their zero value so that they do not shadow other
// sources during the merge.
//
// Flags:
//
//	-endpoint      range API base URL
//	-timeout       request timeout (e.g., "10s", "1m")
//	-user-agent    User-Agent header value
//	-padding       request padded responses
//	-prompt        secret source: terminal | stdin | clipboard | tui
//	-no-color      plain result output
//	-log-level     log level (debug, info, warn, error)
//	-log-file      append JSON logs to this file instead of stderr
//	-c/-config     json file path with configs
//	-version       print build information and exit
//
// flag.ErrHelp is returned (wrapped) when -h or -help is given.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)

	var (
		endpoint       string
		requestTimeout time.Duration
		userAgent      string
		addPadding     bool
		promptMode     string
		noColor        bool
		logLevel       string
		logFile        string
		jsonConfigPath string
		showVersion    bool
	)

	fs.StringVar(&endpoint, "endpoint", "", "Range API base URL (default "+DefaultEndpoint+")")
	fs.DurationVar(&requestTimeout, "timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.StringVar(&userAgent, "user-agent", "", "User-Agent header value")
	fs.BoolVar(&addPadding, "padding", false, "Ask the API for padded responses")
	fs.StringVar(&promptMode, "prompt", "", "Secret source: terminal | stdin | clipboard | tui")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored output")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Append JSON logs to this file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&showVersion, "version", false, "Print build information and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Breach: Breach{
			Endpoint:       endpoint,
			RequestTimeout: requestTimeout,
			UserAgent:      userAgent,
			AddPadding:     addPadding,
		},
		Prompt:       Prompt{Mode: promptMode},
		Output:       Output{NoColor: noColor},
		Log:          Log{Level: logLevel, File: logFile},
		JSONFilePath: jsonConfigPath,
		ShowVersion:  showVersion,
	}, nil
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "pwncheck"
}
