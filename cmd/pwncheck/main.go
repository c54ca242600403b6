// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pwned-check/internal/adapter"
	"github.com/MKhiriev/go-pwned-check/internal/app"
	"github.com/MKhiriev/go-pwned-check/internal/client"
	"github.com/MKhiriev/go-pwned-check/internal/config"
	"github.com/MKhiriev/go-pwned-check/internal/logger"
	"github.com/MKhiriev/go-pwned-check/internal/prompt"
	"github.com/MKhiriev/go-pwned-check/internal/service"
	"github.com/MKhiriev/go-pwned-check/internal/tui"
	"github.com/MKhiriev/go-pwned-check/models"
)

const (
	exitOK    = 0
	exitError = 1

	loggerRole = "pwncheck"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetCheckerConfig(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.AppName, err)
		return exitError
	}

	report := tui.NewReport(os.Stdout, cfg.NoColor)
	if cfg.ShowVersion {
		report.Version(buildInfo)
		return exitOK
	}

	log := logger.NewClientLogger(loggerRole, cfg.LogFile, cfg.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader, err := newSecretReader(cfg.PromptMode, log)
	if err != nil {
		report.Error(err)
		return exitError
	}

	rangeAdapter, err := adapter.NewHTTPRangeAdapter(cfg.Breach, log)
	if err != nil {
		log.Error().Err(err).Msg("create range adapter")
		report.Error(err)
		return exitError
	}

	services := service.NewCheckerServices(rangeAdapter, buildInfo, log)

	if err = client.NewApp(reader, services, report, log).Run(ctx); err != nil {
		log.Debug().Err(err).Msg("client run error")
		report.Error(err)
		return exitError
	}

	return exitOK
}

// newSecretReader picks the secret source for mode. Prompts for
// non-interactive sources go to stderr so stdout carries only the report.
func newSecretReader(mode string, log *logger.Logger) (prompt.SecretReader, error) {
	switch mode {
	case config.PromptModeStdin:
		return prompt.NewStdinReader(os.Stdin, os.Stderr), nil
	case config.PromptModeClipboard:
		return prompt.NewClipboardReader(os.Stderr), nil
	case config.PromptModeTUI:
		return tui.NewPasswordPrompt(os.Stdin, os.Stdout, log), nil
	default:
		term, err := prompt.NewXTerminal(os.Stdin, os.Stdout)
		if err != nil {
			return nil, err
		}
		return prompt.NewTerminalReader(term, os.Stdout, log), nil
	}
}
