// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pwned-check/internal/app"
	"github.com/MKhiriev/go-pwned-check/internal/logger"
	"github.com/MKhiriev/go-pwned-check/internal/prompt"
	"github.com/MKhiriev/go-pwned-check/internal/service"
	"github.com/MKhiriev/go-pwned-check/internal/tui"
	"github.com/MKhiriev/go-pwned-check/internal/utils"
)

type App struct {
	reader   prompt.SecretReader
	services *service.CheckerServices
	report   *tui.Report

	logger *logger.Logger
}

func NewApp(reader prompt.SecretReader, services *service.CheckerServices, report *tui.Report, logger *logger.Logger) *App {
	return &App{reader: reader, services: services, report: report, logger: logger}
}

// Run prints the banner, reads one password, checks it and prints the
// result. The password buffer is zeroed before Run returns.
func (a *App) Run(ctx context.Context) error {
	a.report.Banner(a.services.AppInfoService.GetBuildInfo(ctx))

	secret, err := a.reader.ReadSecret(ctx, app.MsgPrompt)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	defer utils.Wipe(secret)

	a.report.Checking()

	result, err := a.services.BreachChecker.Check(ctx, secret)
	if err != nil {
		a.logger.Debug().Err(err).Msg("check failed")
		return fmt.Errorf("check password: %w", err)
	}

	a.report.Result(result)

	return nil
}
