// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pwned-check/internal/adapter"
	"github.com/MKhiriev/go-pwned-check/internal/logger"
	"github.com/MKhiriev/go-pwned-check/models"
)

type CheckerServices struct {
	BreachChecker  BreachChecker
	AppInfoService AppInfoService
}

func NewCheckerServices(rangeAdapter adapter.RangeAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *CheckerServices {
	return &CheckerServices{
		BreachChecker:  NewBreachCheckerService(rangeAdapter, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
