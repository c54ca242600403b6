// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pwned-check/internal/logger"
	"github.com/MKhiriev/go-pwned-check/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBuildInfo_ReturnsConfiguredInfo(t *testing.T) {
	info := models.NewAppBuildInfo("1.2.3", "2026-10-19", "abc1234")
	svc := NewAppInfoService(info, logger.Nop())

	got := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "1.2.3", got.BuildVersion())
	assert.Equal(t, "2026-10-19", got.BuildDate())
	assert.Equal(t, "abc1234", got.BuildCommit())
}

func TestNewCheckerServices(t *testing.T) {
	svcs := NewCheckerServices(nil, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.NotNil(t, svcs)
	assert.NotNil(t, svcs.BreachChecker)
	assert.Equal(t, "N/A", svcs.AppInfoService.GetBuildInfo(context.Background()).BuildVersion())
}
