// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "2026-10-19", "abc1234")

	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "2026-10-19", info.BuildDate())
	assert.Equal(t, "abc1234", info.BuildCommit())
	assert.Equal(t, "version 1.2.3 (date 2026-10-19, commit abc1234)", info.String())
}

func TestNewAppBuildInfo_EmptyValues(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
