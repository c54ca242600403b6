// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchResult(t *testing.T) {
	assert.False(t, NotFound.Found())
	assert.Zero(t, NotFound.Count)

	assert.True(t, Found(3).Found())
	assert.Equal(t, uint64(3), Found(3).Count)

	assert.Equal(t, NotFound, Found(0), "a zero count is indistinguishable from absence")
	assert.False(t, Found(0).Found())
}
