// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the breach check: it fingerprints a candidate
// secret, asks the range API for every suffix sharing the fingerprint prefix
// and scans the response locally for the remaining suffix.
package service

import (
	"context"

	"github.com/MKhiriev/go-pwned-check/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/breach_checker_mock.go -package=mock

// BreachChecker decides whether a candidate secret occurs in the breach corpus.
type BreachChecker interface {
	// Check fingerprints secret with SHA-1, sends only the 5-character prefix
	// to the range API and matches the 35-character suffix against the
	// response locally.
	//
	// It returns [models.NotFound] when the suffix is absent or listed with a
	// count of zero. Transport and HTTP failures are wrapped in [ErrNetwork];
	// a malformed response yields a [*ResponseFormatError]. secret is only
	// read, never retained, logged or included in an error.
	Check(ctx context.Context, secret []byte) (models.MatchResult, error)
}

// AppInfoService exposes build metadata for the banner and version output.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
