// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the breach corpus range API.
//
// The primary abstraction is [RangeAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP implementation
// ([NewHTTPRangeAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from transport failures and
// HTTP status codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrTooManyRequests] for 429).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/range_adapter_mock.go -package=mock

// RangeAdapter performs the single network operation of a breach check.
type RangeAdapter interface {
	// Range fetches the raw range response for prefix: every known
	// fingerprint suffix sharing the prefix, one `SUFFIX:COUNT` record per
	// line. prefix must be exactly 5 uppercase hex characters; nothing else
	// about the candidate is ever sent. The request is issued once, without
	// retry, and is bounded by ctx and the configured request timeout.
	Range(ctx context.Context, prefix string) ([]byte, error)
}
