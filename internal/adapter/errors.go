// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrInvalidPrefix = errors.New("invalid hash prefix")

	// ErrTransport covers connection failures, timeouts and cancellation.
	ErrTransport = errors.New("range request failed")

	ErrBadRequest         = errors.New("bad request")
	ErrNotFound           = errors.New("not found")
	ErrTooManyRequests    = errors.New("too many requests")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrUnexpectedStatus   = errors.New("unexpected status")
)
