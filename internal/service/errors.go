// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork wraps every failure of the range lookup itself: connection,
	// timeout, cancellation or a non-2xx status.
	ErrNetwork = errors.New("breach lookup failed")

	// ErrResponseFormat is matched by every [*ResponseFormatError].
	ErrResponseFormat = errors.New("malformed range response")
)

// ResponseFormatError reports a range response line that is not
// `<35 hex>:<decimal>`. The offending line itself is not included.
type ResponseFormatError struct {
	// Line is the 1-based line number in the response body.
	Line int
	// Reason describes what is wrong with the line.
	Reason string
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("%s: line %d: %s", ErrResponseFormat, e.Line, e.Reason)
}

func (e *ResponseFormatError) Unwrap() error {
	return ErrResponseFormat
}
