// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pwned-check/internal/adapter"
)

// mapAdapterError translates the adapter's error into a service error.
// Adapter sentinels (ErrTooManyRequests, ErrTransport, ...) stay matchable
// through the wrap.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	// a malformed prefix never reaches the network
	if errors.Is(err, adapter.ErrInvalidPrefix) {
		return fmt.Errorf("range lookup refused: %w", err)
	}

	return fmt.Errorf("%w: %w", ErrNetwork, err)
}
