// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import "errors"

var (
	// ErrTerminalMode means echo could not be disabled or restored.
	ErrTerminalMode = errors.New("terminal mode change failed")

	ErrEmptySecret = errors.New("empty password")
	ErrCancelled   = errors.New("input cancelled")

	ErrNotTerminal = errors.New("input is not a terminal")
	ErrClipboard   = errors.New("clipboard is not readable")
)
