// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pwned-check/internal/adapter"
	"github.com/MKhiriev/go-pwned-check/internal/app"
	"github.com/MKhiriev/go-pwned-check/internal/prompt"
	"github.com/MKhiriev/go-pwned-check/internal/service"
)

// humanizeError turns a failure of the prompt or the check into one line for
// the user. Unknown errors are shown as is.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, prompt.ErrCancelled), errors.Is(err, context.Canceled):
		return app.MsgCancelled
	case errors.Is(err, prompt.ErrEmptySecret):
		return app.MsgEmptyPassword
	case errors.Is(err, prompt.ErrNotTerminal):
		return app.MsgNotTerminal
	case errors.Is(err, prompt.ErrTerminalMode):
		return app.MsgTerminalMode
	case errors.Is(err, prompt.ErrClipboard):
		return app.MsgClipboard
	case errors.Is(err, adapter.ErrTooManyRequests):
		return app.MsgRateLimited
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return app.MsgServiceUnavailable
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrUnexpectedStatus):
		return app.MsgUnexpectedStatus
	case errors.Is(err, service.ErrNetwork):
		return app.MsgNetwork
	case errors.Is(err, service.ErrResponseFormat):
		return app.MsgResponseFormat
	}

	return err.Error()
}
