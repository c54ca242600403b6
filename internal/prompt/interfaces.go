// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package prompt acquires the candidate secret from the user.
//
// [TerminalReader] is the interactive source: it disables terminal echo for
// the duration of a single line read and restores it on every exit path,
// including read failures, empty input and context cancellation. [StdinReader]
// and [ClipboardReader] serve non-interactive use.
//
// Every reader returns the secret as a fresh byte slice owned by the caller,
// who is expected to wipe it once the check is done.
package prompt

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_reader_mock.go -package=mock

// SecretReader obtains one secret.
type SecretReader interface {
	// ReadSecret shows prompt and returns the trimmed input. It returns
	// [ErrEmptySecret] for blank input and [ErrCancelled] when ctx is done
	// or the user aborts.
	ReadSecret(ctx context.Context, prompt string) ([]byte, error)
}

// Terminal is the part of a terminal device a [TerminalReader] needs.
type Terminal interface {
	// DisableEcho switches echo off. The returned restore func puts the
	// terminal back into the state it was in before the call.
	DisableEcho() (restore func() error, err error)

	// ReadLine reads one line of input without the line terminator.
	ReadLine() ([]byte, error)
}
