// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-pwned-check/internal/logger"
	"github.com/MKhiriev/go-pwned-check/internal/utils"
)

// TerminalReader reads a secret from a [Terminal] with echo disabled.
type TerminalReader struct {
	term Terminal
	out  io.Writer

	logger *logger.Logger
}

func NewTerminalReader(term Terminal, out io.Writer, logger *logger.Logger) *TerminalReader {
	return &TerminalReader{term: term, out: out, logger: logger}
}

type lineResult struct {
	line []byte
	err  error
}

// ReadSecret writes prompt, disables echo, reads one line and restores echo.
//
// Echo is restored exactly once whatever happens after it was disabled: a
// successful read, a read error, blank input or ctx being done. On
// cancellation the terminal is restored immediately even though the pending
// read cannot be interrupted; a line that arrives later is wiped and dropped.
func (r *TerminalReader) ReadSecret(ctx context.Context, prompt string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	fmt.Fprint(r.out, prompt)

	restore, err := r.term.DisableEcho()
	if err != nil {
		if restore != nil {
			_ = restore()
		}
		fmt.Fprintln(r.out)
		return nil, fmt.Errorf("%w: %w", ErrTerminalMode, err)
	}
	r.logger.Debug().Msg("terminal echo disabled")

	release := r.releaseOnce(restore)
	defer func() { _ = release() }()

	stop := context.AfterFunc(ctx, func() { _ = release() })
	defer stop()

	results := make(chan lineResult, 1)
	go func() {
		line, readErr := r.term.ReadLine()
		results <- lineResult{line: line, err: readErr}
	}()

	var res lineResult
	select {
	case res = <-results:
	case <-ctx.Done():
		go func() {
			late := <-results
			utils.Wipe(late.line)
		}()
		_ = release()
		fmt.Fprintln(r.out)
		return nil, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
	}

	restoreErr := release()
	// the user's Enter was not echoed
	fmt.Fprintln(r.out)

	if res.err != nil {
		utils.Wipe(res.line)
		if errors.Is(res.err, io.EOF) && len(res.line) == 0 {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, res.err)
		}
		return nil, fmt.Errorf("read password: %w", res.err)
	}

	if restoreErr != nil {
		utils.Wipe(res.line)
		return nil, fmt.Errorf("%w: restore echo: %w", ErrTerminalMode, restoreErr)
	}

	return takeTrimmed(res.line)
}

// releaseOnce wraps restore so that only the first call reaches the
// terminal; later calls return the first call's error.
func (r *TerminalReader) releaseOnce(restore func() error) func() error {
	var (
		once sync.Once
		err  error
	)
	return func() error {
		once.Do(func() {
			err = restore()
			if err != nil {
				r.logger.Error().Err(err).Msg("terminal echo restore failed")
				return
			}
			r.logger.Debug().Msg("terminal echo restored")
		})
		return err
	}
}

// takeTrimmed copies the trimmed content of line into a new slice and wipes
// line.
func takeTrimmed(line []byte) ([]byte, error) {
	defer utils.Wipe(line)

	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return nil, ErrEmptySecret
	}

	return append([]byte(nil), trimmed...), nil
}
