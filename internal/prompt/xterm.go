// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

type xTerminal struct {
	fd   int
	line *term.Terminal
}

// NewXTerminal returns a [Terminal] backed by the terminal attached to in.
// Echo is disabled by switching the terminal to raw mode; input is then read
// through a [term.Terminal] line editor that never echoes what is typed.
//
// It returns [ErrNotTerminal] when in is not a terminal.
func NewXTerminal(in *os.File, out io.Writer) (Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%w: %s", ErrNotTerminal, in.Name())
	}

	rw := struct {
		io.Reader
		io.Writer
	}{in, out}

	return &xTerminal{fd: fd, line: term.NewTerminal(rw, "")}, nil
}

func (t *xTerminal) DisableEcho() (func() error, error) {
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return nil, err
	}

	return func() error {
		return term.Restore(t.fd, state)
	}, nil
}

func (t *xTerminal) ReadLine() ([]byte, error) {
	line, err := t.line.ReadPassword("")
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}
