// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// StdinReader reads the secret as the first line of a non-interactive
// stream, such as a pipe. No terminal mode is touched.
type StdinReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdinReader returns a reader over in. The prompt is written to out when
// out is not nil.
func NewStdinReader(in io.Reader, out io.Writer) *StdinReader {
	return &StdinReader{in: bufio.NewReader(in), out: out}
}

func (r *StdinReader) ReadSecret(ctx context.Context, prompt string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	if r.out != nil {
		fmt.Fprint(r.out, prompt)
		defer fmt.Fprintln(r.out)
	}

	line, err := r.in.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read password: %w", err)
	}

	return takeTrimmed(line)
}
