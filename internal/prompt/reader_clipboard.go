// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"context"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// ClipboardReader takes the secret from the system clipboard.
type ClipboardReader struct {
	readAll     func() (string, error)
	unsupported bool
	out         io.Writer
}

func NewClipboardReader(out io.Writer) *ClipboardReader {
	return &ClipboardReader{
		readAll:     clipboard.ReadAll,
		unsupported: clipboard.Unsupported,
		out:         out,
	}
}

// ReadSecret ignores prompt apart from echoing a notice to out; the
// clipboard content itself is never printed.
func (r *ClipboardReader) ReadSecret(ctx context.Context, prompt string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	if r.unsupported {
		return nil, fmt.Errorf("%w: no clipboard utility available", ErrClipboard)
	}

	if r.out != nil {
		fmt.Fprintln(r.out, "reading password from clipboard")
	}

	content, err := r.readAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClipboard, err)
	}

	return takeTrimmed([]byte(content))
}
