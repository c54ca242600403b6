// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClipboardReader(content string, err error) (*ClipboardReader, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &ClipboardReader{
		readAll: func() (string, error) { return content, err },
		out:     out,
	}, out
}

func TestClipboardReader_Success(t *testing.T) {
	r, out := newTestClipboardReader("hunter2\n", nil)

	got, err := r.ReadSecret(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, []byte("hunter2"), got)
	assert.NotContains(t, out.String(), "hunter2")
}

func TestClipboardReader_Empty(t *testing.T) {
	r, _ := newTestClipboardReader("  ", nil)

	_, err := r.ReadSecret(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestClipboardReader_ReadError(t *testing.T) {
	r, _ := newTestClipboardReader("", errors.New("exit status 1"))

	_, err := r.ReadSecret(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClipboard)
}

func TestClipboardReader_Unsupported(t *testing.T) {
	r, _ := newTestClipboardReader("hunter2", nil)
	r.unsupported = true

	_, err := r.ReadSecret(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClipboard)
}
