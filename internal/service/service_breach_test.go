// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-pwned-check/internal/adapter"
	"github.com/MKhiriev/go-pwned-check/internal/logger"
	"github.com/MKhiriev/go-pwned-check/internal/mock"
	"github.com/MKhiriev/go-pwned-check/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// "password" fingerprints to 5BAA6 + passwordSuffix
const passwordPrefix = "5BAA6"

func newTestBreachChecker(t *testing.T) (BreachChecker, *mock.MockRangeAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	rangeAdapter := mock.NewMockRangeAdapter(ctrl)
	return NewBreachCheckerService(rangeAdapter, logger.Nop()), rangeAdapter
}

// ─────────────────────────────────────────────
// Check
// ─────────────────────────────────────────────

func TestCheck_Found(t *testing.T) {
	svc, rangeAdapter := newTestBreachChecker(t)

	rangeAdapter.EXPECT().
		Range(gomock.Any(), passwordPrefix).
		Return([]byte(knownSuffix+":3\r\n"+passwordSuffix+":10434004\r\n"), nil)

	got, err := svc.Check(context.Background(), []byte("password"))

	require.NoError(t, err)
	assert.Equal(t, models.Found(10434004), got)
}

func TestCheck_NotFound(t *testing.T) {
	svc, rangeAdapter := newTestBreachChecker(t)

	rangeAdapter.EXPECT().
		Range(gomock.Any(), passwordPrefix).
		Return([]byte(knownSuffix+":3\r\n"), nil)

	got, err := svc.Check(context.Background(), []byte("password"))

	require.NoError(t, err)
	assert.Equal(t, models.NotFound, got)
}

func TestCheck_PaddingEntryIsAbsent(t *testing.T) {
	svc, rangeAdapter := newTestBreachChecker(t)

	rangeAdapter.EXPECT().
		Range(gomock.Any(), passwordPrefix).
		Return([]byte(passwordSuffix+":0\r\n"), nil)

	got, err := svc.Check(context.Background(), []byte("password"))

	require.NoError(t, err)
	assert.False(t, got.Found())
}

func TestCheck_SendsOnlyPrefix(t *testing.T) {
	svc, rangeAdapter := newTestBreachChecker(t)

	rangeAdapter.EXPECT().
		Range(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prefix string) ([]byte, error) {
			assert.Len(t, prefix, models.PrefixLength)
			assert.True(t, models.IsUpperHex(prefix))
			return nil, nil
		})

	_, err := svc.Check(context.Background(), []byte("Tr0ub4dor&3"))
	require.NoError(t, err)
}

func TestCheck_AttachesLoggerToContext(t *testing.T) {
	var buf bytes.Buffer
	ctrl := gomock.NewController(t)
	rangeAdapter := mock.NewMockRangeAdapter(ctrl)
	svc := NewBreachCheckerService(rangeAdapter, logger.NewLogger("test", &buf, zerolog.DebugLevel))

	rangeAdapter.EXPECT().
		Range(gomock.Any(), passwordPrefix).
		DoAndReturn(func(ctx context.Context, _ string) ([]byte, error) {
			logger.FromContext(ctx).Debug().Msg("from adapter")
			return nil, nil
		})

	_, err := svc.Check(context.Background(), []byte("password"))
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, `"check_id"`)
	assert.Contains(t, logs, "from adapter")
	for _, state := range []string{stateHashing, stateRequesting, stateParsing, stateNotFound} {
		assert.Contains(t, logs, `"state":"`+state+`"`)
	}
	assert.Contains(t, logs, passwordPrefix)
	assert.NotContains(t, logs, passwordSuffix)
	assert.NotContains(t, logs, "password\"")
}

func TestCheck_AdapterErrors(t *testing.T) {
	tests := []struct {
		name       string
		adapterErr error
	}{
		{name: "transport", adapterErr: fmt.Errorf("%w: %w", adapter.ErrTransport, context.DeadlineExceeded)},
		{name: "too many requests", adapterErr: fmt.Errorf("%w: slow down", adapter.ErrTooManyRequests)},
		{name: "service unavailable", adapterErr: fmt.Errorf("%w: maintenance", adapter.ErrServiceUnavailable)},
		{name: "unexpected status", adapterErr: fmt.Errorf("%w: http 500: oops", adapter.ErrUnexpectedStatus)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, rangeAdapter := newTestBreachChecker(t)
			rangeAdapter.EXPECT().Range(gomock.Any(), passwordPrefix).Return(nil, tt.adapterErr)

			got, err := svc.Check(context.Background(), []byte("password"))

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNetwork)
			assert.ErrorIs(t, err, tt.adapterErr)
			assert.Equal(t, models.NotFound, got)
			assert.NotContains(t, err.Error(), passwordSuffix)
		})
	}
}

func TestCheck_MalformedResponse(t *testing.T) {
	svc, rangeAdapter := newTestBreachChecker(t)

	rangeAdapter.EXPECT().
		Range(gomock.Any(), passwordPrefix).
		Return([]byte(passwordSuffix+":12\r\nXYZ:notanumber\r\n"), nil)

	got, err := svc.Check(context.Background(), []byte("password"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResponseFormat)
	assert.False(t, errors.Is(err, ErrNetwork))
	assert.Equal(t, models.NotFound, got, "a malformed response must not be reported as a match")
}

func TestCheck_DoesNotModifySecret(t *testing.T) {
	svc, rangeAdapter := newTestBreachChecker(t)
	rangeAdapter.EXPECT().Range(gomock.Any(), passwordPrefix).Return(nil, nil)

	secret := []byte("password")
	_, err := svc.Check(context.Background(), secret)

	require.NoError(t, err)
	assert.Equal(t, []byte("password"), secret)
}

// ─────────────────────────────────────────────
// mapAdapterError
// ─────────────────────────────────────────────

func TestMapAdapterError(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))

	err := mapAdapterError(fmt.Errorf("%w: %q", adapter.ErrInvalidPrefix, "5baa6"))
	assert.ErrorIs(t, err, adapter.ErrInvalidPrefix)
	assert.False(t, errors.Is(err, ErrNetwork))

	err = mapAdapterError(errors.New("something else"))
	assert.ErrorIs(t, err, ErrNetwork)
}
