// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-pwned-check/internal/config"
	"github.com/MKhiriev/go-pwned-check/internal/logger"
	"github.com/MKhiriev/go-pwned-check/internal/utils"
	"github.com/MKhiriev/go-pwned-check/models"
)

const rangePath = "/range/{prefix}"

type httpRangeAdapter struct {
	client *utils.HTTPClient

	addPadding bool

	logger *logger.Logger
}

// NewHTTPRangeAdapter constructs an HTTP implementation of [RangeAdapter].
// It normalises and validates the base URL from breachCfg.Endpoint and
// configures the underlying HTTP client with the resolved base URL, the
// request timeout and the User-Agent header.
//
// Returns an error if breachCfg.Endpoint is empty or cannot be parsed as a
// valid URL.
func NewHTTPRangeAdapter(breachCfg config.CheckerBreach, logger *logger.Logger) (RangeAdapter, error) {
	baseURL, err := normalizeBaseURL(breachCfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid breach endpoint: %w", err)
	}

	client := utils.NewHTTPClient(breachCfg.RequestTimeout, breachCfg.UserAgent)
	client.SetBaseURL(baseURL)

	return &httpRangeAdapter{client: client, addPadding: breachCfg.AddPadding, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Range implements [RangeAdapter]. It GETs /range/{prefix} and returns the
// response body unchanged. The Add-Padding header is sent when enabled.
// Returns [ErrInvalidPrefix] without any I/O if prefix is malformed,
// [ErrTransport] (wrapped) on connection failure, timeout or cancellation,
// and a status sentinel from mapHTTPError on a non-2xx response.
func (h *httpRangeAdapter) Range(ctx context.Context, prefix string) ([]byte, error) {
	if len(prefix) != models.PrefixLength || !models.IsUpperHex(prefix) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}

	log := logger.FromContextOr(ctx, h.logger)

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		SetPathParam("prefix", prefix)
	if h.addPadding {
		req.SetHeader("Add-Padding", "true")
	}

	start := time.Now()
	resp, err := req.Get(rangePath)
	if err != nil {
		log.Debug().Err(err).Str("prefix", prefix).Dur("elapsed", time.Since(start)).Msg("range request failed")
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	log.Debug().
		Str("prefix", prefix).
		Int("status", resp.StatusCode()).
		Int("bytes", len(resp.Body())).
		Bool("padding", h.addPadding).
		Dur("elapsed", time.Since(start)).
		Msg("range response received")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
