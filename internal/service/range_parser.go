// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pwned-check/models"
)

const rangeSeparator = ":"

// ParseRange validates a range response body and returns its entries in
// order.
//
// The body is split into lines on LF; a trailing CR is dropped so CRLF
// bodies parse the same way. Blank lines are skipped. Every other line must
// be exactly 35 hex characters, a colon and a decimal count, otherwise a
// [*ResponseFormatError] is returned. Suffixes are upper-cased.
func ParseRange(body []byte) ([]models.RangeEntry, error) {
	var entries []models.RangeEntry

	scanner := bufio.NewScanner(bytes.NewReader(body))
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		entry, err := parseRangeLine(line)
		if err != nil {
			err.Line = lineNo
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ResponseFormatError{Line: lineNo + 1, Reason: err.Error()}
	}

	return entries, nil
}

func parseRangeLine(line string) (models.RangeEntry, *ResponseFormatError) {
	suffix, count, ok := strings.Cut(line, rangeSeparator)
	if !ok {
		return models.RangeEntry{}, &ResponseFormatError{Reason: "missing ':' separator"}
	}

	if len(suffix) != models.SuffixLength || !models.IsHex(suffix) {
		return models.RangeEntry{}, &ResponseFormatError{Reason: "suffix is not 35 hex characters"}
	}

	n, err := strconv.ParseUint(count, 10, 64)
	if err != nil {
		return models.RangeEntry{}, &ResponseFormatError{Reason: "count is not a decimal number"}
	}

	return models.RangeEntry{Suffix: strings.ToUpper(suffix), Count: n}, nil
}

// FindSuffix looks suffix up in a range response body.
//
// The whole body is validated first, so a malformed line anywhere fails the
// lookup even when the suffix appears earlier. Suffixes are compared as whole
// fields, case-insensitively; the first matching line wins. A match with a
// count of zero is reported as [models.NotFound].
func FindSuffix(body []byte, suffix string) (models.MatchResult, error) {
	entries, err := ParseRange(body)
	if err != nil {
		return models.NotFound, err
	}

	for _, e := range entries {
		if strings.EqualFold(e.Suffix, suffix) {
			return models.Found(e.Count), nil
		}
	}

	return models.NotFound, nil
}
