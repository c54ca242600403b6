// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MatchResult is the outcome of a single breach check.
//
// The zero value is [NotFound]. A result is positive only when Count > 0, so a
// range entry with a count of zero (for example a padding entry) is reported
// exactly like an absent one.
type MatchResult struct {
	// Count is the number of times the fingerprint occurs in the breach
	// corpus.
	Count uint64
}

// NotFound is the result for a fingerprint absent from the corpus.
var NotFound = MatchResult{}

// Found builds the result for a fingerprint seen count times. Found(0) equals
// [NotFound].
func Found(count uint64) MatchResult {
	return MatchResult{Count: count}
}

// Found reports whether the fingerprint was seen at least once.
func (m MatchResult) Found() bool {
	return m.Count > 0
}
