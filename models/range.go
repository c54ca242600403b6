// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RangeEntry is one `SUFFIX:COUNT` record of a range response: a known
// fingerprint sharing the requested prefix and its occurrence count.
type RangeEntry struct {
	// Suffix holds the 35 hex characters that follow the prefix, upper-cased.
	Suffix string

	// Count is the number of occurrences in the breach corpus. Padding
	// entries carry zero.
	Count uint64
}
