// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const (
	// FingerprintLength is the length of a SHA-1 digest rendered as hex.
	FingerprintLength = 40
	// PrefixLength is the number of fingerprint characters disclosed to the
	// range API.
	PrefixLength = 5
	// SuffixLength is the number of fingerprint characters kept local.
	SuffixLength = FingerprintLength - PrefixLength
)

// Fingerprint is the uppercase hexadecimal SHA-1 digest of a candidate secret.
//
// Only [Fingerprint.Prefix] may leave the process. The full value and
// [Fingerprint.Suffix] are compared locally and must never be sent or logged.
type Fingerprint string

// NewFingerprint normalises a hex digest to the canonical uppercase form.
func NewFingerprint(hexDigest string) Fingerprint {
	return Fingerprint(strings.ToUpper(hexDigest))
}

// Prefix returns the first [PrefixLength] characters of the fingerprint, or
// the whole value if it is shorter.
func (f Fingerprint) Prefix() string {
	if len(f) < PrefixLength {
		return string(f)
	}
	return string(f[:PrefixLength])
}

// Suffix returns everything after the prefix.
func (f Fingerprint) Suffix() string {
	if len(f) < PrefixLength {
		return ""
	}
	return string(f[PrefixLength:])
}

// Valid reports whether f is exactly [FingerprintLength] uppercase hex
// characters.
func (f Fingerprint) Valid() bool {
	return len(f) == FingerprintLength && IsUpperHex(string(f))
}

// IsUpperHex reports whether s is non-empty and consists only of 0-9 and A-F.
func IsUpperHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// IsHex is the case-insensitive variant of [IsUpperHex].
func IsHex(s string) bool {
	return IsUpperHex(strings.ToUpper(s))
}
