// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the
// application: hashing, HTTP client initialization, identifier generation and
// secret wiping.
package utils

import (
	"crypto/sha1" //nolint:gosec // SHA-1 is fixed by the range API, not used for integrity
	"encoding/hex"
	"hash"
	"strings"
	"sync"
)

// sha1Pool is a package-level pool of reusable SHA-1 hash instances.
var sha1Pool = sync.Pool{
	New: func() any {
		return sha1.New()
	},
}

// HashSHA1 computes the SHA-1 digest of data and returns it as 40 uppercase
// hexadecimal characters.
//
// Behavior:
//   - Retrieves a hash.Hash instance from the pool
//   - Resets it, writes the data, computes the sum
//   - Resets again so no trace of data stays in the pooled instance
//
// Example usage:
//
//	fp := utils.HashSHA1([]byte("password"))
//	// fp == "5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8"
func HashSHA1(data []byte) string {
	h := sha1Pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	sha1Pool.Put(h)

	return strings.ToUpper(hex.EncodeToString(sum))
}
