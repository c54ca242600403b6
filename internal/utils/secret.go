// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

// Wipe zeroes b in place. It is best-effort: copies made by the runtime or by
// callers are not reached.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
