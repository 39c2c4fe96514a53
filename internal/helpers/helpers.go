// Copyright (c) 2026 Harper Shaw
//
// SPDX-License-Identifier: BSD-3-Clause

// Package helpers provides trivial shared routines used by the rest of
// the module, primarily for tests and constant initialization.
package helpers

import "encoding/hex"

// MustBytesFromHex decodes a hex encoded string into bytes, or panics.
// The string may carry an optional `0x` prefix, and an odd number of
// digits is treated as having a leading zero.
func MustBytesFromHex(s string) []byte {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		panic("internal/helpers: invalid hex: " + err.Error())
	}

	return b
}

// Must256BitsFromHex decodes a hex encoded string into a 32-byte
// big-endian buffer, right-aligned, or panics.
func Must256BitsFromHex(s string) *[32]byte {
	b := MustBytesFromHex(s)
	if len(b) > 32 {
		panic("internal/helpers: hex encoding exceeds 256 bits")
	}

	var dst [32]byte
	copy(dst[32-len(b):], b)

	return &dst
}
