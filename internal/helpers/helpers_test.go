// Copyright (c) 2026 Harper Shaw
//
// SPDX-License-Identifier: BSD-3-Clause

package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMustBytesFromHex(t *testing.T) {
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, MustBytesFromHex("deadbeef"))
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, MustBytesFromHex("0xdeadbeef"))
	require.Equal(t, []byte{0x06, 0xeb}, MustBytesFromHex("6eb"))

	require.Panics(t, func() {
		MustBytesFromHex("not hex")
	})
}

func TestMust256BitsFromHex(t *testing.T) {
	b := Must256BitsFromHex("0x6eb")
	require.Equal(t, byte(0x06), b[30])
	require.Equal(t, byte(0xeb), b[31])
	for i := 0; i < 30; i++ {
		require.Equal(t, byte(0), b[i])
	}

	require.Panics(t, func() {
		// 33 bytes.
		Must256BitsFromHex("0x01ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	})
}
