// Copyright (c) 2026 Harper Shaw
//
// SPDX-License-Identifier: BSD-3-Clause

package expander

import (
	"bytes"
	"crypto"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/hshaw/secp256k1-h2c/internal/helpers"
)

func TestXMD(t *testing.T) {
	t.Run("RFC9380/K.1", func(t *testing.T) {
		// expand_message_xmd(SHA-256) test vectors from RFC 9380,
		// Appendix K.1.
		dst := []byte("QUUX-V01-CS02-with-expander-SHA256-128")
		exp, err := NewXMD(crypto.SHA256, dst)
		require.NoError(t, err)

		for _, v := range []struct {
			msg      string
			expected string
		}{
			{"", "68a985b87eb6b46952128911f2a4412bbc302a9d759667f87f7a21d803f07235"},
			{"abc", "d8ccab23b5985ccea865c6c97b6e5b8350e794e603b4b97902f53a8a0d605615"},
		} {
			out, err := exp.Expand([]byte(v.msg), 0x20)
			require.NoError(t, err, "Expand(%q)", v.msg)
			require.Equal(t, helpers.MustBytesFromHex(v.expected), out, "Expand(%q)", v.msg)
		}
	})
	t.Run("EmptyDST", func(t *testing.T) {
		_, err := NewXMD(crypto.SHA256, nil)
		require.Error(t, err)
	})
	t.Run("OutputTooLong", func(t *testing.T) {
		exp, err := NewXMD(crypto.SHA256, []byte("test-DST"))
		require.NoError(t, err)

		_, err = exp.Expand([]byte("msg"), 255*32+1)
		require.Error(t, err)

		out, err := exp.Expand([]byte("msg"), 255*32)
		require.NoError(t, err)
		require.Len(t, out, 255*32)
	})
	t.Run("OversizedDST", func(t *testing.T) {
		// Oversized tags are reduced, not rejected.
		exp, err := NewXMD(crypto.SHA256, bytes.Repeat([]byte{'x'}, MaxDSTSize+1))
		require.NoError(t, err)

		out, err := exp.Expand([]byte("msg"), 96)
		require.NoError(t, err)
		require.Len(t, out, 96)
	})
}

func TestXOF(t *testing.T) {
	dst := []byte("test-DST")

	t.Run("Deterministic", func(t *testing.T) {
		exp, err := NewXOF(dst, 128)
		require.NoError(t, err)

		a, err := exp.Expand([]byte("msg"), 96)
		require.NoError(t, err)
		b, err := exp.Expand([]byte("msg"), 96)
		require.NoError(t, err)
		require.Equal(t, a, b)
		require.Len(t, a, 96)

		c, err := exp.Expand([]byte("msg2"), 96)
		require.NoError(t, err)
		require.NotEqual(t, a, c)

		// A different tag yields a different stream.
		exp2, err := NewXOF([]byte("test-DST-2"), 128)
		require.NoError(t, err)
		d, err := exp2.Expand([]byte("msg"), 96)
		require.NoError(t, err)
		require.NotEqual(t, a, d)
	})
	t.Run("Prefix", func(t *testing.T) {
		// The output stream for a given message is length-framed, so
		// requesting fewer bytes is not a prefix of a longer request.
		exp, err := NewXOF(dst, 128)
		require.NoError(t, err)

		long, err := exp.Expand([]byte("msg"), 96)
		require.NoError(t, err)
		short, err := exp.Expand([]byte("msg"), 48)
		require.NoError(t, err)
		require.NotEqual(t, long[:48], short)
	})
	t.Run("EmptyDST", func(t *testing.T) {
		_, err := NewXOF(nil, 128)
		require.Error(t, err)
	})
	t.Run("OversizedDST", func(t *testing.T) {
		exp, err := NewXOF(bytes.Repeat([]byte{'x'}, MaxDSTSize+1), 128)
		require.NoError(t, err)

		out, err := exp.Expand([]byte("msg"), 48)
		require.NoError(t, err)
		require.Len(t, out, 48)
	})
	t.Run("OutputTooLong", func(t *testing.T) {
		exp, err := NewXOF(dst, 128)
		require.NoError(t, err)

		_, err = exp.Expand([]byte("msg"), 0x10000)
		require.Error(t, err)
	})
}
