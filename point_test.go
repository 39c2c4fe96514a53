// Copyright (c) 2026 Harper Shaw
//
// SPDX-License-Identifier: BSD-3-Clause

package h2c

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/hshaw/secp256k1-h2c/internal/helpers"
)

const randomTestIters = 32

func TestPoint(t *testing.T) {
	t.Run("S11n", testPointS11n)
	t.Run("Arithmetic", testPointArithmetic)

	t.Run("Uninitialized", func(t *testing.T) {
		require.Panics(t, func() {
			(&Point{}).IsIdentity()
		})
	})
}

func testPointS11n(t *testing.T) {
	t.Run("G compressed", func(t *testing.T) {
		gCompressed := helpers.MustBytesFromHex("0279BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")

		p, err := NewPointFromBytes(gCompressed)
		require.NoError(t, err, "NewPointFromBytes(gCompressed)")
		require.True(t, NewGeneratorPoint().Equal(p), "G decompressed")

		gBytes := p.CompressedBytes()
		require.Equal(t, gCompressed, gBytes, "G re-compressed")
	})
	t.Run("G uncompressed", func(t *testing.T) {
		gUncompressed := helpers.MustBytesFromHex("0479BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")

		p, err := NewPointFromBytes(gUncompressed)
		require.NoError(t, err, "NewPointFromBytes(gUncompressed)")
		require.True(t, NewGeneratorPoint().Equal(p), "G")

		gBytes := p.UncompressedBytes()
		require.Equal(t, gUncompressed, gBytes, "G")
	})
	t.Run("-G compressed", func(t *testing.T) {
		// -G has the same x-coordinate and odd y.
		negG := newRcvr().Negate(NewGeneratorPoint())
		require.Equal(t, byte(prefixCompressedOdd), negG.CompressedBytes()[0])

		p, err := NewPointFromBytes(negG.CompressedBytes())
		require.NoError(t, err)
		require.True(t, negG.Equal(p), "-G decompressed")
	})
	t.Run("Identity", func(t *testing.T) {
		secIDBytes := []byte{prefixIdentity}

		idBytes := NewIdentityPoint().CompressedBytes()
		require.Equal(t, secIDBytes, idBytes, "Identity compressed")
		p, err := NewPointFromBytes(idBytes)
		require.NoError(t, err)
		require.True(t, p.IsIdentity())

		idBytes = NewIdentityPoint().UncompressedBytes()
		require.Equal(t, secIDBytes, idBytes, "Identity uncompressed")
	})
	t.Run("Invalid", func(t *testing.T) {
		for _, v := range []struct {
			descr string
			b     []byte
		}{
			{"empty", nil},
			{"bad prefix", helpers.MustBytesFromHex("05" + "79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")},
			{"truncated compressed", helpers.MustBytesFromHex("0279BE667EF9DCBBAC")},
			{"oversized identity", []byte{prefixIdentity, 0x00}},
			// x = 0 is not on the curve (7 is a non-residue).
			{"not on curve (compressed)", helpers.MustBytesFromHex("02" + "0000000000000000000000000000000000000000000000000000000000000000")},
			// G with the y-coordinate incremented.
			{"not on curve (uncompressed)", helpers.MustBytesFromHex("0479BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B9")},
			// x = p is non-canonical.
			{"non-canonical x", helpers.MustBytesFromHex("02" + "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")},
		} {
			p, err := NewPointFromBytes(v.b)
			require.Error(t, err, v.descr)
			require.Nil(t, p, v.descr)
		}
	})
}

func testPointArithmetic(t *testing.T) {
	g := NewGeneratorPoint()
	id := NewIdentityPoint()

	t.Run("Identity element", func(t *testing.T) {
		require.True(t, newRcvr().Add(g, id).Equal(g), "G + id = G")
		require.True(t, newRcvr().Add(id, g).Equal(g), "id + G = G")
		require.True(t, newRcvr().Add(id, id).IsIdentity(), "id + id = id")
		require.True(t, newRcvr().Negate(id).IsIdentity(), "-id = id")
	})
	t.Run("Inverse", func(t *testing.T) {
		negG := newRcvr().Negate(g)
		require.True(t, newRcvr().Add(g, negG).IsIdentity(), "G + (-G) = id")
		require.True(t, newRcvr().Subtract(g, g).IsIdentity(), "G - G = id")
	})
	t.Run("Doubling", func(t *testing.T) {
		dbl := newRcvr().Add(g, g)
		require.True(t, dbl.IsOnCurve(), "G + G is on the curve")
		require.False(t, dbl.Equal(g) || dbl.IsIdentity())

		// (G + G) - G = G exercises the distinct-x addition path.
		require.True(t, newRcvr().Subtract(dbl, g).Equal(g), "2G - G = G")
	})
	t.Run("Associativity", func(t *testing.T) {
		for i := 0; i < randomTestIters; i++ {
			p, q, r := mustRandomPoint(t), mustRandomPoint(t), mustRandomPoint(t)

			lhs := newRcvr().Add(newRcvr().Add(p, q), r)
			rhs := newRcvr().Add(p, newRcvr().Add(q, r))
			require.True(t, lhs.Equal(rhs), "(p + q) + r = p + (q + r)")
			require.True(t, lhs.IsOnCurve())
		}
	})
	t.Run("Commutativity", func(t *testing.T) {
		for i := 0; i < randomTestIters; i++ {
			p, q := mustRandomPoint(t), mustRandomPoint(t)

			require.True(t, newRcvr().Add(p, q).Equal(newRcvr().Add(q, p)), "p + q = q + p")
		}
	})
	t.Run("Aliasing", func(t *testing.T) {
		p := mustRandomPoint(t)
		sum := newRcvr().Add(p, p)

		alias := NewPointFrom(p)
		alias.Add(alias, alias)
		require.True(t, alias.Equal(sum), "v = v + v")
	})
}

// mustRandomPoint returns a pseudorandom point on the curve.
func mustRandomPoint(t *testing.T) *Point {
	t.Helper()

	var b [48]byte
	_, err := rand.Read(b[:])
	require.NoError(t, err, "entropy source failure")

	p := newRcvr().SetUniformBytes(b[:])
	require.True(t, p.IsOnCurve())

	return p
}
