// Copyright (c) 2026 Harper Shaw
//
// SPDX-License-Identifier: BSD-3-Clause

package h2c

import (
	"errors"
	"fmt"

	"gitlab.com/hshaw/secp256k1-h2c/internal/field"
)

// See: https://www.secg.org/sec1-v2.pdf

const (
	// CompressedPointSize is the size of a compressed point in bytes,
	// in the SEC 1, Version 2.0, Section 2.3.3 encoding (`Y_EvenOrOdd | X`).
	CompressedPointSize = 33

	// PointSize is the size of an uncompressed point in bytes in the
	// SEC 1, Version 2.0, Section 2.3.3 encoding (`0x04 | X | Y`).
	PointSize = 65

	// IdentityPointSize is the size of the point at infinity in bytes,
	// in the SEC 1, Version 2.0, Section 2.3.3 encoding (`0x00`).
	IdentityPointSize = 1

	// CoordSize is the size of a coordinate in bytes, in the SEC 1,
	// Version 2.0, Section 2.3.5 encoding.
	CoordSize = 32

	prefixIdentity       = 0x00
	prefixCompressedEven = 0x02
	prefixCompressedOdd  = 0x03
	prefixUncompressed   = 0x04
)

var errInvalidEncoding = errors.New("h2c: invalid point encoding")

// UncompressedBytes returns the SEC 1, Version 2.0, Section 2.3.3
// uncompressed encoding of `v`.
func (v *Point) UncompressedBytes() []byte {
	assertPointsValid(v)

	if v.isInfinity {
		return []byte{prefixIdentity}
	}

	dst := make([]byte, 0, PointSize)
	dst = append(dst, prefixUncompressed)
	dst = append(dst, v.x.Bytes()...)
	dst = append(dst, v.y.Bytes()...)

	return dst
}

// CompressedBytes returns the SEC 1, Version 2.0, Section 2.3.3
// compressed encoding of `v`.
func (v *Point) CompressedBytes() []byte {
	assertPointsValid(v)

	if v.isInfinity {
		return []byte{prefixIdentity}
	}

	prefix := byte(prefixCompressedEven)
	if v.y.IsOdd() {
		prefix = prefixCompressedOdd
	}

	dst := make([]byte, 0, CompressedPointSize)
	dst = append(dst, prefix)
	dst = append(dst, v.x.Bytes()...)

	return dst
}

// SetBytes sets `v` from the SEC 1, Version 2.0, Section 2.3.3 encoded
// point `src`, and returns `v`.  All of the encodings (compressed,
// uncompressed, identity) are supported, coordinates MUST be canonical,
// and the point MUST be on the curve.  On error, nil and an error are
// returned, and the receiver is unchanged.
func (v *Point) SetBytes(src []byte) (*Point, error) {
	if len(src) < IdentityPointSize {
		return nil, errInvalidEncoding
	}

	switch src[0] {
	case prefixIdentity:
		if len(src) != IdentityPointSize {
			return nil, errInvalidEncoding
		}
		return v.Identity(), nil
	case prefixCompressedEven, prefixCompressedOdd:
		if len(src) != CompressedPointSize {
			return nil, errInvalidEncoding
		}

		x, err := field.NewElementFromCanonicalBytes((*[CoordSize]byte)(src[1:]))
		if err != nil {
			return nil, fmt.Errorf("h2c: invalid x-coordinate: %w", err)
		}

		// y^2 = x^3 + 7, with the root chosen by the prefix parity.
		rhs := field.NewElement().Square(x)
		rhs.Multiply(rhs, x)
		rhs.Add(rhs, feB)
		y, ok := field.NewElement().Sqrt(rhs)
		if !ok {
			return nil, errors.New("h2c: x-coordinate is not on the curve")
		}
		if y.IsOdd() != (src[0] == prefixCompressedOdd) {
			y.Negate(y)
		}

		v.x.Set(x)
		v.y.Set(y)
		v.isInfinity = false
		v.isValid = true
		return v, nil
	case prefixUncompressed:
		if len(src) != PointSize {
			return nil, errInvalidEncoding
		}

		x, err := field.NewElementFromCanonicalBytes((*[CoordSize]byte)(src[1 : 1+CoordSize]))
		if err != nil {
			return nil, fmt.Errorf("h2c: invalid x-coordinate: %w", err)
		}
		y, err := field.NewElementFromCanonicalBytes((*[CoordSize]byte)(src[1+CoordSize:]))
		if err != nil {
			return nil, fmt.Errorf("h2c: invalid y-coordinate: %w", err)
		}

		p := Point{isValid: true}
		p.x.Set(x)
		p.y.Set(y)
		if !p.IsOnCurve() {
			return nil, errors.New("h2c: point is not on the curve")
		}

		return v.Set(&p), nil
	default:
		return nil, errInvalidEncoding
	}
}

// NewPointFromBytes creates a new Point from the SEC 1, Version 2.0,
// Section 2.3.3 encoded point `src`.
func NewPointFromBytes(src []byte) (*Point, error) {
	return newRcvr().SetBytes(src)
}
