// Copyright (c) 2026 Harper Shaw
//
// SPDX-License-Identifier: BSD-3-Clause

// Package field implements arithmetic modulo p = 2^256 - 2^32 - 977,
// the secp256k1 base field, as a thin wrapper around the well-tested
// decred field backend.
package field

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"gitlab.com/hshaw/secp256k1-h2c/internal/disalloweq"
	"gitlab.com/hshaw/secp256k1-h2c/internal/helpers"
)

// ElementSize is the size of a field element in bytes.
const ElementSize = 32

// Element is a field element.  All arguments and receivers are allowed
// to alias.  The zero value is a valid zero element.
//
// Invariant: the inner value is always fully reduced into `[0, p)`
// (normalized, magnitude 1), so the backend's magnitude preconditions
// hold trivially for every operation.
type Element struct {
	_ disalloweq.DisallowEqual
	v secp.FieldVal
}

// Zero sets `fe = 0` and returns `fe`.
func (fe *Element) Zero() *Element {
	fe.v.SetInt(0)
	return fe
}

// One sets `fe = 1` and returns `fe`.
func (fe *Element) One() *Element {
	fe.v.SetInt(1)
	return fe
}

// Add sets `fe = a + b` and returns `fe`.
func (fe *Element) Add(a, b *Element) *Element {
	fe.v.Add2(&a.v, &b.v).Normalize()
	return fe
}

// Subtract sets `fe = a - b` and returns `fe`.
func (fe *Element) Subtract(a, b *Element) *Element {
	var negB secp.FieldVal
	negB.NegateVal(&b.v, 1)
	fe.v.Add2(&a.v, &negB).Normalize()
	return fe
}

// Negate sets `fe = -a` and returns `fe`.
func (fe *Element) Negate(a *Element) *Element {
	fe.v.NegateVal(&a.v, 1).Normalize()
	return fe
}

// Multiply sets `fe = a * b` and returns `fe`.
func (fe *Element) Multiply(a, b *Element) *Element {
	fe.v.Mul2(&a.v, &b.v).Normalize()
	return fe
}

// Square sets `fe = a * a` and returns `fe`.
func (fe *Element) Square(a *Element) *Element {
	fe.v.SquareVal(&a.v).Normalize()
	return fe
}

// Pow2k sets `fe = a ^ (2^k)` and returns `fe`.  k MUST be non-zero.
func (fe *Element) Pow2k(a *Element, k uint) *Element {
	if k == 0 {
		// This could just set fe = a, but "don't do that".
		panic("internal/field: k out of bounds")
	}

	fe.v.SquareVal(&a.v)
	for i := uint(1); i < k; i++ {
		fe.v.Square()
	}
	fe.v.Normalize()

	return fe
}

// Invert sets `fe = 1/a` and returns `fe`.  As the inversion is done
// via Fermat's little theorem, `Invert(0) = 0`, which is exactly the
// `inv0` semantics required by the hash-to-curve mapping.
func (fe *Element) Invert(a *Element) *Element {
	fe.v.Set(&a.v).Inverse().Normalize()
	return fe
}

// Set sets `fe = a` and returns `fe`.
func (fe *Element) Set(a *Element) *Element {
	fe.v.Set(&a.v)
	return fe
}

// SetCanonicalBytes sets `fe = src`, where `src` is a 32-byte big-endian
// encoding of `fe`, and returns `fe`.  If `src` is not a canonical
// encoding of `fe`, SetCanonicalBytes returns nil and an error, and the
// receiver is unchanged.
func (fe *Element) SetCanonicalBytes(src *[ElementSize]byte) (*Element, error) {
	var tmp secp.FieldVal
	if overflow := tmp.SetBytes(src); overflow != 0 {
		return nil, errors.New("internal/field: value out of range")
	}
	fe.v.Set(&tmp)

	return fe, nil
}

// MustSetCanonicalBytes sets `fe = src`, where `src` MUST be the 32-byte
// big-endian canonical encoding of `fe`, and returns `fe`, or panics.
func (fe *Element) MustSetCanonicalBytes(src *[ElementSize]byte) *Element {
	if _, err := fe.SetCanonicalBytes(src); err != nil {
		panic(err)
	}
	return fe
}

// SetBytes sets `fe = src % p`, where `src` is a 32-byte big-endian
// encoding of `fe`, and returns `fe`.  Unlike SetCanonicalBytes, the
// value is reduced rather than rejected if it is `>= p`.
func (fe *Element) SetBytes(src *[ElementSize]byte) *Element {
	fe.v.SetBytes(src)
	fe.v.Normalize()
	return fe
}

// Bytes returns the canonical big-endian encoding of `fe`.
func (fe *Element) Bytes() []byte {
	// Blah blah blah outline blah escape analysis blah.
	var dst [ElementSize]byte
	return fe.getBytes(&dst)
}

func (fe *Element) getBytes(dst *[ElementSize]byte) []byte {
	fe.v.PutBytes(dst)
	return dst[:]
}

// Equal returns true iff `fe == a`.
func (fe *Element) Equal(a *Element) bool {
	return fe.v.Equals(&a.v)
}

// IsZero returns true iff `fe == 0`.
func (fe *Element) IsZero() bool {
	return fe.v.IsZero()
}

// IsOdd returns true iff `fe % 2 == 1`.  This is `sgn0(fe)` in the
// hash-to-curve sense, and equivalently the least-significant bit of
// the little-endian encoding of `fe`.
func (fe *Element) IsOdd() bool {
	return fe.v.IsOdd()
}

// String returns the big-endian hex representation of `fe`.
func (fe *Element) String() string {
	return hex.EncodeToString(fe.Bytes())
}

// MustRandomize randomizes and returns `fe`, or panics.
func (fe *Element) MustRandomize() *Element {
	var b [ElementSize]byte
	for {
		if _, err := rand.Read(b[:]); err != nil {
			panic("internal/field: entropy source failure")
		}
		if _, err := fe.SetCanonicalBytes(&b); err == nil {
			return fe
		}
	}
}

// NewElement returns a new zero Element.
func NewElement() *Element {
	return &Element{}
}

// NewElementFrom creates a new Element from another.
func NewElementFrom(other *Element) *Element {
	return NewElement().Set(other)
}

// NewElementFromSaturated creates a new Element from the raw saturated
// representation (64-bit limbs, most-significant first).
func NewElementFromSaturated(l3, l2, l1, l0 uint64) *Element {
	var b [ElementSize]byte
	binary.BigEndian.PutUint64(b[0:], l3)
	binary.BigEndian.PutUint64(b[8:], l2)
	binary.BigEndian.PutUint64(b[16:], l1)
	binary.BigEndian.PutUint64(b[24:], l0)

	// Yes, this panics if you fuck up.  Why are you using this for
	// anything but pre-computed constants?
	return NewElement().MustSetCanonicalBytes(&b)
}

// NewElementFromCanonicalBytes creates a new Element from the canonical
// big-endian byte representation.
func NewElementFromCanonicalBytes(src *[ElementSize]byte) (*Element, error) {
	return NewElement().SetCanonicalBytes(src)
}

// NewElementFromCanonicalHex creates a new Element from the canonical
// big-endian hex representation, or panics.  The string may be shorter
// than 64 digits, in which case it is zero-padded on the left.
func NewElementFromCanonicalHex(s string) *Element {
	return NewElement().MustSetCanonicalBytes(helpers.Must256BitsFromHex(s))
}
