// Copyright (c) 2026 Harper Shaw
//
// SPDX-License-Identifier: BSD-3-Clause

package h2c

import (
	"crypto"

	"gitlab.com/hshaw/secp256k1-h2c/internal/expander"
	"gitlab.com/hshaw/secp256k1-h2c/internal/field"
)

const (
	// elementSize is `L = ceil((ceil(log2(p)) + k) / 8)` from RFC 9380,
	// Section 5.2, for the 256-bit field and k = 128.
	elementSize = 48

	// securityLevel is the target security level `k`, in bits.
	securityLevel = 128

	minUniformSize = 32
	maxUniformSize = 64
)

// feTwo128 is 2^128, the weight joining the two halves of a 48-byte
// block.
var feTwo128 = field.NewElementFromCanonicalHex("0x0100000000000000000000000000000000")

// HashToCurve hashes `msg` to a point on secp256k1, using the
// `secp256k1_XMD:SHA-256_SSWU_RO_` suite (RFC 9380, Section 8.7).
// The returned point is indifferentiable from a random oracle output,
// and has no known discrete-log relationship to any other point.
// `dst` is the domain separation tag, which MUST be non-empty and
// SHOULD be chosen per the requirements of RFC 9380, Section 3.1.
func HashToCurve(msg, dst []byte) (*Point, error) {
	exp, err := expander.NewXMD(crypto.SHA256, dst)
	if err != nil {
		return nil, err
	}
	return hashToCurve(exp, msg)
}

// EncodeToCurve hashes `msg` to a point on secp256k1, using the
// `secp256k1_XMD:SHA-256_SSWU_NU_` suite (RFC 9380, Section 8.7).
// The returned point is distributed over roughly a quarter of the
// curve rather than uniformly; most users SHOULD use [HashToCurve]
// instead.
func EncodeToCurve(msg, dst []byte) (*Point, error) {
	exp, err := expander.NewXMD(crypto.SHA256, dst)
	if err != nil {
		return nil, err
	}
	return encodeToCurve(exp, msg)
}

// HashToCurveXOF is [HashToCurve] with `expand_message_xof` over
// SHAKE-256 in place of `expand_message_xmd` over SHA-256.  This is
// not an RFC-registered suite, and does not interoperate with
// [HashToCurve].
func HashToCurveXOF(msg, dst []byte) (*Point, error) {
	exp, err := expander.NewXOF(dst, securityLevel)
	if err != nil {
		return nil, err
	}
	return hashToCurve(exp, msg)
}

// EncodeToCurveXOF is [EncodeToCurve] with `expand_message_xof` over
// SHAKE-256 in place of `expand_message_xmd` over SHA-256.  This is
// not an RFC-registered suite, and does not interoperate with
// [EncodeToCurve].
func EncodeToCurveXOF(msg, dst []byte) (*Point, error) {
	exp, err := expander.NewXOF(dst, securityLevel)
	if err != nil {
		return nil, err
	}
	return encodeToCurve(exp, msg)
}

func hashToCurve(exp expander.Expander, msg []byte) (*Point, error) {
	// hash_to_curve: map both field elements separately, then add.
	u, err := hashToField(exp, msg, 2)
	if err != nil {
		return nil, err
	}

	q0 := newRcvr().setMappedElement(u[0])
	q1 := newRcvr().setMappedElement(u[1])

	return q0.Add(q0, q1), nil
}

func encodeToCurve(exp expander.Expander, msg []byte) (*Point, error) {
	u, err := hashToField(exp, msg, 1)
	if err != nil {
		return nil, err
	}

	return newRcvr().setMappedElement(u[0]), nil
}

// hashToField implements `hash_to_field` (RFC 9380, Section 5.2):
// `msg` is expanded to `count` 48-byte blocks of pseudorandom output,
// and each block is decoded into one field element.
func hashToField(exp expander.Expander, msg []byte, count int) ([]*field.Element, error) {
	b, err := exp.Expand(msg, uint(count*elementSize))
	if err != nil {
		return nil, err
	}

	u := make([]*field.Element, count)
	for i := range u {
		u[i] = decodeElement((*[elementSize]byte)(b[i*elementSize : (i+1)*elementSize]))
	}

	return u, nil
}

// decodeElement decodes a 48-byte block into a field element via a
// two-limb weighted reconstruction: the high 32 bytes and the low 16
// bytes are decoded separately (big-endian, reduced), and recombined
// as `hi * 2^128 + lo`.  The result equals `OS2IP(block) mod p`, as
// required by RFC 9380, Section 5.2.
func decodeElement(src *[elementSize]byte) *field.Element {
	hi := field.NewElement().SetBytes((*[field.ElementSize]byte)(src[0:32]))

	var loBuf [field.ElementSize]byte
	copy(loBuf[16:], src[32:48])
	lo := field.NewElement().SetBytes(&loBuf)

	hi.Multiply(hi, feTwo128)
	return hi.Add(hi, lo)
}

// uniformElement decodes between 32 and 64 big-endian bytes into a
// field element, folding 16-byte limbs so that the result equals
// `OS2IP(src) mod p`.
func uniformElement(src []byte) *field.Element {
	// Process the leading partial limb first, so every remaining
	// limb is exactly 16 bytes.
	lead := len(src) % 16
	if lead == 0 {
		lead = 16
	}

	acc := field.NewElement().SetBytes(leftPad(src[:lead]))
	for off := lead; off < len(src); off += 16 {
		acc.Multiply(acc, feTwo128)
		acc.Add(acc, field.NewElement().SetBytes(leftPad(src[off:off+16])))
	}

	return acc
}

func leftPad(src []byte) *[field.ElementSize]byte {
	var dst [field.ElementSize]byte
	copy(dst[field.ElementSize-len(src):], src)
	return &dst
}
