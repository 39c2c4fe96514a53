// Copyright (c) 2026 Harper Shaw
//
// SPDX-License-Identifier: BSD-3-Clause

package swu

import (
	"gitlab.com/hshaw/secp256k1-h2c/internal/field"
)

// The 3-isogeny map from E' to secp256k1 is a pair of rational
// functions with the constants from RFC 9380, Appendix E.1.  The
// coefficient vectors are ordered from the constant term upwards, and
// the denominators are monic.
var (
	isoXNum = []*field.Element{
		field.NewElementFromCanonicalHex("0x8e38e38e38e38e38e38e38e38e38e38e38e38e38e38e38e38e38e38daaaaa8c7"),
		field.NewElementFromCanonicalHex("0x7d3d4c80bc321d5b9f315cea7fd44c5d595d2fc0bf63b92dfff1044f17c6581"),
		field.NewElementFromCanonicalHex("0x534c328d23f234e6e2a413deca25caece4506144037c40314ecbd0b53d9dd262"),
		field.NewElementFromCanonicalHex("0x8e38e38e38e38e38e38e38e38e38e38e38e38e38e38e38e38e38e38daaaaa88c"),
	}
	isoXDen = []*field.Element{
		field.NewElementFromCanonicalHex("0xd35771193d94918a9ca34ccbb7b640dd86cd409542f8487d9fe6b745781eb49b"),
		field.NewElementFromCanonicalHex("0xedadc6f64383dc1df7c4b2d51b54225406d36b641f5e41bbc52a56612a8c6d14"),
		field.NewElement().One(),
	}
	isoYNum = []*field.Element{
		field.NewElementFromCanonicalHex("0x4bda12f684bda12f684bda12f684bda12f684bda12f684bda12f684b8e38e23c"),
		field.NewElementFromCanonicalHex("0xc75e0c32d5cb7c0fa9d0a54b12a0a6d5647ab046d686da6fdffc90fc201d71a3"),
		field.NewElementFromCanonicalHex("0x29a6194691f91a73715209ef6512e576722830a201be2018a765e85a9ecee931"),
		field.NewElementFromCanonicalHex("0x2f684bda12f684bda12f684bda12f684bda12f684bda12f684bda12f38e38d84"),
	}
	isoYDen = []*field.Element{
		field.NewElementFromCanonicalHex("0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffff93b"),
		field.NewElementFromCanonicalHex("0x7a06534bb8bdb49fd5e9e6632722c2989467c1bfc8e8d978dfb425d2685c2573"),
		field.NewElementFromCanonicalHex("0x6484aa716545ca2cf3a70c3fa8fe337e0a3d21162f0d6299a7bf8192bfd2a76f"),
		field.NewElement().One(),
	}
)

// IsoMap applies the 3-isogeny map to the point `(xP, yP)` on E',
// yielding a point `(x, y)` on secp256k1.  The map's exceptional
// cases are the inputs that zero the denominator of either rational
// function; for such inputs false is returned and the caller MUST
// substitute the identity element.
func IsoMap(xP, yP *field.Element) (*field.Element, *field.Element, bool) {
	xNum := polyEval(xP, isoXNum)
	xDen := polyEval(xP, isoXDen)
	yNum := polyEval(xP, isoYNum)
	yDen := polyEval(xP, isoYDen)

	if xDen.IsZero() || yDen.IsZero() {
		return field.NewElement(), field.NewElement(), false
	}

	x := field.NewElement().Multiply(xNum, field.NewElement().Invert(xDen))
	y := field.NewElement().Multiply(yNum, field.NewElement().Invert(yDen))
	y.Multiply(y, yP)

	return x, y, true
}

// polyEval evaluates the polynomial with the given coefficients
// (constant term first) at `x`, via Horner's rule.
func polyEval(x *field.Element, coeffs []*field.Element) *field.Element {
	acc := field.NewElementFrom(coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc.Multiply(acc, x)
		acc.Add(acc, coeffs[i])
	}
	return acc
}
