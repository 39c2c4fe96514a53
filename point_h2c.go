// Copyright (c) 2026 Harper Shaw
//
// SPDX-License-Identifier: BSD-3-Clause

package h2c

import (
	"gitlab.com/hshaw/secp256k1-h2c/internal/field"
	"gitlab.com/hshaw/secp256k1-h2c/internal/swu"
)

// SetUniformBytes sets `v = map_to_curve(OS2IP(src) mod p)`, where
// `src` MUST have a length in the range `[32,64]`-bytes, and returns
// `v`.  If called with exactly 48-bytes of data, this can be used to
// implement `encode_to_curve` and `hash_to_curve`.  With a
// cryptographically insignificant probability, the result MAY be the
// point at infinity.
//
// Most users SHOULD use [HashToCurve] or [EncodeToCurve] instead.
func (v *Point) SetUniformBytes(src []byte) *Point {
	if len(src) < minUniformSize || len(src) > maxUniformSize {
		panic("h2c: invalid uniform bytes length")
	}

	return v.setMappedElement(uniformElement(src))
}

// setMappedElement sets `v` to the image of the field element `u`
// under the SWU map followed by the 3-isogeny.
func (v *Point) setMappedElement(u *field.Element) *Point {
	// RFC 9380 notes that the random oracle suites could save a call
	// to `iso_map` by doing the point addition in E'.  This seems
	// marginal at best, and it 100% is not worth carrying around a
	// point addition formula for a second curve.

	// 1. (x', y') = map_to_curve_simple_swu(u)    # (x', y') is on E'
	xP, yP := swu.MapToCurveSimpleSWU(u)

	// 2. (x, y) = iso_map(x', y')                 # (x, y) is on E
	x, y, onCurve := swu.IsoMap(xP, yP)

	// map_to_curve_simple_swu handles its exceptional cases.
	// Exceptional cases of iso_map are inputs that cause the
	// denominator of either rational function to evaluate to zero;
	// such cases MUST return the identity point on E.
	if !onCurve {
		return v.Identity()
	}

	// 3. return (x, y)
	v.x.Set(x)
	v.y.Set(y)
	v.isInfinity = false
	v.isValid = true

	return v
}
