// Copyright (c) 2026 Harper Shaw
//
// SPDX-License-Identifier: BSD-3-Clause

// Package h2c implements hashing of arbitrary byte strings to points
// on the secp256k1 elliptic curve, following RFC 9380 and the
// secp256k1_XMD:SHA-256_SSWU_RO_ suite.
package h2c

import (
	"gitlab.com/hshaw/secp256k1-h2c/internal/disalloweq"
	"gitlab.com/hshaw/secp256k1-h2c/internal/field"
)

var (
	// gX is the x-coordinate of the generator.
	gX = field.NewElementFromSaturated(0x79be667ef9dcbbac, 0x55a06295ce870b07, 0x029bfcdb2dce28d9, 0x59f2815b16f81798)

	// gY is the y-coordinate of the generator.
	gY = field.NewElementFromSaturated(0x483ada7726a3c465, 0x5da4fbfc0e1108a8, 0xfd17b448a6855419, 0x9c47d08ffb10d4b8)

	// feB is the constant `b`, part of the curve equation.
	feB = field.NewElementFromSaturated(0, 0, 0, 7)

	feThree = field.NewElementFromSaturated(0, 0, 0, 3)
)

// Point represents a point on the secp256k1 curve in affine
// coordinates, or the point at infinity.  All arguments and receivers
// are allowed to alias.  The zero value is NOT valid, and may only be
// used as a receiver.
type Point struct {
	_ disalloweq.DisallowEqual

	x, y field.Element

	isInfinity bool
	isValid    bool
}

// Identity sets `v = id`, and returns `v`.
func (v *Point) Identity() *Point {
	v.x.Zero()
	v.y.Zero()
	v.isInfinity = true

	v.isValid = true
	return v
}

// Generator sets `v = G`, and returns `v`.
func (v *Point) Generator() *Point {
	v.x.Set(gX)
	v.y.Set(gY)
	v.isInfinity = false

	v.isValid = true
	return v
}

// Add sets `v = p + q`, and returns `v`.
func (v *Point) Add(p, q *Point) *Point {
	assertPointsValid(p, q)

	switch {
	case p.isInfinity:
		return v.Set(q)
	case q.isInfinity:
		return v.Set(p)
	}

	if p.x.Equal(&q.x) {
		// Either a doubling, or `p + (-p) = id`.  A point with y = 0
		// would be its own negative, but no such point exists on a
		// curve of odd order.
		if p.y.Equal(&q.y) && !p.y.IsZero() {
			return v.double(p)
		}
		return v.Identity()
	}

	// lambda = (y2 - y1)/(x2 - x1)
	lambda := field.NewElement().Subtract(&q.y, &p.y)
	den := field.NewElement().Subtract(&q.x, &p.x)
	lambda.Multiply(lambda, den.Invert(den))

	return v.fromSlope(lambda, p, q)
}

// double sets `v = p + p` for a non-infinity `p` with `y != 0`.
func (v *Point) double(p *Point) *Point {
	// lambda = 3*x^2 / 2*y, as a = 0 for secp256k1.
	lambda := field.NewElement().Square(&p.x)
	lambda.Multiply(lambda, feThree)
	den := field.NewElement().Add(&p.y, &p.y)
	lambda.Multiply(lambda, den.Invert(den))

	return v.fromSlope(lambda, p, p)
}

// fromSlope completes the affine addition of `p` and `q` given the
// slope of the line through them, writing the sum to `v`.
func (v *Point) fromSlope(lambda *field.Element, p, q *Point) *Point {
	// x3 = lambda^2 - x1 - x2
	x3 := field.NewElement().Square(lambda)
	x3.Subtract(x3, &p.x)
	x3.Subtract(x3, &q.x)

	// y3 = lambda*(x1 - x3) - y1
	y3 := field.NewElement().Subtract(&p.x, x3)
	y3.Multiply(y3, lambda)
	y3.Subtract(y3, &p.y)

	v.x.Set(x3)
	v.y.Set(y3)
	v.isInfinity = false

	v.isValid = true
	return v
}

// Subtract sets `v = p - q`, and returns `v`.
func (v *Point) Subtract(p, q *Point) *Point {
	assertPointsValid(p, q)
	return v.Add(p, newRcvr().Negate(q))
}

// Negate sets `v = -p`, and returns `v`.
func (v *Point) Negate(p *Point) *Point {
	assertPointsValid(p)

	// Affine negation formulas: -(x1,y1)=(x1,-y1).
	v.x.Set(&p.x)
	v.y.Negate(&p.y)
	v.isInfinity = p.isInfinity

	v.isValid = p.isValid
	return v
}

// Equal returns true iff `v == p`.
func (v *Point) Equal(p *Point) bool {
	assertPointsValid(v, p)

	if v.isInfinity || p.isInfinity {
		return v.isInfinity == p.isInfinity
	}

	return v.x.Equal(&p.x) && v.y.Equal(&p.y)
}

// IsIdentity returns true iff `v` is the identity point.
func (v *Point) IsIdentity() bool {
	assertPointsValid(v)

	return v.isInfinity
}

// IsOnCurve returns true iff `v` satisfies the curve equation
// `y^2 = x^3 + 7`.  The identity point is considered on the curve.
func (v *Point) IsOnCurve() bool {
	assertPointsValid(v)

	if v.isInfinity {
		return true
	}

	rhs := field.NewElement().Square(&v.x)
	rhs.Multiply(rhs, &v.x)
	rhs.Add(rhs, feB)

	return field.NewElement().Square(&v.y).Equal(rhs)
}

// Set sets `v = p`, and returns `v`.
func (v *Point) Set(p *Point) *Point {
	assertPointsValid(p)

	v.x.Set(&p.x)
	v.y.Set(&p.y)
	v.isInfinity = p.isInfinity
	v.isValid = p.isValid

	return v
}

// NewGeneratorPoint returns a new Point set to the canonical generator.
func NewGeneratorPoint() *Point {
	return newRcvr().Generator()
}

// NewIdentityPoint returns a new Point set to the identity (point at infinity).
func NewIdentityPoint() *Point {
	return newRcvr().Identity()
}

// NewPointFrom creates a new Point from another.
func NewPointFrom(p *Point) *Point {
	assertPointsValid(p)

	return newRcvr().Set(p)
}

// assertPointsValid ensures that the points have been initialized.
func assertPointsValid(points ...*Point) {
	for _, p := range points {
		if !p.isValid {
			panic("h2c: use of uninitialized Point")
		}
	}
}

func newRcvr() *Point {
	// This is explicitly for nicely creating receivers.
	return &Point{}
}
