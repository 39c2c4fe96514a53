// Copyright (c) 2026 Harper Shaw
//
// SPDX-License-Identifier: BSD-3-Clause

// Package expander implements the `expand_message` routines from
// RFC 9380, Section 5.3, which stretch a message and a domain
// separation tag into uniformly pseudorandom bytes.
package expander

import (
	"crypto"
	_ "crypto/sha256" // linked in for crypto.SHA256
	"errors"
	"io"

	circl "github.com/cloudflare/circl/expander"
	"golang.org/x/crypto/sha3"
)

// MaxDSTSize is the maximum length of a domain separation tag before
// the `H2C-OVERSIZE-DST-` reduction is applied.
const MaxDSTSize = 255

var (
	errEmptyDST      = errors.New("internal/expander: empty domain separation tag")
	errOutputTooLong = errors.New("internal/expander: requested output exceeds expander limit")

	longDSTPrefix = []byte("H2C-OVERSIZE-DST-")
)

// Expander generates pseudorandom bytes from a message, bound to the
// domain separation tag fixed at construction time.
type Expander interface {
	// Expand returns `n` bytes of uniformly pseudorandom output
	// derived from `msg`.
	Expand(msg []byte, n uint) ([]byte, error)
}

// NewXMD creates an `expand_message_xmd` Expander based on the hash
// function `h` (RFC 9380, Section 5.3.1).
func NewXMD(h crypto.Hash, dst []byte) (Expander, error) {
	if len(dst) == 0 {
		return nil, errEmptyDST
	}
	return &xmdExpander{
		exp:      circl.NewExpanderMD(h, dst),
		hashSize: uint(h.Size()),
	}, nil
}

type xmdExpander struct {
	exp      circl.Expander
	hashSize uint
}

func (e *xmdExpander) Expand(msg []byte, n uint) ([]byte, error) {
	// ell = ceil(len_in_bytes / b_in_bytes) MUST be at most 255.
	if ell := (n + e.hashSize - 1) / e.hashSize; ell > 255 {
		return nil, errOutputTooLong
	}
	return e.exp.Expand(msg, n), nil
}

// NewXOF creates an `expand_message_xof` Expander based on SHAKE-256,
// targeting `k`-bit security (RFC 9380, Section 5.3.2).
func NewXOF(dst []byte, k uint) (Expander, error) {
	if len(dst) == 0 {
		return nil, errEmptyDST
	}

	// An oversized tag is replaced by H("H2C-OVERSIZE-DST-" || dst),
	// with the output sized to the security level.
	if len(dst) > MaxDSTSize {
		h := sha3.NewShake256()
		_, _ = h.Write(longDSTPrefix)
		_, _ = h.Write(dst)
		reduced := make([]byte, (2*k+7)/8)
		if _, err := io.ReadFull(h, reduced); err != nil {
			return nil, err
		}
		dst = reduced
	}

	// DST_prime = DST || I2OSP(len(DST), 1)
	dstPrime := make([]byte, 0, len(dst)+1)
	dstPrime = append(dstPrime, dst...)
	dstPrime = append(dstPrime, byte(len(dst)))

	return &xofExpander{dstPrime: dstPrime}, nil
}

type xofExpander struct {
	dstPrime []byte
}

func (e *xofExpander) Expand(msg []byte, n uint) ([]byte, error) {
	// The output length is encoded as I2OSP(len_in_bytes, 2).
	if n > 0xffff {
		return nil, errOutputTooLong
	}

	h := sha3.NewShake256()
	_, _ = h.Write(msg)
	_, _ = h.Write([]byte{byte(n >> 8), byte(n)})
	_, _ = h.Write(e.dstPrime)

	out := make([]byte, n)
	if _, err := io.ReadFull(h, out); err != nil {
		return nil, err
	}
	return out, nil
}
