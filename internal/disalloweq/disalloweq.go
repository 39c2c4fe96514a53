// Copyright (c) 2026 Harper Shaw
//
// SPDX-License-Identifier: BSD-3-Clause

// Package disalloweq provides a method for disallowing struct comparisons
// with the `==` operator.
package disalloweq

// DisallowEqual, when embedded in a struct, causes the compiler to reject
// attempts to compare instances of that struct with the `==` operator.
// Field elements and points compare via their Equal methods, never by
// shallow limb comparison.
type DisallowEqual [0]func()
