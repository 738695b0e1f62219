// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bitmath provides exact bit-index arithmetic for power-of-two-sized
// transform pipelines: ceiling division, ceiling and strict base-2
// logarithms, low-bit masks, and high/low bit splits. Every function is pure,
// allocation-free, and O(1).
package bitmath

import (
	"math/bits"

	"github.com/cockroachdb/bitrev/internal/invariants"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// CeilDiv returns the exact integer ceiling of a/b. Requires b > 0 and that
// a+b does not overflow T.
// The overflow precondition is the caller's responsibility; it is checked
// only in invariants builds.
func CeilDiv[T constraints.Unsigned](a, b T) T {
	if invariants.Enabled && a+b < a {
		panic(errors.AssertionFailedf("ceiling division overflow: %d + %d", a, b))
	}
	return (a + b - 1) / b
}

// Log2Ceil returns the smallest m such that 2^m >= n. Log2Ceil(0) and
// Log2Ceil(1) are both 0.
func Log2Ceil[T constraints.Unsigned](n T) int {
	if n <= 1 {
		return 0
	}
	return bits.Len64(uint64(n) - 1)
}

// Log2Strict returns log2(n) for n an exact power of two, and panics
// otherwise. A non-power-of-two argument is a caller bug, not a runtime
// condition; use Log2Ceil or IsPowerOfTwo when the input is unvalidated.
func Log2Strict[T constraints.Unsigned](n T) int {
	res := bits.TrailingZeros64(uint64(n))
	// A shift count of 64 is well defined in Go, so n == 0 falls through to
	// the panic below without special casing.
	if uint64(n)>>res != 1 {
		panic(errors.AssertionFailedf("not a power of two: %d", n))
	}
	return res
}

// IsPowerOfTwo returns true if n has exactly one set bit. Zero is not a
// power of two.
func IsPowerOfTwo[T constraints.Unsigned](n T) bool {
	return n != 0 && n&(n-1) == 0
}

// Bitmask returns the value with the low nBits bits set and all higher bits
// clear. nBits ranges from zero (empty mask) to the full width of T
// inclusive (all ones); the full-width case cannot be computed as
// 1<<nBits - 1 without overflowing the shift, so it is handled explicitly.
func Bitmask[T constraints.Unsigned](nBits int) T {
	if nBits >= bits.Len64(uint64(^T(0))) {
		return ^T(0)
	}
	return T(1)<<nBits - 1
}

// SplitBits splits x at bit position n, returning the high part x >> n and
// the low part x & Bitmask(n). n ranges from zero to the full width of T
// inclusive; recombining via hi<<n | lo restores x.
func SplitBits[T constraints.Unsigned](x T, n int) (hi, lo T) {
	return x >> n, x & Bitmask[T](n)
}
