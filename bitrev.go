// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bitrev implements the bit-reversal permutation for
// power-of-two-sized buffers, along with the bit-reversal primitives it is
// built from. The permutation is the index shuffle applied before or after
// radix-2 butterfly networks (FFT- and NTT-style transforms).
package bitrev

import (
	"math/bits"

	"github.com/cockroachdb/bitrev/bitmath"
	"github.com/cockroachdb/bitrev/internal/invariants"
	"github.com/cockroachdb/errors"
)

// ReverseBitsLen returns x with its low bitLen bits reversed and all higher
// bits cleared: bit i of the result, for i < bitLen, is bit bitLen-1-i of x.
// bitLen ranges from zero (always returns 0) to bits.UintSize inclusive.
func ReverseBitsLen(x uint, bitLen int) uint {
	if invariants.Enabled && (bitLen < 0 || bitLen > bits.UintSize) {
		panic(errors.AssertionFailedf("bit length out of range: %d", bitLen))
	}
	// Go defines oversized shift counts to yield zero, so bitLen == 0 needs
	// no special casing: the full reversal is shifted out entirely.
	return bits.Reverse(x) >> (bits.UintSize - bitLen)
}

// ReverseBits is ReverseBitsLen with the bit length taken as log2(n). It
// panics if n is not a power of two.
func ReverseBits(x, n uint) uint {
	return ReverseBitsLen(x, bitmath.Log2Strict(n))
}

// ReverseSliceIndexBits permutes vals in place so that the element at index
// i moves to index ReverseBitsLen(i, log2(len(vals))). A zero-length slice
// is a no-op; any other length must be a power of two or the call panics.
//
// The permutation is its own inverse: applying it twice restores the
// original order. It runs in a single pass with no allocation.
func ReverseSliceIndexBits[T any](vals []T) {
	n := uint(len(vals))
	if n == 0 {
		return
	}
	logN := bitmath.Log2Strict(n)
	for i := uint(0); i < n; i++ {
		// Each transposition is visited from both endpoints; swapping only
		// when i < j performs it once and leaves fixed points alone.
		if j := ReverseBitsLen(i, logN); i < j {
			vals[i], vals[j] = vals[j], vals[i]
		}
	}
}

// ReverseIndexBits returns a new slice holding the bit-reversal permutation
// of vals, leaving vals unchanged. The length must be zero or a power of
// two; a zero-length input returns nil.
func ReverseIndexBits[T any](vals []T) []T {
	n := uint(len(vals))
	if n == 0 {
		return nil
	}
	logN := bitmath.Log2Strict(n)
	out := make([]T, n)
	for i := uint(0); i < n; i++ {
		out[ReverseBitsLen(i, logN)] = vals[i]
	}
	return out
}
