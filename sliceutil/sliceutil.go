// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package sliceutil provides small slice conveniences used by transform
// pipelines: append-and-return-pointer, power-of-two length queries, and
// rectangular transposition.
package sliceutil

import (
	"github.com/cockroachdb/bitrev/bitmath"
	"github.com/cockroachdb/errors"
)

// AppendRef appends v to *s and returns a pointer to the appended element,
// saving the caller a separate index expression. The pointer is valid until
// the next append.
func AppendRef[S ~[]T, T any](s *S, v T) *T {
	*s = append(*s, v)
	return &(*s)[len(*s)-1]
}

// LogLen returns (log2(len(s)), true) if the length of s is an exact power
// of two, and (0, false) otherwise. A zero-length slice is not a power of
// two.
func LogLen[T any](s []T) (int, bool) {
	if !bitmath.IsPowerOfTwo(uint(len(s))) {
		return 0, false
	}
	return bitmath.Log2Strict(uint(len(s))), true
}

// LogLenStrict returns log2(len(s)), panicking if the length is not an
// exact power of two.
func LogLenStrict[T any](s []T) int {
	return bitmath.Log2Strict(uint(len(s)))
}

// Transpose returns the columns of rows. The outer slice must be non-empty
// and the rows must all have the same length; either violation panics.
func Transpose[T any](rows [][]T) [][]T {
	if len(rows) == 0 {
		panic(errors.AssertionFailedf("transpose of empty slice"))
	}
	width := len(rows[0])
	for i, row := range rows[1:] {
		if len(row) != width {
			panic(errors.AssertionFailedf(
				"ragged transpose: row %d has length %d, row 0 has length %d",
				i+1, len(row), width))
		}
	}
	cols := make([][]T, width)
	for j := range cols {
		col := make([]T, len(rows))
		for i := range rows {
			col[i] = rows[i][j]
		}
		cols[j] = col
	}
	return cols
}

// Indices returns the slice [0, 1, ..., n-1].
func Indices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
