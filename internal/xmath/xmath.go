// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package xmath provides overflow-aware arithmetic on unsigned 64-bit
// magnitudes.
//
// Every function reports representability explicitly instead of wrapping, so
// callers can decide how to surface an out-of-range result.
package xmath

import "math/bits"

// CheckedAdd returns a + b, and whether the sum is representable.
func CheckedAdd(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// CheckedSub returns a - b, and whether the difference is non-negative.
func CheckedSub(a, b uint64) (uint64, bool) {
	diff, borrow := bits.Sub64(a, b, 0)
	return diff, borrow == 0
}

// CheckedMul returns a * b, and whether the product is representable.
func CheckedMul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// RoundUp returns the smallest multiple of m that is greater than or equal to
// n, and whether that multiple is representable.
//
// A multiple of zero means no constraint; n is returned unchanged. The result
// is computed as n plus the padding to the next multiple, never as
// n + m - 1, which wraps for values near the top of the range.
func RoundUp(n, m uint64) (uint64, bool) {
	return CheckedAdd(n, Padding(n, m))
}

// Padding returns the distance from n to the next multiple of m, or zero if n
// is already a multiple (or m is zero).
func Padding(n, m uint64) uint64 {
	if m == 0 {
		return 0
	}
	rem := n % m
	if rem == 0 {
		return 0
	}
	return m - rem
}
