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

package memsize

import (
	"cmp"

	"buf.build/go/memsize/internal/xmath"
)

const bitsPerByte = 8

// Size is a non-negative quantity of memory, measured in bits.
//
// The zero value is a zero-bit size. Size is comparable with ==, and values
// are safe to share across goroutines; no operation mutates its receiver
// except the explicit in-place forms [Size.Inc] and [Size.Dec].
//
// Operations whose result is out of range panic; see the package
// documentation.
type Size struct {
	bits uint64
}

// Zero returns the zero-bit size. It is identical to the zero value of the
// type.
func Zero() Size {
	return Size{}
}

// FromBytes returns a size of n bytes.
//
// Panics with [ErrOverflow] if n bytes exceeds the representable range of
// bits.
func FromBytes(n uint64) Size {
	bits, ok := xmath.CheckedMul(n, bitsPerByte)
	if !ok {
		fault(ErrOverflow, "%d bytes", n)
	}
	return Size{bits}
}

// FromBits returns a size of exactly n bits. Every bit count is
// representable, so FromBits never fails.
func FromBits(n uint64) Size {
	return Size{n}
}

// FromBitsCeil returns the smallest whole-byte size that can hold n bits.
//
// Panics with [ErrOverflow] if the next whole byte is out of range, which is
// only possible for the last seven representable bit counts.
func FromBitsCeil(n uint64) Size {
	bits, ok := xmath.RoundUp(n, bitsPerByte)
	if !ok {
		fault(ErrOverflow, "%d bits rounded up to a whole byte", n)
	}
	return Size{bits}
}

// Bits returns the stored bit count verbatim.
func (s Size) Bits() uint64 {
	return s.bits
}

// Bytes returns the size in bytes.
//
// This is the strict accessor for sizes known to hold whole bytes: it panics
// with [ErrNotWholeBytes] if the bit count is not a multiple of eight. Use
// [Size.Split] to tolerate partial bytes.
func (s Size) Bytes() uint64 {
	if s.bits%bitsPerByte != 0 {
		fault(ErrNotWholeBytes, "%d bits", s.bits)
	}
	return s.bits / bitsPerByte
}

// Split decomposes the size into whole bytes and leftover bits. Unlike
// [Size.Bytes] it never fails; bits is always in [0, 8).
func (s Size) Split() (bits, bytes uint64) {
	return s.bits % bitsPerByte, s.bits / bitsPerByte
}

// Add returns s + o.
//
// Addition is commutative and associative whenever no intermediate sum
// overflows; an overflowing sum panics with [ErrOverflow].
func (s Size) Add(o Size) Size {
	sum, ok := xmath.CheckedAdd(s.bits, o.bits)
	if !ok {
		fault(ErrOverflow, "%d + %d bits", s.bits, o.bits)
	}
	return Size{sum}
}

// Sub returns s - o.
//
// A size cannot be negative, so o > s panics with [ErrUnderflow] rather than
// producing a wrapped result.
func (s Size) Sub(o Size) Size {
	diff, ok := xmath.CheckedSub(s.bits, o.bits)
	if !ok {
		fault(ErrUnderflow, "%d - %d bits", s.bits, o.bits)
	}
	return Size{diff}
}

// Sum returns the total of the given sizes, starting from zero.
//
// It is equivalent to repeated [Size.Add] and panics with [ErrOverflow] on
// the first overflowing partial sum; for non-overflowing inputs the result
// does not depend on order.
func Sum(sizes ...Size) Size {
	var total Size
	for _, s := range sizes {
		total = total.Add(s)
	}
	return total
}

// Inc adds o to s in place, with the same overflow contract as [Size.Add].
func (s *Size) Inc(o Size) {
	*s = s.Add(o)
}

// Dec subtracts o from s in place, with the same underflow contract as
// [Size.Sub].
func (s *Size) Dec(o Size) {
	*s = s.Sub(o)
}

// Cmp compares two sizes by magnitude, returning -1, 0, or +1 in the manner
// of [cmp.Compare]. Equality is ordinary ==.
func (s Size) Cmp(o Size) int {
	return cmp.Compare(s.bits, o.bits)
}

// Min returns the smaller of a and b.
func Min(a, b Size) Size {
	if a.bits < b.bits {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Size) Size {
	if a.bits > b.bits {
		return a
	}
	return b
}

// Clamp returns s limited to the inclusive range [lo, hi].
//
// Panics with [ErrInvalidRange] if lo > hi; an inverted range is a bug at the
// call site, not a runtime condition.
func (s Size) Clamp(lo, hi Size) Size {
	if lo.bits > hi.bits {
		fault(ErrInvalidRange, "[%d, %d] bits", lo.bits, hi.bits)
	}
	return Max(lo, Min(s, hi))
}

// AlignUp returns the smallest size that is at least s and an exact multiple
// of align.
//
// A zero size is aligned to everything, and a zero alignment constrains
// nothing; both cases return s unchanged. The round-up is overflow-safe for
// every representable result and panics with [ErrOverflow] only when the next
// multiple itself is out of range.
func (s Size) AlignUp(align Size) Size {
	bits, ok := xmath.RoundUp(s.bits, align.bits)
	if !ok {
		fault(ErrOverflow, "%d bits aligned up to a multiple of %d", s.bits, align.bits)
	}
	return Size{bits}
}

// RoundUpByte returns the smallest whole-byte size that can hold s. It is a
// no-op when s already holds whole bytes.
func (s Size) RoundUpByte() Size {
	return s.AlignUp(FromBytes(1))
}
