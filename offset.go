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

import "math"

// Offset is a signed displacement between memory locations, measured in
// bits.
//
// It is deliberately a separate type from [Size]: a size is an absolute,
// non-negative quantity, while an offset may point backwards. The zero value
// is a zero-bit displacement.
type Offset struct {
	bits int64
}

// OffsetOf returns a displacement of exactly n bits, which may be negative.
func OffsetOf(bits int64) Offset {
	return Offset{bits}
}

// AsOffset converts a size into a forward displacement.
//
// Panics with [ErrOverflow] if the size exceeds the signed offset range
// (half the range of [Size]).
func (s Size) AsOffset() Offset {
	if s.bits > math.MaxInt64 {
		fault(ErrOverflow, "%d bits exceeds the signed offset range", s.bits)
	}
	return Offset{int64(s.bits)}
}

// Bits returns the stored displacement verbatim.
func (o Offset) Bits() int64 {
	return o.bits
}

// Neg returns the displacement with its direction reversed.
//
// Panics with [ErrOverflow] for the most negative displacement, whose
// positive counterpart is not representable.
func (o Offset) Neg() Offset {
	if o.bits == math.MinInt64 {
		fault(ErrOverflow, "negating %d bits", o.bits)
	}
	return Offset{-o.bits}
}

// Add returns o + p, panicking with [ErrOverflow] if the sum leaves the
// signed range in either direction.
func (o Offset) Add(p Offset) Offset {
	if p.bits > 0 && o.bits > math.MaxInt64-p.bits {
		fault(ErrOverflow, "%d + %d bits", o.bits, p.bits)
	}
	if p.bits < 0 && o.bits < math.MinInt64-p.bits {
		fault(ErrOverflow, "%d + %d bits", o.bits, p.bits)
	}
	return Offset{o.bits + p.bits}
}

// Shift returns s displaced by o.
//
// A backward displacement larger than s panics with [ErrUnderflow]; a
// forward displacement past the top of the range panics with [ErrOverflow].
func (s Size) Shift(o Offset) Size {
	mag := uint64(o.bits)
	if o.bits >= 0 {
		return s.Add(Size{mag})
	}
	// Two's-complement negation gives the magnitude even for MinInt64.
	return s.Sub(Size{-mag})
}
