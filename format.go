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
	"fmt"
	"strings"

	"github.com/docker/go-units"

	"buf.build/go/memsize/internal/xmath"
)

// sizeAbbrs are the unit labels for humanized output. Scaling is 1024-based
// but the labels follow the decimal convention ("kB", not "KiB"), matching
// what [units.RAMInBytes] parses.
var sizeAbbrs = []string{"B", "kB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// String renders the size as a humanized byte count, such as "1 kB" or
// "1.50 MB": two decimal places, trimmed when the scaled value is a whole
// number.
//
// Partial bytes are floored away for display; use [Size.Bits] or
// [Size.Split] when the exact magnitude matters.
func (s Size) String() string {
	_, bytes := s.Split()
	str := units.CustomSize("%.2f %s", float64(bytes), 1024.0, sizeAbbrs)
	return strings.Replace(str, ".00 ", " ", 1)
}

// String renders the displacement as a signed humanized byte count.
func (o Offset) String() string {
	mag := uint64(o.bits)
	if o.bits >= 0 {
		return Size{mag}.String()
	}
	return "-" + Size{-mag}.String()
}

// Parse converts a humanized byte count such as "64", "1 kB", or "1.50 MB"
// back into a [Size], using the same 1024-based convention as
// [Size.String].
//
// Malformed input is external data, not a call-site bug, so Parse returns an
// error instead of panicking.
func Parse(str string) (Size, error) {
	n, err := units.RAMInBytes(str)
	if err != nil {
		return Size{}, fmt.Errorf("memsize: parsing %q: %w", str, err)
	}
	bits, ok := xmath.CheckedMul(uint64(n), bitsPerByte)
	if !ok {
		return Size{}, fmt.Errorf("memsize: parsing %q: %w", str, ErrOverflow)
	}
	return Size{bits}, nil
}

// MarshalText implements [encoding.TextMarshaler] using the humanized form,
// so a Size can sit in config structs the way [time.Duration] does. The
// round trip through [Size.UnmarshalText] is exact only for whole-byte
// sizes, since the humanized form has no bit granularity.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] via [Parse].
func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
