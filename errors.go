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
	"errors"
	"fmt"
)

// Sentinel errors carried by the panics this package raises. A recovered
// panic value can be classified with [errors.Is]:
//
//	defer func() {
//		if err, ok := recover().(error); ok && errors.Is(err, memsize.ErrOverflow) {
//			// ...
//		}
//	}()
var (
	// ErrOverflow reports a result above the maximum representable
	// magnitude.
	ErrOverflow = errors.New("memsize: overflow")

	// ErrUnderflow reports a subtraction that would produce a negative
	// size.
	ErrUnderflow = errors.New("memsize: underflow")

	// ErrNotWholeBytes reports a strict byte-count request on a magnitude
	// that is not a multiple of eight bits.
	ErrNotWholeBytes = errors.New("memsize: not a whole number of bytes")

	// ErrInvalidRange reports a clamp whose minimum exceeds its maximum.
	ErrInvalidRange = errors.New("memsize: invalid clamp range")
)

// fault panics with an error wrapping sentinel, annotated with the operands
// that triggered it.
func fault(sentinel error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)))
}
