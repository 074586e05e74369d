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

// Package memsize provides [Size], a bit-granular memory quantity, and
// [Offset], its signed counterpart for relative displacements.
//
// A [Size] stores an unsigned 64-bit count of bits, so it can represent
// quantities that are not a whole number of bytes, up to roughly 2.3 exabytes.
// Values are immutable: arithmetic, alignment, and clamping all return new
// values.
//
// Arithmetic never wraps silently. An operation whose result is not
// representable panics with an error wrapping one of the package's sentinel
// errors ([ErrOverflow], [ErrUnderflow], [ErrNotWholeBytes],
// [ErrInvalidRange]); out-of-range inputs are treated as programming errors
// at the call site, not recoverable conditions. The one exception is [Parse],
// which reports malformed external input as an ordinary error.
//
// # Sizes versus offsets
//
// A [Size] is always non-negative. Code that needs "8 bytes earlier" is
// talking about a displacement, not a size, and should use [Offset]; apply it
// to a [Size] with [Size.Shift]. The two types do not convert implicitly.
package memsize
