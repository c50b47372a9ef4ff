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

package protopuf

// Mode is the bounds-checking policy every coder, skipper, field, and
// message operation in this package is parameterized by.
//
// Mode is always a zero-size marker type selected as a type parameter, never
// a runtime value: the safe/unsafe choice is resolved at the call's
// instantiation, exactly as it would be at a C++ template's instantiation
// site. This lets a single generic body serve both policies without
// duplicating the encode/decode logic: only checkIterator and
// checkBytesSpan differ between Safe and Unsafe, and the inliner folds away
// Unsafe's checks entirely.
type Mode interface {
	// checkIterator reports whether i may still be dereferenced before end.
	checkIterator(i, end int) bool
	// checkBytesSpan reports whether a region of the given size has at
	// least n bytes remaining.
	checkBytesSpan(size, n int) bool
}

// Unsafe is the Mode under which every primitive trusts the caller to have
// sized the destination region to at least skipper.EncodeSkip(value) bytes
// before encoding, and to only decode regions it knows hold a complete,
// valid value. Bounds checks are compiled out; running off the end of a
// region under Unsafe is undefined behavior, matching §4.1 and §7.
type Unsafe struct{}

func (Unsafe) checkIterator(int, int) bool      { return true }
func (Unsafe) checkBytesSpan(int, int) bool     { return true }

// Safe is the Mode under which every primitive bounds-checks before
// touching the region and reports exhaustion as a null Result instead of
// running past the end.
type Safe struct{}

func (Safe) checkIterator(i, end int) bool  { return i != end }
func (Safe) checkBytesSpan(size, n int) bool { return size >= n }

// Result is the outcome of an Unsafe or Safe coder operation.
//
// Under Unsafe, no bounds check ever fails, so a Result is never marked
// failed for running out of bytes; it is still marked failed for malformed
// input that no bounds check covers, such as an unsupported wire type.
// Under Safe, ok is also false whenever the region was exhausted before a
// complete value could be decoded or encoded. A failed Result's Value holds
// the type's zero value.
type Result[T any] struct {
	value T
	ok    bool
}

// resultOK builds a successful Result.
func resultOK[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// resultFail builds a failed Result.
func resultFail[T any]() Result[T] {
	var zero T
	return Result[T]{value: zero, ok: false}
}

// Get returns the value and whether it is valid, mirroring Go's
// comma-ok idiom.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

// Value returns the contained value, ignoring validity. Under Safe mode this
// is the zero value if OK is false.
func (r Result[T]) Value() T {
	return r.value
}

// OK reports whether the operation that produced r succeeded.
func (r Result[T]) OK() bool {
	return r.ok
}

// Decoded is the (value, tail) pair a decode operation produces: the
// materialized value, and the region left unconsumed after it. Every
// Decode<Coder> function in this package returns Result[Decoded[T]], mirroring
// §6's decode<Mode>(region) -> Mode::Result<(value, tail)>.
type Decoded[T any] struct {
	Value T
	Tail  Region
}
