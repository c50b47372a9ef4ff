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

import "unsafe"

// Unsigned is any unsigned integer width the fixed-width coder below
// supports: 1, 2, 4, or 8 bytes (§4.2).
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// EncodeFixed stores v little-endian into the first unsafe.Sizeof(v) bytes
// of r (§4.2). Only unsigned widths are accepted; this package has no
// signed or ZigZag fixed-width coder.
func EncodeFixed[M Mode, T Unsigned](v T, r Region) Result[Region] {
	var m M
	n := int(unsafe.Sizeof(v))
	if !m.checkBytesSpan(r.Size(), n) {
		return resultFail[Region]()
	}
	head, tail := r.Split(n)
	u := uint64(v)
	for i := 0; i < n; i++ {
		head[i] = byte(u >> (8 * i))
	}
	return resultOK(tail)
}

// DecodeFixed reads a little-endian T from the front of r.
func DecodeFixed[M Mode, T Unsigned](r Region) Result[Decoded[T]] {
	var m M
	var zero T
	n := int(unsafe.Sizeof(zero))
	if !m.checkBytesSpan(r.Size(), n) {
		return resultFail[Decoded[T]]()
	}
	head, tail := r.Split(n)
	var u uint64
	for i := 0; i < n; i++ {
		u |= uint64(head[i]) << (8 * i)
	}
	return resultOK(Decoded[T]{Value: T(u), Tail: tail})
}

// FixedSkip returns the byte width a fixed-width coder for T would write.
func FixedSkip[T Unsigned]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// DecodeSkipFixed advances r past one encoded T without materializing it.
func DecodeSkipFixed[M Mode, T Unsigned](r Region) Result[Region] {
	var m M
	n := FixedSkip[T]()
	if !m.checkBytesSpan(r.Size(), n) {
		return resultFail[Region]()
	}
	return resultOK(r.Subspan(n))
}
