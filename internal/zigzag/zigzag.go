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

// Package zigzag implements width-parameterized ZigZag integer folding, as
// used by Protobuf's sint32/sint64 wire types.
package zigzag

import (
	"unsafe"

	"google.golang.org/protobuf/encoding/protowire"
)

// Number is any integer width this package folds or unfolds.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the subset of Number that Encode accepts: ZigZag folding is only
// meaningful starting from a signed, sign-extended value.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Decode unfolds a ZigZag-encoded raw value back to its signed form, masking
// to raw's own width first so that sign extension from an earlier, wider
// conversion can't leak in.
func Decode[T Number](raw T) T {
	n := uint64(raw)
	n &= (1 << (unsafe.Sizeof(raw) * 8)) - 1

	return T(protowire.DecodeZigZag(n))
}

// Decode64 is a helper for calling zigzag with a raw 64-bit input.
func Decode64[T Number](raw uint64) T {
	return Decode(T(raw))
}

// Encode folds value into its unsigned ZigZag wire representation, masked to
// value's own width. T must be a native Go signed type so that the
// conversion to int64 below sign-extends correctly.
func Encode[T Signed](value T) uint64 {
	width := unsafe.Sizeof(value) * 8
	folded := protowire.EncodeZigZag(int64(value))
	mask := ^uint64(0) >> (64 - width)
	return folded & mask
}
