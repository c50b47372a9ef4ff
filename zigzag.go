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

import "buf.build/go/protopuf/internal/zigzag"

// ZigZag is a width-parameterized wrapper over an unsigned integer
// representing the signed value (u>>1) ^ -(u&1), per §3. It is the value
// type of the sint32/sint64 scalar coders.
//
// Two ZigZag values compare equal iff their underlying unsigned
// representations are equal (§3); since ZigZag is a plain struct with one
// comparable field, Go's == already gives this for free.
type ZigZag[T zigzag.Signed] struct {
	u uint64
}

// NewZigZag folds a signed value s into its ZigZag wire representation:
// (s<<1) ^ (s>>(width-1)), using an arithmetic shift (§3).
func NewZigZag[T zigzag.Signed](s T) ZigZag[T] {
	return ZigZag[T]{u: zigzag.Encode(s)}
}

// Underlying returns the raw unsigned ZigZag-folded representation.
func (z ZigZag[T]) Underlying() uint64 {
	return z.u
}

// Signed unfolds z back into its signed value.
func (z ZigZag[T]) Signed() T {
	return zigzag.Decode64[T](z.u)
}

// EncodeZigZag ZigZag-folds v and encodes the result as an unsigned varint
// (§4.3: "ZigZag varint first transforms the value to its unsigned ZigZag
// form, then encodes as unsigned varint").
func EncodeZigZag[M Mode, T zigzag.Signed](v T, r Region) Result[Region] {
	return EncodeVarint[M](zigzag.Encode(v), r)
}

// DecodeZigZag decodes an unsigned varint and unfolds it as T.
func DecodeZigZag[M Mode, T zigzag.Signed](r Region) Result[Decoded[T]] {
	d := DecodeVarint[M](r)
	if !d.OK() {
		return resultFail[Decoded[T]]()
	}
	v := d.Value()
	return resultOK(Decoded[T]{Value: zigzag.Decode64[T](v.Value), Tail: v.Tail})
}

// ZigZagSkip returns the number of bytes EncodeZigZag would write for v.
func ZigZagSkip[T zigzag.Signed](v T) int {
	return VarintSkip(zigzag.Encode(v))
}

// DecodeSkipZigZag advances r past one encoded ZigZag varint. ZigZag shares
// wire type 0 with every other varint.
func DecodeSkipZigZag[M Mode](r Region) Result[Region] {
	return DecodeSkipVarint[M](r)
}
