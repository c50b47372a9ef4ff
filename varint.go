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

import "google.golang.org/protobuf/encoding/protowire"

// EncodeVarint writes the LEB128 encoding of v into the front of r and
// returns the rest of r: 7 bits per byte, low group first, high bit set on
// every byte but the last (§4.3).
func EncodeVarint[M Mode](v uint64, r Region) Result[Region] {
	var m M
	n := VarintSkip(v)
	if !m.checkBytesSpan(r.Size(), n) {
		return resultFail[Region]()
	}
	head, tail := r.Split(n)
	protowire.AppendVarint(head[:0], v)
	return resultOK(tail)
}

// DecodeVarint decodes an unsigned LEB128 varint from the front of r.
//
// Overlong (non-minimal) encodings are accepted, matching the teacher's
// observable behavior (spec.md §9, "Non-canonical varints"). There is no
// shift/length cap beyond buffer exhaustion (§4.3): bits shifted past 63
// simply fall off, which is well-defined in Go, so a pathological
// continuation chain longer than 10 bytes still decodes as long as the
// buffer has the bytes for it.
func DecodeVarint[M Mode](r Region) Result[Decoded[uint64]] {
	var m M
	var x uint64
	var shift uint
	i := 0
	end := r.Size()
	for {
		if !m.checkIterator(i, end) {
			return resultFail[Decoded[uint64]]()
		}
		b := r[i]
		x |= uint64(b&0x7f) << shift
		i++
		if b < 0x80 {
			return resultOK(Decoded[uint64]{Value: x, Tail: r.Subspan(i)})
		}
		shift += 7
	}
}

// VarintSkip returns the number of bytes EncodeVarint would write for v,
// without touching a buffer.
func VarintSkip(v uint64) int {
	return protowire.SizeVarint(v)
}

// DecodeSkipVarint advances r past one encoded varint without materializing
// its value.
func DecodeSkipVarint[M Mode](r Region) Result[Region] {
	d := DecodeVarint[M](r)
	if !d.OK() {
		return resultFail[Region]()
	}
	return resultOK(d.Value().Tail)
}

// signedWidth is the bit width of a native Go signed integer type.
type signedWidth interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// EncodeSignedVarint encodes a signed integer through its two's-complement
// unsigned representation, so negative values always take the maximum
// varint width (§4.3).
func EncodeSignedVarint[M Mode, T signedWidth](v T, r Region) Result[Region] {
	return EncodeVarint[M](signedToUnsigned(v), r)
}

// DecodeSignedVarint decodes a varint and reinterprets it as T via two's
// complement.
func DecodeSignedVarint[M Mode, T signedWidth](r Region) Result[Decoded[T]] {
	d := DecodeVarint[M](r)
	if !d.OK() {
		return resultFail[Decoded[T]]()
	}
	v := d.Value()
	return resultOK(Decoded[T]{Value: T(v.Value), Tail: v.Tail})
}

// signedToUnsigned sign-extends a signed value to the full uint64 varint
// width, the same way Protobuf encodes int32/int64 fields (never sign-folds
// them — that's what ZigZag is for).
func signedToUnsigned[T signedWidth](v T) uint64 {
	return uint64(int64(v))
}

// SignedVarintSkip returns the number of bytes EncodeSignedVarint would
// write for v.
func SignedVarintSkip[T signedWidth](v T) int {
	return VarintSkip(signedToUnsigned(v))
}
