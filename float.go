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

import "math"

// EncodeFloat32 bit-casts v to its IEEE 754 bit pattern and delegates to the
// fixed-width integer coder (§4.4). math.Float32bits is a guaranteed
// reinterpretation, never a tearing or UB-prone pointer cast.
func EncodeFloat32[M Mode](v float32, r Region) Result[Region] {
	return EncodeFixed[M](math.Float32bits(v), r)
}

// DecodeFloat32 reads a 4-byte little-endian IEEE 754 bit pattern and
// reinterprets it as a float32.
func DecodeFloat32[M Mode](r Region) Result[Decoded[float32]] {
	d := DecodeFixed[M, uint32](r)
	if !d.OK() {
		return resultFail[Decoded[float32]]()
	}
	v := d.Value()
	return resultOK(Decoded[float32]{Value: math.Float32frombits(v.Value), Tail: v.Tail})
}

// EncodeFloat64 is EncodeFloat32's 8-byte counterpart.
func EncodeFloat64[M Mode](v float64, r Region) Result[Region] {
	return EncodeFixed[M](math.Float64bits(v), r)
}

// DecodeFloat64 is DecodeFloat32's 8-byte counterpart.
func DecodeFloat64[M Mode](r Region) Result[Decoded[float64]] {
	d := DecodeFixed[M, uint64](r)
	if !d.OK() {
		return resultFail[Decoded[float64]]()
	}
	v := d.Value()
	return resultOK(Decoded[float64]{Value: math.Float64frombits(v.Value), Tail: v.Tail})
}

// Float32Skip and Float64Skip are the fixed byte widths a float coder
// writes; named for symmetry with the other coders' Skip functions.
func Float32Skip() int { return FixedSkip[uint32]() }
func Float64Skip() int { return FixedSkip[uint64]() }

// DecodeSkipFloat32 advances r past one encoded float32.
func DecodeSkipFloat32[M Mode](r Region) Result[Region] {
	return DecodeSkipFixed[M, uint32](r)
}

// DecodeSkipFloat64 advances r past one encoded float64.
func DecodeSkipFloat64[M Mode](r Region) Result[Region] {
	return DecodeSkipFixed[M, uint64](r)
}
