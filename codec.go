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

// Codec is the full encode/decode/skip bundle for one field's wire
// representation, fixed to Mode M and Go value type T. Every scalar
// primitive (varint, fixed, float, bool, enum, ZigZag) and the bytes and
// string coders have a Codec adapter in this file; nested messages use
// EmbeddedCodec in embedded.go. Arrays have no Codec adapter (they are
// coded through ElementCodec), and map fields are a Field built by
// MapEntries rather than a Codec. This lets Field and Message hold a single
// uniform shape regardless of which primitive backs a given field (§9: "a
// trait-based approach can bundle
// them as one trait with four operations since they are always implemented
// together").
type Codec[M Mode, T any] interface {
	// WireType is the 3-bit wire classifier this codec's encoding uses.
	WireType() WireType
	Encode(v T, r Region) Result[Region]
	Decode(r Region) Result[Decoded[T]]
	EncodeSkip(v T) int
	DecodeSkip(r Region) Result[Region]
}

// VarintCodec is the Codec for an unsigned 64-bit varint value (§4.3).
type VarintCodec[M Mode] struct{}

func (VarintCodec[M]) WireType() WireType                     { return WireVarint }
func (VarintCodec[M]) Encode(v uint64, r Region) Result[Region] { return EncodeVarint[M](v, r) }
func (VarintCodec[M]) Decode(r Region) Result[Decoded[uint64]] { return DecodeVarint[M](r) }
func (VarintCodec[M]) EncodeSkip(v uint64) int                 { return VarintSkip(v) }
func (VarintCodec[M]) DecodeSkip(r Region) Result[Region]      { return DecodeSkipVarint[M](r) }

// SignedVarintCodec is the Codec for int32/int64-style fields: a signed
// integer carried through its two's-complement varint form (§4.3).
type SignedVarintCodec[M Mode, T signedWidth] struct{}

func (SignedVarintCodec[M, T]) WireType() WireType { return WireVarint }
func (SignedVarintCodec[M, T]) Encode(v T, r Region) Result[Region] {
	return EncodeSignedVarint[M](v, r)
}
func (SignedVarintCodec[M, T]) Decode(r Region) Result[Decoded[T]] {
	return DecodeSignedVarint[M, T](r)
}
func (SignedVarintCodec[M, T]) EncodeSkip(v T) int { return SignedVarintSkip(v) }
func (SignedVarintCodec[M, T]) DecodeSkip(r Region) Result[Region] {
	return DecodeSkipVarint[M](r)
}

// FixedCodec is the Codec for a fixed-width unsigned integer (uint32 ->
// wire type 5, uint64 -> wire type 1), per §4.2/§6.
type FixedCodec[M Mode, T Unsigned] struct{}

func (FixedCodec[M, T]) WireType() WireType {
	if FixedSkip[T]() == 8 {
		return WireFixed64
	}
	return WireFixed32
}
func (FixedCodec[M, T]) Encode(v T, r Region) Result[Region] { return EncodeFixed[M](v, r) }
func (FixedCodec[M, T]) Decode(r Region) Result[Decoded[T]] { return DecodeFixed[M, T](r) }
func (FixedCodec[M, T]) EncodeSkip(T) int                    { return FixedSkip[T]() }
func (FixedCodec[M, T]) DecodeSkip(r Region) Result[Region] {
	return DecodeSkipFixed[M, T](r)
}

// Float32Codec and Float64Codec are the Codecs for IEEE 754 float and
// double fields (§4.4).
type Float32Codec[M Mode] struct{}

func (Float32Codec[M]) WireType() WireType                      { return WireFixed32 }
func (Float32Codec[M]) Encode(v float32, r Region) Result[Region] { return EncodeFloat32[M](v, r) }
func (Float32Codec[M]) Decode(r Region) Result[Decoded[float32]] { return DecodeFloat32[M](r) }
func (Float32Codec[M]) EncodeSkip(float32) int                   { return Float32Skip() }
func (Float32Codec[M]) DecodeSkip(r Region) Result[Region]       { return DecodeSkipFloat32[M](r) }

type Float64Codec[M Mode] struct{}

func (Float64Codec[M]) WireType() WireType                      { return WireFixed64 }
func (Float64Codec[M]) Encode(v float64, r Region) Result[Region] { return EncodeFloat64[M](v, r) }
func (Float64Codec[M]) Decode(r Region) Result[Decoded[float64]] { return DecodeFloat64[M](r) }
func (Float64Codec[M]) EncodeSkip(float64) int                   { return Float64Skip() }
func (Float64Codec[M]) DecodeSkip(r Region) Result[Region]       { return DecodeSkipFloat64[M](r) }

// BoolCodec is the Codec for bool fields. It encodes through the 1-byte
// fixed integer coder but declares wire type 0, since a 0/1 varint and a
// 1-byte fixed integer of 0/1 are byte-identical on the wire, and
// wire-format compatibility with the rest of the Protobuf ecosystem
// requires the varint wire type (§4.5, §6).
type BoolCodec[M Mode] struct{}

func (BoolCodec[M]) WireType() WireType                   { return WireVarint }
func (BoolCodec[M]) Encode(v bool, r Region) Result[Region] { return EncodeBool[M](v, r) }
func (BoolCodec[M]) Decode(r Region) Result[Decoded[bool]] { return DecodeBool[M](r) }
func (BoolCodec[M]) EncodeSkip(bool) int                    { return BoolSkip() }
func (BoolCodec[M]) DecodeSkip(r Region) Result[Region]     { return DecodeSkipBool[M](r) }

// EnumCodec is the Codec for enum fields (§4.5).
type EnumCodec[M Mode, T Enum] struct{}

func (EnumCodec[M, T]) WireType() WireType                { return WireVarint }
func (EnumCodec[M, T]) Encode(v T, r Region) Result[Region] { return EncodeEnum[M](v, r) }
func (EnumCodec[M, T]) Decode(r Region) Result[Decoded[T]]  { return DecodeEnum[M, T](r) }
func (EnumCodec[M, T]) EncodeSkip(v T) int                  { return EnumSkip(v) }
func (EnumCodec[M, T]) DecodeSkip(r Region) Result[Region]  { return DecodeSkipEnum[M](r) }

// ZigZagCodec is the Codec for sint32/sint64-style fields (§3, §4.3).
type ZigZagCodec[M Mode, T zigzag.Signed] struct{}

func (ZigZagCodec[M, T]) WireType() WireType                { return WireVarint }
func (ZigZagCodec[M, T]) Encode(v T, r Region) Result[Region] { return EncodeZigZag[M](v, r) }
func (ZigZagCodec[M, T]) Decode(r Region) Result[Decoded[T]]  { return DecodeZigZag[M, T](r) }
func (ZigZagCodec[M, T]) EncodeSkip(v T) int                  { return ZigZagSkip(v) }
func (ZigZagCodec[M, T]) DecodeSkip(r Region) Result[Region]  { return DecodeSkipZigZag[M](r) }

// BytesCodec is the Codec for bytes fields (§4.6).
type BytesCodec[M Mode] struct{}

func (BytesCodec[M]) WireType() WireType                        { return WireBytes }
func (BytesCodec[M]) Encode(v []byte, r Region) Result[Region]    { return EncodeBytes[M](v, r) }
func (BytesCodec[M]) Decode(r Region) Result[Decoded[[]byte]]    { return DecodeBytes[M](r) }
func (BytesCodec[M]) EncodeSkip(v []byte) int                    { return BytesSkip(v) }
func (BytesCodec[M]) DecodeSkip(r Region) Result[Region]          { return DecodeSkipBytes[M](r) }

// StringCodec is the Codec for string fields (§4.6).
type StringCodec[M Mode] struct{}

func (StringCodec[M]) WireType() WireType                     { return WireBytes }
func (StringCodec[M]) Encode(v string, r Region) Result[Region] { return EncodeString[M](v, r) }
func (StringCodec[M]) Decode(r Region) Result[Decoded[string]] { return DecodeString[M](r) }
func (StringCodec[M]) EncodeSkip(v string) int                  { return StringSkip(v) }
func (StringCodec[M]) DecodeSkip(r Region) Result[Region]        { return DecodeSkipString[M](r) }
