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

// ElementCodec is the per-element operation set the Array coder needs: how
// to encode one element, decode one element, and size one element, all
// fixed to Mode M (§4.6).
type ElementCodec[M Mode, T any] interface {
	EncodeElem(v T, r Region) Result[Region]
	DecodeElem(r Region) Result[Decoded[T]]
	ElemSkip(v T) int
}

// EncodeArray writes elems as a length-prefixed homogeneous sequence: the
// total payload length as a varint, followed by each element in order
// (§4.6, steps 1-3).
func EncodeArray[M Mode, T any, C ElementCodec[M, T]](c C, elems []T, r Region) Result[Region] {
	total := 0
	for _, e := range elems {
		total += c.ElemSkip(e)
	}

	lenR := EncodeVarint[M](uint64(total), r)
	if !lenR.OK() {
		return resultFail[Region]()
	}
	cur := lenR.Value()
	for _, e := range elems {
		elemR := c.EncodeElem(e, cur)
		if !elemR.OK() {
			return resultFail[Region]()
		}
		cur = elemR.Value()
	}
	return resultOK(cur)
}

// DecodeArray reads a length-prefixed homogeneous sequence: the length
// varint, then elements until the recorded origin has advanced that many
// bytes (§4.6, steps 1-2). An empty payload (L=0) yields a nil slice.
func DecodeArray[M Mode, T any, C ElementCodec[M, T]](c C, r Region) Result[Decoded[[]T]] {
	var m M
	lenD := DecodeVarint[M](r)
	if !lenD.OK() {
		return resultFail[Decoded[[]T]]()
	}
	lenV := lenD.Value()
	L := lenV.Value
	if !m.checkBytesSpan(lenV.Tail.Size(), int(L)) {
		return resultFail[Decoded[[]T]]()
	}

	origin := lenV.Tail
	cur := lenV.Tail
	var out []T
	for uint64(BeginDiff(cur, origin)) < L {
		elemD := c.DecodeElem(cur)
		if !elemD.OK() {
			return resultFail[Decoded[[]T]]()
		}
		ev := elemD.Value()
		out = append(out, ev.Value)
		cur = ev.Tail
	}
	return resultOK(Decoded[[]T]{Value: out, Tail: cur})
}

// ArraySkip returns the byte length EncodeArray would write for elems: the
// summed element lengths plus their varint length prefix.
func ArraySkip[M Mode, T any, C ElementCodec[M, T]](c C, elems []T) int {
	total := 0
	for _, e := range elems {
		total += c.ElemSkip(e)
	}
	return total + VarintSkip(uint64(total))
}

// DecodeSkipArray advances r past one length-delimited array without
// decoding its elements. Every Array instantiation shares wire type 2 with
// every other length-delimited value, so this is DecodeSkipLengthDelimited.
func DecodeSkipArray[M Mode](r Region) Result[Region] {
	return DecodeSkipLengthDelimited[M](r)
}

// EncodeBytes writes v as a length-prefixed raw byte sequence: this is the
// Array coder specialized to Element = byte, with a bulk copy instead of a
// per-element loop (§4.6's "For byte arrays... a contiguous byte vector").
func EncodeBytes[M Mode](v []byte, r Region) Result[Region] {
	var m M
	lenR := EncodeVarint[M](uint64(len(v)), r)
	if !lenR.OK() {
		return resultFail[Region]()
	}
	cur := lenR.Value()
	if !m.checkBytesSpan(cur.Size(), len(v)) {
		return resultFail[Region]()
	}
	head, tail := cur.Split(len(v))
	copy(head, v)
	return resultOK(tail)
}

// DecodeBytes reads a length-prefixed raw byte sequence. The returned slice
// aliases r's backing array; callers that need to retain it past the
// caller's buffer lifetime must copy it themselves, per §5's "the core does
// not retain pointers into the caller's buffer beyond return" (that promise
// covers the core, not values it hands back to the caller).
func DecodeBytes[M Mode](r Region) Result[Decoded[[]byte]] {
	var m M
	lenD := DecodeVarint[M](r)
	if !lenD.OK() {
		return resultFail[Decoded[[]byte]]()
	}
	lenV := lenD.Value()
	n := int(lenV.Value)
	if !m.checkBytesSpan(lenV.Tail.Size(), n) {
		return resultFail[Decoded[[]byte]]()
	}
	head, tail := lenV.Tail.Split(n)
	return resultOK(Decoded[[]byte]{Value: []byte(head), Tail: tail})
}

// BytesSkip returns the number of bytes EncodeBytes would write for v.
func BytesSkip(v []byte) int {
	return len(v) + VarintSkip(uint64(len(v)))
}

// DecodeSkipBytes advances r past one length-prefixed byte sequence.
func DecodeSkipBytes[M Mode](r Region) Result[Region] {
	return DecodeSkipLengthDelimited[M](r)
}

// EncodeString is EncodeBytes for the UTF-agnostic byte-string element type
// (§4.6: "for string a UTF-agnostic byte string").
func EncodeString[M Mode](v string, r Region) Result[Region] {
	return EncodeBytes[M]([]byte(v), r)
}

// DecodeString is DecodeBytes, reinterpreting the result as a string. This
// copies, since a Go string must not alias a mutable buffer.
func DecodeString[M Mode](r Region) Result[Decoded[string]] {
	d := DecodeBytes[M](r)
	if !d.OK() {
		return resultFail[Decoded[string]]()
	}
	v := d.Value()
	return resultOK(Decoded[string]{Value: string(v.Value), Tail: v.Tail})
}

// StringSkip returns the number of bytes EncodeString would write for v.
func StringSkip(v string) int {
	return BytesSkip([]byte(v))
}

// DecodeSkipString advances r past one length-prefixed string.
func DecodeSkipString[M Mode](r Region) Result[Region] {
	return DecodeSkipLengthDelimited[M](r)
}
