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

// Schemaed is implemented by a user message type (ordinarily a pointer to a
// struct whose fields were bound with Singular/Repeated/MapEntries) that
// exposes its field bindings as a *Message[M]. EmbeddedCodec uses this to
// recurse into a nested message's own emit/parse loop (§4.9). Map fields do
// not go through it: mapfield.go builds each entry's Message directly.
type Schemaed[M Mode] interface {
	Schema() *Message[M]
}

// EmbeddedCodec is the Codec for a nested message field: wire type 2, a
// varint length prefix followed by the nested message's own encoding
// (§4.9). T is ordinarily a pointer type; New must return a fresh zero
// value of T to decode into.
type EmbeddedCodec[M Mode, T Schemaed[M]] struct {
	New func() T
}

func (EmbeddedCodec[M, T]) WireType() WireType { return WireBytes }

func (c EmbeddedCodec[M, T]) Encode(v T, r Region) Result[Region] {
	var m M
	body := v.Schema()
	n := body.EncodeSkip()

	lenR := EncodeVarint[M](uint64(n), r)
	if !lenR.OK() {
		return resultFail[Region]()
	}
	if !m.checkBytesSpan(lenR.Value().Size(), n) {
		return resultFail[Region]()
	}
	head, tail := lenR.Value().Split(n)
	if !body.Encode(head).OK() {
		return resultFail[Region]()
	}
	return resultOK(tail)
}

// Decode reads the varint length, then invokes the nested message's own
// parse loop constrained to exactly that many bytes (§4.9): the loop
// naturally stops at the end of the sliced-off head region, with no
// separate boundary bookkeeping needed.
func (c EmbeddedCodec[M, T]) Decode(r Region) Result[Decoded[T]] {
	var m M
	lenD := DecodeVarint[M](r)
	if !lenD.OK() {
		return resultFail[Decoded[T]]()
	}
	lv := lenD.Value()
	n := int(lv.Value)
	if !m.checkBytesSpan(lv.Tail.Size(), n) {
		return resultFail[Decoded[T]]()
	}
	head, tail := lv.Tail.Split(n)

	v := c.New()
	if !v.Schema().Decode(head).OK() {
		return resultFail[Decoded[T]]()
	}
	return resultOK(Decoded[T]{Value: v, Tail: tail})
}

// EncodeSkip reports message_length + varint_skip(message_length) (§4.9).
func (EmbeddedCodec[M, T]) EncodeSkip(v T) int {
	n := v.Schema().EncodeSkip()
	return n + VarintSkip(uint64(n))
}

func (EmbeddedCodec[M, T]) DecodeSkip(r Region) Result[Region] {
	return DecodeSkipLengthDelimited[M](r)
}
