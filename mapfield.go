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

import "reflect"

// mapField is a Field whose storage is a Go map, the associative container
// default for map-typed fields (§3, §4.10): equal keys coalesce on insert,
// and a later duplicate during decode overwrites an earlier one, which is
// exactly what a bare `m[k] = v` assignment already does.
//
// Each wire occurrence of a map field is a two-field embedded message
// {key@1, value@2} (a "map element", §4.10), so mapField builds one
// ad hoc *Message[M] per entry and reuses Message's own emit/parse loop for
// the entry body. The length prefix around each entry is written and read
// here, in Encode and DecodeMerge.
type mapField[M Mode, K comparable, V any] struct {
	name     string
	tag      Number
	keyCodec Codec[M, K]
	valCodec Codec[M, V]
	slot     *map[K]V
}

// MapEntries declares a map field bound to slot, with tag as the field
// number and keyCodec/valCodec as the map element's own field@1/field@2
// codecs.
func MapEntries[M Mode, K comparable, V any, KC Codec[M, K], VC Codec[M, V]](
	name string, tag Number, keyCodec KC, valCodec VC, slot *map[K]V,
) Field[M] {
	return &mapField[M, K, V]{name: name, tag: tag, keyCodec: keyCodec, valCodec: valCodec, slot: slot}
}

func (f *mapField[M, K, V]) Name() string       { return f.name }
func (f *mapField[M, K, V]) Tag() Number        { return f.tag }
func (f *mapField[M, K, V]) WireType() WireType { return WireBytes }
func (f *mapField[M, K, V]) Key() uint64        { return Key(f.tag, WireBytes) }
func (f *mapField[M, K, V]) Empty() bool        { return len(*f.slot) == 0 }

// entrySchema builds the map-element message {key@1, value@2} for one
// (k, v) pair, ready to Encode.
func (f *mapField[M, K, V]) entrySchema(k K, v V) *Message[M] {
	ko := &Optional[K]{}
	vo := &Optional[V]{}
	ko.Set(k)
	vo.Set(v)
	return NewMessage[M]("map_entry",
		Singular[M, K, Codec[M, K]]("key", 1, f.keyCodec, ko),
		Singular[M, V, Codec[M, V]]("value", 2, f.valCodec, vo),
	)
}

// Encode emits the map as repeated length-delimited entries, each a
// two-field embedded message (§4.10, §6 "Maps").
func (f *mapField[M, K, V]) Encode(r Region) Result[Region] {
	var m M
	key := f.Key()
	cur := r
	for k, v := range *f.slot {
		keyR := EncodeVarint[M](key, cur)
		if !keyR.OK() {
			return resultFail[Region]()
		}
		entry := f.entrySchema(k, v)
		n := entry.EncodeSkip()

		lenR := EncodeVarint[M](uint64(n), keyR.Value())
		if !lenR.OK() {
			return resultFail[Region]()
		}
		if !m.checkBytesSpan(lenR.Value().Size(), n) {
			return resultFail[Region]()
		}
		head, tail := lenR.Value().Split(n)
		if !entry.Encode(head).OK() {
			return resultFail[Region]()
		}
		cur = tail
	}
	return resultOK(cur)
}

// DecodeMerge decodes one map entry and inserts it, overwriting any
// existing value for the same key (§4.10, §8 "Map coalescing").
func (f *mapField[M, K, V]) DecodeMerge(r Region) Result[Region] {
	var m M
	lenD := DecodeVarint[M](r)
	if !lenD.OK() {
		return resultFail[Region]()
	}
	lv := lenD.Value()
	n := int(lv.Value)
	if !m.checkBytesSpan(lv.Tail.Size(), n) {
		return resultFail[Region]()
	}
	head, tail := lv.Tail.Split(n)

	var ko Optional[K]
	var vo Optional[V]
	entry := NewMessage[M]("map_entry",
		Singular[M, K, Codec[M, K]]("key", 1, f.keyCodec, &ko),
		Singular[M, V, Codec[M, V]]("value", 2, f.valCodec, &vo),
	)
	if !entry.Decode(head).OK() {
		return resultFail[Region]()
	}

	if *f.slot == nil {
		*f.slot = make(map[K]V)
	}
	k, _ := ko.Get()
	v, _ := vo.Get()
	(*f.slot)[k] = v
	return resultOK(tail)
}

func (f *mapField[M, K, V]) EncodeSkip() int {
	key := f.Key()
	keyLen := VarintSkip(key)
	total := 0
	for k, v := range *f.slot {
		n := f.entrySchema(k, v).EncodeSkip()
		total += keyLen + n + VarintSkip(uint64(n))
	}
	return total
}

// mergeFrom appends src's entries, later-wins on key collision, matching
// the push semantics every other repeated-shaped field follows (§4.7).
func (f *mapField[M, K, V]) mergeFrom(src Field[M]) {
	o := src.(*mapField[M, K, V])
	if len(*o.slot) == 0 {
		return
	}
	if *f.slot == nil {
		*f.slot = make(map[K]V, len(*o.slot))
	}
	for k, v := range *o.slot {
		(*f.slot)[k] = v
	}
}

func (f *mapField[M, K, V]) equalTo(src Field[M]) bool {
	o := src.(*mapField[M, K, V])
	return reflect.DeepEqual(*f.slot, *o.slot)
}
