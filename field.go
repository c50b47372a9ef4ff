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

// Cardinality is a field's declared discipline: singular (optional-of-one)
// or repeated (insertable sequence). It is baked into which constructor
// (Singular or Repeated) built a Field, not stored as a runtime flag read
// by shared code, per §3.
type Cardinality int

const (
	CardinalitySingular Cardinality = iota
	CardinalityRepeated
)

// Optional is the storage slot for a singular field: present or absent,
// never collapsed with a sentinel zero value (§3, "optional of codec value
// type").
type Optional[T any] struct {
	value T
	isSet bool
}

// Get returns the stored value and whether one is present.
func (o *Optional[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// Set stores v and marks the slot present.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.isSet = true
}

// IsSet reports whether a value has been stored.
func (o *Optional[T]) IsSet() bool {
	return o.isSet
}

// Clear empties the slot.
func (o *Optional[T]) Clear() {
	var zero T
	o.value = zero
	o.isSet = false
}

// Field is a compile-time binding of (name, tag number, codec, cardinality,
// container) to a storage slot inside a containing message struct (§3, §4.7).
//
// Field is sealed: the only implementations are singularField and
// repeatedField below (constructed via Singular and Repeated), plus the map
// field in mapfield.go. Go has no constexpr dictionary of fields the way
// the source's variadic-template composition does, so Field's lookup
// tables (by tag, by name) are ordinary maps — but, per §4.11 and the
// "Dispatch tables" design note, they are built exactly once, at message
// construction, and never mutated after.
type Field[M Mode] interface {
	// Name is the field's declared name.
	Name() string
	// Tag is the field's declared tag number.
	Tag() Number
	// WireType is the wire classifier of this field's codec.
	WireType() WireType
	// Key is the precomputed (tag<<3)|wireType varint value.
	Key() uint64
	// Empty reports whether this field has nothing to emit: "has no value"
	// for a singular field, "size is zero" for a repeated one (§4.7).
	Empty() bool
	// Encode emits this field's value(s), including their key(s). Message
	// only calls this when !Empty().
	Encode(r Region) Result[Region]
	// DecodeMerge decodes one wire occurrence of this field (the key has
	// already been consumed by the caller) and pushes it into storage per
	// §4.7's push semantics.
	DecodeMerge(r Region) Result[Region]
	// EncodeSkip is the byte length Encode would produce, key(s) included.
	EncodeSkip() int

	mergeFrom(src Field[M])
	equalTo(src Field[M]) bool
}

// singularField is a Field with cardinality singular: its storage is
// Optional[T], and encode-merge assigns rather than appends (§4.7).
type singularField[M Mode, T any, C Codec[M, T]] struct {
	name  string
	tag   Number
	codec C
	slot  *Optional[T]
}

// Singular declares a singular field bound to slot. slot must point at a
// field inside the message struct this Field will be used with, and must
// remain valid for as long as the Field is used.
func Singular[M Mode, T any, C Codec[M, T]](name string, tag Number, codec C, slot *Optional[T]) Field[M] {
	return &singularField[M, T, C]{name: name, tag: tag, codec: codec, slot: slot}
}

func (f *singularField[M, T, C]) Name() string       { return f.name }
func (f *singularField[M, T, C]) Tag() Number        { return f.tag }
func (f *singularField[M, T, C]) WireType() WireType { return f.codec.WireType() }
func (f *singularField[M, T, C]) Key() uint64        { return Key(f.tag, f.codec.WireType()) }
func (f *singularField[M, T, C]) Empty() bool        { return !f.slot.isSet }

func (f *singularField[M, T, C]) Encode(r Region) Result[Region] {
	keyR := EncodeVarint[M](f.Key(), r)
	if !keyR.OK() {
		return resultFail[Region]()
	}
	return f.codec.Encode(f.slot.value, keyR.Value())
}

func (f *singularField[M, T, C]) DecodeMerge(r Region) Result[Region] {
	d := f.codec.Decode(r)
	if !d.OK() {
		return resultFail[Region]()
	}
	v := d.Value()
	f.slot.Set(v.Value)
	return resultOK(v.Tail)
}

func (f *singularField[M, T, C]) EncodeSkip() int {
	return VarintSkip(f.Key()) + f.codec.EncodeSkip(f.slot.value)
}

// mergeFrom implements §4.7's merge rule for singular fields: overwrite
// dst only when src is non-empty.
func (f *singularField[M, T, C]) mergeFrom(src Field[M]) {
	o := src.(*singularField[M, T, C])
	if v, ok := o.slot.Get(); ok {
		f.slot.Set(v)
	}
}

func (f *singularField[M, T, C]) equalTo(src Field[M]) bool {
	o := src.(*singularField[M, T, C])
	av, aok := f.slot.Get()
	bv, bok := o.slot.Get()
	if aok != bok {
		return false
	}
	if !aok {
		return true
	}
	return reflect.DeepEqual(av, bv)
}

// repeatedField is a Field with cardinality repeated: its storage is a
// Go slice, the default "insertable sized sequence" container (§3), and
// encode-merge appends rather than assigns (§4.7).
type repeatedField[M Mode, T any, C Codec[M, T]] struct {
	name  string
	tag   Number
	codec C
	slot  *[]T
}

// Repeated declares a repeated field bound to slot.
func Repeated[M Mode, T any, C Codec[M, T]](name string, tag Number, codec C, slot *[]T) Field[M] {
	return &repeatedField[M, T, C]{name: name, tag: tag, codec: codec, slot: slot}
}

func (f *repeatedField[M, T, C]) Name() string       { return f.name }
func (f *repeatedField[M, T, C]) Tag() Number        { return f.tag }
func (f *repeatedField[M, T, C]) WireType() WireType { return f.codec.WireType() }
func (f *repeatedField[M, T, C]) Key() uint64        { return Key(f.tag, f.codec.WireType()) }
func (f *repeatedField[M, T, C]) Empty() bool        { return len(*f.slot) == 0 }

// Encode emits the unpacked representation: each element preceded by its
// own key, in container iteration order (§4.8, §6).
func (f *repeatedField[M, T, C]) Encode(r Region) Result[Region] {
	key := f.Key()
	cur := r
	for _, v := range *f.slot {
		keyR := EncodeVarint[M](key, cur)
		if !keyR.OK() {
			return resultFail[Region]()
		}
		elemR := f.codec.Encode(v, keyR.Value())
		if !elemR.OK() {
			return resultFail[Region]()
		}
		cur = elemR.Value()
	}
	return resultOK(cur)
}

// DecodeMerge decodes one occurrence of this field's value and back-inserts
// it, per §4.7's push semantics for repeated fields. The key has already
// been consumed; repeated occurrences accumulate in encounter order (§4.8's
// "repeated fields accumulate in encounter order").
func (f *repeatedField[M, T, C]) DecodeMerge(r Region) Result[Region] {
	d := f.codec.Decode(r)
	if !d.OK() {
		return resultFail[Region]()
	}
	v := d.Value()
	*f.slot = append(*f.slot, v.Value)
	return resultOK(v.Tail)
}

func (f *repeatedField[M, T, C]) EncodeSkip() int {
	key := f.Key()
	keyLen := VarintSkip(key)
	total := 0
	for _, v := range *f.slot {
		total += keyLen + f.codec.EncodeSkip(v)
	}
	return total
}

// mergeFrom implements §4.7's merge rule for repeated fields: append all of
// src's elements.
func (f *repeatedField[M, T, C]) mergeFrom(src Field[M]) {
	o := src.(*repeatedField[M, T, C])
	*f.slot = append(*f.slot, *o.slot...)
}

func (f *repeatedField[M, T, C]) equalTo(src Field[M]) bool {
	o := src.(*repeatedField[M, T, C])
	return reflect.DeepEqual(*f.slot, *o.slot)
}
