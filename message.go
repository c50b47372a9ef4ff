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

import "fmt"

// Message is the heterogeneous composition of a fixed set of Fields, built
// once at construction time and never restructured afterward (§3, §4.8).
//
// A Message does not own the value storage its Fields point into: it is
// built from the same struct a caller declares their message type as,
// via field slots passed to Singular/Repeated/MapEntries. Two *Message[M]
// values are of "the same type", in spec.md's sense, when they were built
// by calling the same constructor function over two instances of the same
// Go struct, in the same field order — Encode, Decode, Merge, and Equal
// all assume this.
type Message[M Mode] struct {
	name   string
	fields []Field[M]
	byTag  map[Number]Field[M]
	byName map[string]Field[M]
}

// NewMessage builds the dispatch tables (by tag and by name) for one message
// value from its declared fields, in declaration order. The tables are
// built once per call and never changed afterwards. Because the fields
// point into one struct instance's storage, the result belongs to that
// instance: the tables are not shared across instances or cached per
// message type, and every call (for example every Schema() call) builds
// them afresh.
//
// NewMessage panics if two fields declare the same tag number, mirroring
// the source's compile-time "ambiguous lookup type" for duplicate tags
// (§3's "All fields have distinct tag numbers" invariant) as closely as a
// runtime check can.
func NewMessage[M Mode](name string, fields ...Field[M]) *Message[M] {
	byTag := make(map[Number]Field[M], len(fields))
	byName := make(map[string]Field[M], len(fields))
	for _, f := range fields {
		if _, dup := byTag[f.Tag()]; dup {
			panic(fmt.Sprintf("protopuf: message %q declares tag %d more than once", name, f.Tag()))
		}
		byTag[f.Tag()] = f
		byName[f.Name()] = f
	}
	return &Message[M]{name: name, fields: fields, byTag: byTag, byName: byName}
}

// Name returns the message's declared name.
func (m *Message[M]) Name() string { return m.name }

// ForEach invokes f on each field, in declaration order (§4.8).
func (m *Message[M]) ForEach(f func(Field[M])) {
	for _, field := range m.fields {
		f(field)
	}
}

// Fold is a left fold across fields in declaration order (§4.8). It is a
// free function, not a method, because Go methods cannot introduce their
// own type parameters.
func Fold[M Mode, R any](m *Message[M], init R, f func(R, Field[M]) R) R {
	acc := init
	for _, field := range m.fields {
		acc = f(acc, field)
	}
	return acc
}

// ByTag looks up a field by its declared tag number (§4.8's get<tag>, made a
// runtime lookup since Go has no constexpr field dictionary).
func (m *Message[M]) ByTag(tag Number) (Field[M], bool) {
	f, ok := m.byTag[tag]
	return f, ok
}

// ByName looks up a field by its declared name (§4.8's get<name>).
func (m *Message[M]) ByName(name string) (Field[M], bool) {
	f, ok := m.byName[name]
	return f, ok
}

// Encode emits every non-empty field in declaration order: for each, the
// field's key followed by its codec's encoding (§4.8 "Wire emit").
func (m *Message[M]) Encode(r Region) Result[Region] {
	cur := r
	for _, f := range m.fields {
		if f.Empty() {
			continue
		}
		fr := f.Encode(cur)
		if !fr.OK() {
			return resultFail[Region]()
		}
		cur = fr.Value()
	}
	return resultOK(cur)
}

// EncodeSkip is the byte length Encode would produce.
func (m *Message[M]) EncodeSkip() int {
	total := 0
	for _, f := range m.fields {
		if f.Empty() {
			continue
		}
		total += f.EncodeSkip()
	}
	return total
}

// Decode runs the table-driven parse loop of §4.8 "Wire parse": decode a
// key, dispatch on it against this message's declared fields, or skip an
// unknown field by wire type; repeat until the region is exhausted or a
// zero field-number sentinel is read (§9(ii), a source convention this
// package preserves rather than treating as an error).
func (m *Message[M]) Decode(r Region) Result[Region] {
	cur := r
	for cur.Size() > 0 {
		keyD := DecodeVarint[M](cur)
		if !keyD.OK() {
			return resultFail[Region]()
		}
		kv := keyD.Value()
		num, wt := DecodeKey(kv.Value)

		if num == 0 {
			return resultOK(kv.Tail)
		}
		if !supportedWireType(wt) {
			return resultFail[Region]()
		}

		if f, ok := m.byTag[num]; ok && f.WireType() == wt {
			dr := f.DecodeMerge(kv.Tail)
			if !dr.OK() {
				return resultFail[Region]()
			}
			cur = dr.Value()
			continue
		}

		sr := SkipByWireType[M](wt, kv.Tail)
		if !sr.OK() {
			return resultFail[Region]()
		}
		cur = sr.Value()
	}
	return resultOK(cur)
}

// DecodeTop is Decode plus a diagnosable error for top-level callers: the
// byte offset (relative to r) at which parsing failed, and which of §7's
// failure causes produced it.
func (m *Message[M]) DecodeTop(r Region) (Region, error) {
	res := m.Decode(r)
	if res.OK() {
		return res.Value(), nil
	}
	offset, code := m.failurePoint(r)
	return nil, &errParse{code: code, offset: offset}
}

// classifyVarintFailure inspects the bytes a failed varint decode had
// available and reports why it failed: the continuation chain either ran
// past 64 bits (errCodeOverflow) or ran out of input before a terminating
// byte (errCodeShortBuffer).
func classifyVarintFailure(r Region) errCode {
	shift := 0
	for i := 0; i < r.Size(); i++ {
		if shift >= 64 {
			return errCodeOverflow
		}
		if r[i] < 0x80 {
			return errCodeShortBuffer
		}
		shift += 7
	}
	return errCodeShortBuffer
}

// failurePoint re-walks the parse loop under Safe semantics purely to find
// how far it got, and why, before failing, so DecodeTop can report a
// diagnosable error without every successful Decode call paying for offset
// tracking.
func (m *Message[M]) failurePoint(r Region) (int, errCode) {
	cur := Region(r)
	for cur.Size() > 0 {
		keyD := DecodeVarint[Safe](cur)
		if !keyD.OK() {
			return BeginDiff(cur, r), classifyVarintFailure(cur)
		}
		kv := keyD.Value()
		num, wt := DecodeKey(kv.Value)
		if num == 0 {
			if kv.Value>>3 != 0 {
				// DecodeKey folds an out-of-range field number to 0, the
				// same value it uses for the legitimate end-of-message
				// sentinel (§9(ii)); the raw key distinguishes the two.
				return BeginDiff(cur, r), errCodeFieldNumber
			}
			return BeginDiff(kv.Tail, r), errCodeOk
		}
		if !supportedWireType(wt) {
			return BeginDiff(cur, r), errCodeWireType
		}
		if f, ok := m.byTag[num]; ok && f.WireType() == wt {
			before := BeginDiff(kv.Tail, r)
			dr := f.DecodeMerge(kv.Tail)
			if !dr.OK() {
				return before, classifyVarintFailure(kv.Tail)
			}
			cur = dr.Value()
			continue
		}
		sr := SkipByWireType[Safe](wt, kv.Tail)
		if !sr.OK() {
			return BeginDiff(kv.Tail, r), classifyVarintFailure(kv.Tail)
		}
		cur = sr.Value()
	}
	return BeginDiff(cur, r), errCodeShortBuffer
}

// Merge applies §4.7's merge rule field-by-field: src and m must be two
// messages built from the same schema, in the same field order.
func (m *Message[M]) Merge(src *Message[M]) {
	if len(m.fields) != len(src.fields) {
		panic(fmt.Sprintf("protopuf: Merge between mismatched message schemas (%q, %q)", m.name, src.name))
	}
	for i, f := range m.fields {
		f.mergeFrom(src.fields[i])
	}
}

// Equal reports field-wise storage equality (§4.8's operator==).
func (m *Message[M]) Equal(other *Message[M]) bool {
	if len(m.fields) != len(other.fields) {
		return false
	}
	for i, f := range m.fields {
		if !f.equalTo(other.fields[i]) {
			return false
		}
	}
	return true
}
