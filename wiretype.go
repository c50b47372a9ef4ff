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

// WireType is the 3-bit classifier on the low bits of a field key.
//
// This is an alias for protowire.Type rather than a fresh enum: wire types
// are a Protobuf-ecosystem concept with one correct vocabulary, and
// google.golang.org/protobuf/encoding/protowire already owns it.
type WireType = protowire.Type

const (
	WireVarint     WireType = protowire.VarintType
	WireFixed64    WireType = protowire.Fixed64Type
	WireBytes      WireType = protowire.BytesType
	WireStartGroup WireType = protowire.StartGroupType
	WireEndGroup   WireType = protowire.EndGroupType
	WireFixed32    WireType = protowire.Fixed32Type
)

// supportedWireType reports whether wt is one of the four wire types this
// kernel implements (§2: varint, fixed-64, length-delimited, fixed-32).
// Groups (start/end) are not supported, matching spec.md's wire type list.
func supportedWireType(wt WireType) bool {
	switch wt {
	case WireVarint, WireFixed64, WireBytes, WireFixed32:
		return true
	default:
		return false
	}
}

// Number is a 1-based Protobuf field number, the remaining bits of a field
// key once the wire type is stripped off.
type Number = protowire.Number

// Key encodes a field key: (number<<3)|wireType, as an unsigned integer
// ready for varint encoding.
func Key(number Number, wt WireType) uint64 {
	return protowire.EncodeTag(number, wt)
}

// DecodeKey splits a decoded key varint back into a field number and wire
// type.
func DecodeKey(key uint64) (Number, WireType) {
	return protowire.DecodeTag(key)
}
