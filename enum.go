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

import "google.golang.org/protobuf/reflect/protoreflect"

// EnumNumber is the canonical Protobuf enum representation: a signed
// 32-bit integer. Reusing protoreflect's type here, rather than declaring a
// fresh one, keeps a message's enum fields speaking the same vocabulary the
// reflection layer (§4.11) and protoreflect.FieldDescriptor.Kind() use.
type EnumNumber = protoreflect.EnumNumber

// Enum is any user enum type, which is always backed by an int32 underlying
// representation in Protobuf.
type Enum interface {
	~int32
}

// EncodeEnum encodes v through the varint coder of its underlying int32
// representation (§4.5).
func EncodeEnum[M Mode, T Enum](v T, r Region) Result[Region] {
	return EncodeSignedVarint[M](int32(v), r)
}

// DecodeEnum decodes a varint and reinterprets it as enum type T.
func DecodeEnum[M Mode, T Enum](r Region) Result[Decoded[T]] {
	d := DecodeSignedVarint[M, int32](r)
	if !d.OK() {
		return resultFail[Decoded[T]]()
	}
	v := d.Value()
	return resultOK(Decoded[T]{Value: T(v.Value), Tail: v.Tail})
}

// EnumSkip returns the number of bytes EncodeEnum would write for v.
func EnumSkip[T Enum](v T) int {
	return SignedVarintSkip(int32(v))
}

// DecodeSkipEnum advances r past one encoded enum value. Enums share wire
// type 0 with every other varint, so this is just DecodeSkipVarint.
func DecodeSkipEnum[M Mode](r Region) Result[Region] {
	return DecodeSkipVarint[M](r)
}
