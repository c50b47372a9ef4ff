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

// EncodeBool encodes a bool through the 1-byte fixed integer coder (§4.5).
func EncodeBool[M Mode](v bool, r Region) Result[Region] {
	var b uint8
	if v {
		b = 1
	}
	return EncodeFixed[M](b, r)
}

// DecodeBool decodes a bool, treating any nonzero byte as true.
func DecodeBool[M Mode](r Region) Result[Decoded[bool]] {
	d := DecodeFixed[M, uint8](r)
	if !d.OK() {
		return resultFail[Decoded[bool]]()
	}
	v := d.Value()
	return resultOK(Decoded[bool]{Value: v.Value != 0, Tail: v.Tail})
}

// BoolSkip is the fixed byte width a bool coder writes.
func BoolSkip() int { return FixedSkip[uint8]() }

// DecodeSkipBool advances r past one encoded bool.
func DecodeSkipBool[M Mode](r Region) Result[Region] {
	return DecodeSkipFixed[M, uint8](r)
}
