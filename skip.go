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

// DecodeSkipLengthDelimited advances r past one length-delimited payload
// (a varint length followed by that many raw bytes) without materializing
// it. This is the skipper for wire type 2: strings, byte arrays, embedded
// messages, and arrays of any element all share it (§4.6, §4.9).
func DecodeSkipLengthDelimited[M Mode](r Region) Result[Region] {
	var m M
	d := DecodeVarint[M](r)
	if !d.OK() {
		return resultFail[Region]()
	}
	v := d.Value()
	n := v.Value
	if n > (1<<63-1) || !m.checkBytesSpan(v.Tail.Size(), int(n)) {
		return resultFail[Region]()
	}
	return resultOK(v.Tail.Subspan(int(n)))
}

// SkipByWireType advances r past one encoded value of the given wire type,
// without knowing which field (if any) declared it. This is the routing
// table §4.8 describes for unknown fields encountered during parse: wire 0
// -> varint-skip, wire 1 -> 8 bytes, wire 2 -> length-delimited skip, wire 5
// -> 4 bytes. Any other wire type is a malformed-input decode failure under
// Safe, and an invalid precondition under Unsafe (§7, §9 "Unknown wire
// types").
func SkipByWireType[M Mode](wt WireType, r Region) Result[Region] {
	switch wt {
	case WireVarint:
		return DecodeSkipVarint[M](r)
	case WireFixed64:
		return DecodeSkipFixed[M, uint64](r)
	case WireBytes:
		return DecodeSkipLengthDelimited[M](r)
	case WireFixed32:
		return DecodeSkipFixed[M, uint32](r)
	default:
		return resultFail[Region]()
	}
}
