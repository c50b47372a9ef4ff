// Copyright 2020-2025 Buf Technologies, Inc.
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

// Package protopuf is a single-import Protocol Buffers wire-format codec
// library composed at compile time out of generic building blocks, rather
// than generated from a .proto file or driven by reflective descriptors at
// runtime.
//
// A message type is declared by writing an ordinary Go struct with one
// Optional[T], []T, or map[K]V field per wire field, and a Schema method
// that binds each to a Field via Singular, Repeated, or MapEntries:
//
//	type Point struct {
//		X protopuf.Optional[int32]
//		Y protopuf.Optional[int32]
//	}
//
//	func (p *Point) Schema() *protopuf.Message[protopuf.Safe] {
//		return protopuf.NewMessage[protopuf.Safe]("Point",
//			protopuf.Singular[protopuf.Safe, int32](
//				"x", 1, protopuf.SignedVarintCodec[protopuf.Safe, int32]{}, &p.X),
//			protopuf.Singular[protopuf.Safe, int32](
//				"y", 2, protopuf.SignedVarintCodec[protopuf.Safe, int32]{}, &p.Y),
//		)
//	}
//
// The Safe/Unsafe type parameter selects, at compile time, whether decoding
// bounds-checks every read (Safe, the mode a caller should reach for unless
// the input region has already been validated) or trusts the caller to have
// validated the input up front and skips the checks (Unsafe). There is one
// implementation of each operation, generic over this choice, not two
// hand-duplicated code paths.
//
// # Support status
//
// Groups and extensions are not implemented: groups are legacy wire syntax
// out of scope for this package, and extensions require a dynamic field
// registry that this package's static composition model does not provide.
package protopuf
