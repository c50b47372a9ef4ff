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

import "unsafe"

// Region is a non-owning, contiguous byte view. It is the unit every coder,
// skipper, field, and message operation in this package reads from or
// writes into: the caller owns the backing array, and a Region never
// outlives it.
//
// A Go slice already is a (pointer, length, capacity) triple, so Region is
// just a named slice type; the methods below are the cursor arithmetic
// spec.md §3 describes (prefix split, offset difference).
type Region []byte

// Size returns the number of bytes remaining in the region.
func (r Region) Size() int {
	return len(r)
}

// Subspan returns the suffix of r starting at offset.
func (r Region) Subspan(offset int) Region {
	return r[offset:]
}

// Split returns the first n bytes of r as a sized view, and the remaining
// suffix as the tail. The caller is responsible for having checked
// r.Size() >= n; Split itself panics like any other slice index if it
// hasn't.
func (r Region) Split(n int) (head, tail Region) {
	return r[:n:n], r[n:]
}

// BeginDiff returns the distance, in bytes, that r's start has advanced past
// origin's start. Both must be views derived from the same backing array
// (e.g. r obtained from origin via zero or more Subspan/Split calls); the
// result is meaningless otherwise.
func BeginDiff(r, origin Region) int {
	rp := unsafe.Pointer(unsafe.SliceData([]byte(r)))
	op := unsafe.Pointer(unsafe.SliceData([]byte(origin)))
	return int(uintptr(rp) - uintptr(op))
}
