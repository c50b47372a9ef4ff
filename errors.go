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

import (
	"errors"
	"fmt"
	"io"
)

const (
	errCodeOk errCode = iota
	// errCodeShortBuffer fires when a safe-mode primitive runs out of bytes
	// before it has consumed a complete value. This is reported through
	// Result's nullability in the hot path; errParse only carries it when a
	// caller asked for a diagnosable error (see Message.DecodeTop).
	errCodeShortBuffer
	errCodeFieldNumber
	errCodeOverflow
	errCodeWireType
)

type errCode int

var errs = [...]error{
	errCodeOk:          nil,
	errCodeShortBuffer: io.ErrUnexpectedEOF,
	errCodeFieldNumber: errors.New("invalid field number"),
	errCodeOverflow:    errors.New("variable length integer overflow"),
	errCodeWireType:    errors.New("unsupported wire type"),
}

// errParse is an error returned when a top-level Decode call fails and the
// caller wants more than a null Result to go on.
type errParse struct {
	code   errCode
	offset int
}

// Offset returns the byte offset at which the error occurred, relative to
// the start of the region passed to Decode.
func (e *errParse) Offset() int {
	return e.offset
}

// Unwrap implements error unwrapping via [errors.Unwrap].
func (e *errParse) Unwrap() error {
	return errs[e.code]
}

// Error implements [error].
func (e *errParse) Error() string {
	return fmt.Sprintf("protopuf: parse error at offset %d/%#x: %v", e.offset, e.offset, e.Unwrap())
}
