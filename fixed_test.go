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

package protopuf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/protopuf"
)

func TestFixed32RoundTrip(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 4)
	require.True(t, protopuf.EncodeFixed[protopuf.Safe](uint32(12), buf).OK())
	assert.Equal(t, []byte{0x0c, 0x00, 0x00, 0x00}, buf)

	d := protopuf.DecodeFixed[protopuf.Safe, uint32](buf)
	require.True(t, d.OK())
	assert.Equal(t, uint32(12), d.Value().Value)
}

func TestFixedSafeModeTruncation(t *testing.T) {
	t.Parallel()

	full := make([]byte, 8)
	require.True(t, protopuf.EncodeFixed[protopuf.Safe](uint64(0x1122334455667788), full).OK())

	for n := 0; n < len(full); n++ {
		assert.False(t, protopuf.DecodeFixed[protopuf.Safe, uint64](full[:n]).OK())
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 4)
	require.True(t, protopuf.EncodeFloat32[protopuf.Safe](6.78, buf).OK())
	// spec.md §8 scenario 3's field@4 bytes.
	assert.Equal(t, []byte{0xc3, 0xf5, 0xd8, 0x40}, buf)

	d := protopuf.DecodeFloat32[protopuf.Safe](buf)
	require.True(t, d.OK())
	assert.InDelta(t, float32(6.78), d.Value().Value, 1e-6)
}

func TestFloat64RoundTrip(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 8)
	require.True(t, protopuf.EncodeFloat64[protopuf.Safe](3.4e5, buf).OK())
	d := protopuf.DecodeFloat64[protopuf.Safe](buf)
	require.True(t, d.OK())
	assert.Equal(t, 3.4e5, d.Value().Value)
}

func TestBoolRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []bool{true, false} {
		buf := make([]byte, protopuf.BoolSkip())
		require.True(t, protopuf.EncodeBool[protopuf.Safe](v, buf).OK())
		d := protopuf.DecodeBool[protopuf.Safe](buf)
		require.True(t, d.OK())
		assert.Equal(t, v, d.Value().Value)
	}
}

type testColor int32

const (
	testColorRed testColor = iota
	testColorGreen
	testColorBlue
)

func TestEnumRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []testColor{testColorRed, testColorGreen, testColorBlue} {
		buf := make([]byte, protopuf.EnumSkip(v))
		require.True(t, protopuf.EncodeEnum[protopuf.Safe](v, buf).OK())
		d := protopuf.DecodeEnum[protopuf.Safe, testColor](buf)
		require.True(t, d.OK())
		assert.Equal(t, v, d.Value().Value)
	}
}
