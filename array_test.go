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

func TestBytesRoundTrip(t *testing.T) {
	t.Parallel()

	v := []byte{1, 2, 3, 4, 5}
	buf := make([]byte, protopuf.BytesSkip(v))
	require.True(t, protopuf.EncodeBytes[protopuf.Safe](v, buf).OK())

	d := protopuf.DecodeBytes[protopuf.Safe](buf)
	require.True(t, d.OK())
	assert.Equal(t, v, []byte(d.Value().Value))
}

func TestBytesEmpty(t *testing.T) {
	t.Parallel()

	buf := make([]byte, protopuf.BytesSkip(nil))
	require.True(t, protopuf.EncodeBytes[protopuf.Safe](nil, buf).OK())
	assert.Equal(t, []byte{0x00}, buf)

	d := protopuf.DecodeBytes[protopuf.Safe](buf)
	require.True(t, d.OK())
	assert.Empty(t, d.Value().Value)
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()

	v := "345"
	buf := make([]byte, protopuf.StringSkip(v))
	require.True(t, protopuf.EncodeString[protopuf.Safe](v, buf).OK())
	assert.Equal(t, []byte{0x03, '3', '4', '5'}, buf)

	d := protopuf.DecodeString[protopuf.Safe](buf)
	require.True(t, d.OK())
	assert.Equal(t, v, d.Value().Value)
}

// varintElemCodec adapts the unsigned varint coder to ElementCodec, to
// exercise the generic Array coder directly (§4.6) rather than only through
// its Bytes/String specializations.
type varintElemCodec struct{}

func (varintElemCodec) EncodeElem(v uint64, r protopuf.Region) protopuf.Result[protopuf.Region] {
	return protopuf.EncodeVarint[protopuf.Safe](v, r)
}
func (varintElemCodec) DecodeElem(r protopuf.Region) protopuf.Result[protopuf.Decoded[uint64]] {
	return protopuf.DecodeVarint[protopuf.Safe](r)
}
func (varintElemCodec) ElemSkip(v uint64) int { return protopuf.VarintSkip(v) }

func TestGenericArrayRoundTrip(t *testing.T) {
	t.Parallel()

	elems := []uint64{1, 300, 16384, 0}
	n := protopuf.ArraySkip[protopuf.Safe](varintElemCodec{}, elems)
	buf := make([]byte, n)

	er := protopuf.EncodeArray[protopuf.Safe](varintElemCodec{}, elems, buf)
	require.True(t, er.OK())
	assert.Zero(t, er.Value().Size())

	dr := protopuf.DecodeArray[protopuf.Safe](varintElemCodec{}, buf)
	require.True(t, dr.OK())
	assert.Equal(t, elems, dr.Value().Value)
}

func TestArrayEmptyYieldsNilSlice(t *testing.T) {
	t.Parallel()

	buf := []byte{0x00}
	dr := protopuf.DecodeArray[protopuf.Safe, uint64](varintElemCodec{}, buf)
	require.True(t, dr.OK())
	assert.Nil(t, dr.Value().Value)
}
