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

func TestSkipByWireType(t *testing.T) {
	t.Parallel()

	varintBuf := make([]byte, protopuf.VarintSkip(300))
	require.True(t, protopuf.EncodeVarint[protopuf.Safe](300, varintBuf).OK())

	fixed64Buf := make([]byte, 8)
	fixed32Buf := make([]byte, 4)
	bytesBuf := make([]byte, protopuf.StringSkip("hello"))
	require.True(t, protopuf.EncodeString[protopuf.Safe]("hello", bytesBuf).OK())

	tail := []byte{0xff, 0xff}
	cases := []struct {
		wt  protopuf.WireType
		buf []byte
	}{
		{protopuf.WireVarint, append(append([]byte{}, varintBuf...), tail...)},
		{protopuf.WireFixed64, append(append([]byte{}, fixed64Buf...), tail...)},
		{protopuf.WireBytes, append(append([]byte{}, bytesBuf...), tail...)},
		{protopuf.WireFixed32, append(append([]byte{}, fixed32Buf...), tail...)},
	}
	for _, c := range cases {
		r := protopuf.SkipByWireType[protopuf.Safe](c.wt, c.buf)
		require.True(t, r.OK())
		assert.Equal(t, tail, []byte(r.Value()))
	}
}

func TestSkipByWireTypeUnsupported(t *testing.T) {
	t.Parallel()

	assert.False(t, protopuf.SkipByWireType[protopuf.Safe](protopuf.WireStartGroup, []byte{0x01}).OK())
}
