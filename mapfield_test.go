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

type scoreboard struct {
	Scores map[string]int32
}

func (s *scoreboard) Schema() *protopuf.Message[protopuf.Safe] {
	return protopuf.NewMessage[protopuf.Safe]("scoreboard",
		protopuf.MapEntries[protopuf.Safe, string, int32](
			"scores", 1, protopuf.StringCodec[protopuf.Safe]{}, protopuf.SignedVarintCodec[protopuf.Safe, int32]{}, &s.Scores),
	)
}

func TestMapRoundTrip(t *testing.T) {
	t.Parallel()

	src := &scoreboard{Scores: map[string]int32{"tom": 10, "jerry": -3, "twice": 0}}
	schema := src.Schema()
	buf := make([]byte, schema.EncodeSkip())
	require.True(t, schema.Encode(buf).OK())

	got := &scoreboard{}
	dr := got.Schema().Decode(buf)
	require.True(t, dr.OK())
	assert.Zero(t, dr.Value().Size())
	assert.Equal(t, src.Scores, got.Scores)
}

// TestMapCoalescing exercises spec.md §8's "Map coalescing" property: when
// the wire contains a duplicate key, the last occurrence wins.
func TestMapCoalescing(t *testing.T) {
	t.Parallel()

	first := &scoreboard{Scores: map[string]int32{"tom": 1}}
	second := &scoreboard{Scores: map[string]int32{"tom": 2}}

	firstSchema := first.Schema()
	secondSchema := second.Schema()

	buf := make([]byte, firstSchema.EncodeSkip()+secondSchema.EncodeSkip())
	r1 := firstSchema.Encode(buf)
	require.True(t, r1.OK())
	r2 := secondSchema.Encode(r1.Value())
	require.True(t, r2.OK())
	assert.Zero(t, r2.Value().Size())

	got := &scoreboard{}
	dr := got.Schema().Decode(buf)
	require.True(t, dr.OK())
	assert.Equal(t, map[string]int32{"tom": 2}, got.Scores)
}

func TestMapEmpty(t *testing.T) {
	t.Parallel()

	s := &scoreboard{}
	schema := s.Schema()
	assert.Equal(t, 0, schema.EncodeSkip())

	buf := make([]byte, 0)
	er := schema.Encode(buf)
	require.True(t, er.OK())
	assert.Zero(t, er.Value().Size())
}
