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

func TestVisitByTagAndName(t *testing.T) {
	t.Parallel()

	s := newStudent(123456, "jerry")
	schema := s.Schema()

	name, ok := protopuf.VisitByTag(schema, 1, func(f protopuf.Field[protopuf.Safe]) string { return f.Name() })
	require.True(t, ok)
	assert.Equal(t, "id", name)

	tag, ok := protopuf.VisitByName(schema, "name", func(f protopuf.Field[protopuf.Safe]) protopuf.Number { return f.Tag() })
	require.True(t, ok)
	assert.Equal(t, protopuf.Number(2), tag)

	_, ok = protopuf.VisitByTag(schema, 99, func(f protopuf.Field[protopuf.Safe]) string { return f.Name() })
	assert.False(t, ok)

	_, ok = protopuf.VisitByName(schema, "nope", func(f protopuf.Field[protopuf.Safe]) string { return f.Name() })
	assert.False(t, ok)
}

func TestVisitAllFoundFlag(t *testing.T) {
	t.Parallel()

	s := newStudent(1, "a")
	schema := s.Schema()

	var seen string
	ok := protopuf.VisitAllByTag(schema, 2, func(f protopuf.Field[protopuf.Safe]) { seen = f.Name() })
	assert.True(t, ok)
	assert.Equal(t, "name", seen)

	ok = protopuf.VisitAllByName(schema, "missing", func(protopuf.Field[protopuf.Safe]) { t.Fatal("must not be called") })
	assert.False(t, ok)
}
