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

// Package testdata loads named wire-format fixtures from an embedded YAML
// table, compiling each one's Protoscope source to bytes once at load time.
package testdata

import (
	"embed"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/protocolbuffers/protoscope"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed cases.yaml
var raw []byte

// Case is one named fixture, given either as Protoscope source or a raw hex
// string (whitespace-insensitive).
type Case struct {
	Name       string `yaml:"name"`
	Protoscope string `yaml:"protoscope"`
	Hex        string `yaml:"hex"`
}

// Load parses the embedded fixture table and compiles every case to wire
// bytes, failing t immediately on a malformed fixture.
func Load(t testing.TB) map[string][]byte {
	t.Helper()

	var cases []Case
	require.NoError(t, yaml.Unmarshal(raw, &cases))

	out := make(map[string][]byte, len(cases))
	for _, c := range cases {
		switch {
		case c.Protoscope != "":
			s := protoscope.NewScanner(c.Protoscope)
			b, err := s.Exec()
			require.NoError(t, err, "compiling protoscope fixture %q", c.Name)
			out[c.Name] = b
		case c.Hex != "":
			b, err := hex.DecodeString(strings.Join(strings.Fields(c.Hex), ""))
			require.NoError(t, err, "decoding hex fixture %q", c.Name)
			out[c.Name] = b
		}
	}
	return out
}
