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

// VisitByTag looks up the field declared with tag number tag and, if
// present, invokes f with it, returning f's result and true; an unknown tag
// returns the zero value of R and false (§4.11).
//
// Every field is already addressed through the single Field[M] interface,
// so the "least common supertype of f(Fi) across all i" the reflection
// model asks for is simply R, chosen by the caller's f — there is no
// per-field static type to unify, unlike a composition built from distinct
// field types.
func VisitByTag[M Mode, R any](m *Message[M], tag Number, f func(Field[M]) R) (R, bool) {
	field, ok := m.ByTag(tag)
	if !ok {
		var zero R
		return zero, false
	}
	return f(field), true
}

// VisitByName is VisitByTag keyed by field name instead of tag number.
func VisitByName[M Mode, R any](m *Message[M], name string, f func(Field[M]) R) (R, bool) {
	field, ok := m.ByName(name)
	if !ok {
		var zero R
		return zero, false
	}
	return f(field), true
}

// VisitAllByTag is the void-callable form of VisitByTag (§4.11): when a
// caller only needs found/not-found, not a value, this skips manufacturing
// a zero R.
func VisitAllByTag[M Mode](m *Message[M], tag Number, f func(Field[M])) bool {
	field, ok := m.ByTag(tag)
	if !ok {
		return false
	}
	f(field)
	return true
}

// VisitAllByName is VisitAllByTag keyed by field name.
func VisitAllByName[M Mode](m *Message[M], name string, f func(Field[M])) bool {
	field, ok := m.ByName(name)
	if !ok {
		return false
	}
	f(field)
	return true
}
