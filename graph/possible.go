//
// Copyright (c) 2025 Canonical Ltd
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package graph

// PossibleMappings restricts which source vertex may map to which target
// vertex. It is a hard constraint: the search treats an infeasible pair as
// cost +Inf, never as an error.
type PossibleMappings interface {
	MappingPossible(v, u int) bool
}

// AllowAll permits every source/target pair. It is the trivial oracle, used
// when a caller has no precomputed restriction.
type AllowAll struct{}

// MappingPossible always returns true.
func (AllowAll) MappingPossible(v, u int) bool { return true }

// TypeCompatible forbids a pair unless the two vertices share a Type, or
// either side is Isolated (modeling a pure insertion or deletion, which is
// always permitted).
type TypeCompatible struct {
	Source *SchemaGraph
	Target *SchemaGraph
}

// MappingPossible reports whether v (in Source) may map to u (in Target).
func (t TypeCompatible) MappingPossible(v, u int) bool {
	sv := t.Source.VertexAt(v)
	tu := t.Target.VertexAt(u)
	if sv.IsIsolated() || tu.IsIsolated() {
		return true
	}
	return sv.Type == tu.Type
}
