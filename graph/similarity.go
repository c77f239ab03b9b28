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

import "github.com/canonical/schemaged/listdist"

// IDEditDistance scores how similar two vertex identifiers are as character
// sequences, running listdist's list edit distance over the runes of each
// ID. Unlike the mapped-edge matching in package editorial, two candidate
// IDs have no a priori correspondence to exploit, so ordered character
// alignment is the right tool.
func IDEditDistance(a, b string) int64 {
	return listdist.Distance(splitRunes(a), splitRunes(b), listdist.StandardCost, 0)
}

func splitRunes(s string) []any {
	runes := []rune(s)
	out := make([]any, len(runes))
	for i, r := range runes {
		out[i] = r
	}
	return out
}

// SimilarIDs is a PossibleMappings oracle that requires both type
// compatibility (see TypeCompatible) and that the two vertices' IDs not
// differ by more than Threshold character edits. A caller with many
// same-typed candidates can use it to prune pairs that are obviously
// unrelated renames before the search even starts, shrinking the cost
// matrices built at every expansion.
type SimilarIDs struct {
	Source    *SchemaGraph
	Target    *SchemaGraph
	Threshold int64
}

// MappingPossible reports whether v (in Source) may map to u (in Target).
func (s SimilarIDs) MappingPossible(v, u int) bool {
	tc := TypeCompatible{Source: s.Source, Target: s.Target}
	if !tc.MappingPossible(v, u) {
		return false
	}
	sv := s.Source.VertexAt(v)
	tu := s.Target.VertexAt(u)
	if sv.IsIsolated() || tu.IsIsolated() {
		return true
	}
	return IDEditDistance(sv.ID, tu.ID) <= s.Threshold
}
