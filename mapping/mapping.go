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

// Package mapping implements the growing partial bijection between source
// and target vertex indices that the search engine extends one pair at a
// time.
//
// A Mapping is a persistent value: Extend returns a new Mapping without
// modifying the receiver, so two MappingEntries that share an ancestor never
// observe each other's extensions. Each Mapping is frozen once built and
// links to its parent, so RemoveLastElement is O(1); Extend copies the flat
// source/target indices, so it is O(level).
package mapping

// Mapping is a partial bijection of prefix shape: level is the number of
// pairs committed so far. The search imposes a fixed source-vertex order, so
// level k always decides the image of allSources[k].
type Mapping struct {
	parent *Mapping
	level  int

	// sourceOf and targetOf are the cumulative source->target and
	// target->source indices, including everything the parent chain
	// contributed. Kept flat (not recomputed per Extend) so membership and
	// lookup stay O(1); Extend copies both maps once, a copy-on-extend
	// strategy that stays cheap as long as each level is small.
	sourceOf map[int]int
	targetOf map[int]int
}

// Empty returns the empty Mapping (level 0).
func Empty() *Mapping {
	return &Mapping{sourceOf: map[int]int{}, targetOf: map[int]int{}}
}

// Size returns the number of pairs committed so far.
func (m *Mapping) Size() int { return m.level }

// ContainsSource reports whether source vertex v has been assigned a target.
func (m *Mapping) ContainsSource(v int) bool {
	_, ok := m.sourceOf[v]
	return ok
}

// ContainsTarget reports whether target vertex u is the image of some
// source vertex.
func (m *Mapping) ContainsTarget(u int) bool {
	_, ok := m.targetOf[u]
	return ok
}

// GetTarget returns the target vertex mapped to source vertex v, or (-1,
// false) if v is not yet mapped.
func (m *Mapping) GetTarget(v int) (int, bool) {
	u, ok := m.sourceOf[v]
	if !ok {
		return -1, false
	}
	return u, true
}

// GetSource returns the source vertex mapped to target vertex u, or (-1,
// false) if u is not yet the image of anything.
func (m *Mapping) GetSource(u int) (int, bool) {
	v, ok := m.targetOf[u]
	if !ok {
		return -1, false
	}
	return v, true
}

// ForEachTarget calls fn once per mapped target vertex, in no particular
// order.
func (m *Mapping) ForEachTarget(fn func(u int)) {
	for u := range m.targetOf {
		fn(u)
	}
}

// Extend returns a new Mapping with one additional pair (v -> u) committed.
// The receiver is unchanged. Extend panics if v or u is already mapped.
func (m *Mapping) Extend(v, u int) *Mapping {
	if m.ContainsSource(v) || m.ContainsTarget(u) {
		panic("mapping: source or target vertex already mapped")
	}
	sourceOf := make(map[int]int, len(m.sourceOf)+1)
	for k, val := range m.sourceOf {
		sourceOf[k] = val
	}
	targetOf := make(map[int]int, len(m.targetOf)+1)
	for k, val := range m.targetOf {
		targetOf[k] = val
	}
	sourceOf[v] = u
	targetOf[u] = v
	return &Mapping{
		parent:   m,
		level:    m.level + 1,
		sourceOf: sourceOf,
		targetOf: targetOf,
	}
}

// RemoveLastElement returns the parent Mapping (level-1 prefix) this Mapping
// was extended from. Calling it on the empty Mapping returns itself.
func (m *Mapping) RemoveLastElement() *Mapping {
	if m.parent == nil {
		return m
	}
	return m.parent
}

// Copy returns m unchanged: Mapping is already an immutable value once
// constructed, so a structural copy is simply the same pointer.
func (m *Mapping) Copy() *Mapping { return m }
