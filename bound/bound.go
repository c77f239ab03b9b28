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

// Package bound implements the admissible lower-bound estimator: given a
// partial Mapping and a candidate pair (v, u), it returns a lower bound on
// the cost of any completion that maps v to u.
//
// The estimator never mutates the Mapping or the graphs it's given; all of
// its state lives in the per-expansion Cache, which a caller must create
// once per parent-node expansion and discard afterwards.
package bound

import (
	"math"

	"github.com/canonical/schemaged/graph"
	"github.com/canonical/schemaged/mapping"
)

// Estimator computes admissible lower bounds for extending a Mapping by one
// vertex pair.
type Estimator struct {
	Source   *graph.SchemaGraph
	Target   *graph.SchemaGraph
	Possible graph.PossibleMappings
}

// Cache holds the isolated-shortcut results computed within a single parent
// expansion. Keyed separately for source-side and target-side vertices,
// since their index spaces are independent.
type Cache struct {
	bySource map[int]float64
	byTarget map[int]float64
}

// NewCache returns an empty Cache, scoped to one parent expansion.
func NewCache() *Cache {
	return &Cache{bySource: map[int]float64{}, byTarget: map[int]float64{}}
}

// LowerBound returns an admissible lower bound on the additional cost of any
// completion of m that maps source vertex v to target vertex u.
func (e *Estimator) LowerBound(m *mapping.Mapping, v, u int, cache *Cache) float64 {
	if !e.Possible.MappingPossible(v, u) {
		return math.Inf(1)
	}

	sv := e.Source.VertexAt(v)
	tu := e.Target.VertexAt(u)

	switch {
	case sv.IsIsolated() && tu.IsIsolated():
		// Padding paired with padding: no edit implied either way.
		return 0
	case sv.IsIsolated():
		return e.isolatedCost(u, false, m, cache)
	case tu.IsIsolated():
		return e.isolatedCost(v, true, m, cache)
	}

	eqNodes := 0.0
	if !sv.SameLabel(tu) {
		eqNodes = 1
	}

	multisetEdit := e.multisetEdit(m, v, u)
	anchored := e.anchoredCost(m, v, u)

	return eqNodes + multisetEdit + anchored
}

type labelKey struct {
	has bool
	s   string
}

func keyOf(label *string) labelKey {
	if label == nil {
		return labelKey{}
	}
	return labelKey{has: true, s: *label}
}

// multisetEdit bounds the edit cost over "inner" edges (edges whose far
// endpoint is not yet anchored in m), regardless of how the remaining
// vertices end up paired.
func (e *Estimator) multisetEdit(m *mapping.Mapping, v, u int) float64 {
	innerV := map[labelKey]int{}
	for _, edge := range e.Source.Adjacent(v) {
		if !m.ContainsSource(edge.To) {
			innerV[keyOf(edge.Label)]++
		}
	}
	innerU := map[labelKey]int{}
	for _, edge := range e.Target.Adjacent(u) {
		if !m.ContainsTarget(edge.To) {
			innerU[keyOf(edge.Label)]++
		}
	}

	sizeV, sizeU := 0, 0
	for _, n := range innerV {
		sizeV += n
	}
	for _, n := range innerU {
		sizeU += n
	}

	intersection := 0
	for key, n := range innerV {
		if o, ok := innerU[key]; ok {
			if o < n {
				intersection += o
			} else {
				intersection += n
			}
		}
	}

	max := sizeV
	if sizeU > max {
		max = sizeU
	}
	return float64(max - intersection)
}

// anchoredCost counts only edges that are forced to change because one
// endpoint is already pinned by m. Out-matches and in-matches are tracked
// independently so a v->u edge that matches on the out pass never
// suppresses an in-pass mismatch for the same neighbor.
func (e *Estimator) anchoredCost(m *mapping.Mapping, v, u int) float64 {
	cost := 0.0

	outMatchedOnU := map[int]bool{}
	for _, ev := range e.Source.Adjacent(v) {
		w := ev.To
		if !m.ContainsSource(w) {
			continue
		}
		wPrime, _ := m.GetTarget(w)
		if eu, ok := findEdgeTo(e.Target.Adjacent(u), wPrime); ok {
			outMatchedOnU[wPrime] = true
			if !ev.SameLabel(eu) {
				cost++
			}
		} else {
			cost++
		}
	}

	inMatchedOnU := map[int]bool{}
	for _, ev := range e.Source.AdjacentInverse(v) {
		w := ev.From
		if !m.ContainsSource(w) {
			continue
		}
		wPrime, _ := m.GetTarget(w)
		if eu, ok := findEdgeFrom(e.Target.AdjacentInverse(u), wPrime); ok {
			inMatchedOnU[wPrime] = true
			if !ev.SameLabel(eu) {
				cost++
			}
		} else {
			cost++
		}
	}

	for _, eu := range e.Target.Adjacent(u) {
		wPrime := eu.To
		if !m.ContainsTarget(wPrime) {
			continue
		}
		if outMatchedOnU[wPrime] {
			continue
		}
		cost++
	}

	for _, eu := range e.Target.AdjacentInverse(u) {
		wPrime := eu.From
		if !m.ContainsTarget(wPrime) {
			continue
		}
		if inMatchedOnU[wPrime] {
			continue
		}
		cost++
	}

	return cost
}

func findEdgeTo(edges []graph.Edge, to int) (graph.Edge, bool) {
	for _, e := range edges {
		if e.To == to {
			return e, true
		}
	}
	return graph.Edge{}, false
}

func findEdgeFrom(edges []graph.Edge, from int) (graph.Edge, bool) {
	for _, e := range edges {
		if e.From == from {
			return e, true
		}
	}
	return graph.Edge{}, false
}

// isolatedCost estimates the cost of pairing the non-isolated vertex x with
// an Isolated counterpart. onSource indicates whether x belongs to the
// source graph (paired with an Isolated target) or the target graph
// (paired with an Isolated source).
func (e *Estimator) isolatedCost(x int, onSource bool, m *mapping.Mapping, cache *Cache) float64 {
	store := cache.byTarget
	if onSource {
		store = cache.bySource
	}
	if v, ok := store[x]; ok {
		return v
	}

	var out, in []graph.Edge
	var mapped func(other int) bool
	if onSource {
		out = e.Source.Adjacent(x)
		in = e.Source.AdjacentInverse(x)
		mapped = m.ContainsSource
	} else {
		out = e.Target.Adjacent(x)
		in = e.Target.AdjacentInverse(x)
		mapped = m.ContainsTarget
	}

	innerEdgesCount := 0
	labeledEdgesFromAnchoredVertex := 0

	for _, edge := range out {
		other := edge.To
		if !mapped(other) {
			innerEdgesCount++
		} else if edge.Label != nil {
			labeledEdgesFromAnchoredVertex++
		}
	}
	for _, edge := range in {
		other := edge.From
		if mapped(other) && edge.Label != nil {
			labeledEdgesFromAnchoredVertex++
		}
	}

	result := 1 + float64(innerEdgesCount) + float64(labeledEdgesFromAnchoredVertex)
	store[x] = result
	return result
}
