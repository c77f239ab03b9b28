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

// Package editorial turns a (partial or complete) Mapping into its true
// editorial cost and a concrete list of edit operations.
//
// Restricted to the mapped subgraph, every edge this package considers has
// both endpoints already assigned a definite image under the Mapping, so,
// unlike the lower-bound estimator's inner-edge multiset term, there is
// never an alignment ambiguity to resolve: an out-edge (v, w) either has a
// matching out-edge (u, M(w)) or it doesn't.
package editorial

import (
	"github.com/canonical/schemaged/graph"
	"github.com/canonical/schemaged/mapping"
)

// Kind tags the sort of edit operation an EditOp records.
type Kind int

const (
	VertexInsert Kind = iota
	VertexDelete
	VertexRelabel
	EdgeInsert
	EdgeDelete
	EdgeRelabel
)

// EditOp is one concrete edit: a vertex or edge insertion, deletion, or
// relabel, identified by the source/target index it applies to.
type EditOp struct {
	Kind Kind

	// SourceVertex/TargetVertex identify the vertex a vertex op applies to,
	// or -1 when that side does not apply (e.g. a pure VertexInsert has no
	// SourceVertex). Edge ops leave both at zero.
	SourceVertex int
	TargetVertex int

	// For edge ops, the edge's endpoints in the relevant graph(s).
	EdgeFrom, EdgeTo int

	// Before/After hold the edge label before and after the edit: both for
	// EdgeRelabel, Before for EdgeDelete, After for EdgeInsert; nil for
	// vertex ops.
	Before, After *string
}

// Cost computes the true editorial cost of mapping m, restricted to its
// mapped subgraph, and appends the concrete edit operations that realize it
// to outEdits (outEdits may be nil if the caller only wants the integer
// cost).
func Cost(m *mapping.Mapping, src, tgt *graph.SchemaGraph, outEdits *[]EditOp) int {
	return vertexCost(m, src, tgt, outEdits) + edgeCost(m, src, tgt, outEdits)
}

func vertexCost(m *mapping.Mapping, src, tgt *graph.SchemaGraph, outEdits *[]EditOp) int {
	total := 0
	for v := 0; v < src.Size(); v++ {
		u, ok := m.GetTarget(v)
		if !ok {
			continue
		}
		sv := src.VertexAt(v)
		tu := tgt.VertexAt(u)
		switch {
		case sv.IsIsolated() && !tu.IsIsolated():
			total++
			record(outEdits, EditOp{Kind: VertexInsert, SourceVertex: -1, TargetVertex: u})
		case !sv.IsIsolated() && tu.IsIsolated():
			total++
			record(outEdits, EditOp{Kind: VertexDelete, SourceVertex: v, TargetVertex: -1})
		case !sv.IsIsolated() && !tu.IsIsolated() && !sv.SameLabel(tu):
			total++
			record(outEdits, EditOp{Kind: VertexRelabel, SourceVertex: v, TargetVertex: u})
		}
	}
	return total
}

// edgeCost matches each mapped vertex's out-edges against the corresponding
// out-edges of its image, counting exactly one edit per unmatched or
// relabeled edge. Every edge is anchored by both of its endpoints' mapped
// identities, so matching is direct lookup, never a sequence-alignment
// problem. A vertex insertion/deletion's edges fall out for free: an
// Isolated v (or u) simply contributes no out-edges of its own, so all of
// its image's mapped-neighbor edges surface as unmatched inserts (or,
// symmetrically, deletes).
func edgeCost(m *mapping.Mapping, src, tgt *graph.SchemaGraph, outEdits *[]EditOp) int {
	total := 0
	for v := 0; v < src.Size(); v++ {
		u, ok := m.GetTarget(v)
		if !ok {
			continue
		}
		total += matchOut(m, src, tgt, v, u, outEdits)
	}
	return total
}

// matchOut matches v's out-edges (to other mapped source vertices) against
// u's out-edges to their images, recording one relabel or delete per
// source-side edge, then records one insert for every one of u's out-edges
// that went unmatched.
func matchOut(m *mapping.Mapping, src, tgt *graph.SchemaGraph, v, u int, outEdits *[]EditOp) int {
	total := 0
	matchedTarget := map[int]bool{}

	for _, ev := range src.Adjacent(v) {
		w := ev.To
		wPrime, ok := m.GetTarget(w)
		if !ok {
			continue // w has no image: not part of the mapped subgraph
		}
		if eu, found := findEdge(tgt.Adjacent(u), wPrime); found {
			matchedTarget[wPrime] = true
			if !ev.SameLabel(eu) {
				total++
				record(outEdits, EditOp{Kind: EdgeRelabel, EdgeFrom: v, EdgeTo: w, Before: ev.Label, After: eu.Label})
			}
		} else {
			total++
			record(outEdits, EditOp{Kind: EdgeDelete, EdgeFrom: v, EdgeTo: w, Before: ev.Label})
		}
	}

	for _, eu := range tgt.Adjacent(u) {
		wPrime := eu.To
		if matchedTarget[wPrime] {
			continue
		}
		if _, ok := m.GetSource(wPrime); !ok {
			continue // wPrime has no source image: not part of the mapped subgraph
		}
		total++
		record(outEdits, EditOp{Kind: EdgeInsert, EdgeFrom: u, EdgeTo: wPrime, After: eu.Label})
	}

	return total
}

func findEdge(edges []graph.Edge, to int) (graph.Edge, bool) {
	for _, e := range edges {
		if e.To == to {
			return e, true
		}
	}
	return graph.Edge{}, false
}

func record(outEdits *[]EditOp, op EditOp) {
	if outEdits == nil {
		return
	}
	*outEdits = append(*outEdits, op)
}
