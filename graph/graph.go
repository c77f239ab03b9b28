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

// Package graph defines the directed, vertex- and edge-labeled graph model
// the search engine operates over, along with the PossibleMappings oracle
// that restricts which source vertex may map to which target vertex.
//
// A SchemaGraph is immutable once built: NewSchemaGraph precomputes the
// out-edge and in-edge adjacency index for every vertex, so Adjacent and
// AdjacentInverse both run in O(deg) with no further allocation.
package graph

import (
	"errors"
	"strconv"
)

// ErrEmptyVertexID indicates a Vertex was constructed with an empty ID.
var ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

// ErrVertexNotFound indicates an edge referenced a vertex index out of range.
var ErrVertexNotFound = errors.New("graph: vertex index out of range")

// Isolated is the distinguished vertex type used to pad the smaller of two
// graphs up to equal size, so the edit-distance problem becomes a total
// bijection. A pair involving an Isolated vertex represents a pure insertion
// or deletion.
const Isolated = "ISOLATED"

// Vertex is a node in a SchemaGraph: an identity, a type tag, and an
// unordered set of string properties.
type Vertex struct {
	ID         string
	Type       string
	Properties map[string]string
}

// IsIsolated reports whether v is the padding sentinel type.
func (v Vertex) IsIsolated() bool { return v.Type == Isolated }

// SameLabel reports whether v and other have identical type and properties,
// used by the lower-bound estimator's equal-nodes term.
func (v Vertex) SameLabel(other Vertex) bool {
	if v.Type != other.Type {
		return false
	}
	if len(v.Properties) != len(other.Properties) {
		return false
	}
	for k, val := range v.Properties {
		if other.Properties[k] != val {
			return false
		}
	}
	return true
}

// Edge is a directed, optionally labeled connection between two vertices,
// identified by their position in the owning SchemaGraph.
type Edge struct {
	From  int
	To    int
	Label *string
}

// SameLabel reports whether e and other carry the same label, treating two
// nil labels as equal and a nil/non-nil pair as different.
func (e Edge) SameLabel(other Edge) bool {
	switch {
	case e.Label == nil && other.Label == nil:
		return true
	case e.Label == nil || other.Label == nil:
		return false
	default:
		return *e.Label == *other.Label
	}
}

// SchemaGraph is an ordered, immutable sequence of vertices plus precomputed
// out-edge and in-edge adjacency per vertex.
type SchemaGraph struct {
	vertices []Vertex
	out      [][]Edge
	in       [][]Edge
}

// NewSchemaGraph builds a SchemaGraph from vertices and edges, precomputing
// adjacency indices. Edge endpoints must be valid indices into vertices.
func NewSchemaGraph(vertices []Vertex, edges []Edge) (*SchemaGraph, error) {
	for _, v := range vertices {
		if v.ID == "" {
			return nil, ErrEmptyVertexID
		}
	}
	g := &SchemaGraph{
		vertices: vertices,
		out:      make([][]Edge, len(vertices)),
		in:       make([][]Edge, len(vertices)),
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= len(vertices) || e.To < 0 || e.To >= len(vertices) {
			return nil, ErrVertexNotFound
		}
		g.out[e.From] = append(g.out[e.From], e)
		g.in[e.To] = append(g.in[e.To], e)
	}
	return g, nil
}

// Size returns the number of vertices in the graph.
func (g *SchemaGraph) Size() int { return len(g.vertices) }

// VertexAt returns the vertex at position i.
func (g *SchemaGraph) VertexAt(i int) Vertex { return g.vertices[i] }

// Adjacent returns the out-edges of the vertex at position v.
func (g *SchemaGraph) Adjacent(v int) []Edge { return g.out[v] }

// AdjacentInverse returns the in-edges of the vertex at position v.
func (g *SchemaGraph) AdjacentInverse(v int) []Edge { return g.in[v] }

// PadToEqualSize returns a and b, each padded with Isolated vertices so both
// have the same size N = max(a.Size(), b.Size()). A graph that already has N
// vertices is returned as is; the other is a new graph in which the relative
// order of the original vertices is preserved and padding vertices are
// appended at the end.
func PadToEqualSize(a, b *SchemaGraph) (*SchemaGraph, *SchemaGraph) {
	n := a.Size()
	if b.Size() > n {
		n = b.Size()
	}
	return padTo(a, n), padTo(b, n)
}

func padTo(g *SchemaGraph, n int) *SchemaGraph {
	if g.Size() >= n {
		return g
	}
	vertices := make([]Vertex, g.Size(), n)
	copy(vertices, g.vertices)
	for i := g.Size(); i < n; i++ {
		vertices = append(vertices, Vertex{ID: isolatedID(i), Type: Isolated})
	}
	edges := make([]Edge, 0)
	for i := range g.out {
		edges = append(edges, g.out[i]...)
	}
	padded, err := NewSchemaGraph(vertices, edges)
	if err != nil {
		// Padding only appends vertices and reuses existing edges, so
		// construction cannot fail here.
		panic(err)
	}
	return padded
}

func isolatedID(i int) string {
	return "ISOLATED#" + strconv.Itoa(i)
}
