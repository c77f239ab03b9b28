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

// Package ged is the top-level facade: Diff computes the graph edit distance
// between two SchemaGraphs and a concrete list of edits that realizes it,
// driving search.Engine over the padded, equal-size pair.
package ged

import (
	"context"

	"github.com/canonical/schemaged/editorial"
	"github.com/canonical/schemaged/graph"
	"github.com/canonical/schemaged/mapping"
	"github.com/canonical/schemaged/search"
)

// OptimalEdit is the result of Diff: the total mapping found, its editorial
// cost (the graph edit distance), and the concrete edits that realize it.
type OptimalEdit struct {
	Mapping *mapping.Mapping
	GED     int
	Edits   []editorial.EditOp
}

// Option configures a Diff call.
type Option func(*config)

type config struct {
	possible     graph.PossibleMappings
	startMapping *mapping.Mapping
}

// WithPossibleMappings overrides the default TypeCompatible oracle that
// restricts which source vertex may map to which target vertex.
func WithPossibleMappings(p graph.PossibleMappings) Option {
	return func(c *config) { c.possible = p }
}

// WithStartMapping pre-fixes a prefix of the search: the search explores
// only completions extending start, rather than starting from the empty
// mapping. start must map source vertices to target vertices that exist in
// the (pre-padding) graphs passed to Diff.
func WithStartMapping(start *mapping.Mapping) Option {
	return func(c *config) { c.startMapping = start }
}

// Diff computes the minimum-cost edit mapping from source to target, padding
// both graphs to equal size with ISOLATED vertices first. ctx is checked
// throughout the search; a cancelled or expired ctx returns its Err()
// immediately, with a nil *OptimalEdit.
func Diff(ctx context.Context, source, target *graph.SchemaGraph, opts ...Option) (*OptimalEdit, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	paddedSource, paddedTarget := graph.PadToEqualSize(source, target)
	n := paddedSource.Size()

	possible := cfg.possible
	if possible == nil {
		possible = graph.TypeCompatible{Source: paddedSource, Target: paddedTarget}
	}

	start := cfg.startMapping
	if start == nil {
		start = mapping.Empty()
	}

	// allSources/allTargets must place every vertex start already fixed as a
	// prefix (so Engine.Run's level k lines up with start.Size()), followed
	// by the remaining free vertices in natural order; the search only ever
	// indexes allSources[k:] for k >= start.Size(), but the prefix lengths
	// must still match start's actual committed pairs.
	allSources := orderWithFixedPrefix(n, start.ContainsSource)
	allTargets := orderWithFixedPrefix(n, start.ContainsTarget)

	engine := &search.Engine{Source: paddedSource, Target: paddedTarget, Possible: possible}
	result, err := engine.Run(ctx, start, allSources, allTargets)
	if err != nil {
		return nil, err
	}

	return &OptimalEdit{Mapping: result.Mapping, GED: result.GED, Edits: result.Edits}, nil
}

// orderWithFixedPrefix returns a permutation of 0..n-1 with every index for
// which fixed returns true first (in natural order), followed by the rest.
func orderWithFixedPrefix(n int, fixed func(int) bool) []int {
	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if fixed(i) {
			order = append(order, i)
		}
	}
	for i := 0; i < n; i++ {
		if !fixed(i) {
			order = append(order, i)
		}
	}
	return order
}
