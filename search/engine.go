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

package search

import (
	"context"
	"math"

	"github.com/canonical/schemaged/assign"
	"github.com/canonical/schemaged/bound"
	"github.com/canonical/schemaged/editorial"
	"github.com/canonical/schemaged/graph"
	"github.com/canonical/schemaged/mapping"
)

// Result is the outcome of a completed search: the cheapest total mapping
// found, its editorial cost, and the concrete edit list that realizes it.
type Result struct {
	Mapping *mapping.Mapping
	GED     int
	Edits   []editorial.EditOp
}

// Engine runs the A* search over a fixed pair of equal-size graphs. It is
// single-threaded: Run must not be called concurrently on the same Engine,
// nor should a single Run call be invoked from multiple goroutines.
type Engine struct {
	Source   *graph.SchemaGraph
	Target   *graph.SchemaGraph
	Possible graph.PossibleMappings
}

// Run searches for the minimum-cost total mapping extending startMapping,
// exploring candidate images for allSources[k] (for k from startMapping.Size()
// to N-1) against allTargets not already claimed by startMapping. ctx is
// checked at each main-loop iteration and during child/sibling expansion;
// a cancellation returns ctx.Err() with a nil Result.
func (e *Engine) Run(ctx context.Context, startMapping *mapping.Mapping, allSources, allTargets []int) (*Result, error) {
	n := len(allSources)
	startLevel := startMapping.Size()

	allNonFixedTargets := make([]int, 0, len(allTargets))
	for _, u := range allTargets {
		if !startMapping.ContainsTarget(u) {
			allNonFixedTargets = append(allNonFixedTargets, u)
		}
	}

	best := bestSoFar{ged: math.Inf(1)}

	if startLevel == n {
		e.complete(startMapping, &best)
		return best.result(), nil
	}

	root := &mappingEntry{
		partial:      startMapping,
		level:        startLevel,
		cost:         float64(editorial.Cost(startMapping, e.Source, e.Target, nil)),
		siblingsDone: true,
	}

	queue := newEntryQueue()
	queue.push(root)

	for queue.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry := queue.pop()
		if entry.cost >= best.ged {
			continue
		}

		if entry.level > 0 && !entry.siblingsDone {
			sib := entry.siblings.pull()
			if isDummy(sib) {
				entry.siblingsDone = true
				entry.assignments, entry.availableTargets = nil, nil
			} else {
				queue.push(entry)
				if sib.cost < best.ged {
					e.completeFromAssignments(sib.partial.RemoveLastElement(), sib.level-1, allSources, sib.assignments, sib.availableTargets, &best)
					queue.push(sib)
				}
			}
		}

		if entry.level < n && !entry.expanded {
			entry.expanded = true
			if err := e.expand(ctx, entry, n, allSources, allNonFixedTargets, queue, &best); err != nil {
				return nil, err
			}
		}
	}

	return best.result(), nil
}

// expand builds the cost matrix for the vertices still unassigned at
// entry.level, runs the Hungarian driver, pushes the best child plus its
// sibling stream (filled here in full, drained one entry at a time by Run),
// and opportunistically updates best from
// the primary child's true completion cost.
func (e *Engine) expand(ctx context.Context, entry *mappingEntry, n int, allSources, allNonFixedTargets []int, queue *entryQueue, best *bestSoFar) error {
	m := entry.partial
	k := entry.level

	available := make([]int, 0, len(allNonFixedTargets))
	for _, u := range allNonFixedTargets {
		if !m.ContainsTarget(u) {
			available = append(available, u)
		}
	}

	costAtM := float64(editorial.Cost(m, e.Source, e.Target, nil))
	rows := allSources[k:n]
	costs := make([][]float64, len(rows))
	cache := bound.NewCache()
	estimator := bound.Estimator{Source: e.Source, Target: e.Target, Possible: e.Possible}
	for i, v := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := make([]float64, len(available))
		for j, u := range available {
			lb := estimator.LowerBound(m, v, u, cache)
			if math.IsInf(lb, 1) {
				// bound.Estimator reports a forbidden pair as a true +Inf
				// (an admissible bound, not an assign-package concern); the
				// Hungarian driver needs a large finite sentinel instead, so
				// its dual-feasibility arithmetic never produces NaN.
				lb = assign.Infinite
			}
			row[j] = lb
		}
		costs[i] = row
	}

	driver := assign.NewDriver(costs)
	assignments := driver.Execute()
	f := costAtM + sumAssigned(costs, assignments)
	if f >= best.ged {
		return nil
	}

	firstTarget := available[assignments[0]]
	child := &mappingEntry{
		partial:          m.Extend(allSources[k], firstTarget),
		level:            k + 1,
		cost:             f,
		assignments:      assignments,
		availableTargets: available,
	}
	stream := &siblingStream{}
	child.siblings = stream
	queue.push(child)

	e.completeFromAssignments(m, k, allSources, assignments, available, best)

	items := make([]*mappingEntry, 0, len(rows)-1)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, ok := driver.NextChild()
		if !ok {
			break
		}
		if driver.FirstRowCost() >= assign.Infinite {
			break
		}
		sf := costAtM + sumAssigned(costs, next)
		if sf >= best.ged {
			break
		}
		siblingTarget := available[next[0]]
		items = append(items, &mappingEntry{
			partial:          m.Extend(allSources[k], siblingTarget),
			level:            k + 1,
			cost:             sf,
			siblings:         stream,
			assignments:      next,
			availableTargets: available,
		})
	}
	items = append(items, dummyEntry)
	stream.items = items

	return nil
}

// completeFromAssignments reconstructs the full total mapping a child or
// sibling candidate represents (the parent prefix at level k plus one pair
// per row of assignments), computes its true editorial cost, and updates
// best if it's an improvement.
func (e *Engine) completeFromAssignments(parent *mapping.Mapping, k int, allSources []int, assignments, available []int, best *bestSoFar) {
	full := parent
	for i, col := range assignments {
		full = full.Extend(allSources[k+i], available[col])
	}
	e.complete(full, best)
}

func (e *Engine) complete(full *mapping.Mapping, best *bestSoFar) {
	if full.Size() != e.Source.Size() {
		panic("search: reconstructed mapping is not total")
	}
	var edits []editorial.EditOp
	cost := editorial.Cost(full, e.Source, e.Target, &edits)
	if float64(cost) < best.ged {
		best.ged = float64(cost)
		best.mapping = full
		best.edits = edits
	}
}

func sumAssigned(costs [][]float64, assignments []int) float64 {
	total := 0.0
	for i, col := range assignments {
		total += costs[i][col]
	}
	return total
}

type bestSoFar struct {
	ged     float64
	mapping *mapping.Mapping
	edits   []editorial.EditOp
}

func (b *bestSoFar) result() *Result {
	if b.mapping == nil {
		return nil
	}
	return &Result{Mapping: b.mapping, GED: int(b.ged), Edits: b.edits}
}
