//
// Copyright (c) 2025 Canonical Ltd
//
// Original implementation: Gustavo Niemeyer <niemeyer@canonical.com>
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

// Package assign implements the Hungarian assignment algorithm over a
// square float64 cost matrix, plus a Murty-style k-best driver that
// enumerates the "next child" assignment, the alternative image for row 0,
// in nondecreasing total-cost order.
//
// The augmenting-path search in solve keeps the same dual-feasibility
// invariant and n+1 dummy-row simplification as a classic Hungarian
// implementation over a generic Cost interface, reshaped from a one-shot
// computation into a float64-based Driver that can be re-run against a
// modified matrix for k-best enumeration.
package assign

// Infinite stands in for a forbidden assignment. It is a large finite
// constant rather than math.Inf(1), so the dual-feasibility updates below
// (which add and subtract costs) never produce NaN.
const Infinite = 1e18

// Driver runs the Hungarian algorithm over a square cost matrix and
// supports Murty-style enumeration of the next-best assignment. It retains
// the pristine matrix (for true cost sums), the last assignment and the set
// of columns already excluded for row 0; each NextChild re-solves the whole
// matrix from a fresh copy with those columns forbidden.
type Driver struct {
	pristine [][]float64
	n        int

	excludedCol0 map[int]bool
	last         []int
	lastRowCost  float64
	exhausted    bool
}

// NewDriver builds a Driver over the given square cost matrix. The matrix
// is not copied defensively beyond what each solve() call needs; callers
// must not mutate it after passing it in.
func NewDriver(costMatrix [][]float64) *Driver {
	return &Driver{
		pristine:     costMatrix,
		n:            len(costMatrix),
		excludedCol0: map[int]bool{},
	}
}

// CostMatrix returns the pristine cost matrix, so a caller can compute true
// sums (Σ CostMatrix[i][assignments[i]]) without the Hungarian algorithm's
// in-place reductions interfering.
func (d *Driver) CostMatrix() [][]float64 { return d.pristine }

// Execute runs the Hungarian algorithm once and returns assignments, where
// assignments[i] is the column assigned to row i, minimizing the total
// cost. It seeds the state NextChild needs to enumerate further children.
func (d *Driver) Execute() []int {
	working := cloneMatrix(d.pristine)
	assignments := solve(working)
	d.last = assignments
	d.lastRowCost = working[0][assignments[0]]
	return assignments
}

// FirstRowCost returns the working matrix's cost at row 0's assignment for
// the most recent Execute/NextChild result, letting the caller detect a
// forbidden first element (and stop enumeration) without re-deriving the
// index. The working matrix, not the pristine one: an excluded column counts
// as forbidden even where the pristine cost is finite.
func (d *Driver) FirstRowCost() float64 {
	if d.last == nil {
		return Infinite
	}
	return d.lastRowCost
}

// NextChild returns the next-best assignment under Murty's partitioning
// scheme, restricted to varying row 0's column (the only degree of freedom
// the search engine needs a sibling stream for). Results are in
// nondecreasing total-cost order; at most n-1 results are produced before ok
// is false.
//
// Each call excludes the column row 0 was assigned in the previous result,
// then re-solves the reduced problem. This preserves enough state across
// calls (the growing excludedCol0 set) to bound enumeration at n-1 calls.
func (d *Driver) NextChild() (assignments []int, ok bool) {
	if d.exhausted || d.last == nil {
		return nil, false
	}

	d.excludedCol0[d.last[0]] = true
	if len(d.excludedCol0) >= d.n {
		d.exhausted = true
		return nil, false
	}

	working := cloneMatrix(d.pristine)
	for col := range d.excludedCol0 {
		working[0][col] = Infinite
	}

	assignments = solve(working)
	d.last = assignments
	d.lastRowCost = working[0][assignments[0]]
	return assignments, true
}

func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// solve is the Hungarian algorithm, an augmenting-path search over the
// dual-feasible equality subgraph. result[i] = j means row i is matched with
// column j, at minimum total cost.
func solve(costs [][]float64) []int {
	n := len(costs)

	// rowCost[i] and colCost[j] are partial (dual) costs for row and column
	// nodes, maintaining dual feasibility: rowCost[i] + colCost[j] <=
	// costs[i][j]. Edges where equality holds are "tight" and form the
	// equality subgraph the augmenting path walks.
	rowCost := make([]float64, n+1)
	colCost := make([]float64, n+1)

	// colRow[j] = i stores the row matched with column j. A value of n
	// means column j is unmatched.
	colRow := make([]int, n+1)
	for i := range colRow {
		colRow[i] = n
	}

	minSlack := make([]float64, n+1)
	colTrail := make([]int, n+1)
	visitedCol := make([]bool, n+1)

	for i := 0; i < n; i++ {
		// Start an augmenting path search rooted at row i, using dummy
		// column n to simplify the bookkeeping.
		colRow[n] = i
		currentCol := n

		for j := 0; j <= n; j++ {
			minSlack[j] = Infinite
			colTrail[j] = n
			visitedCol[j] = false
		}

		for colRow[currentCol] != n {
			visitedCol[currentCol] = true
			currentRow := colRow[currentCol]
			delta := Infinite
			nextCol := 0

			for j := 0; j < n; j++ {
				if visitedCol[j] {
					continue
				}
				slack := costs[currentRow][j] - rowCost[currentRow] - colCost[j]
				if slack < minSlack[j] {
					minSlack[j] = slack
					colTrail[j] = currentCol
				}
				if minSlack[j] < delta {
					delta = minSlack[j]
					nextCol = j
				}
			}

			for j := 0; j <= n; j++ {
				if visitedCol[j] {
					i := colRow[j]
					rowCost[i] += delta
					colCost[j] -= delta
				} else {
					minSlack[j] -= delta
				}
			}

			currentCol = nextCol
		}

		// Flip the matching along the augmenting path just found.
		for currentCol != n {
			prevCol := colTrail[currentCol]
			colRow[currentCol] = colRow[prevCol]
			currentCol = prevCol
		}
	}

	result := make([]int, n)
	for j := 0; j < n; j++ {
		result[colRow[j]] = j
	}
	return result
}
