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

import "container/heap"

// entryQueue is a min-heap of *mappingEntry ordered by (lowerBoundCost asc,
// level desc): preferring deeper nodes so the search reaches goal states
// (and tightens ged) earlier. A standard Len/Less/Swap/Push/Pop
// heap.Interface with a lazy-reinsertion discipline: an entry may be pushed
// again after a sibling is pulled from it. Entries are only ever removed via
// Pop (there is no decrease-key or out-of-order removal), so no index needs
// to be tracked on mappingEntry itself.
type entryQueue []*mappingEntry

func (q entryQueue) Len() int { return len(q) }

func (q entryQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].level > q[j].level
}

func (q entryQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *entryQueue) Push(x any) {
	*q = append(*q, x.(*mappingEntry))
}

func (q *entryQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

// newEntryQueue returns an empty, ready-to-use priority queue.
func newEntryQueue() *entryQueue {
	q := entryQueue{}
	heap.Init(&q)
	return &q
}

func (q *entryQueue) push(e *mappingEntry) { heap.Push(q, e) }

func (q *entryQueue) pop() *mappingEntry {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(q).(*mappingEntry)
}
