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

// siblingStream is a producer-once / consumer-many FIFO. Since the search is
// strictly single-threaded, it's just a plain slice with a pull cursor and a
// dummy sentinel. All of a level-k expansion's surviving siblings are
// computed once, up front, during the parent's own expansion; pull merely
// drains that precomputed list one entry at a time as the search consumes
// it, so the priority queue never holds more sibling candidates than it is
// actively considering.
type siblingStream struct {
	items []*mappingEntry
	next  int
}

// pull returns the next sibling, or dummyEntry once the stream is
// exhausted. Consumed slots are cleared so the stream does not keep a pulled
// sibling (and its assignments/availableTargets slices) alive after the
// search has dropped it; siblings not yet pulled stay in the stream.
func (s *siblingStream) pull() *mappingEntry {
	if s == nil || s.next >= len(s.items) {
		return dummyEntry
	}
	e := s.items[s.next]
	s.items[s.next] = nil
	s.next++
	return e
}
