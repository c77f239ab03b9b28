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

import "github.com/canonical/schemaged/mapping"

// mappingEntry is a node in the A* search: a partial mapping, its level, its
// admissible lower-bound cost, and everything needed to pull the next
// sibling lazily.
type mappingEntry struct {
	partial *mapping.Mapping
	level   int
	cost    float64

	// siblingsDone is true once this entry's sibling stream has yielded the
	// dummy sentinel; Engine.Run stops pulling from it after that.
	siblingsDone bool

	// expanded guards child expansion to run at most once per entry: an
	// entry may be popped many times to drain its sibling stream (see
	// Engine.Run), but it only ever generates its own children on the first
	// pop.
	expanded bool

	// siblings is non-nil for every entry except the root; pulling from it
	// produces the next sibling (or the dummy sentinel) one at a time.
	siblings *siblingStream

	// assignments and availableTargets are the state this entry's own
	// sibling stream needs to reconstruct full completions; nil once no
	// longer needed.
	assignments      []int
	availableTargets []int
}

// dummyEntry marks the end of a sibling stream.
var dummyEntry = &mappingEntry{}

func isDummy(e *mappingEntry) bool { return e == dummyEntry }
