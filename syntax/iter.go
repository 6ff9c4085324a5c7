// Copyright 2026 The greentree Authors
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

package syntax

import (
	"greentree.dev/go/green"
	"greentree.dev/go/rtext"
)

// childTriple bundles a green child element together with its index and
// absolute offset among its parent's children. It is the Go stand-in for
// the (green_child, index, absolute_offset) triples spec.md §4.4 describes
// children_from/children_to as yielding.
type childTriple struct {
	elem   green.Element
	index  int
	offset rtext.Unit
}

// firstMatchFrom scans children[startIndex:] forward, starting at
// startOffset, and returns the first element (or, when onlyNodes is true,
// the first node-kind element). Offsets advance by
// each skipped element's text length, never by rescanning from the start of
// the slice.
func firstMatchFrom(children []green.Element, startIndex int, startOffset rtext.Unit, onlyNodes bool) (childTriple, bool) {
	offset := startOffset
	for i := startIndex; i < len(children); i++ {
		e := children[i]
		if !onlyNodes || e.IsNode() {
			return childTriple{elem: e, index: i, offset: offset}, true
		}
		offset = offset.Add(e.TextLen())
	}
	return childTriple{}, false
}

// lastMatchTo scans children[:endIndex] in reverse, starting at endOffset
// (the absolute offset just past children[endIndex-1], i.e. where the
// slice ends), and returns the nearest element (or, when onlyNodes is true,
// the nearest node-kind element).
func lastMatchTo(children []green.Element, endIndex int, endOffset rtext.Unit, onlyNodes bool) (childTriple, bool) {
	offset := endOffset
	for i := endIndex - 1; i >= 0; i-- {
		e := children[i]
		offset = offset.Sub(e.TextLen())
		if !onlyNodes || e.IsNode() {
			return childTriple{elem: e, index: i, offset: offset}, true
		}
	}
	return childTriple{}, false
}
