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

package green

import "greentree.dev/go/rtext"

// Node is an immutable internal element with an ordered sequence of
// children. Its text length is the sum of its children's text lengths,
// cached at construction time.
type Node struct {
	kind     Kind
	children []Element
	textLen  rtext.Unit
}

// NewNode builds a node of the given kind with the given children. The
// children slice is not retained by reference; callers may reuse the slice
// they passed in.
func NewNode(kind Kind, children []Element) *Node {
	cp := make([]Element, len(children))
	copy(cp, children)
	var total rtext.Unit
	for _, c := range cp {
		total = total.Add(c.TextLen())
	}
	return &Node{kind: kind, children: cp, textLen: total}
}

// Kind reports the node's kind.
func (n *Node) Kind() Kind { return n.kind }

// TextLen returns the cached sum of the text lengths of n's children.
func (n *Node) TextLen() rtext.Unit { return n.textLen }

// Children returns the node's children in order. The returned slice must
// not be mutated by callers.
func (n *Node) Children() []Element { return n.children }

// Equal reports whether n and other have the same kind and recursively
// equal children. This is used by tests (spec invariant: replacing a node
// with its own green value round-trips to an equal tree) and is not used by
// the syntax package itself, which never deduplicates green nodes.
func (n *Node) Equal(other *Node) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	if n.kind != other.kind || len(n.children) != len(other.children) {
		return false
	}
	for i, c := range n.children {
		if !c.Equal(other.children[i]) {
			return false
		}
	}
	return true
}
