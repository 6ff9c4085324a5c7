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

// Package syntax implements the red/overlay layer over an immutable
// greentree.dev/go/green tree: parented, offset-bearing views materialized
// lazily on demand, with pooled backing records to keep heavy navigation
// cheap. See the package-level design note in pool.go for the pooling
// model and DESIGN.md for how it maps spec.md's reference-counted free list
// onto Go's garbage collector.
package syntax

import (
	"fmt"

	"greentree.dev/go/green"
	"greentree.dev/go/rtext"
)

// Node is a parented overlay view of a green.Node. The zero value is not a
// valid Node; obtain one via NewRoot or one of the navigation methods.
type Node struct {
	role     role
	green    *green.Node
	parent   *Node
	index    int
	offset   rtext.Unit
	nextFree *Node
	pl       *pool
}

// NewRoot builds a root overlay node that owns g, using the package's
// default pool.
func NewRoot(g *green.Node) *Node {
	n := defaultPool.acquire(roleRoot, g)
	n.pl = defaultPool
	return n
}

// NewRoot builds a root overlay node that owns g, using pl's pool.
func (pl *Pool) NewRoot(g *green.Node) *Node {
	n := pl.p.acquire(roleRoot, g)
	n.pl = &pl.p
	return n
}

func (n *Node) newChild(g *green.Node, index int, offset rtext.Unit) *Node {
	c := n.pl.acquire(roleChild, g)
	c.parent = n
	c.index = index
	c.offset = offset
	c.pl = n.pl
	return c
}

// Recycle returns n's backing record to its owning pool. Callers must not
// use n, or any Node/Token/Element derived from n, after calling Recycle —
// see DESIGN.md's resolution of the Rc-free-list open question.
func (n *Node) Recycle() {
	if n == nil {
		return
	}
	n.pl.release(n)
}

// Kind reports the kind of the green node this overlay views.
func (n *Node) Kind() green.Kind { return n.green.Kind() }

// Green returns the green node this overlay views.
func (n *Node) Green() *green.Node { return n.green }

// TextRange returns n's absolute text range.
func (n *Node) TextRange() rtext.Range {
	return rtext.OffsetLen(n.offset, n.green.TextLen())
}

// Parent returns n's parent overlay node, or nil if n is a root.
func (n *Node) Parent() *Node {
	if n.role == roleRoot {
		return nil
	}
	return n.parent
}

// Equal implements the logical equality rule from spec.md §3: two overlays
// are equal iff they view the same green element and share the same
// absolute start offset.
func (n *Node) Equal(other *Node) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	return n.green == other.green && n.TextRange().Start() == other.TextRange().Start()
}

// HashKey returns a value suitable for use as a map key that is consistent
// with Equal: two equal nodes produce equal HashKeys.
func (n *Node) HashKey() NodeHashKey {
	return NodeHashKey{green: n.green, start: n.TextRange().Start()}
}

// NodeHashKey is a comparable summary of a Node's logical identity.
type NodeHashKey struct {
	green *green.Node
	start rtext.Unit
}

func (n *Node) String() string {
	return fmt.Sprintf("Node(kind=%d, range=%s)", n.green.Kind(), n.TextRange())
}

// ReplaceWith returns a new green root, equal to the green tree n belongs
// to except that the green node at n's position is replaced with
// replacement. The original tree is unchanged. replacement must have the
// same kind as n; violating that precondition is a fatal programmer error
// (spec.md §7).
func (n *Node) ReplaceWith(replacement *green.Node) *green.Node {
	if replacement.Kind() != n.Kind() {
		panic(&PanicError{
			Msg:   fmt.Sprintf("syntax: ReplaceWith kind mismatch: have %d, want %d", replacement.Kind(), n.Kind()),
			Range: n.TextRange(),
		})
	}
	if n.role == roleRoot {
		return replacement
	}
	parent := n.parent
	children := parent.green.Children()
	newChildren := make([]green.Element, len(children))
	copy(newChildren, children)
	newChildren[n.index] = green.NodeElement(replacement)
	newParentGreen := green.NewNode(parent.Kind(), newChildren)
	return parent.ReplaceWith(newParentGreen)
}
