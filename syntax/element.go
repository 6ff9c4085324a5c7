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

// Element is a tagged union of a Node and a Token, giving both a single
// uniform navigation surface (spec.md §3 "Overlay element").
type Element struct {
	node  *Node
	token *Token
}

// NodeElem wraps a Node as an Element.
func NodeElem(n *Node) Element { return Element{node: n} }

// TokenElem wraps a Token as an Element.
func TokenElem(t Token) Element { return Element{token: &t} }

// IsNode reports whether e wraps a Node.
func (e Element) IsNode() bool { return e.node != nil }

// Node returns the wrapped Node, or nil if e wraps a Token.
func (e Element) Node() *Node { return e.node }

// Token returns the wrapped Token. Only valid when IsNode() is false.
func (e Element) Token() Token { return *e.token }

// Kind reports the kind of the wrapped node or token.
func (e Element) Kind() green.Kind {
	if e.IsNode() {
		return e.node.Kind()
	}
	return e.token.Kind()
}

// TextRange reports the absolute text range of the wrapped node or token.
func (e Element) TextRange() rtext.Range {
	if e.IsNode() {
		return e.node.TextRange()
	}
	return e.token.TextRange()
}

// Parent returns the parent overlay node of the wrapped element. For a
// Token this is never nil; for a root Node it is nil.
func (e Element) Parent() *Node {
	if e.IsNode() {
		return e.node.Parent()
	}
	return e.token.Parent()
}

// Equal implements the logical equality rule from spec.md §3.
func (e Element) Equal(other Element) bool {
	if e.IsNode() != other.IsNode() {
		return false
	}
	if e.IsNode() {
		return e.node.Equal(other.node)
	}
	return e.token.Equal(*other.token)
}

// FirstToken returns the leftmost token in e's subtree, or itself if e is
// already a token.
func (e Element) FirstToken() (Token, bool) {
	if !e.IsNode() {
		return *e.token, true
	}
	return e.node.FirstToken()
}

// LastToken returns the rightmost token in e's subtree, or itself if e is
// already a token.
func (e Element) LastToken() (Token, bool) {
	if !e.IsNode() {
		return *e.token, true
	}
	return e.node.LastToken()
}

// NextSiblingOrToken returns the next sibling element after e, if any.
func (e Element) NextSiblingOrToken() (Element, bool) {
	if e.IsNode() {
		return e.node.NextSiblingOrToken()
	}
	return e.token.NextSiblingOrToken()
}

// PrevSiblingOrToken returns the previous sibling element before e, if any.
func (e Element) PrevSiblingOrToken() (Element, bool) {
	if e.IsNode() {
		return e.node.PrevSiblingOrToken()
	}
	return e.token.PrevSiblingOrToken()
}

func (e Element) tokenAtOffset(offset rtext.Unit) tokenAtResult {
	rng := e.TextRange()
	if offset < rng.Start() || offset > rng.End() {
		fatalf(rng, "syntax: token_at_offset: offset %d outside range %s", offset, rng)
	}
	if !e.IsNode() {
		return tokenAtResult{single: *e.token, hasSingle: true}
	}
	return e.node.tokenAtOffset(offset)
}

func (e Element) String() string {
	if e.IsNode() {
		return e.node.String()
	}
	return e.token.String()
}
