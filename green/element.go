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

// Element is either a *Node or a *Token. Exactly one of the two accessors
// returns non-nil for any valid Element.
type Element struct {
	node  *Node
	token *Token
}

// NodeElement wraps a node as an Element.
func NodeElement(n *Node) Element { return Element{node: n} }

// TokenElement wraps a token as an Element.
func TokenElement(t *Token) Element { return Element{token: t} }

// Node returns the wrapped node, or nil if this element wraps a token.
func (e Element) Node() *Node { return e.node }

// Token returns the wrapped token, or nil if this element wraps a node.
func (e Element) Token() *Token { return e.token }

// IsNode reports whether the element wraps a node.
func (e Element) IsNode() bool { return e.node != nil }

// Kind reports the kind of the wrapped node or token.
func (e Element) Kind() Kind {
	if e.node != nil {
		return e.node.Kind()
	}
	return e.token.Kind()
}

// TextLen reports the text length of the wrapped node or token.
func (e Element) TextLen() rtext.Unit {
	if e.node != nil {
		return e.node.TextLen()
	}
	return e.token.TextLen()
}

// Equal reports whether two elements wrap equal (deep, structural) values.
func (e Element) Equal(other Element) bool {
	if e.IsNode() != other.IsNode() {
		return false
	}
	if e.IsNode() {
		return e.node.Equal(other.node)
	}
	return e.token.Equal(other.token)
}
