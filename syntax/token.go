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
	"fmt"

	"greentree.dev/go/green"
	"greentree.dev/go/rtext"
)

// Token is a parented overlay view of a green.Token. Unlike Node, a Token
// is always a child — it cannot be a root — and is a plain value with no
// pool involvement (spec.md §3, §4.3).
type Token struct {
	parent *Node
	index  int
	offset rtext.Unit
}

func newToken(parent *Node, index int, offset rtext.Unit) Token {
	return Token{parent: parent, index: index, offset: offset}
}

// Green returns the green token this overlay views.
func (t Token) Green() *green.Token {
	return t.parent.green.Children()[t.index].Token()
}

// Kind reports the kind of the green token this overlay views.
func (t Token) Kind() green.Kind { return t.Green().Kind() }

// Text returns the token's literal text.
func (t Token) Text() string { return t.Green().Text() }

// TextRange returns t's absolute text range.
func (t Token) TextRange() rtext.Range {
	return rtext.OffsetLen(t.offset, t.Green().TextLen())
}

// Parent returns t's parent overlay node. Unlike Node.Parent, this is
// never nil: a token always has a parent.
func (t Token) Parent() *Node { return t.parent }

// Equal implements the logical equality rule from spec.md §3.
func (t Token) Equal(other Token) bool {
	return t.Green() == other.Green() && t.TextRange().Start() == other.TextRange().Start()
}

// HashKey returns a value suitable for use as a map key that is consistent
// with Equal.
func (t Token) HashKey() TokenHashKey {
	return TokenHashKey{green: t.Green(), start: t.TextRange().Start()}
}

// TokenHashKey is a comparable summary of a Token's logical identity.
type TokenHashKey struct {
	green *green.Token
	start rtext.Unit
}

func (t Token) String() string {
	return fmt.Sprintf("Token(kind=%d, text=%q, range=%s)", t.Kind(), t.Text(), t.TextRange())
}

// ReplaceWith returns a new green root, equal to the green tree t belongs
// to except that the green token at t's position is replaced with
// replacement. replacement must have the same kind as t.
func (t Token) ReplaceWith(replacement *green.Token) *green.Node {
	if replacement.Kind() != t.Kind() {
		fatalf(t.TextRange(), "syntax: ReplaceWith kind mismatch: have %d, want %d", replacement.Kind(), t.Kind())
	}
	children := t.parent.green.Children()
	newChildren := make([]green.Element, len(children))
	copy(newChildren, children)
	newChildren[t.index] = green.TokenElement(replacement)
	newParentGreen := green.NewNode(t.parent.Kind(), newChildren)
	return t.parent.ReplaceWith(newParentGreen)
}
