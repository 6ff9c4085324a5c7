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

// elementAt materializes the overlay Element for a childTriple found among
// parent's children.
func elementAt(parent *Node, t childTriple) Element {
	if t.elem.IsNode() {
		return NodeElem(parent.newChild(t.elem.Node(), t.index, t.offset))
	}
	return TokenElem(newToken(parent, t.index, t.offset))
}

// Children returns n's node-kind children, left to right, skipping tokens.
func (n *Node) Children() []*Node {
	children := n.green.Children()
	offset := n.TextRange().Start()
	out := make([]*Node, 0, len(children))
	for i, e := range children {
		if e.IsNode() {
			out = append(out, n.newChild(e.Node(), i, offset))
		}
		offset = offset.Add(e.TextLen())
	}
	return out
}

// ChildrenWithTokens returns all of n's child elements, left to right.
func (n *Node) ChildrenWithTokens() []Element {
	children := n.green.Children()
	offset := n.TextRange().Start()
	out := make([]Element, 0, len(children))
	for i, e := range children {
		out = append(out, elementAt(n, childTriple{elem: e, index: i, offset: offset}))
		offset = offset.Add(e.TextLen())
	}
	return out
}

// FirstChild returns n's first node-kind child, if any.
func (n *Node) FirstChild() (*Node, bool) {
	t, ok := firstMatchFrom(n.green.Children(), 0, n.TextRange().Start(), true)
	if !ok {
		return nil, false
	}
	return n.newChild(t.elem.Node(), t.index, t.offset), true
}

// LastChild returns n's last node-kind child, if any.
func (n *Node) LastChild() (*Node, bool) {
	children := n.green.Children()
	t, ok := lastMatchTo(children, len(children), n.TextRange().End(), true)
	if !ok {
		return nil, false
	}
	return n.newChild(t.elem.Node(), t.index, t.offset), true
}

// FirstChildOrToken returns n's first child element, if any.
func (n *Node) FirstChildOrToken() (Element, bool) {
	t, ok := firstMatchFrom(n.green.Children(), 0, n.TextRange().Start(), false)
	if !ok {
		return Element{}, false
	}
	return elementAt(n, t), true
}

// LastChildOrToken returns n's last child element, if any.
func (n *Node) LastChildOrToken() (Element, bool) {
	children := n.green.Children()
	t, ok := lastMatchTo(children, len(children), n.TextRange().End(), false)
	if !ok {
		return Element{}, false
	}
	return elementAt(n, t), true
}

// NextSibling returns the next node-kind element among n's parent's
// children after n, if n has a parent and such a sibling exists.
func (n *Node) NextSibling() (*Node, bool) {
	if n.role != roleChild {
		return nil, false
	}
	t, ok := firstMatchFrom(n.parent.green.Children(), n.index+1, n.TextRange().End(), true)
	if !ok {
		return nil, false
	}
	return n.parent.newChild(t.elem.Node(), t.index, t.offset), true
}

// PrevSibling returns the previous node-kind element among n's parent's
// children before n, if any.
func (n *Node) PrevSibling() (*Node, bool) {
	if n.role != roleChild {
		return nil, false
	}
	t, ok := lastMatchTo(n.parent.green.Children(), n.index, n.TextRange().Start(), true)
	if !ok {
		return nil, false
	}
	return n.parent.newChild(t.elem.Node(), t.index, t.offset), true
}

// NextSiblingOrToken returns the next child element after n, if any.
func (n *Node) NextSiblingOrToken() (Element, bool) {
	if n.role != roleChild {
		return Element{}, false
	}
	t, ok := firstMatchFrom(n.parent.green.Children(), n.index+1, n.TextRange().End(), false)
	if !ok {
		return Element{}, false
	}
	return elementAt(n.parent, t), true
}

// PrevSiblingOrToken returns the previous child element before n, if any.
func (n *Node) PrevSiblingOrToken() (Element, bool) {
	if n.role != roleChild {
		return Element{}, false
	}
	t, ok := lastMatchTo(n.parent.green.Children(), n.index, n.TextRange().Start(), false)
	if !ok {
		return Element{}, false
	}
	return elementAt(n.parent, t), true
}

// FirstToken returns the leftmost token in n's subtree, if n's subtree
// contains any token.
func (n *Node) FirstToken() (Token, bool) {
	e, ok := n.FirstChildOrToken()
	if !ok {
		return Token{}, false
	}
	return e.FirstToken()
}

// LastToken returns the rightmost token in n's subtree, if any.
func (n *Node) LastToken() (Token, bool) {
	e, ok := n.LastChildOrToken()
	if !ok {
		return Token{}, false
	}
	return e.LastToken()
}

// Ancestors returns n, n.Parent(), n.Parent().Parent(), ..., up to and
// including the root, in that order (spec.md §4.5: "derived").
func (n *Node) Ancestors() []*Node {
	var out []*Node
	for cur := n; cur != nil; cur = cur.Parent() {
		out = append(out, cur)
	}
	return out
}

// NextSiblingOrToken for a Token: the next child element of its parent
// after it, if any.
func (t Token) NextSiblingOrToken() (Element, bool) {
	tr, ok := firstMatchFrom(t.parent.green.Children(), t.index+1, t.TextRange().End(), false)
	if !ok {
		return Element{}, false
	}
	return elementAt(t.parent, tr), true
}

// PrevSiblingOrToken for a Token: the previous child element of its parent
// before it, if any.
func (t Token) PrevSiblingOrToken() (Element, bool) {
	tr, ok := lastMatchTo(t.parent.green.Children(), t.index, t.TextRange().Start(), false)
	if !ok {
		return Element{}, false
	}
	return elementAt(t.parent, tr), true
}

// NextToken returns the next token in the document in depth-first order,
// crossing subtree boundaries as needed (spec.md §4.5's next_token
// algorithm: take the next sibling-or-token's first token, or walk
// ancestors until one has a next-sibling-or-token).
func (t Token) NextToken() (Token, bool) {
	if e, ok := t.NextSiblingOrToken(); ok {
		return e.FirstToken()
	}
	for _, anc := range t.parent.Ancestors() {
		if e, ok := anc.NextSiblingOrToken(); ok {
			return e.FirstToken()
		}
	}
	return Token{}, false
}

// PrevToken returns the previous token in the document in depth-first
// order, mirroring NextToken.
func (t Token) PrevToken() (Token, bool) {
	if e, ok := t.PrevSiblingOrToken(); ok {
		return e.LastToken()
	}
	for _, anc := range t.parent.Ancestors() {
		if e, ok := anc.PrevSiblingOrToken(); ok {
			return e.LastToken()
		}
	}
	return Token{}, false
}
