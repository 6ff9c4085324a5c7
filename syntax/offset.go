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
	"greentree.dev/go/rtext"
	"greentree.dev/go/walk"
)

// tokenAtResult is the internal, not-yet-boxed-into-walk.TokenAt shape used
// while recursing through tokenAtOffset.
type tokenAtResult struct {
	isNone    bool
	hasSingle bool
	single    Token
	left      Token
	right     Token
}

func noneResult() tokenAtResult { return tokenAtResult{isNone: true} }

func (r tokenAtResult) box() walk.TokenAt[Token] {
	switch {
	case r.isNone:
		return walk.None[Token]()
	case r.hasSingle:
		return walk.Single(r.single)
	default:
		return walk.Between(r.left, r.right)
	}
}

// TokenAtOffset finds the token(s) in n's subtree that cover offset, with
// the tie-break semantics of spec.md §4.7: endpoints are treated as
// inclusive, so an offset on an inter-token boundary yields Between rather
// than an arbitrary Single. Precondition: n.TextRange().Start() <= offset
// <= n.TextRange().End(); violating it is a fatal programmer error.
func TokenAtOffset(n *Node, offset rtext.Unit) walk.TokenAt[Token] {
	return n.tokenAtOffset(offset).box()
}

func (n *Node) tokenAtOffset(offset rtext.Unit) tokenAtResult {
	rng := n.TextRange()
	if offset < rng.Start() || offset > rng.End() {
		fatalf(rng, "syntax: token_at_offset: offset %d outside range %s", offset, rng)
	}
	if rng.IsEmpty() {
		return noneResult()
	}

	var straddling []Element
	for _, c := range n.ChildrenWithTokens() {
		cr := c.TextRange()
		if !cr.IsEmpty() && cr.ContainsInclusive(offset) {
			straddling = append(straddling, c)
		}
	}

	switch len(straddling) {
	case 0:
		fatalf(rng, "syntax: token_at_offset: no non-empty child covers offset %d in a non-empty node", offset)
	case 1:
		return straddling[0].tokenAtOffset(offset)
	case 2:
		left := straddling[0].tokenAtOffset(offset)
		right := straddling[1].tokenAtOffset(offset)
		if !left.hasSingle || !right.hasSingle {
			fatalf(rng, "syntax: token_at_offset: straddling children did not each resolve to a single token")
		}
		return tokenAtResult{single: left.single, left: left.single, right: right.single}
	default:
		fatalf(rng, "syntax: token_at_offset: more than two children straddle offset %d", offset)
	}
	panic("unreachable")
}

// CoveringNode returns the deepest node-or-token in n's subtree whose text
// range contains rng as a subrange (endpoints inclusive). Descent repeatedly
// picks the first child whose range contains rng, stopping when no such
// child exists or the current element is a token. For an empty range on a
// boundary shared by two siblings, the first (leftmost) match is returned,
// per spec.md §4.7/§9.
func CoveringNode(n *Node, rng rtext.Range) Element {
	res := NodeElem(n)
	for {
		if !rng.IsSubrange(res.TextRange()) {
			fatalf(res.TextRange(), "syntax: covering_node: range %s not contained in node range %s", rng, res.TextRange())
		}
		if !res.IsNode() {
			return res
		}
		next, ok := firstChildContaining(res.Node(), rng)
		if !ok {
			return res
		}
		res = next
	}
}

func firstChildContaining(n *Node, rng rtext.Range) (Element, bool) {
	for _, c := range n.ChildrenWithTokens() {
		if rng.IsSubrange(c.TextRange()) {
			return c, true
		}
	}
	return Element{}, false
}
