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

import "greentree.dev/go/walk"

// Preorder visits the subtree rooted at n (including n) in preorder,
// excluding tokens, and returns the resulting stream of Enter/Leave events.
// Exactly one Enter and one Leave are produced per visited node, and the
// final event is always Leave(n) (spec.md §4.6):
//
//	Enter(node) -> Enter(first_child) if one exists, else Leave(node)
//	Leave(node) -> halt if node == start; else Enter(next_sibling) if one
//	               exists, else Leave(parent(node))
func Preorder(n *Node) []walk.Event[*Node] {
	var out []walk.Event[*Node]
	state := walk.Enter(n)
	out = append(out, state)
	for {
		if state.IsEnter() {
			node := state.Value()
			if child, ok := node.FirstChild(); ok {
				state = walk.Enter(child)
			} else {
				state = walk.Leave(node)
			}
		} else {
			node := state.Value()
			if node.Equal(n) {
				return out
			}
			if sib, ok := node.NextSibling(); ok {
				state = walk.Enter(sib)
			} else {
				state = walk.Leave(node.Parent())
			}
		}
		out = append(out, state)
	}
}

// PreorderWithTokens visits the subtree rooted at n (including n) in
// preorder, including tokens. Token leaves produce an Enter immediately
// followed by a Leave (spec.md §4.6).
func PreorderWithTokens(n *Node) []walk.Event[Element] {
	var out []walk.Event[Element]
	start := NodeElem(n)
	state := walk.Enter(start)
	out = append(out, state)
	for {
		if state.IsEnter() {
			el := state.Value()
			if el.IsNode() {
				if child, ok := el.Node().FirstChildOrToken(); ok {
					state = walk.Enter(child)
				} else {
					state = walk.Leave(el)
				}
			} else {
				state = walk.Leave(el)
			}
		} else {
			el := state.Value()
			if el.Equal(start) {
				return out
			}
			if sib, ok := el.NextSiblingOrToken(); ok {
				state = walk.Enter(sib)
			} else {
				state = walk.Leave(NodeElem(el.Parent()))
			}
		}
		out = append(out, state)
	}
}
