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

// Package syntaxtest builds small fixture green trees shared by the syntax
// package's tests, the way cue/ast_test.go builds fixture ASTs
// inline rather than from a golden file.
package syntaxtest

import "greentree.dev/go/green"

// Kinds used by the fixtures in this package. Client code outside of tests
// defines its own kinds; these exist only to give the fixtures something to
// tag nodes and tokens with.
const (
	KindRoot green.Kind = iota + 1
	KindLeafA
	KindLeafB
	KindLeafC
	KindGroup
)

// ThreeLeaves builds the tree used throughout spec scenario S1: a root
// containing three leaf tokens of kinds KindLeafA/B/C with texts "x", "yy",
// "z", covering the range [0, 4).
func ThreeLeaves() *green.Node {
	return green.NewNode(KindRoot, []green.Element{
		green.TokenElement(green.NewToken(KindLeafA, "x")),
		green.TokenElement(green.NewToken(KindLeafB, "yy")),
		green.TokenElement(green.NewToken(KindLeafC, "z")),
	})
}

// Nested builds a two-level tree:
//
//	Root
//	  Group
//	    A("a")
//	    B("bb")
//	  C("c")
//
// useful for exercising Children (node-kind only), ancestors, and
// cross-subtree next_token/prev_token.
func Nested() *green.Node {
	group := green.NewNode(KindGroup, []green.Element{
		green.TokenElement(green.NewToken(KindLeafA, "a")),
		green.TokenElement(green.NewToken(KindLeafB, "bb")),
	})
	return green.NewNode(KindRoot, []green.Element{
		green.NodeElement(group),
		green.TokenElement(green.NewToken(KindLeafC, "c")),
	})
}

// DepthThreeTenNodes builds a 10-node, depth-3 all-node tree for spec
// scenario S4: a root with 3 children, each of which has 2 leaf children
// (childless nodes, not tokens), for 1+3+6 = 10 nodes total.
func DepthThreeTenNodes() *green.Node {
	leaf := func() green.Element { return green.NodeElement(green.NewNode(KindLeafA, nil)) }
	branch := func() green.Element {
		return green.NodeElement(green.NewNode(KindGroup, []green.Element{leaf(), leaf()}))
	}
	return green.NewNode(KindRoot, []green.Element{branch(), branch(), branch()})
}
