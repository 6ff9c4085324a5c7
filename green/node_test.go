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

package green_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"greentree.dev/go/green"
)

const (
	kindRoot green.Kind = iota + 1
	kindLeaf
)

func TestNodeTextLen(t *testing.T) {
	n := green.NewNode(kindRoot, []green.Element{
		green.TokenElement(green.NewToken(kindLeaf, "x")),
		green.TokenElement(green.NewToken(kindLeaf, "yy")),
	})
	qt.Assert(t, qt.Equals(int(n.TextLen()), 3))
	qt.Assert(t, qt.Equals(n.Kind(), kindRoot))
	qt.Assert(t, qt.HasLen(n.Children(), 2))
}

func TestNodeEqual(t *testing.T) {
	build := func() *green.Node {
		return green.NewNode(kindRoot, []green.Element{
			green.TokenElement(green.NewToken(kindLeaf, "x")),
		})
	}
	a, b := build(), build()
	qt.Assert(t, qt.IsTrue(a.Equal(b)))

	c := green.NewNode(kindRoot, []green.Element{
		green.TokenElement(green.NewToken(kindLeaf, "y")),
	})
	qt.Assert(t, qt.IsFalse(a.Equal(c)))
}

func TestNodeChildrenAreCopied(t *testing.T) {
	children := []green.Element{
		green.TokenElement(green.NewToken(kindLeaf, "x")),
	}
	n := green.NewNode(kindRoot, children)
	children[0] = green.TokenElement(green.NewToken(kindLeaf, "mutated"))
	qt.Assert(t, qt.Equals(n.Children()[0].Token().Text(), "x"))
}

func TestElementTextLen(t *testing.T) {
	tok := green.NewToken(kindLeaf, "abc")
	el := green.TokenElement(tok)
	qt.Assert(t, qt.Equals(int(el.TextLen()), 3))
	qt.Assert(t, qt.IsFalse(el.IsNode()))

	node := green.NewNode(kindRoot, nil)
	nodeEl := green.NodeElement(node)
	qt.Assert(t, qt.IsTrue(nodeEl.IsNode()))
	qt.Assert(t, qt.Equals(int(nodeEl.TextLen()), 0))
}
