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

package syntax_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"greentree.dev/go/rtext"
	"greentree.dev/go/syntax"
	"greentree.dev/go/syntax/syntaxtest"
	"greentree.dev/go/walk"
)

// TestThreeLeavesBasics covers spec scenario S1 directly: root.text_range()
// is [0,4), its children carry offsets 0, 1, 3, and first/last token are
// "x"/"z".
func TestThreeLeavesBasics(t *testing.T) {
	root := syntax.NewRoot(syntaxtest.ThreeLeaves())
	qt.Assert(t, qt.Equals(root.TextRange(), rtext.OffsetLen(0, 4)))

	children := root.ChildrenWithTokens()
	qt.Assert(t, qt.HasLen(children, 3))
	offsets := []rtext.Unit{children[0].TextRange().Start(), children[1].TextRange().Start(), children[2].TextRange().Start()}
	qt.Assert(t, qt.DeepEquals(offsets, []rtext.Unit{0, 1, 3}))

	first, ok := root.FirstToken()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(first.Text(), "x"))

	last, ok := root.LastToken()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(last.Text(), "z"))
}

// TestTokenAtOffsetAcrossFullRange covers invariant 7 and spec scenario S1:
// querying every offset in [0, 4] against the "x"/"yy"/"z" fixture produces
// the expected Single/Between result at each position.
func TestTokenAtOffsetAcrossFullRange(t *testing.T) {
	root := syntax.NewRoot(syntaxtest.ThreeLeaves())

	cases := []struct {
		offset rtext.Unit
		kase   walk.TokenAtCase
		texts  []string // single: 1 text; between: 2 texts
	}{
		{0, walk.SingleCase, []string{"x"}},
		{1, walk.BetweenCase, []string{"x", "yy"}},
		{2, walk.SingleCase, []string{"yy"}},
		{3, walk.BetweenCase, []string{"yy", "z"}},
		{4, walk.SingleCase, []string{"z"}},
	}

	for _, c := range cases {
		res := syntax.TokenAtOffset(root, c.offset)
		qt.Assert(t, qt.Equals(res.Case(), c.kase))
		switch c.kase {
		case walk.SingleCase:
			qt.Assert(t, qt.Equals(res.Token().Text(), c.texts[0]))
		case walk.BetweenCase:
			qt.Assert(t, qt.Equals(res.Left().Text(), c.texts[0]))
			qt.Assert(t, qt.Equals(res.Right().Text(), c.texts[1]))
		}
	}
}

func TestTokenAtOffsetOutOfRangePanics(t *testing.T) {
	root := syntax.NewRoot(syntaxtest.ThreeLeaves())
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range offset")
		}
	}()
	syntax.TokenAtOffset(root, 5)
}

func TestCoveringNodeDescendsToDeepestMatch(t *testing.T) {
	root := syntax.NewRoot(syntaxtest.Nested())

	// [0, 1) is exactly token A's range: covering node is the token itself.
	covering := syntax.CoveringNode(root, rtext.OffsetLen(0, 1))
	qt.Assert(t, qt.IsFalse(covering.IsNode()))
	qt.Assert(t, qt.Equals(covering.Token().Text(), "a"))

	// [0, 3) is exactly Group's range: none of Group's children individually
	// cover it, so Group itself is returned.
	coveringGroup := syntax.CoveringNode(root, rtext.OffsetLen(0, 3))
	qt.Assert(t, qt.IsTrue(coveringGroup.IsNode()))
	qt.Assert(t, qt.Equals(coveringGroup.Kind(), syntaxtest.KindGroup))

	// [0, 4) is the whole document: covering node is the root.
	coveringRoot := syntax.CoveringNode(root, rtext.OffsetLen(0, 4))
	qt.Assert(t, qt.IsTrue(coveringRoot.IsNode()))
	qt.Assert(t, qt.Equals(coveringRoot.Kind(), syntaxtest.KindRoot))
}

// TestCoveringNodeThreeLeaves covers spec scenario S5 directly on the
// "x"/"yy"/"z" fixture.
func TestCoveringNodeThreeLeaves(t *testing.T) {
	root := syntax.NewRoot(syntaxtest.ThreeLeaves())

	b := syntax.CoveringNode(root, rtext.OffsetLen(1, 2)) // [1, 3)
	qt.Assert(t, qt.IsFalse(b.IsNode()))
	qt.Assert(t, qt.Equals(b.Token().Text(), "yy"))

	whole := syntax.CoveringNode(root, rtext.OffsetLen(0, 4))
	qt.Assert(t, qt.IsTrue(whole.IsNode()))
	qt.Assert(t, qt.IsTrue(whole.Node().Equal(root)))
}

func TestCoveringNodeOutOfRangePanics(t *testing.T) {
	root := syntax.NewRoot(syntaxtest.Nested())
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a range outside the node's own range")
		}
	}()
	syntax.CoveringNode(root, rtext.OffsetLen(2, 10))
}
