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

	"greentree.dev/go/syntax"
	"greentree.dev/go/syntax/syntaxtest"
)

// TestPoolRecycleUnderChurn covers spec scenario S6: after allocating and
// recycling far more overlay nodes than the pool's free-list capacity,
// navigation from a fresh root still produces correct results.
func TestPoolRecycleUnderChurn(t *testing.T) {
	g := syntaxtest.Nested()
	pl := syntax.NewPool()

	for i := 0; i < 10000; i++ {
		root := pl.NewRoot(g)
		group, ok := root.FirstChild()
		qt.Assert(t, qt.IsTrue(ok))
		tok, ok := group.FirstToken()
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(tok.Text(), "a"))
		group.Recycle()
		root.Recycle()
	}

	root := pl.NewRoot(g)
	group, ok := root.FirstChild()
	qt.Assert(t, qt.IsTrue(ok))
	c, ok := group.NextSiblingOrToken()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(c.Token().Text(), "c"))
}

// TestDefaultPoolIndependentFromCustomPool checks that package-level
// NewRoot (the default pool) and a caller-owned Pool produce independently
// usable overlays over the same green tree.
func TestDefaultPoolIndependentFromCustomPool(t *testing.T) {
	g := syntaxtest.ThreeLeaves()

	fromDefault := syntax.NewRoot(g)
	pl := syntax.NewPool()
	fromCustom := pl.NewRoot(g)

	qt.Assert(t, qt.IsTrue(fromDefault.Equal(fromCustom)))

	tokA, _ := fromDefault.FirstToken()
	tokB, _ := fromCustom.FirstToken()
	qt.Assert(t, qt.IsTrue(tokA.Equal(tokB)))
}
