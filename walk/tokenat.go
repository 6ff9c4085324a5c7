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

package walk

// TokenAtCase distinguishes the three outcomes of an offset-to-token query.
type TokenAtCase int

const (
	// NoneCase means the query range was empty.
	NoneCase TokenAtCase = iota
	// SingleCase means exactly one token contains the offset.
	SingleCase
	// BetweenCase means the offset sits on the boundary between two
	// adjacent tokens.
	BetweenCase
)

// TokenAt is the result of looking up a single text offset against a
// subtree: either no result (an empty range), a single token whose range
// contains the offset (endpoints inclusive, so an offset at the very start
// or end of the subtree yields the edge token), or the pair of adjacent
// tokens that share the offset as a boundary.
type TokenAt[T any] struct {
	kase        TokenAtCase
	left, right T
}

// None builds the empty-range result.
func None[T any]() TokenAt[T] { return TokenAt[T]{kase: NoneCase} }

// Single builds the single-token result.
func Single[T any](x T) TokenAt[T] { return TokenAt[T]{kase: SingleCase, left: x} }

// Between builds the boundary result for the token ending at the offset
// (left) and the token starting at the offset (right).
func Between[T any](left, right T) TokenAt[T] {
	return TokenAt[T]{kase: BetweenCase, left: left, right: right}
}

// Case reports which of the three outcomes this result holds.
func (t TokenAt[T]) Case() TokenAtCase { return t.kase }

// Token returns the single token, valid only when Case() == SingleCase.
func (t TokenAt[T]) Token() T { return t.left }

// Left returns the left token of a Between result.
func (t TokenAt[T]) Left() T { return t.left }

// Right returns the right token of a Between result.
func (t TokenAt[T]) Right() T { return t.right }
