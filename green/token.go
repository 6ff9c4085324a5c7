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

// Token is an immutable leaf carrying raw source text.
type Token struct {
	kind Kind
	text string
}

// NewToken builds a token of the given kind with the given literal text.
func NewToken(kind Kind, text string) *Token {
	return &Token{kind: kind, text: text}
}

// Kind reports the token's kind.
func (t *Token) Kind() Kind { return t.kind }

// Text returns the token's literal text.
func (t *Token) Text() string { return t.text }

// TextLen returns the byte length of the token's text.
func (t *Token) TextLen() rtext.Unit { return rtext.Of(len(t.text)) }

// Equal reports whether t and other have the same kind and text.
func (t *Token) Equal(other *Token) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.kind == other.kind && t.text == other.text
}

func (t *Token) String() string { return t.text }
