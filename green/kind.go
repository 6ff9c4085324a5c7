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

// Package green implements the immutable, structurally-shared tree that
// underlies the syntax (red/overlay) layer in package syntax. A green node
// carries a kind, a cached text length, and an ordered sequence of children;
// it has no parent pointers and no absolute offsets, which is what lets it
// be shared across edits. Building, interning, and deduplicating green
// trees is out of scope for this package: callers construct nodes directly
// with NewNode and NewToken.
package green

// Kind is an opaque tag identifying the grammar production or token class
// of a node or token. Client packages define their own Kind values; this
// package assigns no meaning to any particular value.
type Kind uint16
