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

package rtext

import "fmt"

// Range is a half-open interval [start, end) of byte offsets.
type Range struct {
	start, end Unit
}

// OffsetLen builds the range [off, off+len).
func OffsetLen(off, length Unit) Range {
	return Range{start: off, end: off + length}
}

// NewRange builds the range [start, end). It panics if end < start.
func NewRange(start, end Unit) Range {
	if end < start {
		panic(fmt.Sprintf("rtext: invalid range [%d, %d)", start, end))
	}
	return Range{start: start, end: end}
}

// Start returns the inclusive start offset.
func (r Range) Start() Unit { return r.start }

// End returns the exclusive end offset.
func (r Range) End() Unit { return r.end }

// Len returns End() - Start().
func (r Range) Len() Unit { return r.end - r.start }

// IsEmpty reports whether the range contains no offsets.
func (r Range) IsEmpty() bool { return r.start == r.end }

// Contains reports whether off lies within [Start(), End()), i.e. excluding
// the right endpoint.
func (r Range) Contains(off Unit) bool {
	return r.start <= off && off < r.end
}

// ContainsInclusive reports whether off lies within [Start(), End()],
// including both endpoints. This is the "touches" relation used for
// offset-at-boundary lookups (spec TokenAtOffset semantics).
func (r Range) ContainsInclusive(off Unit) bool {
	return r.start <= off && off <= r.end
}

// IsSubrange reports whether r is fully contained in other, endpoints
// inclusive: other.Start() <= r.Start() && r.End() <= other.End().
func (r Range) IsSubrange(other Range) bool {
	return other.start <= r.start && r.end <= other.end
}

func (r Range) String() string { return fmt.Sprintf("[%d, %d)", r.start, r.end) }
