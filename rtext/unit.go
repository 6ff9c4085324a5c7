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

// Package rtext defines the text-length and text-range primitives shared by
// the green and syntax packages. It has no notion of files, lines, or
// columns: it measures raw byte offsets into a single buffer.
package rtext

import "fmt"

// Unit is a non-negative count of bytes of source text.
type Unit uint32

// Of returns the Unit for a non-negative int length. It panics if n is
// negative, matching the programmer-error discipline used throughout this
// module for malformed input.
func Of(n int) Unit {
	if n < 0 {
		panic(fmt.Sprintf("rtext: negative length %d", n))
	}
	return Unit(n)
}

// Add returns u + v.
func (u Unit) Add(v Unit) Unit { return u + v }

// Sub returns u - v. It panics if the result would be negative.
func (u Unit) Sub(v Unit) Unit {
	if v > u {
		panic(fmt.Sprintf("rtext: Unit underflow %d - %d", u, v))
	}
	return u - v
}

func (u Unit) String() string { return fmt.Sprintf("%d", uint32(u)) }
