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

import (
	"fmt"

	"greentree.dev/go/rtext"
)

// PanicError is the value every fatal precondition violation in this
// package panics with (spec.md §7: "All errors in this layer are
// programmer errors and are fatal"). It carries the text range the
// violation was detected at, when one is available, so a recovering caller
// (e.g. a test harness) can report a useful location.
//
// Modeled on cue/token.Error's position-qualified formatting, adapted to
// panic rather than to be returned, since this layer has no notion of
// recoverable diagnostics: every case here is an invariant violation, not
// a malformed-input condition a caller could reasonably handle.
type PanicError struct {
	Msg   string
	Range rtext.Range
}

func (e *PanicError) Error() string {
	if e.Range == (rtext.Range{}) {
		return e.Msg
	}
	return fmt.Sprintf("%s (at %s)", e.Msg, e.Range)
}

func fatalf(rng rtext.Range, format string, args ...interface{}) {
	panic(&PanicError{Msg: fmt.Sprintf(format, args...), Range: rng})
}
