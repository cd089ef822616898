// This file is part of itl.
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

package engine

// readVar implements the forward-reference-aware variable read (spec.md
// 4.6): when V is undefined and no resolution is already in progress,
// scan segments from the current line to the end of the program for the
// first one whose first non-whitespace byte is V followed by something
// (not end-of-segment), execute it with the driver's normal semantics,
// then return V's (possibly now-set) value. The resolving flag is a
// scoped acquisition released on every exit path, satisfying the
// reentrancy invariant: a second triggering read during an active scan
// returns the default immediately (spec.md 3).
func (e *Engine) readVar(cell byte) Value {
	v := e.Get(cell)
	if !v.IsUndefined() {
		return v
	}
	if e.resolving {
		return Undef
	}
	e.resolving = true
	defer func() { e.resolving = false }()

	savedLine := e.line
	defer func() { e.line = savedLine }()
	savedJumped := e.jumped
	defer func() { e.jumped = savedJumped }()

	for n := e.line; n <= e.Program.Len(); n++ {
		seg := e.Program.Segment(n)
		pos := skipSpace(seg, 0)
		if pos >= len(seg) || seg[pos] != cell {
			continue
		}
		if pos+1 >= len(seg) {
			continue // "V" alone: not an assignment target, keep scanning
		}
		e.line = n
		e.execSegment(seg)
		break
	}
	return e.Get(cell)
}
