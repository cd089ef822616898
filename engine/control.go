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

import (
	"context"

	"github.com/pkg/errors"
)

// ErrInterrupted is returned by Run when the host's interrupt flag was
// observed between segments (spec.md 5).
var ErrInterrupted = errors.New("itl: interrupted")

// Run drives the program store from the current line cursor to
// termination (spec.md 4.7): after each segment, the cursor advances by
// one unless the segment jumped, in which case the driver re-reads it.
// The program halts when the cursor leaves [1, N], when ctx is
// cancelled, or when the host's interrupt flag is observed. A panic
// inside a single segment's evaluation is recovered and reported as an
// error rather than unwinding across segments, matching the "errors are
// local" propagation policy of spec.md 7.
func (e *Engine) Run(ctx context.Context) (err error) {
	for {
		if e.line < 1 || e.line > e.Program.Len() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if e.host.Interrupted() {
			e.log.Emit(diagKindHost, e.line, "interrupted")
			return ErrInterrupted
		}
		seg := e.Program.Segment(e.line)
		if err := e.runSegment(seg); err != nil {
			return errors.Wrapf(err, "segment %d", e.line)
		}
		if e.jumped {
			e.jumped = false
			continue
		}
		e.line++
	}
}

// runSegment executes one segment, converting any panic raised during
// evaluation into an error instead of letting it cross the segment
// boundary.
func (e *Engine) runSegment(seg string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: %v", r)
		}
	}()
	e.execSegment(seg)
	return nil
}

// Step executes exactly the segment at the current line cursor and
// advances it per the same jump rule Run uses, without looping. The
// program store is left intact for forward references.
func (e *Engine) Step() error {
	if e.line < 1 || e.line > e.Program.Len() {
		return nil
	}
	seg := e.Program.Segment(e.line)
	if err := e.runSegment(seg); err != nil {
		return errors.Wrapf(err, "segment %d", e.line)
	}
	if e.jumped {
		e.jumped = false
		return nil
	}
	e.line++
	return nil
}
