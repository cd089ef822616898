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
	"math/rand/v2"
	"time"

	"github.com/YouDevIt/itl/host"
	"github.com/YouDevIt/itl/internal/diag"
)

const numCells = 27

// cellIndex maps a variable letter (A-Z, '_') to its cell index, or -1 if
// c is not a variable letter.
func cellIndex(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A')
	case c == '_':
		return 26
	default:
		return -1
	}
}

// isVarLetter reports whether c names one of the 27 variable cells.
func isVarLetter(c byte) bool { return cellIndex(c) >= 0 }

// AssignHook is called after every successful assignment to a variable
// cell, before array writes. The REPL uses it to implement the
// assignment-echo feature (spec.md 6); file mode leaves it nil.
type AssignHook func(cell byte, v Value)

// ArrayHook is called after every successful array write, mirroring
// AssignHook for "< @idx = num" echo lines.
type ArrayHook func(idx int, v float64)

// MetaHook dispatches a ":..." REPL meta-command (spec.md 6); file mode
// leaves it nil, in which case meta-command segments are diagnosed and
// ignored. body is the command text with the leading ':' already
// stripped.
type MetaHook func(body string)

// Engine is one ITL interpreter instance: 27 variable cells, one global
// numeric array, RNG state, a program store, and the host capability set
// it's wired to. Treat it as an owned instance, not ambient global state,
// so that multiple engines can coexist in one process (spec.md 9, "Global
// state").
type Engine struct {
	cells [numCells]Value

	array    []float64
	arrayCap int

	rng *rand.Rand

	Program Program

	line int // 1-based line cursor, the '#' primary's value

	host host.Host
	log  *diag.Logger

	stringCap int

	resolving bool // forward-ref reentrancy guard, spec.md 3

	onAssign AssignHook
	onArray  ArrayHook
	onMeta   MetaHook

	lastNewline bool // tracks print output for REPL prompt interleaving (spec.md 4.5)
	jumped      bool // set by execJump; tells the control driver not to auto-advance
}

// Option configures an Engine at construction time, mirroring the
// teacher's vm.Option (vm.DataSize, vm.AddressSize) functional-options
// pattern.
type Option func(*Engine)

// WithHost attaches the host capability set the engine will use for all
// terminal/graphics/pointer/timer builtins. Without one, the engine uses
// host.NewNull(), which answers every query with its documented zero
// value.
func WithHost(h host.Host) Option {
	return func(e *Engine) { e.host = h }
}

// WithLogger attaches a diagnostic logger. Without one, the engine logs
// to internal/diag.Default.
func WithLogger(l *diag.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// ArrayCap sets the maximum array index + 1 a write may grow to (spec.md
// 3's "implementation cap (default 1,000,000)").
func ArrayCap(n int) Option {
	return func(e *Engine) { e.arrayCap = n }
}

// StringCap sets the maximum byte length of a string Value (spec.md 3's
// "up to an implementation limit, default >= 4096").
func StringCap(n int) Option {
	return func(e *Engine) { e.stringCap = n }
}

// WithAssignHook attaches an AssignHook, used by the REPL's
// assignment-echo feature.
func WithAssignHook(h AssignHook) Option {
	return func(e *Engine) { e.onAssign = h }
}

// WithArrayHook attaches an ArrayHook, the array-write analogue of
// WithAssignHook.
func WithArrayHook(h ArrayHook) Option {
	return func(e *Engine) { e.onArray = h }
}

// WithMetaHook attaches the REPL's meta-command dispatcher.
func WithMetaHook(h MetaHook) Option {
	return func(e *Engine) { e.onMeta = h }
}

// Seed seeds the RNG deterministically at construction time, instead of
// from the wall clock.
func Seed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	}
}

// New creates an Engine ready to load a program into.
func New(opts ...Option) *Engine {
	e := &Engine{
		arrayCap:  1000000,
		stringCap: 4096,
		line:      1,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.host == nil {
		e.host = host.NewNull()
	}
	if e.log == nil {
		e.log = diag.Default
	}
	if e.rng == nil {
		now := uint64(time.Now().UnixNano())
		e.rng = rand.New(rand.NewPCG(now, now^0x9e3779b97f4a7c15))
	}
	return e
}

// Get reads a variable cell directly, bypassing forward-reference
// resolution. Used internally by the evaluator after resolution has
// already been attempted.
func (e *Engine) Get(cell byte) Value {
	idx := cellIndex(cell)
	if idx < 0 {
		return Undef
	}
	return e.cells[idx]
}

// Set writes a variable cell and fires the assign hook.
func (e *Engine) Set(cell byte, v Value) {
	idx := cellIndex(cell)
	if idx < 0 {
		return
	}
	e.cells[idx] = v
	if e.onAssign != nil {
		e.onAssign(cell, v)
	}
}

// Undefine resets a variable cell to Undefined: the bare-name-alone
// assignment form (spec.md 3, "Lifecycles").
func (e *Engine) Undefine(cell byte) {
	idx := cellIndex(cell)
	if idx < 0 {
		return
	}
	e.cells[idx] = Undef
}

// Line returns the current 1-based line cursor, the value of the '#'
// primary during execution of that segment.
func (e *Engine) Line() int { return e.line }

// SetLine sets the line cursor; the control driver re-reads it after the
// current segment completes (spec.md 3).
func (e *Engine) SetLine(n int) { e.line = n }

// Host returns the engine's host capability set.
func (e *Engine) Host() host.Host { return e.host }

// LastNewline reports whether the last byte written by a print statement
// was a newline, so the REPL can decide whether to start its prompt on a
// fresh line (spec.md 4.5).
func (e *Engine) LastNewline() bool { return e.lastNewline }

// Log returns the engine's diagnostic logger.
func (e *Engine) Log() *diag.Logger { return e.log }

// Reset clears variables and the array but keeps the program store
// (spec.md 6, ":clear").
func (e *Engine) Reset() {
	e.cells = [numCells]Value{}
	e.array = nil
}

// FullReset clears everything, including the program store (spec.md 6,
// ":reset").
func (e *Engine) FullReset() {
	e.Reset()
	e.Program = nil
	e.line = 1
}
