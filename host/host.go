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

// Package host declares the narrow capability set the engine consumes
// (spec.md 6): a character grid, a keyboard, a pixel surface, a pointer
// in both pixel and cell coordinates, a timer and an interrupt flag. The
// engine depends on this interface only, never on a specific terminal or
// windowing library; host/term, host/gfx and host/mock provide it.
package host

// Grid is a character-cell terminal-like surface, 0-based coordinates.
// Out-of-range coordinates and colors are rejected per-method (0 or -1,
// spec.md 6); implementations never panic on bad input.
type Grid interface {
	// Goto moves the write cursor to (x, y).
	Goto(x, y int)
	// Cell returns the byte at (x, y), or 0 if out of range.
	Cell(x, y int) byte
	// Put writes s starting at the cursor, advancing it.
	Put(s string)
	// SetFore sets the foreground color, 0..7.
	SetFore(c int)
	// SetBack sets the background color, 0..7.
	SetBack(c int)
	// SetAttr sets the text attribute: 0 normal, 1 bold, 2 reverse.
	SetAttr(a int)
	// Size returns the grid's width and height in cells.
	Size() (w, h int)
	// Clear erases the grid and homes the cursor.
	Clear()
}

// Keyboard is the blocking-line / non-blocking-poll input capability.
type Keyboard interface {
	// ReadLine blocks for one line of input, without its trailing
	// newline.
	ReadLine() (string, error)
	// PollKey returns the next queued key code, or 0 if none is queued.
	PollKey() int
}

// Pixel is a buffered pixel drawing surface. All coordinates are pixels;
// drawing is buffered, and an implementation repaints either on Refresh
// or on its own (host/gfx repaints every frame).
type Pixel interface {
	Open(w, h int) error
	SetPen(r, g, b int)
	SetBrush(r, g, b int)
	Clear()
	Pixel(x, y int)
	Line(x0, y0, x1, y1 int)
	Rect(x0, y0, x1, y1 int)
	FillRect(x0, y0, x1, y1 int)
	Circle(x, y, r int)
	FillCircle(x, y, r int)
	Text(x, y int, s string)
	Refresh()
}

// Button mask bits shared by Pointer and CellPointer.
const (
	ButtonLeft   = 1
	ButtonRight  = 2
	ButtonMiddle = 4
)

// Pointer reports the mouse in pixel coordinates over the Pixel surface.
type Pointer interface {
	X() int
	Y() int
	Buttons() int
	// Click is one-shot: it is consumed on read.
	Click() int
	Drag() int
}

// CellPointer reports the mouse in character-cell coordinates over the
// Grid, updated when the keyboard poll pumps host events.
type CellPointer interface {
	CellX() int
	CellY() int
	CellButtons() int
	CellClick() int
	CellDrag() int
}

// Timer exposes wall-clock and monotonic time sources.
type Timer interface {
	// WallSeconds returns the current wall-clock time, whole seconds.
	WallSeconds() int64
	// Ticks returns milliseconds elapsed since the host started.
	Ticks() int64
	// Elapsed returns milliseconds since the previous call to Elapsed
	// (or since start, on the first call), then resets its reference
	// point.
	Elapsed() int64
}

// Interrupted reports a read-only flag set by host signal handling
// (spec.md 5); the control driver polls it between segments.
type Interrupted interface {
	Interrupted() bool
}

// Host is the full capability set the engine requires.
type Host interface {
	Grid
	Keyboard
	Pixel
	Pointer
	CellPointer
	Timer
	Interrupted
}
