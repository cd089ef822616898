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

// Package mock provides a scripted, recording host.Host for hermetic
// engine tests (spec.md 9, "Host seam"): output is captured to a
// buffer, input is fed from a preloaded queue, and the virtual clock
// advances only when told to.
package mock

import (
	"strings"

	"github.com/YouDevIt/itl/host"
)

// Host is a fully in-memory host.Host. The zero value is not ready to
// use; call New.
type Host struct {
	Output strings.Builder

	lines []string
	keys  []int

	width, height int
	fg, bg, attr  int

	pixelW, pixelH int
	penR, penG, penB int
	brR, brG, brB    int
	Ops              []string // records every drawing call, for assertions

	mx, my, mbuttons, mclick, mdrag         int
	cellX, cellY, cellButtons, cellClick, cellDrag int

	wallSeconds, ticks, elapsed int64

	interrupted bool
}

// New returns a ready Host sized w x h cells, with no queued input.
func New(w, h int) *Host {
	return &Host{width: w, height: h}
}

// FeedLine queues one line for the next ReadLine call.
func (h *Host) FeedLine(s string) { h.lines = append(h.lines, s) }

// FeedKey queues one key code for the next PollKey call.
func (h *Host) FeedKey(k int) { h.keys = append(h.keys, k) }

// SetInterrupted sets the flag Interrupted reports, for exercising the
// control driver's interruption path.
func (h *Host) SetInterrupted(v bool) { h.interrupted = v }

// AdvanceClock moves the virtual wall clock and tick counter forward by
// ms milliseconds, without touching real time.
func (h *Host) AdvanceClock(ms int64) {
	h.ticks += ms
	h.elapsed += ms
	h.wallSeconds = h.ticks / 1000
}

// Grid

func (h *Host) Goto(x, y int) {}
func (h *Host) Cell(x, y int) byte {
	return 0
}
func (h *Host) Put(s string) { h.Output.WriteString(s) }
func (h *Host) SetFore(c int) {
	if c < 0 || c > 7 {
		return
	}
	h.fg = c
}
func (h *Host) SetBack(c int) {
	if c < 0 || c > 7 {
		return
	}
	h.bg = c
}
func (h *Host) SetAttr(a int) {
	if a < 0 || a > 2 {
		return
	}
	h.attr = a
}
func (h *Host) Size() (int, int) { return h.width, h.height }
func (h *Host) Clear()           { h.Output.Reset() }

// Keyboard

func (h *Host) ReadLine() (string, error) {
	if len(h.lines) == 0 {
		return "", nil
	}
	line := h.lines[0]
	h.lines = h.lines[1:]
	return line, nil
}

func (h *Host) PollKey() int {
	if len(h.keys) == 0 {
		return 0
	}
	k := h.keys[0]
	h.keys = h.keys[1:]
	return k
}

// Pixel

func (h *Host) Open(w, hgt int) error {
	h.pixelW, h.pixelH = w, hgt
	h.Ops = append(h.Ops, "open")
	return nil
}
func (h *Host) SetPen(r, g, b int)   { h.penR, h.penG, h.penB = r, g, b }
func (h *Host) SetBrush(r, g, b int) { h.brR, h.brG, h.brB = r, g, b }
func (h *Host) Pixel(x, y int)       { h.Ops = append(h.Ops, "pixel") }
func (h *Host) Line(x0, y0, x1, y1 int) { h.Ops = append(h.Ops, "line") }
func (h *Host) Rect(x0, y0, x1, y1 int) { h.Ops = append(h.Ops, "rect") }
func (h *Host) FillRect(x0, y0, x1, y1 int) { h.Ops = append(h.Ops, "fillrect") }
func (h *Host) Circle(x, y, r int) { h.Ops = append(h.Ops, "circle") }
func (h *Host) FillCircle(x, y, r int) { h.Ops = append(h.Ops, "fillcircle") }
func (h *Host) Text(x, y int, s string) { h.Ops = append(h.Ops, "text:"+s) }
func (h *Host) Refresh() { h.Ops = append(h.Ops, "refresh") }

// Pointer / CellPointer

func (h *Host) SetPointer(x, y, buttons, click, drag int) {
	h.mx, h.my, h.mbuttons, h.mclick, h.mdrag = x, y, buttons, click, drag
}
func (h *Host) X() int       { return h.mx }
func (h *Host) Y() int       { return h.my }
func (h *Host) Buttons() int { return h.mbuttons }
func (h *Host) Click() int {
	c := h.mclick
	h.mclick = 0
	return c
}
func (h *Host) Drag() int { return h.mdrag }

func (h *Host) SetCellPointer(x, y, buttons, click, drag int) {
	h.cellX, h.cellY, h.cellButtons, h.cellClick, h.cellDrag = x, y, buttons, click, drag
}
func (h *Host) CellX() int       { return h.cellX }
func (h *Host) CellY() int       { return h.cellY }
func (h *Host) CellButtons() int { return h.cellButtons }
func (h *Host) CellClick() int {
	c := h.cellClick
	h.cellClick = 0
	return c
}
func (h *Host) CellDrag() int { return h.cellDrag }

// Timer

func (h *Host) WallSeconds() int64 { return h.wallSeconds }
func (h *Host) Ticks() int64       { return h.ticks }
func (h *Host) Elapsed() int64 {
	d := h.elapsed
	h.elapsed = 0
	return d
}

// Interrupted

func (h *Host) Interrupted() bool { return h.interrupted }

var _ host.Host = (*Host)(nil)
