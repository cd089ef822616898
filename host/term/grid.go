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

package term

import (
	"bufio"
	"io"
	"strconv"

	"github.com/YouDevIt/itl/host"
)

// Grid is a VT100 character-cell surface: writes emit escape sequences
// to an underlying writer (mirroring the teacher's vt100Terminal,
// vm/io_helpers.go), and a local byte buffer mirrors what was written so
// Cell reads can answer without round-tripping through the terminal.
type Grid struct {
	host.Null // pixel/pointer halves are no-ops on a plain terminal

	w    *bufio.Writer
	size func() (int, int)

	buf        [][]byte
	cx, cy     int
	fg, bg, at int
}

// NewGrid returns a Grid writing VT100 escapes to w, using size to query
// the terminal's current width/height in cells.
func NewGrid(w io.Writer, size func() (int, int)) *Grid {
	return &Grid{Null: *host.NewNull(), w: bufio.NewWriter(w), size: size}
}

// Flush pushes buffered escape sequences out, mirroring the teacher's
// explicit Flush step (vm/io_helpers.go's vt100Terminal.Flush).
func (g *Grid) Flush() error { return g.w.Flush() }

func (g *Grid) ensureRow(y int) {
	for len(g.buf) <= y {
		g.buf = append(g.buf, nil)
	}
}

func (g *Grid) ensureCell(x, y int) {
	g.ensureRow(y)
	row := g.buf[y]
	for len(row) <= x {
		row = append(row, ' ')
	}
	g.buf[y] = row
}

// Goto moves the write cursor to (x, y), 0-based.
func (g *Grid) Goto(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	g.cx, g.cy = x, y
	g.w.WriteString("\033[" + strconv.Itoa(y+1) + ";" + strconv.Itoa(x+1) + "H")
}

// Cell returns the byte last written at (x, y). An unwritten position to
// the left of a written byte on the same row reads as a space; any other
// unwritten position reads as 0.
func (g *Grid) Cell(x, y int) byte {
	if x < 0 || y < 0 || y >= len(g.buf) || x >= len(g.buf[y]) {
		return 0
	}
	return g.buf[y][x]
}

// Put writes s starting at the cursor, advancing it and wrapping at the
// grid width the way a real terminal does.
func (g *Grid) Put(s string) {
	w, _ := g.size()
	g.w.WriteString(s)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\n' {
			g.cx, g.cy = 0, g.cy+1
			continue
		}
		g.ensureCell(g.cx, g.cy)
		g.buf[g.cy][g.cx] = c
		g.cx++
		if w > 0 && g.cx >= w {
			g.cx, g.cy = 0, g.cy+1
		}
	}
}

// SetFore sets the foreground color (0..7, SGR 30+c). Out-of-range
// values are rejected silently (spec.md 6).
func (g *Grid) SetFore(c int) {
	if c < 0 || c > 7 {
		return
	}
	g.fg = c
	g.w.WriteString("\033[3" + strconv.Itoa(c) + "m")
}

// SetBack sets the background color (0..7, SGR 40+c).
func (g *Grid) SetBack(c int) {
	if c < 0 || c > 7 {
		return
	}
	g.bg = c
	g.w.WriteString("\033[4" + strconv.Itoa(c) + "m")
}

// SetAttr sets the text attribute: 0 normal, 1 bold, 2 reverse.
func (g *Grid) SetAttr(a int) {
	switch a {
	case 0:
		g.w.WriteString("\033[0m")
	case 1:
		g.w.WriteString("\033[1m")
	case 2:
		g.w.WriteString("\033[7m")
	default:
		return
	}
	g.at = a
}

// Size returns the grid's width and height in cells.
func (g *Grid) Size() (w, h int) {
	if g.size == nil {
		return 0, 0
	}
	return g.size()
}

// Clear erases the grid and homes the cursor.
func (g *Grid) Clear() {
	g.w.WriteString("\033[2J\033[1;1H")
	g.buf = nil
	g.cx, g.cy = 0, 0
}
