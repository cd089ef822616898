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

package host

import "time"

// Null is a Host that answers every query with the documented zero value
// and discards every drawing/writing operation. It lets the engine run
// headless, and is embedded by host/term's Grid and host/gfx's Surface so
// each only overrides the capabilities it provides.
type Null struct {
	start time.Time
	last  time.Time
}

// NewNull returns a ready-to-use Null host with its clocks anchored to
// now.
func NewNull() *Null {
	now := time.Now()
	return &Null{start: now, last: now}
}

func (n *Null) Goto(x, y int)       {}
func (n *Null) Cell(x, y int) byte  { return 0 }
func (n *Null) Put(s string)        {}
func (n *Null) SetFore(c int)       {}
func (n *Null) SetBack(c int)       {}
func (n *Null) SetAttr(a int)       {}
func (n *Null) Size() (int, int)    { return 0, 0 }
func (n *Null) Clear()              {}

func (n *Null) ReadLine() (string, error) { return "", nil }
func (n *Null) PollKey() int               { return 0 }

func (n *Null) Open(w, h int) error          { return nil }
func (n *Null) SetPen(r, g, b int)           {}
func (n *Null) SetBrush(r, g, b int)         {}
func (n *Null) Pixel(x, y int)               {}
func (n *Null) Line(x0, y0, x1, y1 int)      {}
func (n *Null) Rect(x0, y0, x1, y1 int)      {}
func (n *Null) FillRect(x0, y0, x1, y1 int)  {}
func (n *Null) Circle(x, y, r int)           {}
func (n *Null) FillCircle(x, y, r int)       {}
func (n *Null) Text(x, y int, s string)      {}
func (n *Null) Refresh()                     {}

func (n *Null) X() int       { return 0 }
func (n *Null) Y() int       { return 0 }
func (n *Null) Buttons() int { return 0 }
func (n *Null) Click() int   { return 0 }
func (n *Null) Drag() int    { return 0 }

func (n *Null) CellX() int       { return 0 }
func (n *Null) CellY() int       { return 0 }
func (n *Null) CellButtons() int { return 0 }
func (n *Null) CellClick() int   { return 0 }
func (n *Null) CellDrag() int    { return 0 }

func (n *Null) WallSeconds() int64 { return time.Now().Unix() }

func (n *Null) Ticks() int64 {
	return time.Since(n.start).Milliseconds()
}

func (n *Null) Elapsed() int64 {
	now := time.Now()
	d := now.Sub(n.last).Milliseconds()
	n.last = now
	return d
}

func (n *Null) Interrupted() bool { return false }

var _ Host = (*Null)(nil)
