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

// Package gfx implements host.Pixel and host.Pointer over an Ebiten
// window (-gfx mode, cmd/itl): drawing calls are buffered into an
// in-memory image that Ebiten's Draw callback blits to the window every
// frame, so repaint is implicit and Refresh does nothing.
package gfx

import (
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/YouDevIt/itl/host"
)

// Surface is a host.Pixel + host.Pointer backed by an Ebiten game loop
// running on its own goroutine. The engine goroutine only ever touches
// the buffered image through the mutex; Ebiten's Update/Draw callbacks
// read the same image under the same lock.
type Surface struct {
	host.Null

	mu  sync.Mutex
	img *ebiten.Image
	w, h int

	pen, brush color.RGBA

	mx, my, buttons, click, drag int

	started bool
}

// New returns a Surface not yet backed by a window; Open starts the
// Ebiten loop.
func New() *Surface {
	return &Surface{pen: color.RGBA{255, 255, 255, 255}, brush: color.RGBA{0, 0, 0, 255}}
}

// Open starts an Ebiten window of size w x h and begins running its
// event loop on a dedicated goroutine.
func (s *Surface) Open(w, h int) error {
	s.mu.Lock()
	s.w, s.h = w, h
	s.img = ebiten.NewImage(w, h)
	s.started = true
	s.mu.Unlock()

	go func() {
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle("itl")
		ebiten.RunGame(&game{s: s})
	}()
	return nil
}

func (s *Surface) SetPen(r, g, b int)   { s.pen = clampColor(r, g, b) }
func (s *Surface) SetBrush(r, g, b int) { s.brush = clampColor(r, g, b) }

func clampColor(r, g, b int) color.RGBA {
	return color.RGBA{clampByte(r), clampByte(g), clampByte(b), 255}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img != nil {
		s.img.Clear()
	}
}

func (s *Surface) Pixel(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img != nil {
		s.img.Set(x, y, s.pen)
	}
}

func (s *Surface) Line(x0, y0, x1, y1 int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		return
	}
	drawLine(s.img, x0, y0, x1, y1, s.pen)
}

func (s *Surface) Rect(x0, y0, x1, y1 int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		return
	}
	drawLine(s.img, x0, y0, x1, y0, s.pen)
	drawLine(s.img, x1, y0, x1, y1, s.pen)
	drawLine(s.img, x1, y1, x0, y1, s.pen)
	drawLine(s.img, x0, y1, x0, y0, s.pen)
}

func (s *Surface) FillRect(x0, y0, x1, y1 int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		return
	}
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.img.Set(x, y, s.brush)
		}
	}
}

func (s *Surface) Circle(x, y, r int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		return
	}
	drawCircle(s.img, x, y, r, s.pen, false)
}

func (s *Surface) FillCircle(x, y, r int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		return
	}
	drawCircle(s.img, x, y, r, s.brush, true)
}

func (s *Surface) Text(x, y int, str string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		return
	}
	ebitenutil.DebugPrintAt(s.img, str, x, y)
}

// Refresh is a no-op: Surface's buffer is the same image Ebiten's Draw
// callback blits every frame, so there is nothing to flush explicitly.
// It exists to satisfy host.Pixel and to mark the program's intended
// "force repaint" points for a future double-buffered implementation.
func (s *Surface) Refresh() {}

func (s *Surface) X() int       { return s.getMouse().x }
func (s *Surface) Y() int       { return s.getMouse().y }
func (s *Surface) Buttons() int { return s.getMouse().buttons }
func (s *Surface) Click() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.click
	s.click = 0
	return c
}
func (s *Surface) Drag() int { return s.getMouse().drag }

type mouseState struct{ x, y, buttons, drag int }

func (s *Surface) getMouse() mouseState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mouseState{s.mx, s.my, s.buttons, s.drag}
}

// game adapts Surface to ebiten.Game.
type game struct {
	s *Surface
}

func (g *game) Update() error {
	x, y := ebiten.CursorPosition()
	g.s.mu.Lock()
	g.s.mx, g.s.my = x, y
	buttons := 0
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		buttons |= host.ButtonLeft
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		buttons |= host.ButtonRight
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		buttons |= host.ButtonMiddle
	}
	if buttons != 0 && g.s.buttons == 0 {
		g.s.click = buttons
	}
	if buttons != 0 {
		g.s.drag = buttons
	} else {
		g.s.drag = 0
	}
	g.s.buttons = buttons
	g.s.mu.Unlock()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	if g.s.img != nil {
		screen.DrawImage(g.s.img, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	return g.s.w, g.s.h
}

// drawLine implements Bresenham's algorithm over img.Set, since Ebiten
// has no stroked-line primitive of its own.
func drawLine(img *ebiten.Image, x0, y0, x1, y1 int, c color.RGBA) {
	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawCircle implements the midpoint circle algorithm, outline or
// filled (via horizontal scanline fill between octant points).
func drawCircle(img *ebiten.Image, cx, cy, r int, c color.RGBA, fill bool) {
	x, y, d := r, 0, 1-r
	plot := func(x, y int) {
		if fill {
			drawLine(img, cx-x, cy+y, cx+x, cy+y, c)
			drawLine(img, cx-x, cy-y, cx+x, cy-y, c)
			drawLine(img, cx-y, cy+x, cx+y, cy+x, c)
			drawLine(img, cx-y, cy-x, cx+y, cy-x, c)
			return
		}
		img.Set(cx+x, cy+y, c)
		img.Set(cx-x, cy+y, c)
		img.Set(cx+x, cy-y, c)
		img.Set(cx-x, cy-y, c)
		img.Set(cx+y, cy+x, c)
		img.Set(cx-y, cy+x, c)
		img.Set(cx+y, cy-x, c)
		img.Set(cx-y, cy-x, c)
	}
	for x >= y {
		plot(x, y)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

var _ host.Host = (*Surface)(nil)
