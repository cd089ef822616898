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

package main

import (
	"github.com/YouDevIt/itl/host/gfx"
	"github.com/YouDevIt/itl/host/term"
)

// combinedHost layers an optional gfx.Surface's pixel/pointer
// capabilities over a term.Host's grid/keyboard/timer/interrupt, so a
// program can use character output and -gfx pixel drawing in the same
// run. Without -gfx, it's just the term.Host's own no-op pixel half.
type combinedHost struct {
	*term.Host
	pixel *gfx.Surface
}

func newCombinedHost(t *term.Host, pixel *gfx.Surface) *combinedHost {
	return &combinedHost{Host: t, pixel: pixel}
}

func (h *combinedHost) Open(w, hgt int) error {
	if h.pixel != nil {
		return h.pixel.Open(w, hgt)
	}
	return h.Host.Open(w, hgt)
}
func (h *combinedHost) SetPen(r, g, b int) {
	if h.pixel != nil {
		h.pixel.SetPen(r, g, b)
		return
	}
	h.Host.SetPen(r, g, b)
}
func (h *combinedHost) SetBrush(r, g, b int) {
	if h.pixel != nil {
		h.pixel.SetBrush(r, g, b)
		return
	}
	h.Host.SetBrush(r, g, b)
}
func (h *combinedHost) Pixel(x, y int) {
	if h.pixel != nil {
		h.pixel.Pixel(x, y)
		return
	}
	h.Host.Pixel(x, y)
}
func (h *combinedHost) Line(x0, y0, x1, y1 int) {
	if h.pixel != nil {
		h.pixel.Line(x0, y0, x1, y1)
		return
	}
	h.Host.Line(x0, y0, x1, y1)
}
func (h *combinedHost) Rect(x0, y0, x1, y1 int) {
	if h.pixel != nil {
		h.pixel.Rect(x0, y0, x1, y1)
		return
	}
	h.Host.Rect(x0, y0, x1, y1)
}
func (h *combinedHost) FillRect(x0, y0, x1, y1 int) {
	if h.pixel != nil {
		h.pixel.FillRect(x0, y0, x1, y1)
		return
	}
	h.Host.FillRect(x0, y0, x1, y1)
}
func (h *combinedHost) Circle(x, y, r int) {
	if h.pixel != nil {
		h.pixel.Circle(x, y, r)
		return
	}
	h.Host.Circle(x, y, r)
}
func (h *combinedHost) FillCircle(x, y, r int) {
	if h.pixel != nil {
		h.pixel.FillCircle(x, y, r)
		return
	}
	h.Host.FillCircle(x, y, r)
}
func (h *combinedHost) Text(x, y int, s string) {
	if h.pixel != nil {
		h.pixel.Text(x, y, s)
		return
	}
	h.Host.Text(x, y, s)
}
func (h *combinedHost) Refresh() {
	if h.pixel != nil {
		h.pixel.Refresh()
		return
	}
	h.Host.Refresh()
}

func (h *combinedHost) X() int {
	if h.pixel != nil {
		return h.pixel.X()
	}
	return h.Host.X()
}
func (h *combinedHost) Y() int {
	if h.pixel != nil {
		return h.pixel.Y()
	}
	return h.Host.Y()
}
func (h *combinedHost) Buttons() int {
	if h.pixel != nil {
		return h.pixel.Buttons()
	}
	return h.Host.Buttons()
}
func (h *combinedHost) Click() int {
	if h.pixel != nil {
		return h.pixel.Click()
	}
	return h.Host.Click()
}
func (h *combinedHost) Drag() int {
	if h.pixel != nil {
		return h.pixel.Drag()
	}
	return h.Host.Drag()
}
