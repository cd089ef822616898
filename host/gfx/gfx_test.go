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

package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampByteClampsRange(t *testing.T) {
	assert.Equal(t, uint8(0), clampByte(-10))
	assert.Equal(t, uint8(255), clampByte(300))
	assert.Equal(t, uint8(128), clampByte(128))
}

func TestClampColorBuildsOpaqueRGBA(t *testing.T) {
	c := clampColor(10, 20, 300)
	assert.Equal(t, uint8(10), c.R)
	assert.Equal(t, uint8(20), c.G)
	assert.Equal(t, uint8(255), c.B)
	assert.Equal(t, uint8(255), c.A)
}

func TestSurfaceDrawingNoOpBeforeOpen(t *testing.T) {
	s := New()
	assert.NotPanics(t, func() {
		s.Pixel(1, 1)
		s.Line(0, 0, 1, 1)
		s.Rect(0, 0, 1, 1)
		s.FillRect(0, 0, 1, 1)
		s.Circle(0, 0, 1)
		s.FillCircle(0, 0, 1)
		s.Text(0, 0, "hi")
		s.Clear()
		s.Refresh()
	})
}

func TestSurfacePointerZeroBeforeOpen(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.X())
	assert.Equal(t, 0, s.Y())
	assert.Equal(t, 0, s.Buttons())
	assert.Equal(t, 0, s.Click())
	assert.Equal(t, 0, s.Drag())
}

func TestSurfaceSetPenAndBrushClamp(t *testing.T) {
	s := New()
	s.SetPen(-1, 999, 128)
	assert.Equal(t, uint8(0), s.pen.R)
	assert.Equal(t, uint8(255), s.pen.G)
	assert.Equal(t, uint8(128), s.pen.B)

	s.SetBrush(1, 2, 3)
	assert.Equal(t, uint8(1), s.brush.R)
}
