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

package term_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YouDevIt/itl/host/term"
)

func fixedSize(w, h int) func() (int, int) {
	return func() (int, int) { return w, h }
}

func TestGridPutTracksCellContents(t *testing.T) {
	var buf bytes.Buffer
	g := term.NewGrid(&buf, fixedSize(80, 24))
	g.Put("hi")
	assert.Equal(t, byte('h'), g.Cell(0, 0))
	assert.Equal(t, byte('i'), g.Cell(1, 0))
	assert.NoError(t, g.Flush())
	assert.Contains(t, buf.String(), "hi")
}

func TestGridPutWrapsAtWidth(t *testing.T) {
	var buf bytes.Buffer
	g := term.NewGrid(&buf, fixedSize(3, 24))
	g.Put("abcd")
	assert.Equal(t, byte('a'), g.Cell(0, 0))
	assert.Equal(t, byte('c'), g.Cell(2, 0))
	assert.Equal(t, byte('d'), g.Cell(0, 1))
}

func TestGridPutHandlesNewline(t *testing.T) {
	var buf bytes.Buffer
	g := term.NewGrid(&buf, fixedSize(80, 24))
	g.Put("a\nb")
	assert.Equal(t, byte('a'), g.Cell(0, 0))
	assert.Equal(t, byte('b'), g.Cell(0, 1))
}

func TestGridCellOutOfRangeReturnsZero(t *testing.T) {
	var buf bytes.Buffer
	g := term.NewGrid(&buf, fixedSize(80, 24))
	assert.Equal(t, byte(0), g.Cell(5, 5))
	assert.Equal(t, byte(0), g.Cell(-1, 0))
}

func TestGridSetForeRejectsOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	g := term.NewGrid(&buf, fixedSize(80, 24))
	g.SetFore(8)
	g.Flush()
	assert.Empty(t, buf.String())
}

func TestGridSetForeEmitsEscapeInRange(t *testing.T) {
	var buf bytes.Buffer
	g := term.NewGrid(&buf, fixedSize(80, 24))
	g.SetFore(3)
	g.Flush()
	assert.Equal(t, "\033[33m", buf.String())
}

func TestGridClearResetsCursorAndBuffer(t *testing.T) {
	var buf bytes.Buffer
	g := term.NewGrid(&buf, fixedSize(80, 24))
	g.Put("x")
	g.Clear()
	assert.Equal(t, byte(0), g.Cell(0, 0))
}

func TestGridSizeDelegatesToFunc(t *testing.T) {
	var buf bytes.Buffer
	g := term.NewGrid(&buf, fixedSize(132, 43))
	w, h := g.Size()
	assert.Equal(t, 132, w)
	assert.Equal(t, 43, h)
}
