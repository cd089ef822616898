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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YouDevIt/itl/host/gfx"
	"github.com/YouDevIt/itl/host/term"
)

func newTestTermHost() *term.Host {
	var buf bytes.Buffer
	g := term.NewGrid(&buf, func() (int, int) { return 80, 24 })
	kbd := term.NewKeyboard(&buf)
	in := term.NewInterrupt()
	return &term.Host{Grid: g, Keyboard: kbd, Interrupt: in}
}

func TestCombinedHostWithoutGfxDelegatesToTermHost(t *testing.T) {
	th := newTestTermHost()
	defer th.Stop()
	h := newCombinedHost(th, nil)
	assert.NoError(t, h.Open(320, 200))
	assert.Equal(t, 0, h.X())
}

func TestCombinedHostWithGfxDelegatesToSurface(t *testing.T) {
	th := newTestTermHost()
	defer th.Stop()
	surface := gfx.New()
	h := newCombinedHost(th, surface)

	h.SetPen(10, 20, 30)
	h.Pixel(0, 0) // no-op before Open, but must not panic
	assert.Equal(t, 0, h.X())
}
