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
	"os"

	"github.com/YouDevIt/itl/host"
)

// Host composes the VT100 Grid, a raw-stdin Keyboard and a SIGINT
// Interrupt into a full host.Host; the pixel and pointer halves are
// inherited as no-ops from Grid's embedded host.Null, since a plain
// terminal has neither.
type Host struct {
	*Grid
	*Keyboard
	*Interrupt
}

// New wires stdin/stdout as a VT100 terminal, optionally switching the
// terminal to raw mode. teardown restores cooked mode and stops the
// signal handler; call it before the process exits.
func New(rawIO bool) (h *Host, teardown func(), err error) {
	var restoreTTY func()
	if rawIO {
		restoreTTY, err = setRawIO()
		if err != nil {
			restoreTTY = nil
		}
	}
	g := NewGrid(os.Stdout, consoleSize(os.Stdout))
	kbd := NewKeyboard(os.Stdin)
	in := NewInterrupt()
	h = &Host{Grid: g, Keyboard: kbd, Interrupt: in}
	teardown = func() {
		g.Flush()
		if restoreTTY != nil {
			restoreTTY()
		}
		in.Stop()
	}
	return h, teardown, nil
}

var _ host.Host = (*Host)(nil)
