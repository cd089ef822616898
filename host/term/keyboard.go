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
)

// Keyboard pumps raw bytes from a terminal's stdin into a non-blocking
// poll queue and a line-buffered blocking reader, mirroring the
// teacher's split between port1Handler's raw-byte interception
// (cmd/retro/main.go) and the standard bufio line path.
type Keyboard struct {
	r     *bufio.Reader
	queue chan int
}

// NewKeyboard wraps r in a buffered reader with a polling queue of depth
// 256. No background reader is started: bytes reach the queue only
// through Pump.
func NewKeyboard(r io.Reader) *Keyboard {
	k := &Keyboard{r: bufio.NewReader(r), queue: make(chan int, 256)}
	return k
}

// PollKey returns the next queued key code, or 0 if none is available.
// Keys arrive in the queue only through Pump; ReadLine does not feed it.
func (k *Keyboard) PollKey() int {
	select {
	case c := <-k.queue:
		return c
	default:
		return 0
	}
}

// Pump reads whatever is immediately available from the underlying
// reader without blocking past what's buffered, feeding PollKey's
// queue. Callers in raw-tty mode invoke this once per event-loop tick.
func (k *Keyboard) Pump() {
	for k.r.Buffered() > 0 {
		b, err := k.r.ReadByte()
		if err != nil {
			return
		}
		select {
		case k.queue <- int(b):
		default:
			return
		}
	}
}

// ReadLine blocks for one newline-terminated line of input, stripping
// the trailing newline (and a preceding carriage return, for raw
// terminals that still deliver CRLF).
func (k *Keyboard) ReadLine() (string, error) {
	line, err := k.r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}
