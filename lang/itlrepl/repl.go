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

package itlrepl

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/YouDevIt/itl/engine"
)

// Repl holds the REPL-only state layered on top of an engine.Engine:
// where echoed assignments and meta-command output go, and whether the
// user has asked to exit. Construct with New, then wire AssignHook,
// ArrayHook and Dispatch into engine.New's options before assigning the
// resulting Engine to the Repl field (the hooks are closures over the
// Repl, not the Engine, so the ordering is safe).
type Repl struct {
	Engine *engine.Engine
	out    io.Writer
	Quit   bool
}

// New returns a Repl writing meta-command and echo output to out.
func New(out io.Writer) *Repl {
	return &Repl{out: out}
}

// AssignHook implements engine.AssignHook: "< X = value" (spec.md 6).
func (r *Repl) AssignHook(cell byte, v engine.Value) {
	fmt.Fprintf(r.out, "< %c = %s\n", cell, quoteIfString(v))
}

// ArrayHook implements engine.ArrayHook: "< @idx = num".
func (r *Repl) ArrayHook(idx int, v float64) {
	fmt.Fprintf(r.out, "< @%d = %s\n", idx, engine.Num(v).ToString())
}

func quoteIfString(v engine.Value) string {
	if v.Kind == engine.String {
		return strconv.Quote(v.Str)
	}
	return v.ToString()
}

// Dispatch implements engine.MetaHook: the ":command args" family
// (spec.md 6). Unknown commands print a message and leave state alone.
func (r *Repl) Dispatch(body string) {
	fields := strings.Fields(body)
	if len(fields) == 0 {
		fmt.Fprintln(r.out, "empty command")
		return
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		r.help()
	case "syntax":
		r.syntax()
	case "screen":
		r.screen()
	case "vars":
		r.vars()
	case "array":
		r.array()
	case "lines":
		r.lines()
	case "clear":
		r.Engine.Reset()
		fmt.Fprintln(r.out, "variables and array cleared")
	case "reset":
		r.Engine.FullReset()
		fmt.Fprintln(r.out, "environment and program reset")
	case "debug":
		if len(args) == 0 {
			fmt.Fprintln(r.out, "usage: :debug V")
			return
		}
		r.debug(args[0][0])
	case "exit", "quit":
		r.Quit = true
	default:
		fmt.Fprintf(r.out, "unknown command: %s\n", cmd)
	}
}

func (r *Repl) help() {
	fmt.Fprintln(r.out, "commands: help syntax screen vars array lines clear reset debug V exit quit")
}

func (r *Repl) syntax() {
	fmt.Fprintln(r.out, "V=expr | V op expr | V expr | #=expr (jump) | ?expr (print) | base@idx=expr (array write)")
}

func (r *Repl) screen() {
	w, h := r.Engine.Host().Size()
	fmt.Fprintf(r.out, "screen: %dx%d\n", w, h)
}

func (r *Repl) vars() {
	for c := byte('A'); c <= 'Z'; c++ {
		v := r.Engine.Get(c)
		if !v.IsUndefined() {
			fmt.Fprintf(r.out, "%c = %s\n", c, quoteIfString(v))
		}
	}
	if v := r.Engine.Get('_'); !v.IsUndefined() {
		fmt.Fprintf(r.out, "_ = %s\n", quoteIfString(v))
	}
}

func (r *Repl) array() {
	n := r.Engine.ArrayLen()
	shown := n
	if shown > 20 {
		shown = 20
	}
	for i := 0; i < shown; i++ {
		fmt.Fprintf(r.out, "@%d = %g\n", i, r.Engine.ArrayGet(i))
	}
	fmt.Fprintf(r.out, "(%d elements total)\n", n)
}

func (r *Repl) lines() {
	n := r.Engine.Program.Len()
	shown := n
	if shown > 50 {
		shown = 50
	}
	for i := 1; i <= shown; i++ {
		fmt.Fprintf(r.out, "%4d: %s\n", i, r.Engine.Program.Segment(i))
	}
	fmt.Fprintf(r.out, "(%d segments total)\n", n)
}

// debug prints a cell's raw bytes in ASCII/hex/decimal, in the spirit of
// the teacher's lang/retro/dump.go memory dump: one compact line per
// representation instead of a structured record.
func (r *Repl) debug(cell byte) {
	v := r.Engine.Get(cell)
	switch v.Kind {
	case engine.String:
		fmt.Fprintf(r.out, "%c: string, %d bytes\n", cell, len(v.Str))
		fmt.Fprintf(r.out, "  ascii: %q\n", v.Str)
		hex := make([]byte, 0, len(v.Str)*3)
		for i := 0; i < len(v.Str); i++ {
			hex = append(hex, fmt.Sprintf("%02x ", v.Str[i])...)
		}
		fmt.Fprintf(r.out, "  hex:   %s\n", hex)
		dec := make([]byte, 0, len(v.Str)*4)
		for i := 0; i < len(v.Str); i++ {
			dec = append(dec, fmt.Sprintf("%d ", v.Str[i])...)
		}
		fmt.Fprintf(r.out, "  dec:   %s\n", dec)
	case engine.Number:
		fmt.Fprintf(r.out, "%c: number\n", cell)
		fmt.Fprintf(r.out, "  decimal: %v\n", v.Num)
		fmt.Fprintf(r.out, "  hex:     %016x\n", math.Float64bits(v.Num))
	default:
		fmt.Fprintf(r.out, "%c: undefined\n", cell)
	}
}
