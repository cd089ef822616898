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

package engine

// hostFn is a table-dispatched host builtin: same shape as mathFn, but
// closes over the Engine so it can reach e.host.
type hostFn func(e *Engine, args []Value) Value

func strArg(args []Value, i int) string {
	if i >= len(args) {
		return ""
	}
	return args[i].ToString()
}

var hostBuiltins = map[string]hostFn{
	// character grid (host.Grid)
	"gotoxy": func(e *Engine, a []Value) Value {
		e.host.Goto(int(arg(a, 0)), int(arg(a, 1)))
		return Num(0)
	},
	"putch": func(e *Engine, a []Value) Value {
		e.host.Put(strArg(a, 0))
		return Num(0)
	},
	"getch": func(e *Engine, a []Value) Value {
		return Num(float64(e.host.Cell(int(arg(a, 0)), int(arg(a, 1)))))
	},
	"setfore": func(e *Engine, a []Value) Value {
		e.host.SetFore(int(arg(a, 0)))
		return Num(0)
	},
	"setback": func(e *Engine, a []Value) Value {
		e.host.SetBack(int(arg(a, 0)))
		return Num(0)
	},
	"setattr": func(e *Engine, a []Value) Value {
		e.host.SetAttr(int(arg(a, 0)))
		return Num(0)
	},
	"getw": func(e *Engine, a []Value) Value {
		w, _ := e.host.Size()
		return Num(float64(w))
	},
	"geth": func(e *Engine, a []Value) Value {
		_, h := e.host.Size()
		return Num(float64(h))
	},
	"clear": func(e *Engine, a []Value) Value {
		e.host.Clear()
		return Num(0)
	},

	// pixel surface (host.Pixel)
	"gopen": func(e *Engine, a []Value) Value {
		if err := e.host.Open(int(arg(a, 0)), int(arg(a, 1))); err != nil {
			e.log.Emit(diagKindHost, e.line, "gopen: "+err.Error())
			return Num(-1)
		}
		return Num(0)
	},
	"gclear": func(e *Engine, a []Value) Value {
		e.host.Clear()
		return Num(0)
	},
	"gpen": func(e *Engine, a []Value) Value {
		e.host.SetPen(int(arg(a, 0)), int(arg(a, 1)), int(arg(a, 2)))
		return Num(0)
	},
	"gbr": func(e *Engine, a []Value) Value {
		e.host.SetBrush(int(arg(a, 0)), int(arg(a, 1)), int(arg(a, 2)))
		return Num(0)
	},
	"gpixel": func(e *Engine, a []Value) Value {
		e.host.Pixel(int(arg(a, 0)), int(arg(a, 1)))
		return Num(0)
	},
	"gline": func(e *Engine, a []Value) Value {
		e.host.Line(int(arg(a, 0)), int(arg(a, 1)), int(arg(a, 2)), int(arg(a, 3)))
		return Num(0)
	},
	"grect": func(e *Engine, a []Value) Value {
		e.host.Rect(int(arg(a, 0)), int(arg(a, 1)), int(arg(a, 2)), int(arg(a, 3)))
		return Num(0)
	},
	"gfillrect": func(e *Engine, a []Value) Value {
		e.host.FillRect(int(arg(a, 0)), int(arg(a, 1)), int(arg(a, 2)), int(arg(a, 3)))
		return Num(0)
	},
	"gcircle": func(e *Engine, a []Value) Value {
		e.host.Circle(int(arg(a, 0)), int(arg(a, 1)), int(arg(a, 2)))
		return Num(0)
	},
	"gfillcircle": func(e *Engine, a []Value) Value {
		e.host.FillCircle(int(arg(a, 0)), int(arg(a, 1)), int(arg(a, 2)))
		return Num(0)
	},
	"gtext": func(e *Engine, a []Value) Value {
		e.host.Text(int(arg(a, 0)), int(arg(a, 1)), strArg(a, 2))
		return Num(0)
	},
	"grefresh": func(e *Engine, a []Value) Value {
		e.host.Refresh()
		return Num(0)
	},

	// pixel-space pointer (host.Pointer)
	"gmx":     func(e *Engine, a []Value) Value { return Num(float64(e.host.X())) },
	"gmy":     func(e *Engine, a []Value) Value { return Num(float64(e.host.Y())) },
	"gmb":     func(e *Engine, a []Value) Value { return Num(float64(e.host.Buttons())) },
	"gmclick": func(e *Engine, a []Value) Value { return Num(float64(e.host.Click())) },
	"gmdrag":  func(e *Engine, a []Value) Value { return Num(float64(e.host.Drag())) },

	// cell-space pointer (host.CellPointer)
	"tmx":     func(e *Engine, a []Value) Value { return Num(float64(e.host.CellX())) },
	"tmy":     func(e *Engine, a []Value) Value { return Num(float64(e.host.CellY())) },
	"tmb":     func(e *Engine, a []Value) Value { return Num(float64(e.host.CellButtons())) },
	"tmclick": func(e *Engine, a []Value) Value { return Num(float64(e.host.CellClick())) },
	"tmdrag":  func(e *Engine, a []Value) Value { return Num(float64(e.host.CellDrag())) },

	// timer (host.Timer)
	"time":    func(e *Engine, a []Value) Value { return Num(float64(e.host.WallSeconds())) },
	"ticks":   func(e *Engine, a []Value) Value { return Num(float64(e.host.Ticks())) },
	"elapsed": func(e *Engine, a []Value) Value { return Num(float64(e.host.Elapsed())) },
}

// callBuiltin resolves name against the math and host builtin tables, in
// that order, and returns 0 with a diagnostic for anything unrecognized
// (spec.md 4.3's lowercase-identifier primary).
func (e *Engine) callBuiltin(name string, args []Value) Value {
	if fn, ok := mathBuiltins[name]; ok {
		return fn(args)
	}
	if fn, ok := hostBuiltins[name]; ok {
		return fn(e, args)
	}
	e.log.Emit(diagKindParse, e.line, "unknown builtin: "+name)
	return Num(0)
}
