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

import "math"

// mathFn is a table-dispatched math builtin, mirroring the teacher's
// opcode-table pairing (vm/opcodes.go): one map from name to function,
// no per-builtin switch case scattered through the evaluator.
type mathFn func(args []Value) Value

func arg(args []Value, i int) float64 {
	if i >= len(args) {
		return 0
	}
	return args[i].ToNumber()
}

var mathBuiltins = map[string]mathFn{
	"sin":   func(a []Value) Value { return Num(math.Sin(arg(a, 0))) },
	"cos":   func(a []Value) Value { return Num(math.Cos(arg(a, 0))) },
	"tan":   func(a []Value) Value { return Num(math.Tan(arg(a, 0))) },
	"asin":  func(a []Value) Value { return Num(math.Asin(arg(a, 0))) },
	"acos":  func(a []Value) Value { return Num(math.Acos(arg(a, 0))) },
	"atan":  func(a []Value) Value { return Num(math.Atan(arg(a, 0))) },
	"atan2": func(a []Value) Value { return Num(math.Atan2(arg(a, 0), arg(a, 1))) },
	"sinh":  func(a []Value) Value { return Num(math.Sinh(arg(a, 0))) },
	"cosh":  func(a []Value) Value { return Num(math.Cosh(arg(a, 0))) },
	"tanh":  func(a []Value) Value { return Num(math.Tanh(arg(a, 0))) },
	"exp":   func(a []Value) Value { return Num(math.Exp(arg(a, 0))) },
	"log":   func(a []Value) Value { return Num(math.Log(arg(a, 0))) },
	"log2":  func(a []Value) Value { return Num(math.Log2(arg(a, 0))) },
	"log10": func(a []Value) Value { return Num(math.Log10(arg(a, 0))) },
	"sqrt":  func(a []Value) Value { return Num(math.Sqrt(arg(a, 0))) },
	"cbrt":  func(a []Value) Value { return Num(math.Cbrt(arg(a, 0))) },
	"pow":   func(a []Value) Value { return Num(math.Pow(arg(a, 0), arg(a, 1))) },
	"ceil":  func(a []Value) Value { return Num(math.Ceil(arg(a, 0))) },
	"floor": func(a []Value) Value { return Num(math.Floor(arg(a, 0))) },
	"round": func(a []Value) Value { return Num(math.Round(arg(a, 0))) },
	"trunc": func(a []Value) Value { return Num(math.Trunc(arg(a, 0))) },
	"abs":   func(a []Value) Value { return Num(math.Abs(arg(a, 0))) },
	"fabs":  func(a []Value) Value { return Num(math.Abs(arg(a, 0))) },
	"sign": func(a []Value) Value {
		v := arg(a, 0)
		switch {
		case v > 0:
			return Num(1)
		case v < 0:
			return Num(-1)
		default:
			return Num(0)
		}
	},
	"fmod":   func(a []Value) Value { return Num(math.Mod(arg(a, 0), arg(a, 1))) },
	"hypot":  func(a []Value) Value { return Num(math.Hypot(arg(a, 0), arg(a, 1))) },
	"max":    func(a []Value) Value { return Num(math.Max(arg(a, 0), arg(a, 1))) },
	"min":    func(a []Value) Value { return Num(math.Min(arg(a, 0), arg(a, 1))) },
	"pi": func(a []Value) Value { return Num(math.Pi) },
	"e":  func(a []Value) Value { return Num(math.E) },
}
