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

package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YouDevIt/itl/engine"
	"github.com/YouDevIt/itl/host/mock"
)

func runProgram(t *testing.T, src string) (*engine.Engine, *mock.Host) {
	t.Helper()
	h := mock.New(80, 24)
	e := engine.New(engine.WithHost(h))
	e.Load(src)
	require.NoError(t, e.Run(context.Background()))
	return e, h
}

func TestHelloWorld(t *testing.T) {
	_, h := runProgram(t, `?"Hello, World!\n"`)
	assert.Equal(t, "Hello, World!\n", h.Output.String())
}

func TestLoopOneToTen(t *testing.T) {
	src := "N=1\n?N+\"\\n\"\nN+1\n#=(N<11)*2"
	_, h := runProgram(t, src)
	assert.Equal(t, "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n", h.Output.String())
}

func TestFibonacciUnder1000(t *testing.T) {
	src := "A=0\nB=1\n?A+\"\\n\"\n_=A+B\nA=B\nB=_\n#=(A<1000)*3"
	_, h := runProgram(t, src)
	assert.Equal(t, "0\n1\n1\n2\n3\n5\n8\n13\n21\n34\n55\n89\n144\n233\n377\n610\n987\n", h.Output.String())
}

func TestParenBlockComparisonVsAssignment(t *testing.T) {
	h := mock.New(80, 24)
	e := engine.New(engine.WithHost(h))

	e.Set('A', engine.Num(5))
	assert.Equal(t, engine.Num(1), e.Eval("(A=5)"))
	assert.Equal(t, engine.Num(5), e.Get('A'), "comparison form must not mutate A")

	assert.Equal(t, engine.Num(7), e.Eval("(A=7;)"))
	assert.Equal(t, engine.Num(7), e.Get('A'), "assignment form (separator follows) must mutate A")
}

func TestForwardReference(t *testing.T) {
	src := "?X+\"\\n\"\nX=42"
	_, h := runProgram(t, src)
	assert.Equal(t, "42\n", h.Output.String())
}

func TestSelfReferentialShorthand(t *testing.T) {
	h := mock.New(80, 24)
	e := engine.New(engine.WithHost(h))
	e.Set('A', engine.Num(3))
	e.Load("A*2")
	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, engine.Num(6), e.Get('A'))
}

func TestBareAssignmentUndefines(t *testing.T) {
	h := mock.New(80, 24)
	e := engine.New(engine.WithHost(h))
	e.Set('V', engine.Num(9))
	e.Load("V")
	require.NoError(t, e.Run(context.Background()))
	assert.True(t, e.Get('V').IsUndefined())
}

func TestUndefinedReadsAsZero(t *testing.T) {
	h := mock.New(80, 24)
	e := engine.New(engine.WithHost(h))
	e.Load("Q")
	v := e.Eval("Q")
	assert.Equal(t, float64(0), v.ToNumber())
	assert.Equal(t, "0", v.ToString())
}

func TestDivisionAndModuloByZero(t *testing.T) {
	h := mock.New(80, 24)
	e := engine.New(engine.WithHost(h))
	assert.Equal(t, float64(0), e.Eval("5/0").ToNumber())
	assert.Equal(t, float64(0), e.Eval("5%0").ToNumber())
}

func TestNegativeArrayIndexClamps(t *testing.T) {
	h := mock.New(80, 24)
	e := engine.New(engine.WithHost(h))
	e.ArraySet(-5, 42)
	assert.Equal(t, float64(42), e.ArrayGet(0))
	assert.Equal(t, float64(42), e.ArrayGet(-1))
}

func TestArrayWriteStatement(t *testing.T) {
	h := mock.New(80, 24)
	e := engine.New(engine.WithHost(h))
	e.Load("0@3=99")
	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, float64(99), e.ArrayGet(3))
	assert.Equal(t, 4, e.ArrayLen())
}

func TestJumpOutOfRangeTerminates(t *testing.T) {
	h := mock.New(80, 24)
	e := engine.New(engine.WithHost(h))
	e.Load("#=99\n?\"unreachable\"")
	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, "", h.Output.String())
}

func TestLeftToRightNoPrecedence(t *testing.T) {
	h := mock.New(80, 24)
	e := engine.New(engine.WithHost(h))
	assert.Equal(t, float64(9), e.Eval("1+2*3").ToNumber())
}

func TestStringConcatenation(t *testing.T) {
	h := mock.New(80, 24)
	e := engine.New(engine.WithHost(h))
	v := e.Eval(`"a"+"b"`)
	assert.Equal(t, "ab", v.ToString())
}

func TestTypeFlipRoundTrip(t *testing.T) {
	h := mock.New(80, 24)
	e := engine.New(engine.WithHost(h))
	e.Set('A', engine.Num(3.5))
	v := e.Eval("$$A")
	assert.Equal(t, 3.5, v.ToNumber())
}

func TestSeededRNGIsDeterministic(t *testing.T) {
	e1 := engine.New(engine.WithHost(mock.New(80, 24)))
	e1.Eval("'1234")
	first := e1.Eval("'").ToNumber()

	e2 := engine.New(engine.WithHost(mock.New(80, 24)))
	e2.Eval("'1234")
	second := e2.Eval("'").ToNumber()

	assert.Equal(t, first, second)
}

func TestMathBuiltin(t *testing.T) {
	h := mock.New(80, 24)
	e := engine.New(engine.WithHost(h))
	assert.Equal(t, float64(4), e.Eval("sqrt(16)").ToNumber())
	assert.Equal(t, float64(2), e.Eval("max(1,2)").ToNumber())
}

func TestUnknownBuiltinDiagnosesAndYieldsZero(t *testing.T) {
	h := mock.New(80, 24)
	e := engine.New(engine.WithHost(h))
	assert.Equal(t, float64(0), e.Eval("bogus(1)").ToNumber())
}

func TestArrayWriteWithVariableBasePrimaryIsDiscarded(t *testing.T) {
	h := mock.New(80, 24)
	e := engine.New(engine.WithHost(h))
	e.Set('A', engine.Num(999)) // base value, discarded
	e.Load("A@2=7")
	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, float64(7), e.ArrayGet(2))
	assert.Equal(t, float64(999), e.Get('A').ToNumber(), "base primary's own variable is untouched")
}

func TestForwardRefReentrancyGuardReturnsUndefined(t *testing.T) {
	src := "?X\nX=Y\nY=X"
	_, h := runProgram(t, src)
	assert.Equal(t, "0", h.Output.String())
}

func TestInterruptedHostStopsRun(t *testing.T) {
	h := mock.New(80, 24)
	h.SetInterrupted(true)
	e := engine.New(engine.WithHost(h))
	e.Load("?\"never\"")
	err := e.Run(context.Background())
	assert.ErrorIs(t, err, engine.ErrInterrupted)
	assert.Equal(t, "", h.Output.String())
}

func TestContextCancellationStopsRun(t *testing.T) {
	h := mock.New(80, 24)
	e := engine.New(engine.WithHost(h))
	e.Load("?\"never\"")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := e.Run(ctx)
	assert.Error(t, err)
	assert.Equal(t, "", h.Output.String())
}
