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

package diag_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YouDevIt/itl/internal/diag"
)

func TestEmitIncludesKindAndDetail(t *testing.T) {
	var buf bytes.Buffer
	l := diag.New(&buf, "sess-1")
	l.Emit(diag.KindArith, 5, "division by zero")

	out := buf.String()
	assert.Contains(t, out, `"kind":"arith"`)
	assert.Contains(t, out, `"detail":"division by zero"`)
	assert.Contains(t, out, `"segment":5`)
	assert.Contains(t, out, `"session":"sess-1"`)
}

func TestEmitOmitsSegmentWhenZero(t *testing.T) {
	var buf bytes.Buffer
	l := diag.New(&buf, "sess-1")
	l.Emit(diag.KindHost, 0, "no line context")
	assert.NotContains(t, buf.String(), `"segment"`)
}

func TestFatalLogsError(t *testing.T) {
	var buf bytes.Buffer
	l := diag.New(&buf, "sess-1")
	l.Fatal(errors.New("boom"))
	assert.Contains(t, buf.String(), "boom")
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var l *diag.Logger
	assert.NotPanics(t, func() {
		l.Emit(diag.KindParse, 1, "fallback path")
	})
}
