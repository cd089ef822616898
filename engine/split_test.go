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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YouDevIt/itl/engine"
)

func TestSplitBasicSemicolons(t *testing.T) {
	assert.Equal(t, []string{"A=1", "B=2", "C=3"}, engine.Split("A=1;B=2;C=3"))
}

func TestSplitNewlinesActLikeSemicolons(t *testing.T) {
	assert.Equal(t, []string{"A=1", "B=2"}, engine.Split("A=1\nB=2"))
}

func TestSplitCarriageReturnsStripped(t *testing.T) {
	assert.Equal(t, []string{"A=1", "B=2"}, engine.Split("A=1\r\nB=2"))
}

func TestSplitIgnoresSeparatorsInsideParens(t *testing.T) {
	assert.Equal(t, []string{"?(A=1;B=2)"}, engine.Split("?(A=1;B=2)"))
}

func TestSplitIgnoresSeparatorsInsideStrings(t *testing.T) {
	assert.Equal(t, []string{`?"a;b\nc"`}, engine.Split(`?"a;b\nc"`))
}

func TestSplitEscapedQuoteInsideString(t *testing.T) {
	assert.Equal(t, []string{`?"a\"b";C=1`}, engine.Split(`?"a\"b";C=1`))
}

func TestSplitTrailingSeparatorYieldsEmptySegment(t *testing.T) {
	assert.Equal(t, []string{"A=1", ""}, engine.Split("A=1;"))
}

func TestSplitUnbalancedCloseParenDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		engine.Split("A=1)")
	})
}

func TestSplitIsStableUnderRejoin(t *testing.T) {
	src := `A=1;?"x;y";(B=2;C=3)`
	first := engine.Split(src)
	second := engine.Split(strings.Join(first, ";"))
	// Rejoining with ';' may introduce one trailing empty segment beyond
	// what the original produced; everything else must match exactly.
	trimmed := second
	if len(trimmed) == len(first)+1 && trimmed[len(trimmed)-1] == "" {
		trimmed = trimmed[:len(trimmed)-1]
	}
	assert.Equal(t, first, trimmed)
}
