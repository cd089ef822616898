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

// assignForm classifies what a "V ..." item means, shared by the
// top-level statement executor (spec.md 4.5's assignment family) and the
// paren-block item classifier (spec.md 4.3.1). The two differ only in
// what happens when a separator follows an explicit/self-referential
// form and whether the *last* item in a paren-block re-reads as a
// comparison; the underlying lexical classification is identical (the
// Open Question decision recorded in DESIGN.md applies this same rule
// inside and outside parens).
type assignForm int

const (
	formNone assignForm = iota // not an assignment: plain expression
	formBare                   // "V" alone: undefine
	formExplicit                // "V = expr"
	formSelfRef                 // "V op expr", op a binary operator char
	formImplicit                // "V expr", expr starting directly at a value-starter
)

// classifyAssign inspects s[pos:] where s[pos] is a variable letter, and
// reports the assignment form, the operator byte (for formSelfRef), and
// the position at which the right-hand expression starts.
func classifyAssign(s string, pos int) (form assignForm, op byte, exprStart int) {
	after := skipSpace(s, pos+1)
	if after >= len(s) {
		return formBare, 0, after
	}
	c := s[after]
	switch {
	case c == '=':
		return formExplicit, 0, after + 1
	case isOperatorChar(c):
		return formSelfRef, c, after + 1
	case isPrimaryStart(c):
		return formImplicit, 0, after
	default:
		return formNone, 0, after
	}
}
