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

import "strings"

// execSegment dispatches one segment per spec.md 4.5's lead-character
// table. A blank segment (after trimming leading space) is a no-op.
func (e *Engine) execSegment(seg string) {
	pos := skipSpace(seg, 0)
	if pos >= len(seg) {
		return
	}
	c := seg[pos]
	switch c {
	case ':':
		e.execMeta(seg[pos+1:])
		return
	case '?':
		e.execPrint(seg[pos+1:])
		return
	case '#':
		e.execJump(seg[pos+1:])
		return
	}
	if isDigit(c) || isVarLetter(c) {
		if idxStart, ok := arrayWriteIndexStart(seg, pos); ok {
			e.execArrayWrite(seg, idxStart)
			return
		}
	}
	if isVarLetter(c) {
		e.execAssign(seg, pos)
		return
	}
	e.Eval(seg[pos:])
}

// arrayWriteIndexStart reports whether seg, starting at pos, is an
// array-write statement: a discarded base primary followed by '@'
// (spec.md 4.5). On success it returns the position right after '@',
// where the index primary begins.
func arrayWriteIndexStart(seg string, pos int) (int, bool) {
	base := skipPrimary(seg, pos)
	p := skipSpace(seg, base)
	if p < len(seg) && seg[p] == '@' {
		return p + 1, true
	}
	return 0, false
}

// execArrayWrite implements the array-write statement: the base primary
// was already located and discarded by arrayWriteIndexStart; idxStart is
// where the index primary begins. An optional '=' may follow the index
// before the value expression.
func (e *Engine) execArrayWrite(seg string, idxStart int) {
	ip := &parser{e: e, s: seg, pos: idxStart}
	idx := ip.primary()
	p := skipSpace(seg, ip.pos)
	if p < len(seg) && seg[p] == '=' {
		p++
	}
	val := e.Eval(seg[p:])
	e.ArraySet(int(idx.ToNumber()), val.ToNumber())
}

// execAssign implements the assignment family (spec.md 4.5), sharing its
// lexical classification with the paren-block item classifier.
func (e *Engine) execAssign(seg string, pos int) {
	cell := seg[pos]
	form, op, exprStart := classifyAssign(seg, pos)
	switch form {
	case formBare:
		e.Undefine(cell)
	case formExplicit:
		e.Set(cell, e.Eval(seg[exprStart:]))
	case formSelfRef:
		cur := e.readVar(cell)
		rhs := e.Eval(seg[exprStart:])
		e.Set(cell, applyOp(op, cur, rhs, e))
	case formImplicit:
		e.Set(cell, e.Eval(seg[exprStart:]))
	default:
		e.Eval(seg[pos:])
	}
}

// execPrint implements the print statement: an optional leading '=' is
// skipped (spec.md 4.5, a historical allowance preserved per the Open
// Question decision in DESIGN.md), then the expression is evaluated and
// written through the host grid.
func (e *Engine) execPrint(rest string) {
	pos := skipSpace(rest, 0)
	if pos < len(rest) && rest[pos] == '=' {
		pos++
	}
	v := e.Eval(rest[pos:])
	e.writeValue(v)
}

// writeValue renders v per the value_to_string coercion and writes it to
// the host grid, tracking whether the last byte written was a newline so
// the REPL can interleave its prompt cleanly.
func (e *Engine) writeValue(v Value) {
	s := v.ToString()
	e.host.Put(s)
	if len(s) > 0 {
		e.lastNewline = s[len(s)-1] == '\n'
	}
}

// execJump implements the jump statement: an optional leading '=' is
// skipped, then the expression's integer value becomes the next line
// cursor (spec.md 4.5, 4.7).
func (e *Engine) execJump(rest string) {
	pos := skipSpace(rest, 0)
	if pos < len(rest) && rest[pos] == '=' {
		pos++
	}
	v := e.Eval(rest[pos:])
	e.SetLine(int(v.ToNumber()))
	e.jumped = true
}

// execMeta dispatches a REPL meta-command through the attached MetaHook.
// File-mode engines (no hook attached) diagnose and ignore it, per
// spec.md 7's "parse-local failure, execution continues" policy.
func (e *Engine) execMeta(body string) {
	body = strings.TrimSpace(body)
	if e.onMeta == nil {
		e.log.Emit(diagKindParse, e.line, "meta-command outside REPL: "+body)
		return
	}
	e.onMeta(body)
}
