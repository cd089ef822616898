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

// Program is the ordered sequence of segments (spec.md 3), 1-based in
// every public accessor: Segment(1) is the first segment. The zero
// Program is empty and ready to use.
type Program []string

// Len returns the number of segments.
func (p Program) Len() int { return len(p) }

// Segment returns the n'th segment (1-based). Out-of-range n returns "".
func (p Program) Segment(n int) string {
	if n < 1 || n > len(p) {
		return ""
	}
	return p[n-1]
}

// Load replaces the program store with the segments of src (spec.md 6,
// "A program is the concatenation of physical lines, segmented per
// 4.1"). Used for file mode, where the store is built once.
func (e *Engine) Load(src string) {
	e.Program = Split(src)
	e.line = 1
}

// Append accumulates one more chunk of source into the program store
// without disturbing what's already there, for the REPL's monotonic
// accumulation (spec.md 3, "Lifecycles").
func (e *Engine) Append(src string) {
	e.Program = append(e.Program, Split(src)...)
}
