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

// Package engine implements ITL, an Incredibly Tiny Language: a
// line-indexed, assignment-oriented interpreter with 27 user variables,
// one global numeric array, left-to-right no-precedence expressions and
// forward-referenced variables.
//
// The engine has no notion of a terminal, a pixel surface or a clock of
// its own; it consumes those through the host package's capability
// interfaces, injected with WithHost. Everything else -- the value model,
// the splitter, the evaluator, the statement executor, the control driver
// and the forward-reference resolver -- lives here.
package engine
