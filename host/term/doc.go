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

// Package term implements the character-grid and keyboard halves of
// host.Host over a real VT100-compatible terminal: escape-sequence
// output, raw-mode termios input, and a signal-driven interrupt flag.
// The pixel/pointer halves are satisfied by host.Null embedded into
// Grid, since a plain terminal has no pixel surface.
package term
