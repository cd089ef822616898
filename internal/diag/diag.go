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

// Package diag is the one small wrapper the rest of the tree imports
// instead of reaching for a global logger directly, in the spirit of
// internal/ngi's ErrWriter: a single type standing between every
// diagnostic call site and the concrete logging library.
package diag

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Kind classifies a non-fatal diagnostic per spec.md 7.
type Kind string

// Diagnostic kinds.
const (
	KindParse     Kind = "parse"
	KindArith     Kind = "arith"
	KindHost      Kind = "host"
	KindInterrupt Kind = "interrupt"
)

// Logger emits structured, non-fatal diagnostics. A nil *Logger falls
// back to Default, which writes to os.Stderr; use New to attach a session
// id or a different writer (for example a test buffer).
type Logger struct {
	zl zerolog.Logger
}

// New returns a Logger writing to w, tagging every event with session.
func New(w io.Writer, session string) *Logger {
	zl := zerolog.New(w).With().Timestamp().Str("session", session).Logger()
	return &Logger{zl: zl}
}

// Default is a package-level Logger writing to stderr with no session tag,
// used when the caller has not constructed one explicitly.
var Default = New(os.Stderr, "")

// Emit logs a single diagnostic event. segment is the 1-based line the
// event occurred on, 0 if not applicable.
func (l *Logger) Emit(kind Kind, segment int, detail string) {
	if l == nil {
		l = Default
	}
	ev := l.zl.Warn().Str("kind", string(kind)).Str("detail", detail)
	if segment > 0 {
		ev = ev.Int("segment", segment)
	}
	ev.Msg("itl diagnostic")
}

// Fatal logs an error that ends a file-mode run (cmd/itl logs a failed
// Run through it). It does not exit; callers decide exit codes.
func (l *Logger) Fatal(err error) {
	if l == nil {
		l = Default
	}
	l.zl.Error().Err(err).Msg("itl fatal")
}
