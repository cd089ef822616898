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

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/YouDevIt/itl/engine"
	"github.com/YouDevIt/itl/host/gfx"
	"github.com/YouDevIt/itl/host/term"
	"github.com/YouDevIt/itl/internal/diag"
	"github.com/YouDevIt/itl/lang/itlrepl"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		useGfx    = flag.Bool("gfx", false, "enable the pixel-graphics host (-gopen etc. draw to a window)")
		noRawIO   = flag.Bool("noraw", false, "disable raw terminal IO")
		execStats = flag.Bool("stats", false, "print program size and run time on exit")
	)
	flag.Parse()

	session := uuid.New().String()
	logger := diag.New(os.Stderr, session)

	thost, teardown, err := term.New(!*noRawIO)
	if err != nil {
		fmt.Fprintln(os.Stderr, "itl: terminal setup failed:", err)
		return 1
	}
	defer teardown()

	var surface *gfx.Surface
	if *useGfx {
		surface = gfx.New()
	}
	h := newCombinedHost(thost, surface)

	if flag.NArg() > 0 {
		return runFile(h, logger, flag.Arg(0), *execStats)
	}
	return runRepl(h, logger, thost)
}

func runFile(h *combinedHost, logger *diag.Logger, path string, stats bool) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "itl: cannot open source:", err)
		return 1
	}

	e := engine.New(engine.WithHost(h), engine.WithLogger(logger))
	e.Load(string(src))

	start := time.Now()
	runErr := e.Run(context.Background())
	if runErr != nil && errors.Cause(runErr) == engine.ErrInterrupted {
		runErr = nil
	}
	if stats {
		fmt.Fprintf(os.Stderr, "program of %d segments ran in %v\n", e.Program.Len(), time.Since(start))
	}
	if runErr != nil {
		logger.Fatal(runErr)
		return 1
	}
	return 0
}

func runRepl(h *combinedHost, logger *diag.Logger, thost *term.Host) int {
	repl := itlrepl.New(os.Stdout)
	e := engine.New(
		engine.WithHost(h),
		engine.WithLogger(logger),
		engine.WithAssignHook(repl.AssignHook),
		engine.WithArrayHook(repl.ArrayHook),
		engine.WithMetaHook(repl.Dispatch),
	)
	repl.Engine = e

	rl, err := readline.New("> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "itl: readline init failed:", err)
		return 1
	}
	defer rl.Close()

	fmt.Fprintln(os.Stdout, "itl REPL. Type :help for commands, :exit to quit.")

	ctx := context.Background()
	for !repl.Quit {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "itl: input error:", err)
			break
		}
		if line == "" {
			continue
		}
		rl.SaveHistory(line)
		e.Append(line)

		runErr := e.Run(ctx)
		if runErr != nil && errors.Cause(runErr) == engine.ErrInterrupted {
			fmt.Fprintln(os.Stdout, "^C interrupted")
			thost.Reset()
			continue
		}
		if runErr != nil {
			fmt.Fprintln(os.Stderr, runErr)
		}
		if !e.LastNewline() {
			fmt.Fprintln(os.Stdout)
		}
	}
	return 0
}
