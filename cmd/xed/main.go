// Copyright 2025 walteh LLC
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
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/xed/cmd/xed/commands"
	"github.com/walteh/xed/cmd/xed/opts"
	"github.com/walteh/xed/pkg/log"
	"gitlab.com/tozd/go/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if !isTerminal(stderr) {
		color.NoColor = true
		pterm.DisableStyling()
	}

	o := &opts.RootOpts{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	rootCmd := newRootCmd(o)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	// Interrupted: the shell already knows why
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return 1
	}

	logger := o.Logger
	if logger == nil {
		logger = log.New(stderr, zerolog.WarnLevel)
	}

	var usageErr *commands.UsageError
	if errors.As(err, &usageErr) {
		_, _ = io.WriteString(stderr, usageErr.Usage)
	}

	logger.Fatal(err)
	return 1
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
