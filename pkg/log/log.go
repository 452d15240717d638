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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 FileChangeType is the outcome of processing one file
type FileChangeType int

const (
	FileUpdated FileChangeType = iota
	FileUnchanged
	FileMatched
)

// 🎯 FileChange describes what happened to one input, for verbose output
type FileChange struct {
	Type         FileChangeType
	Path         string
	Replacements int
	InPlace      bool
}

// 🎯 Logger writes user-facing diagnostics to the console (stderr) and
// debug tracing through zerolog. Results never go through it.
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	verbose bool
}

// 🏭 New creates a new logger writing to console
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = console
		w.NoColor = color.NoColor
	})).With().Timestamp().Logger().Level(level)

	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔊 SetVerbose turns per-file change reports on or off
func (l *Logger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = verbose
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger, and its zerolog logger, to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	ctx = l.zlog.WithContext(ctx)
	return context.WithValue(ctx, contextKey{}, l)
}

// ⚠️ NotRegularFile reports an input path that was skipped
func (l *Logger) NotRegularFile(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "%s: not a regular file\n", path)
	l.zlog.Debug().Str("path", path).Msg("skipped non-regular file")
}

// 📝 LogFileChange reports what happened to one file when verbose output is on
func (l *Logger) LogFileChange(change FileChange) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.zlog.Debug().
		Str("path", change.Path).
		Int("replacements", change.Replacements).
		Bool("in_place", change.InPlace).
		Msg("file processed")

	if !l.verbose {
		return
	}

	var printer *pterm.PrefixPrinter
	var msg string
	switch change.Type {
	case FileUpdated:
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: "🔄", Style: pterm.Success.Prefix.Style})
		msg = fmt.Sprintf("Updated %s (%d replacements)", change.Path, change.Replacements)
		if !change.InPlace {
			msg = fmt.Sprintf("Rewrote %s (%d replacements)", change.Path, change.Replacements)
		}
	case FileUnchanged:
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "⏭️", Style: pterm.Info.Prefix.Style})
		msg = fmt.Sprintf("Unchanged %s", change.Path)
	case FileMatched:
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "🔍", Style: pterm.Info.Prefix.Style})
		msg = fmt.Sprintf("Matched %s", change.Path)
	default:
		return
	}

	printer.WithWriter(l.console).Println(msg)
}

// ❌ Fatal reports the error that ends the invocation
func (l *Logger) Fatal(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "%s %s\n", color.New(color.FgRed, color.Bold).Sprint("xed:"), err)
	l.zlog.Debug().Err(err).Msg("fatal")
}
