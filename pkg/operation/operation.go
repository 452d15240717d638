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

package operation

import (
	"context"
	"fmt"
	"io"
	"io/fs"

	"github.com/walteh/xed/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the router
type Options struct {
	// Stdin is read when no paths are given
	Stdin io.Reader
	// Stdout receives transformed content and search results
	Stdout io.Writer
	// Logger receives warnings and per-file reports
	Logger *log.Logger
	// InPlace rewrites files instead of printing them; ignored for standard input
	InPlace bool
	// Exclude skips input paths matching these globs
	Exclude []string
}

// FileError is a fatal I/O failure on a file that passed selection.
type FileError struct {
	// Op is what was being done: "reading" or "writing"
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) && pathErr.Path == e.Path {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, pathErr.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// stdinName is used in errors about standard input
const stdinName = "<stdin>"

// 🎮 Router sends transform results to standard output or back into files
type Router struct {
	opts Options
}

// 🏭 New creates a new router with the given options
func New(opts Options) (*Router, error) {
	if opts.Stdin == nil {
		return nil, errors.Errorf("stdin is required")
	}
	if opts.Stdout == nil {
		return nil, errors.Errorf("stdout is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	return &Router{opts: opts}, nil
}

// readAll reads r to the end, giving up early when ctx is cancelled.
// Standard input can block forever on a terminal, so the read runs aside.
func readAll(ctx context.Context, r io.Reader) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(r)
		ch <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.data, res.err
	}
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
