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
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/xed/pkg/atomicfile"
	"github.com/walteh/xed/pkg/log"
	"github.com/walteh/xed/pkg/selector"
	"github.com/walteh/xed/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔄 Modify applies t to standard input, or to every selected file in paths
func (r *Router) Modify(ctx context.Context, t text.Transformer, paths []string) error {
	logger := zerolog.Ctx(ctx)

	if len(paths) == 0 {
		if r.opts.InPlace {
			logger.Debug().Msg("in-place has no effect on standard input")
		}
		return r.modifyStdin(ctx, t)
	}

	for path := range selector.Select(ctx, paths, selector.Options{
		Exclude: r.opts.Exclude,
		Warner:  r.opts.Logger,
	}) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.modifyFile(ctx, t, path); err != nil {
			return err
		}
	}

	return nil
}

func (r *Router) modifyStdin(ctx context.Context, t text.Transformer) error {
	content, err := readAll(ctx, r.opts.Stdin)
	if err != nil {
		if isCancellation(err) {
			return err
		}
		return &FileError{Op: "reading", Path: stdinName, Err: err}
	}

	result, err := t.Transform(ctx, text.Source{Content: content})
	if err != nil {
		return errors.Errorf("transforming standard input: %w", err)
	}

	if _, err := r.opts.Stdout.Write(result.Modified); err != nil {
		return errors.Errorf("writing standard output: %w", err)
	}
	return nil
}

func (r *Router) modifyFile(ctx context.Context, t text.Transformer, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return &FileError{Op: "reading", Path: path, Err: err}
	}

	result, err := t.Transform(ctx, text.Source{Path: path, Content: content})
	if err != nil {
		return errors.Errorf("transforming %s: %w", path, err)
	}

	if r.opts.InPlace {
		if err := atomicfile.WriteBytes(ctx, path, result.Modified); err != nil {
			if isCancellation(err) {
				return err
			}
			return &FileError{Op: "writing", Path: path, Err: err}
		}
	} else if _, err := r.opts.Stdout.Write(result.Modified); err != nil {
		return errors.Errorf("writing standard output: %w", err)
	}

	change := log.FileChange{
		Type:         log.FileUnchanged,
		Path:         path,
		Replacements: result.Count,
		InPlace:      r.opts.InPlace,
	}
	if result.WasModified {
		change.Type = log.FileUpdated
	}
	r.opts.Logger.LogFileChange(change)

	return nil
}
