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

// Package selector narrows input paths down to regular files.
package selector

import (
	"context"
	"iter"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"github.com/walteh/xed/pkg/glob"
)

// Warner receives a soft warning for every path that is not a regular file.
type Warner interface {
	NotRegularFile(path string)
}

// Options configures Select
type Options struct {
	// Exclude skips paths matching any of these globs without a warning
	Exclude []string

	// Warner is told about skipped non-regular paths, may be nil
	Warner Warner
}

// Select yields the regular files among paths in ascending order.
//
// The regular-file check happens when the consumer asks for the next path,
// not up front. Anything else (directories, missing paths, devices) is
// reported to the Warner and skipped.
func Select(ctx context.Context, paths []string, opts Options) iter.Seq[string] {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)

	logger := zerolog.Ctx(ctx)

	return func(yield func(string) bool) {
		for _, path := range sorted {
			if glob.MatchAny(opts.Exclude, path) {
				logger.Debug().Str("path", path).Msg("excluded")
				continue
			}

			if !IsRegular(path) {
				if opts.Warner != nil {
					opts.Warner.NotRegularFile(path)
				}
				continue
			}

			if !yield(path) {
				return
			}
		}
	}
}

// IsRegular reports whether path resolves to a regular file, following symlinks.
func IsRegular(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
