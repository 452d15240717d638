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
	"io"
	"os"
	"slices"
	"strings"

	"github.com/walteh/xed/pkg/log"
	"github.com/walteh/xed/pkg/selector"
	"github.com/walteh/xed/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Search prints the sorted paths of the selected files that m matches, one per line.
// Nothing is printed when no file matches.
func (r *Router) Search(ctx context.Context, m text.Matcher, paths []string) error {
	var matches []string

	for path := range selector.Select(ctx, paths, selector.Options{
		Exclude: r.opts.Exclude,
		Warner:  r.opts.Logger,
	}) {
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return &FileError{Op: "reading", Path: path, Err: err}
		}

		if m.Match(ctx, content) {
			matches = append(matches, path)
			r.opts.Logger.LogFileChange(log.FileChange{Type: log.FileMatched, Path: path})
		}
	}

	if len(matches) == 0 {
		return nil
	}

	slices.Sort(matches)
	if _, err := io.WriteString(r.opts.Stdout, strings.Join(matches, "\n")+"\n"); err != nil {
		return errors.Errorf("writing standard output: %w", err)
	}
	return nil
}
