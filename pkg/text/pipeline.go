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

package text

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/walteh/xed/pkg/glob"
	"gitlab.com/tozd/go/errors"
)

// Rule is one step of a Pipeline.
type Rule struct {
	// Name identifies the rule in logs and errors, optional
	Name string

	// Transformer is applied to the output of the previous rule
	Transformer Transformer

	// Files restricts the rule to paths matching one of these globs.
	// A rule with a filter never applies to standard input.
	Files []string
}

// Applies reports whether the rule should run for path
func (r Rule) Applies(path string) bool {
	if len(r.Files) == 0 {
		return true
	}
	if path == "" {
		return false
	}
	return glob.MatchAny(r.Files, path)
}

func (r Rule) label(i int) string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("#%d", i+1)
}

// Pipeline applies its rules in order, each to the previous rule's output.
type Pipeline []Rule

var _ Transformer = Pipeline(nil)

// Transform implements Transformer
func (p Pipeline) Transform(ctx context.Context, src Source) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	result := &Result{
		Original: src.Content,
		Modified: src.Content,
	}

	for i, rule := range p {
		if !rule.Applies(src.Path) {
			logger.Debug().Str("rule", rule.label(i)).Str("path", src.Path).Msg("rule does not apply")
			continue
		}

		r, err := rule.Transformer.Transform(ctx, Source{Path: src.Path, Content: result.Modified})
		if err != nil {
			return nil, errors.Errorf("rule %s: %w", rule.label(i), err)
		}

		result.Count += r.Count
		result.Modified = r.Modified
	}

	result.WasModified = !bytes.Equal(result.Original, result.Modified)
	return result, nil
}
