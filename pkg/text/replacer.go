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
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidUTF8 is returned when content to be rewritten is not UTF-8 text
var ErrInvalidUTF8 = errors.Base("content is not valid UTF-8")

// Replacer substitutes every non-overlapping match of a pattern with a template.
type Replacer struct {
	pattern  *Pattern
	template *Template
}

var _ Transformer = (*Replacer)(nil)

// NewReplacer creates a Replacer for p and tmpl
func NewReplacer(p *Pattern, tmpl *Template) *Replacer {
	if tmpl == nil {
		tmpl = EmptyTemplate
	}
	return &Replacer{pattern: p, template: tmpl}
}

// NewDeleter creates a Replacer that removes every match of p.
// Deleting a line's text leaves its newline unless the pattern consumes it.
func NewDeleter(p *Pattern) *Replacer {
	return NewReplacer(p, EmptyTemplate)
}

// Replace returns content with every match substituted.
//
// An empty match right after a non-empty one is replaced too, so "x*" turns
// "abxd" into "-a-b--d-".
func (r *Replacer) Replace(content []byte) (*Result, error) {
	result := &Result{
		Original: content,
		Modified: content,
	}

	if !utf8.Valid(content) {
		return nil, errors.WithStack(ErrInvalidUTF8)
	}

	text := []rune(string(content))
	var out strings.Builder
	out.Grow(len(content))

	last := 0
	m, err := r.pattern.re.FindRunesMatch(text)
	for ; m != nil && err == nil; m, err = r.pattern.re.FindNextMatch(m) {
		out.WriteString(string(text[last:m.Index]))
		r.template.expand(&out, m)
		last = m.Index + m.Length
		result.Count++
	}
	if err != nil {
		return nil, errors.Errorf("matching %s: %w", r.pattern, err)
	}
	if result.Count == 0 {
		return result, nil
	}
	out.WriteString(string(text[last:]))

	result.Modified = []byte(out.String())
	result.WasModified = !bytes.Equal(content, result.Modified)
	return result, nil
}

// Transform implements Transformer
func (r *Replacer) Transform(ctx context.Context, src Source) (*Result, error) {
	result, err := r.Replace(src.Content)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", src.Path).
		Str("pattern", r.pattern.String()).
		Str("replacement", r.template.String()).
		Int("matches", result.Count).
		Bool("modified", result.WasModified).
		Msg("replaced")

	return result, nil
}

// Searcher tests content for the presence of a pattern.
type Searcher struct {
	pattern *Pattern
}

var _ Matcher = (*Searcher)(nil)

// NewSearcher creates a Searcher for p
func NewSearcher(p *Pattern) *Searcher {
	return &Searcher{pattern: p}
}

// Match implements Matcher. Bytes that are not UTF-8 match only "."-like
// constructs, as U+FFFD.
func (s *Searcher) Match(ctx context.Context, content []byte) bool {
	logger := zerolog.Ctx(ctx)

	ok, err := s.pattern.re.MatchString(string(content))
	if err != nil {
		logger.Debug().Err(err).Str("pattern", s.pattern.String()).Msg("search failed")
		return false
	}

	logger.Debug().Str("pattern", s.pattern.String()).Bool("match", ok).Msg("searched")
	return ok
}

// groupText returns the last capture of group n, or "" when it did not take part.
func groupText(m *regexp2.Match, n int) string {
	g := m.GroupByNumber(n)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}
