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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/xed/pkg/text"
)

type searchFile struct {
	content string
	matches bool
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		files   []searchFile
	}{
		{
			name:    "single_match",
			pattern: "a",
			files:   []searchFile{{content: "aaaa", matches: true}},
		},
		{
			name:    "no_match",
			pattern: "b",
			files:   []searchFile{{content: "aaaa"}},
		},
		{
			name:    "some_match",
			pattern: "a",
			files: []searchFile{
				{content: "aaaa", matches: true},
				{content: "bbbb"},
				{content: "abc", matches: true},
			},
		},
		{
			name:    "middle_line",
			pattern: "hello",
			files:   []searchFile{{content: "aaa\nhello\nbbb\n", matches: true}},
		},
		{
			name:    "across_lines",
			pattern: `bb\ncc`,
			files:   []searchFile{{content: "aaa\nbbb\nccc\nddd\n", matches: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			var paths []string
			want := ""
			for i, f := range tt.files {
				path := h.file(t, string(rune('0'+i)), f.content)
				paths = append(paths, path)
				if f.matches {
					want += path + "\n"
				}
			}

			s := text.NewSearcher(text.MustCompile(tt.pattern))
			require.NoError(t, h.router(t, "", false).Search(h.ctx(t), s, paths))

			assert.Equal(t, want, h.stdout.String())
			assert.Empty(t, h.stderr.String())
		})
	}
}

func TestSearch_SortedOutput(t *testing.T) {
	h := newHarness(t)
	c := h.file(t, "c", "x")
	a := h.file(t, "a", "x")
	b := h.file(t, "b", "y")

	s := text.NewSearcher(text.MustCompile("x"))
	require.NoError(t, h.router(t, "", false).Search(h.ctx(t), s, []string{c, b, a}))

	assert.Equal(t, a+"\n"+c+"\n", h.stdout.String())
}

func TestSearch_NoPaths(t *testing.T) {
	h := newHarness(t)

	s := text.NewSearcher(text.MustCompile("a"))
	require.NoError(t, h.router(t, "aaaa", false).Search(h.ctx(t), s, nil))

	assert.Empty(t, h.stdout.String(), "standard input is never searched")
}

func TestSearch_DirectoryWarns(t *testing.T) {
	h := newHarness(t)
	a := h.file(t, "a", "match")
	sub := filepath.Join(h.dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))

	s := text.NewSearcher(text.MustCompile("match"))
	require.NoError(t, h.router(t, "", false).Search(h.ctx(t), s, []string{sub, a}))

	assert.Equal(t, a+"\n", h.stdout.String())
	assert.Equal(t, sub+": not a regular file\n", h.stderr.String())
}

func TestSearch_Cancelled(t *testing.T) {
	h := newHarness(t)
	a := h.file(t, "a", "match")

	ctx, cancel := context.WithCancel(h.ctx(t))
	cancel()

	s := text.NewSearcher(text.MustCompile("match"))
	err := h.router(t, "", false).Search(ctx, s, []string{a})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, h.stdout.String())
}
