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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		replacement string
		content     string
		want        string
		wantError   string
	}{
		{
			name:        "numbered_group",
			pattern:     `(\w+)@(\w+)`,
			replacement: `\2 at \1`,
			content:     "user@host",
			want:        "host at user",
		},
		{
			name:        "g_numbered_group",
			pattern:     `(a)`,
			replacement: `\g<1>0`,
			content:     "a",
			want:        "a0",
		},
		{
			name:        "g_named_group",
			pattern:     `(?P<word>\w+)!`,
			replacement: `<\g<word>>`,
			content:     "hi! there!",
			want:        "<hi> <there>",
		},
		{
			name:        "mixed_groups_numbered_in_order",
			pattern:     `(a)(?P<mid>b)(c)`,
			replacement: `\3\2\1 \g<mid>`,
			content:     "abc",
			want:        "cba b",
		},
		{
			name:        "whole_match",
			pattern:     `b+`,
			replacement: `[\g<0>]`,
			content:     "abbc",
			want:        "a[bb]c",
		},
		{
			name:        "newline_escape",
			pattern:     `,`,
			replacement: `\n`,
			content:     "a,b",
			want:        "a\nb",
		},
		{
			name:        "tab_escape",
			pattern:     ` `,
			replacement: `\t`,
			content:     "a b",
			want:        "a\tb",
		},
		{
			name:        "escaped_backslash",
			pattern:     `(x)`,
			replacement: `\\1`,
			content:     "x",
			want:        `\1`,
		},
		{
			name:        "non_letter_escape_kept",
			pattern:     `a`,
			replacement: `\.`,
			content:     "a",
			want:        `\.`,
		},
		{
			name:        "octal_escape",
			pattern:     `a`,
			replacement: `\101`,
			content:     "a",
			want:        "A",
		},
		{
			name:        "null_escape",
			pattern:     `a`,
			replacement: `\0`,
			content:     "a",
			want:        "\x00",
		},
		{
			name:        "unmatched_group_is_empty",
			pattern:     `(a)|(b)`,
			replacement: `[\1\2]`,
			content:     "ab",
			want:        "[a][b]",
		},
		{
			name:        "dollar_is_literal",
			pattern:     `(a)`,
			replacement: `$1`,
			content:     "a",
			want:        "$1",
		},
		{
			name:        "unknown_group",
			pattern:     `(a)`,
			replacement: `\2`,
			wantError:   "invalid group reference 2",
		},
		{
			name:        "two_digit_group_missing",
			pattern:     `(a)`,
			replacement: `\12`,
			wantError:   "invalid group reference 12",
		},
		{
			name:        "unknown_group_name",
			pattern:     `(?P<word>a)`,
			replacement: `\g<other>`,
			wantError:   `unknown group name "other"`,
		},
		{
			name:        "signed_group_number",
			pattern:     `(a)`,
			replacement: `\g<+1>`,
			wantError:   `bad character in group name "+1"`,
		},
		{
			name:        "group_name_starts_with_digit",
			pattern:     `(a)`,
			replacement: `\g<1a>`,
			wantError:   "bad character in group name",
		},
		{
			name:        "unterminated_name",
			pattern:     `(a)`,
			replacement: `\g<1`,
			wantError:   "unterminated name",
		},
		{
			name:        "missing_bracket",
			pattern:     `(a)`,
			replacement: `\g1`,
			wantError:   "missing <",
		},
		{
			name:        "bad_letter_escape",
			pattern:     `a`,
			replacement: `\q`,
			wantError:   `bad escape \q`,
		},
		{
			name:        "trailing_backslash",
			pattern:     `a`,
			replacement: `x\`,
			wantError:   "end of replacement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustCompile(tt.pattern)
			tmpl, err := ParseTemplate(p, tt.replacement)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)

				var perr *PatternError
				require.ErrorAs(t, err, &perr)
				assert.True(t, perr.Replacement)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.replacement, tmpl.String())
			got, err := NewReplacer(p, tmpl).Replace([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got.Modified))
		})
	}
}
