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
	"strconv"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
	"gitlab.com/tozd/go/errors"
)

// part is either a literal run of bytes or a reference to a capture group.
type part struct {
	literal string
	group   int // -1 for a literal
}

// Template is a parsed replacement string.
//
// Group references are written \1 through \99 or \g<N> and \g<name>.
// The escapes \n \t \r \f \v \a \b and \\ produce the matching control
// character or backslash, and \0 followed by up to two octal digits is an
// octal escape. A backslash followed by anything that is not an ASCII
// letter is kept as written.
type Template struct {
	source string
	parts  []part
}

var escapes = map[byte]byte{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'f':  '\f',
	'v':  '\v',
	'a':  '\a',
	'b':  '\b',
	'\\': '\\',
}

// EmptyTemplate replaces every match with nothing.
var EmptyTemplate = &Template{}

// ParseTemplate parses repl against the groups defined by p.
func ParseTemplate(p *Pattern, repl string) (*Template, error) {
	t := &Template{source: repl}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			t.parts = append(t.parts, part{literal: lit.String(), group: -1})
			lit.Reset()
		}
	}
	fail := func(format string, args ...any) (*Template, error) {
		return nil, &PatternError{Expr: repl, Replacement: true, Err: errors.Errorf(format, args...)}
	}
	group := func(n int) bool {
		if n < 0 || n > p.NumGroups() {
			return false
		}
		flush()
		t.parts = append(t.parts, part{group: n})
		return true
	}

	for i := 0; i < len(repl); i++ {
		c := repl[i]
		if c != '\\' {
			lit.WriteByte(c)
			continue
		}
		if i+1 == len(repl) {
			return fail("bad escape (end of replacement) at position %d", i)
		}
		i++
		c = repl[i]

		switch {
		case c == 'g':
			rest := repl[i+1:]
			if !strings.HasPrefix(rest, "<") {
				return fail("missing < at position %d", i+1)
			}
			end := strings.IndexByte(rest, '>')
			if end < 0 {
				return fail("missing >, unterminated name at position %d", i+1)
			}
			name := rest[1:end]
			if name == "" {
				return fail("missing group name at position %d", i+1)
			}
			var n int
			switch {
			case isNumber(name):
				n, _ = strconv.Atoi(name)
			case isIdentifier(name):
				n = p.GroupIndex(name)
				if n < 0 {
					return fail("unknown group name %q", name)
				}
			default:
				return fail("bad character in group name %q at position %d", name, i+2)
			}
			if !group(n) {
				return fail("invalid group reference %d at position %d", n, i-1)
			}
			i += end + 1
		case c == '0':
			v := 0
			for j := 0; j < 2 && i+1 < len(repl) && isOctal(repl[i+1]); j++ {
				i++
				v = v*8 + int(repl[i]-'0')
			}
			lit.WriteRune(rune(v))
		case isDigit(c):
			start := i - 1
			digits := repl[i : i+1]
			if i+1 < len(repl) && isDigit(repl[i+1]) {
				// three octal digits are an octal escape, not a group
				if isOctal(c) && isOctal(repl[i+1]) && i+2 < len(repl) && isOctal(repl[i+2]) {
					v, _ := strconv.ParseInt(repl[i:i+3], 8, 32)
					if v > 0o377 {
						return fail("octal escape value \\%s outside of range 0-0o377 at position %d", repl[i:i+3], start)
					}
					lit.WriteRune(rune(v))
					i += 2
					continue
				}
				digits = repl[i : i+2]
				i++
			}
			n, _ := strconv.Atoi(digits)
			if !group(n) {
				return fail("invalid group reference %d at position %d", n, start+1)
			}
		case escapes[c] != 0:
			lit.WriteByte(escapes[c])
		case isASCIILetter(c):
			return fail("bad escape \\%c at position %d", c, i-1)
		default:
			lit.WriteByte('\\')
			lit.WriteByte(c)
		}
	}
	flush()

	return t, nil
}

// String returns the replacement as the user wrote it.
func (t *Template) String() string {
	return t.source
}

// expand writes the replacement for one match to out.
// A group that did not take part in the match expands to nothing.
func (t *Template) expand(out *strings.Builder, m *regexp2.Match) {
	for _, p := range t.parts {
		if p.group < 0 {
			out.WriteString(p.literal)
			continue
		}
		out.WriteString(groupText(m, p.group))
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNumber(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return s != ""
}

func isIdentifier(s string) bool {
	for i, r := range s {
		if r != '_' && !unicode.IsLetter(r) && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return s != ""
}
