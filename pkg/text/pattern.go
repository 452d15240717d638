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
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	"gitlab.com/tozd/go/errors"
)

// options applied to every pattern: multiline and dot-matches-newline
const options = regexp2.Multiline | regexp2.Singleline

// PatternError reports a pattern or replacement that cannot be used.
// It is raised before any input is read.
type PatternError struct {
	// Expr is the offending pattern or replacement as the user wrote it
	Expr string

	// Replacement is true when Expr is a replacement template
	Replacement bool

	Err error
}

func (e *PatternError) Error() string {
	what := "pattern"
	if e.Replacement {
		what = "replacement"
	}
	return fmt.Sprintf("invalid %s %q: %v", what, e.Expr, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Pattern is a compiled regular expression.
//
// Patterns are backtracking expressions: backreferences (\1, (?P=name))
// and lookaround are supported. Groups are numbered left to right whether
// or not they are named.
type Pattern struct {
	expr string
	re   *regexp2.Regexp
}

// Compile compiles expr with multiline and dot-matches-newline semantics.
func Compile(expr string) (*Pattern, error) {
	re, err := regexp2.Compile(translate(expr), options)
	if err != nil {
		return nil, &PatternError{Expr: expr, Err: errors.WithStack(err)}
	}
	return &Pattern{expr: expr, re: re}, nil
}

// MustCompile is like Compile but panics if expr cannot be compiled.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the pattern as the user wrote it.
func (p *Pattern) String() string {
	return p.expr
}

// NumGroups returns the number of capture groups in the pattern.
func (p *Pattern) NumGroups() int {
	return len(p.re.GetGroupNumbers()) - 1
}

// GroupIndex returns the number of the named group, or -1.
func (p *Pattern) GroupIndex(name string) int {
	return p.re.GroupNumberFromName(name)
}

// translate rewrites (?P<name>...), (?P=name) into the engine's syntax and
// gives every unnamed group an explicit number. Named groups then take the
// numbers left between them, so numbering runs left to right as written.
func translate(expr string) string {
	var b strings.Builder
	group := 0
	inClass := false

	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c == '\\':
			b.WriteByte(c)
			if i+1 < len(expr) {
				i++
				b.WriteByte(expr[i])
			}
			continue
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
			b.WriteByte(c)
			// a ] right after the opening bracket (or ^) is literal
			if i+1 < len(expr) && expr[i+1] == '^' {
				i++
				b.WriteByte('^')
			}
			if i+1 < len(expr) && expr[i+1] == ']' {
				i++
				b.WriteByte(']')
			}
			continue
		case c == '(':
			rest := expr[i+1:]
			switch {
			case strings.HasPrefix(rest, "?P<"):
				group++
				b.WriteString("(?<")
				i += 3
				continue
			case strings.HasPrefix(rest, "?P="):
				if end := strings.IndexByte(rest, ')'); end > 3 {
					b.WriteString(`\k<` + rest[3:end] + ">")
					i += end + 1
					continue
				}
			case strings.HasPrefix(rest, "?#"):
				if end := strings.IndexByte(rest, ')'); end > 0 {
					b.WriteString(expr[i : i+end+2])
					i += end + 1
					continue
				}
			case strings.HasPrefix(rest, "?'"),
				strings.HasPrefix(rest, "?<") && !strings.HasPrefix(rest, "?<=") && !strings.HasPrefix(rest, "?<!"):
				group++
			case strings.HasPrefix(rest, "?"):
				// non-capturing, lookaround or inline flags
			default:
				group++
				fmt.Fprintf(&b, "(?<%d>", group)
				continue
			}
		}
		b.WriteByte(c)
	}

	return b.String()
}
