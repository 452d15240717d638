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

// Package text is the transform engine behind xed.
//
// Every pattern is compiled in multiline and dot-matches-newline mode, so
// "^" and "$" anchor to line boundaries and a pattern may span several
// lines. A transform always works on the full content of one input.
package text

import (
	"context"
)

// Source is one input handed to a Transformer.
type Source struct {
	// Path is the file the content came from, empty for standard input
	Path string

	// Content is the full content of the input
	Content []byte
}

// Result contains the results of a transform
type Result struct {
	// WasModified indicates if the output differs from the input
	WasModified bool

	// Count is the number of matches that were substituted
	Count int

	// Original is the content before the transform
	Original []byte

	// Modified is the content after the transform
	Modified []byte
}

// Transformer rewrites the full content of one input.
// A transform that matches nothing returns the input unchanged; that is not an error.
type Transformer interface {
	Transform(ctx context.Context, src Source) (*Result, error)
}

// Matcher reports whether content contains at least one match.
type Matcher interface {
	Match(ctx context.Context, content []byte) bool
}
