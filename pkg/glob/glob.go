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

// Package glob matches input paths against doublestar patterns.
//
// A pattern containing a slash is matched against the whole slash-separated
// path. A pattern without one is matched against the base name only, so
// "*.bak" excludes backups wherever they live.
package glob

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// Validate checks that every pattern is well formed.
func Validate(patterns []string) error {
	for i, p := range patterns {
		if p == "" {
			return errors.Errorf("pattern %d: empty glob", i)
		}
		if !doublestar.ValidatePattern(p) {
			return errors.Errorf("pattern %d: invalid glob %q", i, p)
		}
	}
	return nil
}

// Match reports whether name matches pattern.
func Match(pattern, name string) bool {
	name = filepath.ToSlash(name)
	if !strings.Contains(pattern, "/") {
		name = path.Base(name)
	}
	ok, err := doublestar.Match(pattern, name)
	if err != nil {
		return false
	}
	return ok
}

// MatchAny reports whether name matches at least one of patterns.
func MatchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if Match(p, name) {
			return true
		}
	}
	return false
}
