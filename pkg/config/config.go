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

package config

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/xed/pkg/glob"
	"github.com/walteh/xed/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for rules file parsers
type Parser interface {
	// 📝 Parse parses the rules from bytes
	Parse(ctx context.Context, data []byte) (*Rules, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

// 🗺️ parsers is the fixed set of supported formats, tried in order
var parsers = []Parser{
	&YAMLParser{},
	&HCLParser{},
	&JSONParser{},
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Rule is one replace or delete step as written in a rules file
type Rule struct {
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Pattern     string   `json:"pattern" yaml:"pattern"`
	Replacement string   `json:"replacement,omitempty" yaml:"replacement,omitempty"`
	Delete      bool     `json:"delete,omitempty" yaml:"delete,omitempty"`
	Files       []string `json:"files,omitempty" yaml:"files,omitempty"` // Globs limiting which files the rule touches
}

// 📚 Rules represents a complete rules file
type Rules struct {
	Rules   []Rule   `json:"rules" yaml:"rules"`
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"` // Globs for input paths to skip
}

// 🎯 Load loads and validates the rules file at path
func Load(ctx context.Context, path string) (*Rules, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading rules")

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Read rules file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading rules file: %w", err)
	}

	// Parse rules
	rules, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing rules: %w", err)
	}

	// Validate
	if err := rules.Validate(); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	logger.Debug().Int("rules", len(rules.Rules)).Strs("exclude", rules.Exclude).Msg("loaded rules")
	return rules, nil
}

// 🔍 Validate checks if the rules are usable
func (r *Rules) Validate() error {
	if len(r.Rules) == 0 {
		return errors.Errorf("at least one rule is required")
	}

	for i, rule := range r.Rules {
		if rule.Pattern == "" {
			return errors.Errorf("rule %s: pattern is required", rule.label(i))
		}
		if rule.Delete && rule.Replacement != "" {
			return errors.Errorf("rule %s: replacement and delete are mutually exclusive", rule.label(i))
		}
		if err := glob.Validate(rule.Files); err != nil {
			return errors.Errorf("rule %s: files: %w", rule.label(i), err)
		}
	}

	if err := glob.Validate(r.Exclude); err != nil {
		return errors.Errorf("exclude: %w", err)
	}

	return nil
}

// ⚙️ Pipeline compiles every rule into a text.Pipeline
func (r *Rules) Pipeline() (text.Pipeline, error) {
	pipeline := make(text.Pipeline, 0, len(r.Rules))

	for i, rule := range r.Rules {
		p, err := text.Compile(rule.Pattern)
		if err != nil {
			return nil, errors.Errorf("rule %s: %w", rule.label(i), err)
		}

		var t text.Transformer
		if rule.Delete {
			t = text.NewDeleter(p)
		} else {
			tmpl, err := text.ParseTemplate(p, rule.Replacement)
			if err != nil {
				return nil, errors.Errorf("rule %s: %w", rule.label(i), err)
			}
			t = text.NewReplacer(p, tmpl)
		}

		pipeline = append(pipeline, text.Rule{
			Name:        rule.Name,
			Transformer: t,
			Files:       rule.Files,
		})
	}

	return pipeline, nil
}

func (r Rule) label(i int) string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("#%d", i+1)
}
