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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// evalContext is available to every expression in a rules file
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"nl":  cty.StringVal("\n"),
			"tab": cty.StringVal("\t"),
		},
	}
}

// 📝 Parse parses the rules from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Rules, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "rules.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Define HCL schema
	type hclRules struct {
		Exclude []string `hcl:"exclude,optional"`
		Rules   []struct {
			Name        string   `hcl:"name,label"`
			Pattern     string   `hcl:"pattern"`
			Replacement string   `hcl:"replacement,optional"`
			Delete      bool     `hcl:"delete,optional"`
			Files       []string `hcl:"files,optional"`
		} `hcl:"rule,block"`
	}

	// Decode HCL
	var hclCfg hclRules
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	rules := &Rules{
		Exclude: hclCfg.Exclude,
	}
	for _, r := range hclCfg.Rules {
		rules.Rules = append(rules.Rules, Rule{
			Name:        r.Name,
			Pattern:     r.Pattern,
			Replacement: r.Replacement,
			Delete:      r.Delete,
			Files:       r.Files,
		})
	}

	return rules, nil
}
