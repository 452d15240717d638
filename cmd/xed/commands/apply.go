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

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/xed/cmd/xed/opts"
	"github.com/walteh/xed/pkg/config"
	"gitlab.com/tozd/go/errors"
)

func NewApplyCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		inPlace   bool
		rulesFile string
	)

	cmd := &cobra.Command{
		Use:     "apply --rules <file> [file ...]",
		Aliases: []string{"a"},
		Short:   "Apply the replace and delete rules of a rules file",
		Long: `Apply runs every rule of a YAML, HCL or JSON rules file, in order, over
each file or over standard input when no file is given. Each rule sees the
output of the one before it.

Excludes listed in the rules file are added to --exclude.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rulesFile == "" {
				return NewUsageError(cmd, errors.New("--rules is required"))
			}

			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "apply").Str("rules", rulesFile).Logger().WithContext(cmd.Context())

			rules, err := config.Load(ctx, rulesFile)
			if err != nil {
				return errors.Errorf("loading %s: %w", rulesFile, err)
			}

			pipeline, err := rules.Pipeline()
			if err != nil {
				return errors.Errorf("loading %s: %w", rulesFile, err)
			}

			router, err := opts.Router(ctx, inPlace, rules.Exclude...)
			if err != nil {
				return err
			}

			return router.Modify(ctx, pipeline, args)
		},
	}

	cmd.Flags().StringVar(&rulesFile, "rules", "", "rules file (.yaml, .yml, .hcl or .json)")
	cmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, "edit files in place")

	return cmd
}
