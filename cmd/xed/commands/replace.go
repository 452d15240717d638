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
	"github.com/walteh/xed/pkg/text"
)

func NewReplaceCmd(opts *opts.RootOpts) *cobra.Command {
	var inPlace bool

	cmd := &cobra.Command{
		Use:     "replace <regexp> <replacement> [file ...]",
		Aliases: []string{"r"},
		Short:   "Replace every match of a regular expression",
		Long: `Replace substitutes every non-overlapping match of <regexp> with
<replacement> in each file, or in standard input when no file is given.

The pattern is matched in multiline mode and "." also matches newlines.
The replacement may refer to groups as \1..\99, \g<N> or \g<name>.

Results go to standard output unless --in-place is set, in which case
each file is rewritten atomically.`,
		Args: minArgs("regexp", "replacement"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "replace").Logger().WithContext(cmd.Context())

			p, err := text.Compile(args[0])
			if err != nil {
				return err
			}
			tmpl, err := text.ParseTemplate(p, args[1])
			if err != nil {
				return err
			}

			router, err := opts.Router(ctx, inPlace)
			if err != nil {
				return err
			}

			return router.Modify(ctx, text.NewReplacer(p, tmpl), args[2:])
		},
	}

	cmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, "edit files in place")

	return cmd
}
