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

func NewDeleteCmd(opts *opts.RootOpts) *cobra.Command {
	var inPlace bool

	cmd := &cobra.Command{
		Use:     "delete <regexp> [file ...]",
		Aliases: []string{"d"},
		Short:   "Delete every match of a regular expression",
		Long: `Delete removes every non-overlapping match of <regexp> from each file,
or from standard input when no file is given. It is the same as replace
with an empty replacement.

Since "." also matches newlines, ".*" runs across lines: use "[^\n]*" or
the lazy ".*?" to stay on one line. A line-anchored pattern such as
"^foo[^\n]*$" keeps the newline that ends the line; add "\n" to the
pattern to drop the whole line.`,
		Args: minArgs("regexp"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "delete").Logger().WithContext(cmd.Context())

			p, err := text.Compile(args[0])
			if err != nil {
				return err
			}

			router, err := opts.Router(ctx, inPlace)
			if err != nil {
				return err
			}

			return router.Modify(ctx, text.NewDeleter(p), args[1:])
		},
	}

	cmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, "edit files in place")

	return cmd
}
