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

func NewSearchCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search <regexp> [file ...]",
		Aliases: []string{"s"},
		Short:   "List the files that contain a match",
		Long: `Search prints the path of every file containing at least one match of
<regexp>, sorted, one per line. Nothing is printed when no file matches.`,
		Args: minArgs("regexp"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "search").Logger().WithContext(cmd.Context())

			p, err := text.Compile(args[0])
			if err != nil {
				return err
			}

			router, err := opts.Router(ctx, false)
			if err != nil {
				return err
			}

			return router.Search(ctx, text.NewSearcher(p), args[1:])
		},
	}

	return cmd
}
