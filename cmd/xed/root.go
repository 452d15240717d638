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

package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/xed/cmd/xed/commands"
	"github.com/walteh/xed/cmd/xed/opts"
	"github.com/walteh/xed/pkg/glob"
	"github.com/walteh/xed/pkg/log"
	"gitlab.com/tozd/go/errors"
)

type rootFlags struct {
	debug   bool
	verbose bool
}

func newRootCmd(o *opts.RootOpts) *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "xed",
		Short: "Replace, delete or search regular expression matches in files",
		Long: `xed applies a regular expression to files, or to standard input when no
file is given, and replaces matches, deletes them or lists the files that
contain them.

Patterns are matched in multiline mode ("^" and "$" match at line breaks)
and "." also matches newlines. Directories and other non-regular files are
reported and skipped.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return commands.NewUsageError(cmd, errors.Errorf("unknown command %q", args[0]))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.NewUsageError(cmd, errors.New("missing command"))
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			o.Logger = setupLogging(o, flags)
			cmd.SetContext(log.NewContext(cmd.Context(), o.Logger))

			if err := glob.Validate(o.Exclude); err != nil {
				return commands.NewUsageError(cmd, errors.Errorf("--exclude: %w", err))
			}
			return nil
		},
	}

	addRootFlags(rootCmd, o, &flags)
	rootCmd.SetFlagErrorFunc(commands.FlagError)

	rootCmd.AddCommand(
		commands.NewReplaceCmd(o),
		commands.NewDeleteCmd(o),
		commands.NewSearchCmd(o),
		commands.NewApplyCmd(o),
		newVersionCmd(),
	)

	return rootCmd
}

func addRootFlags(cmd *cobra.Command, o *opts.RootOpts, flags *rootFlags) {
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "report every processed file on stderr")
	cmd.PersistentFlags().StringArrayVarP(&o.Exclude, "exclude", "x", nil, "skip input paths matching this glob (repeatable)")
}

func setupLogging(o *opts.RootOpts, flags rootFlags) *log.Logger {
	level := zerolog.WarnLevel
	if flags.debug {
		level = zerolog.DebugLevel
	}

	logger := log.New(o.Stderr, level)
	logger.SetVerbose(flags.verbose)
	return logger
}
