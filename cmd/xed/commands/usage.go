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
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// ⚠️ UsageError reports a command line that could not be understood
type UsageError struct {
	// Usage text of the command that rejected the arguments
	Usage string
	Err   error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// NewUsageError wraps err with the usage text of cmd
func NewUsageError(cmd *cobra.Command, err error) error {
	return &UsageError{
		Usage: cmd.UsageString(),
		Err:   err,
	}
}

// 🔢 minArgs requires at least n positional arguments, named for the message
func minArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return NewUsageError(cmd, errors.Errorf("missing argument <%s>", names[len(args)]))
		}
		return nil
	}
}

// FlagError turns pflag parse failures into usage errors
func FlagError(cmd *cobra.Command, err error) error {
	return NewUsageError(cmd, errors.WithStack(err))
}
