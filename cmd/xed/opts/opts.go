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

package opts

import (
	"context"
	"io"
	"slices"

	"github.com/walteh/xed/pkg/log"
	"github.com/walteh/xed/pkg/operation"
)

// RootOpts carries what every subcommand shares
type RootOpts struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Set by the root command once flags are parsed
	Logger  *log.Logger
	Exclude []string
}

// 🎮 Router builds the output router for one invocation, reporting through
// the logger carried by ctx. Extra exclude globs are added to the ones given
// on the command line.
func (o *RootOpts) Router(ctx context.Context, inPlace bool, exclude ...string) (*operation.Router, error) {
	return operation.New(operation.Options{
		Stdin:   o.Stdin,
		Stdout:  o.Stdout,
		Logger:  log.FromContext(ctx),
		InPlace: inPlace,
		Exclude: append(slices.Clone(o.Exclude), exclude...),
	})
}
