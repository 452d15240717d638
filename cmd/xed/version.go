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
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// VersionInfo describes the build of the running xed binary
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Revision  string `json:"revision,omitempty"`
	Time      string `json:"time,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// GetVersionInfo reads the version and VCS stamp embedded by the Go toolchain
func GetVersionInfo() *VersionInfo {
	info := &VersionInfo{
		Version:   "dev",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if v := buildInfo.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Revision = setting.Value
		case "vcs.time":
			info.Time = setting.Value
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}

	return info
}

// FormatVersion renders info for humans; unknown VCS fields are left out
func FormatVersion(info *VersionInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "xed %s\n", info.Version)
	if info.Revision != "" {
		rev := info.Revision
		if info.Modified {
			rev += " (modified)"
		}
		fmt.Fprintf(&b, "  revision: %s\n", rev)
	}
	if info.Time != "" {
		fmt.Fprintf(&b, "  built:    %s\n", info.Time)
	}
	fmt.Fprintf(&b, "  go:       %s\n", info.GoVersion)
	fmt.Fprintf(&b, "  platform: %s\n", info.Platform)
	return b.String()
}

func writeVersion(w io.Writer, info *VersionInfo, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(info); err != nil {
			return errors.Errorf("encoding version: %w", err)
		}
		return nil
	}

	_, err := io.WriteString(w, FormatVersion(info))
	return err
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeVersion(cmd.OutOrStdout(), GetVersionInfo(), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")

	return cmd
}
