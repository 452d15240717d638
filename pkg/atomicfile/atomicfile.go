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

// Package atomicfile replaces file contents through a temporary file and a rename.
//
// The temporary file lives next to the target so the rename stays on one
// filesystem. Until the rename succeeds the target is untouched, and on every
// failure path the temporary file is removed.
package atomicfile

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// WriteFunc writes the new contents of the target.
type WriteFunc func(w io.Writer) error

// Write replaces path with whatever fn writes.
// The target keeps its permission bits. A cancelled ctx aborts before the rename.
// When path is a symlink the file it points to is replaced and the link stays.
func Write(ctx context.Context, path string, fn WriteFunc) error {
	logger := zerolog.Ctx(ctx)

	if err := ctx.Err(); err != nil {
		return err
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return errors.Errorf("resolving target: %w", err)
	}
	if resolved != path {
		logger.Debug().Str("path", path).Str("target", resolved).Msg("writing through symlink")
		path = resolved
	}

	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("stat target: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".xed-*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if committed {
			return
		}
		_ = tmp.Close()
		if rerr := os.Remove(tmpName); rerr != nil && !os.IsNotExist(rerr) {
			logger.Debug().Err(rerr).Str("temp", tmpName).Msg("removing temp file")
		}
		logger.Debug().Str("path", path).Str("temp", tmpName).Msg("discarded temp file")
	}()

	if err := fn(tmp); err != nil {
		return err
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		return errors.Errorf("setting mode on temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return errors.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Errorf("renaming temp file onto %s: %w", path, err)
	}
	committed = true

	logger.Debug().Str("path", path).Msg("replaced file")
	return nil
}

// WriteBytes replaces path with data.
func WriteBytes(ctx context.Context, path string, data []byte) error {
	return Write(ctx, path, func(w io.Writer) error {
		if _, err := w.Write(data); err != nil {
			return errors.Errorf("writing temp file: %w", err)
		}
		return nil
	})
}
