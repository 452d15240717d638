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

package atomicfile

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".xed-", "temp file left behind")
	}
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name      string
		fn        WriteFunc
		cancel    bool
		want      string
		wantError error
	}{
		{
			name: "replaces_content",
			fn: func(w io.Writer) error {
				_, err := io.WriteString(w, "new content")
				return err
			},
			want: "new content",
		},
		{
			name: "empty_content",
			fn:   func(w io.Writer) error { return nil },
			want: "",
		},
		{
			name: "writer_error_keeps_original",
			fn: func(w io.Writer) error {
				_, _ = io.WriteString(w, "half")
				return assert.AnError
			},
			want:      "original",
			wantError: assert.AnError,
		},
		{
			name: "cancelled_keeps_original",
			fn: func(w io.Writer) error {
				_, err := io.WriteString(w, "never seen")
				return err
			},
			cancel:    true,
			want:      "original",
			wantError: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "target.txt")
			require.NoError(t, os.WriteFile(path, []byte("original"), 0640))

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancel {
				cancel()
			}

			err := Write(ctx, path, tt.fn)
			if tt.wantError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantError)
			} else {
				require.NoError(t, err)
			}

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
			assertNoTempFiles(t, dir)
		})
	}
}

func TestWrite_CancelledWhileWriting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.txt")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := Write(ctx, path, func(w io.Writer) error {
		_, err := io.WriteString(w, "partial")
		cancel()
		return err
	})
	require.ErrorIs(t, err, context.Canceled)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))
	assertNoTempFiles(t, dir)
}

func TestWrite_PreservesMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0755))
	require.NoError(t, os.Chmod(path, 0755))

	require.NoError(t, WriteBytes(context.Background(), path, []byte("#!/bin/sh\necho hi\n")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\necho hi\n", string(got))
}

func TestWrite_MissingTarget(t *testing.T) {
	dir := t.TempDir()
	err := WriteBytes(context.Background(), filepath.Join(dir, "missing"), []byte("x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assertNoTempFiles(t, dir)
}

func TestWrite_Symlink(t *testing.T) {
	targetDir := t.TempDir()
	linkDir := t.TempDir()
	target := filepath.Join(targetDir, "real.txt")
	link := filepath.Join(linkDir, "link.txt")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0600))
	require.NoError(t, os.Symlink(target, link))

	require.NoError(t, WriteBytes(context.Background(), link, []byte("new")))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got), "target should be rewritten through the link")

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "link should stay a symlink")

	dest, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, dest)

	targetInfo, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), targetInfo.Mode().Perm())

	assertNoTempFiles(t, targetDir)
	assertNoTempFiles(t, linkDir)
}
