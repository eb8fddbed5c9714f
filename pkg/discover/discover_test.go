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

package discover

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

// 🧪 writeTree creates every file in files (relative to root) with dummy content
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("view: x {}\n"), 0644))
	}
}

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return logger.WithContext(context.Background())
}

func rel(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func TestSuffix(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "report.view.lkml", want: ".lkml"},
		{path: "report.lkml.bak", want: ".bak"},
		{path: "dir/model.lkml", want: ".lkml"},
		{path: "noext", want: ""},
		{path: ".lkml", want: ""},
		{path: "trailing.", want: ""},
		{path: "a.b.c.lkml", want: ".lkml"},
		{path: "dir.lkml/file", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Suffix(tt.path))
		})
	}
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("report.view.lkml", ".lkml"), "multi-part extensions should match on the final suffix")
	assert.False(t, Matches("report.lkml.bak", ".lkml"), "backup files should not match")
	assert.False(t, Matches("report.LKML", ".lkml"), "matching is case sensitive")
}

func TestDiscover(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		roots func(root string) []string
		opts  Options
		want  []string
	}{
		{
			name: "nested_directories",
			files: []string{
				"model.lkml",
				"README.md",
				"views/orders.view.lkml",
				"views/orders.view.lkml.bak",
				"views/deep/er/still.lkml",
				"views/deep/er/notes.txt",
			},
			roots: func(root string) []string { return []string{root} },
			want: []string{
				"model.lkml",
				"views/deep/er/still.lkml",
				"views/orders.view.lkml",
			},
		},
		{
			name:  "file_root_matching",
			files: []string{"a.lkml", "b.lkml"},
			roots: func(root string) []string { return []string{filepath.Join(root, "b.lkml")} },
			want:  []string{"b.lkml"},
		},
		{
			name:  "file_root_not_matching",
			files: []string{"a.yaml"},
			roots: func(root string) []string { return []string{filepath.Join(root, "a.yaml")} },
			want:  []string{},
		},
		{
			name:  "root_order_is_preserved",
			files: []string{"a/1.lkml", "b/2.lkml", "c.lkml"},
			roots: func(root string) []string {
				return []string{
					filepath.Join(root, "c.lkml"),
					filepath.Join(root, "b"),
					filepath.Join(root, "a"),
				}
			},
			want: []string{"c.lkml", "b/2.lkml", "a/1.lkml"},
		},
		{
			name:  "empty_directory",
			files: []string{},
			roots: func(root string) []string { return []string{root} },
			want:  []string{},
		},
		{
			name:  "custom_extension",
			files: []string{"a.lkml", "b.lookml"},
			roots: func(root string) []string { return []string{root} },
			opts:  Options{Extension: ".lookml"},
			want:  []string{"b.lookml"},
		},
		{
			name: "exclude_patterns",
			files: []string{
				"keep.lkml",
				"generated/skip.lkml",
				"views/also_skip.gen.lkml",
				"views/keep.view.lkml",
			},
			roots: func(root string) []string { return []string{root} },
			opts:  Options{Exclude: []string{"**/generated", "**/*.gen.lkml"}},
			want:  []string{"keep.lkml", "views/keep.view.lkml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, tt.files...)

			got, err := Discover(testContext(t), tt.roots(root), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rel(t, root, got))
		})
	}
}

func TestDiscover_ExplicitRootIsNeverExcluded(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "generated/x.lkml")

	got, err := Discover(testContext(t), []string{filepath.Join(root, "generated", "x.lkml")}, Options{
		Exclude: []string{"**/generated/**"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"generated/x.lkml"}, rel(t, root, got))
}

func TestDiscover_InvalidExcludePattern(t *testing.T) {
	_, err := Discover(testContext(t), nil, Options{Exclude: []string{"[unterminated"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestDiscover_NoRoots(t *testing.T) {
	got, err := Discover(testContext(t), nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

// 🧪 TestDiscover_SymlinkCycle checks that a link pointing back up the tree terminates
func TestDiscover_SymlinkCycle(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a/one.lkml")

	if err := os.Symlink(root, filepath.Join(root, "a", "loop")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	got, err := Discover(testContext(t), []string{root}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a/one.lkml"}, rel(t, root, got))
}

func TestDiscover_SymlinkedDirectoryIsFollowed(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	writeTree(t, other, "shared.lkml")

	if err := os.Symlink(other, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	got, err := Discover(testContext(t), []string{root}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"linked/shared.lkml"}, rel(t, root, got))
}

func TestDiscover_DanglingSymlinkIsSkipped(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "ok.lkml")

	if err := os.Symlink(filepath.Join(root, "missing.lkml"), filepath.Join(root, "broken.lkml")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	got, err := Discover(testContext(t), []string{root}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"ok.lkml"}, rel(t, root, got))
}

func TestValidateRoots(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.lkml")

	require.NoError(t, ValidateRoots(nil))
	require.NoError(t, ValidateRoots([]string{root, filepath.Join(root, "a.lkml")}))

	missing := filepath.Join(root, "nope")
	err := ValidateRoots([]string{root, missing})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRootNotFound), "error should wrap ErrRootNotFound")
	assert.Contains(t, err.Error(), missing)
}
