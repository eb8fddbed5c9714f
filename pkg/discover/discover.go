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
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultExtension is the suffix of LookML files
const DefaultExtension = ".lkml"

// ErrRootNotFound is returned when a caller-supplied root does not exist
var ErrRootNotFound = errors.Base("path does not exist")

// 🔧 Options controls which files are discovered
type Options struct {
	// Extension is the exact final suffix a file must have, leading dot included
	Extension string

	// Exclude holds doublestar patterns matched against the slash-separated
	// path of every descendant, relative to the root it was found under
	Exclude []string
}

// 🔍 ValidateRoots checks that every root exists before anything is processed
func ValidateRoots(roots []string) error {
	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			if os.IsNotExist(err) {
				return errors.Errorf("%w: %s", ErrRootNotFound, root)
			}
			return errors.Errorf("checking %s: %w", root, err)
		}
	}
	return nil
}

// 🎯 Discover walks roots depth-first and returns the files whose suffix is
// opts.Extension, in traversal order.
//
// Symbolic links are followed. Every directory is listed at most once, so link
// cycles terminate.
func Discover(ctx context.Context, roots []string, opts Options) ([]string, error) {
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}

	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	w := &walker{
		opts:    opts,
		visited: make(map[string]struct{}),
		logger:  zerolog.Ctx(ctx),
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.Errorf("checking %s: %w", root, err)
		}
		if err := w.visit(root, root, info); err != nil {
			return nil, err
		}
	}

	return w.files, nil
}

// 🚶 walker carries the state of a single Discover call
type walker struct {
	opts    Options
	visited map[string]struct{}
	files   []string
	logger  *zerolog.Logger
}

// visit handles a path below root whose (link-following) stat is info
func (w *walker) visit(root, path string, info os.FileInfo) error {
	if !info.IsDir() {
		if Matches(path, w.opts.Extension) {
			w.files = append(w.files, path)
		}
		return nil
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return errors.Errorf("resolving %s: %w", path, err)
	}
	if abs, err := filepath.Abs(resolved); err == nil {
		resolved = abs
	}
	if _, seen := w.visited[resolved]; seen {
		w.logger.Debug().Str("path", path).Str("resolved", resolved).Msg("directory already visited")
		return nil
	}
	w.visited[resolved] = struct{}{}

	entries, err := os.ReadDir(path)
	if err != nil {
		return errors.Errorf("listing %s: %w", path, err)
	}

	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())

		if w.excluded(root, child) {
			w.logger.Debug().Str("path", child).Msg("excluded by pattern")
			continue
		}

		childInfo, err := os.Stat(child)
		if err != nil {
			if os.IsNotExist(err) {
				w.logger.Debug().Str("path", child).Msg("skipping dangling symlink")
				continue
			}
			return errors.Errorf("checking %s: %w", child, err)
		}

		if err := w.visit(root, child, childInfo); err != nil {
			return err
		}
	}

	return nil
}

// excluded reports whether path, taken relative to root, matches one of the
// exclude patterns
func (w *walker) excluded(root, path string) bool {
	if len(w.opts.Exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	slashed := filepath.ToSlash(rel)
	for _, pattern := range w.opts.Exclude {
		// patterns were validated up front
		if ok, _ := doublestar.Match(pattern, slashed); ok {
			return true
		}
	}
	return false
}

// 🏷️ Suffix returns the final dotted segment of the base name of path.
//
// A name whose only dot is its first character (".lkml") or whose last
// character is a dot ("a.") has no suffix.
func Suffix(path string) string {
	name := filepath.Base(path)
	i := strings.LastIndex(name, ".")
	if 0 < i && i < len(name)-1 {
		return name[i:]
	}
	return ""
}

// Matches reports whether path's suffix is exactly ext
func Matches(path, ext string) bool {
	return Suffix(path) == ext
}
