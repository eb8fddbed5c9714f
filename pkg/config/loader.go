package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultFileNames lists the config files looked up in a directory, in order
var DefaultFileNames = []string{
	".lktk.yaml",
	".lktk.yml",
	".lktk.hcl",
	".lktk.json",
}

// 🔍 Find returns the first default config file present in dir
func Find(dir string) (string, bool, error) {
	for _, name := range DefaultFileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, true, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", false, errors.Errorf("checking %s: %w", path, err)
		}
	}
	return "", false, nil
}

// 🎯 Resolve loads path when it is set; otherwise it loads the first default
// config file found in dir, falling back to Default() when there is none.
func Resolve(ctx context.Context, path string, dir string) (*Config, error) {
	if path != "" {
		return Load(ctx, path)
	}

	found, ok, err := Find(dir)
	if err != nil {
		return nil, errors.Errorf("finding config file: %w", err)
	}
	if !ok {
		zerolog.Ctx(ctx).Debug().Str("dir", dir).Msg("no config file found, using defaults")
		return Default(), nil
	}

	return Load(ctx, found)
}
