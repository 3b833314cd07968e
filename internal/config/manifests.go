package config

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mattn/go-zglob"
	"github.com/testsel/testsel/internal/errors"
)

// ManifestPaths expands the `tests` attribute into manifest file paths.
// Relative entries are resolved against the directory of the config file, and glob patterns
// (including `**`) are expanded. An entry that matches no file is an error.
func (cfg *Config) ManifestPaths() ([]string, error) {
	return ExpandManifestPaths(filepath.Dir(cfg.SourceFile), cfg.Tests)
}

// ExpandManifestPaths resolves each pattern against baseDir and expands it.
func ExpandManifestPaths(baseDir string, patterns []string) ([]string, error) {
	var paths []string

	for _, pattern := range patterns {
		globPath := pattern
		if !filepath.IsAbs(globPath) {
			globPath = filepath.Join(baseDir, globPath)
		}

		matches, err := expand(globPath)
		if err != nil {
			return nil, err
		}

		if len(matches) == 0 {
			return nil, errors.New(NewNoManifestMatchError(pattern, baseDir))
		}

		paths = append(paths, matches...)
	}

	return paths, nil
}

func expand(globPath string) ([]string, error) {
	if !strings.ContainsAny(globPath, "*?[{") {
		if !fileExists(globPath) {
			return nil, nil
		}

		return []string{globPath}, nil
	}

	matches, err := zglob.Glob(globPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, errors.New(err)
	}

	matches = slices.DeleteFunc(matches, func(match string) bool { return !fileExists(match) })
	slices.Sort(matches)

	return matches, nil
}
