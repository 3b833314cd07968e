package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/testsel/testsel/pkg/log"
)

// maxTraversalDepth prevents infinite loops during directory traversal.
const maxTraversalDepth = 100

// FindConfigFile searches for the config file from workingDir up to the repository root.
// The repository root is the first directory containing `.git`; without one the search stops at the
// filesystem root. Returns an empty string if no config file is found.
func FindConfigFile(ctx context.Context, l log.Logger, workingDir string) (string, error) {
	currentDir, err := filepath.Abs(workingDir)
	if err != nil {
		return "", err
	}

	for range maxTraversalDepth {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		path := filepath.Join(currentDir, ConfigFileName)

		stat, err := os.Stat(path)

		switch {
		case err == nil && !stat.IsDir():
			l.Debugf("Found config file: %s", path)
			return path, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			l.Warnf("Error accessing %s: %v", path, err)
		}

		if isRepoRoot(currentDir) {
			l.Debugf("Reached repository root %s", currentDir)
			break
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	l.Debugf("No %s found from %s", ConfigFileName, workingDir)

	return "", nil
}

// isRepoRoot reports whether dir contains a `.git` directory, or a `.git` file in a worktree.
func isRepoRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

func fileExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}
