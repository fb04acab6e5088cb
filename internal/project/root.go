package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ManifestName is looked up in the working directory and its parents.
const ManifestName = "exprc.toml"

// FindManifest returns the nearest exprc.toml at or above startDir.
// Reaching the filesystem root without a match is not an error.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for prev := ""; dir != prev; prev, dir = dir, filepath.Dir(dir) {
		path = filepath.Join(dir, ManifestName)
		info, statErr := os.Stat(path)
		switch {
		case statErr == nil && !info.IsDir():
			return path, true, nil
		case statErr != nil && !errors.Is(statErr, fs.ErrNotExist):
			return "", false, fmt.Errorf("failed to stat %q: %w", path, statErr)
		}
	}
	return "", false, nil
}

// FindProjectRoot is the directory holding the nearest exprc.toml.
func FindProjectRoot(startDir string) (root string, ok bool, err error) {
	path, ok, err := FindManifest(startDir)
	if !ok {
		return "", false, err
	}
	return filepath.Dir(path), true, nil
}
