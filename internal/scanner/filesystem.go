// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FileSystem is the filesystem surface the scanner reads through.
type FileSystem interface {
	// Exists reports whether path exists.
	Exists(path string) bool

	// ListFiles returns root-relative, slash-separated paths of regular files
	// below root that match pattern and none of the ignore patterns, sorted
	// lexicographically.
	ListFiles(root, pattern string, ignore []string) ([]string, error)

	// ReadText returns the content of a file as text.
	ReadText(path string) (string, error)
}

// OSFileSystem implements FileSystem on the local disk.
type OSFileSystem struct{}

// Exists reports whether path exists.
func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadText reads the file at path.
func (OSFileSystem) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ListFiles walks root and returns the files matching pattern.
func (OSFileSystem) ListFiles(root, pattern string, ignore []string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	var files []string
	err := filepath.WalkDir(root, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			if filePath == root {
				return err
			}
			// Skip inaccessible paths
			return nil
		}

		relPath, relErr := filepath.Rel(root, filePath)
		if relErr != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if IgnoresDir(relPath, ignore) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if Ignores(relPath, ignore) {
			return nil
		}
		if matched, _ := doublestar.Match(pattern, relPath); matched {
			files = append(files, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// IgnoresDir reports whether the root-relative directory relPath is excluded
// by patterns, so a walk can skip it entirely.
func IgnoresDir(relPath string, patterns []string) bool {
	if relPath == "" || relPath == "." {
		return false
	}

	for _, pattern := range patterns {
		// "node_modules/**" excludes the node_modules directory itself
		dirPattern := strings.TrimSuffix(pattern, "/**")
		if matched, _ := doublestar.Match(dirPattern, relPath); matched && dirPattern != pattern {
			return true
		}

		// Also check if the pattern would match any file in this directory
		if matched, _ := doublestar.Match(pattern, relPath+"/dummy.ts"); matched && strings.HasSuffix(pattern, "/**") {
			return true
		}
	}

	return false
}

// Ignores reports whether the root-relative file path matches any pattern.
func Ignores(path string, patterns []string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			// Invalid pattern, skip
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
