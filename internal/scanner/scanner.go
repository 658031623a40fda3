// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package scanner

import (
	"errors"
	"fmt"
	"path"
	"sort"
)

// ErrRootNotFound is returned when the scan root does not exist.
var ErrRootNotFound = errors.New("path does not exist")

// RootNotFoundError reports a missing scan root.
type RootNotFoundError struct {
	Path string
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("path does not exist: %s", e.Path)
}

// Unwrap lets errors.Is match ErrRootNotFound.
func (e *RootNotFoundError) Unwrap() error {
	return ErrRootNotFound
}

// DefaultIgnore is applied when Config.Ignore is empty.
var DefaultIgnore = []string{
	"**/node_modules/**",
	"**/.next/**",
	"**/.git/**",
	"**/dist/**",
	"**/build/**",
	"**/*.test.*",
	"**/*.spec.*",
	"**/__tests__/**",
}

// Config holds scanner configuration.
type Config struct {
	// RootPath is the project directory to scan (defaults to current directory)
	RootPath string

	// Ignore are doublestar patterns, relative to RootPath, for files to skip
	Ignore []string

	// FS is the filesystem to read from (defaults to OSFileSystem)
	FS FileSystem
}

// Scanner discovers route handler files.
type Scanner struct {
	config Config

	// anchor is prepended to root-relative paths that lack the api segment
	anchor string
}

// New creates a new Scanner with the given configuration.
func New(config Config) *Scanner {
	// Apply defaults
	if config.RootPath == "" {
		config.RootPath = "."
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	if config.FS == nil {
		config.FS = OSFileSystem{}
	}

	return &Scanner{
		config: config,
		anchor: anchorPrefix(config.RootPath),
	}
}

// Root returns the configured root path.
func (s *Scanner) Root() string {
	return s.config.RootPath
}

// CheckRoot returns a *RootNotFoundError if the root path is missing.
func (s *Scanner) CheckRoot() error {
	if !s.config.FS.Exists(s.config.RootPath) {
		return &RootNotFoundError{Path: s.config.RootPath}
	}
	return nil
}

// Locate returns the root-relative paths of all handler files in
// lexicographic order. Files outside the handler naming convention are
// skipped silently.
func (s *Scanner) Locate() ([]string, error) {
	if err := s.CheckRoot(); err != nil {
		return nil, err
	}

	matches, err := s.config.FS.ListFiles(s.config.RootPath, HandlerPattern, s.config.Ignore)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", HandlerPattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		m = normalize(m)
		if IsHandlerFile(s.RoutePath(m)) {
			files = append(files, m)
		}
	}

	sort.Strings(files)
	return files, nil
}

// RoutePath returns the root-relative path rel with the root's segments
// down to the api anchor prepended when rel lacks them. URL mapping and tags
// are computed on this path.
func (s *Scanner) RoutePath(rel string) string {
	return joinAnchored(s.anchor, rel)
}

// Read returns the handler file at the root-relative path rel.
func (s *Scanner) Read(rel string) (string, error) {
	return s.config.FS.ReadText(path.Join(normalize(s.config.RootPath), rel))
}
