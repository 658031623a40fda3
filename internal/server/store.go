// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package server

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/routedoc/routedoc/internal/render"
	"github.com/routedoc/routedoc/pkg/types"
)

// ErrNoDocument is returned when the backing file does not exist yet.
var ErrNoDocument = errors.New("documentation file not found")

// Store reads and writes one documentation JSON file.
// Update calls are serialized; writes replace the file atomically.
type Store struct {
	mu   sync.Mutex
	path string
	json *render.JSONRenderer
}

// NewStore creates a Store backed by path.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		json: render.NewJSONRenderer(),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the current document.
func (s *Store) Load() (*types.Documentation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *Store) load() (*types.Documentation, error) {
	doc, err := render.ReadJSONFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoDocument
	}
	return doc, err
}

// Replace overwrites the document, recomputing its endpoint total.
func (s *Store) Replace(doc *types.Documentation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(doc)
}

// Update loads the document, applies fn and saves the result.
// Nothing is written if fn returns an error.
func (s *Store) Update(fn func(*types.Documentation) error) (*types.Documentation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	if err := fn(doc); err != nil {
		return nil, err
	}
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Store) save(doc *types.Documentation) error {
	if doc.Endpoints == nil {
		doc.Endpoints = []types.Endpoint{}
	}
	doc.TotalEndpoints = len(doc.Endpoints)

	var buf bytes.Buffer
	if err := s.json.Render(doc, &buf); err != nil {
		return err
	}
	return writeFileAtomic(s.path, buf.Bytes())
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
