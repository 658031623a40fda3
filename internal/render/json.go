// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/routedoc/routedoc/pkg/types"
)

// JSONRenderer writes the Documentation as indented JSON.
type JSONRenderer struct {
	// Indent is the number of spaces per level (default: 2)
	Indent int
}

// NewJSONRenderer creates a JSONRenderer with default settings.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{Indent: 2}
}

func (r *JSONRenderer) Name() string      { return "json" }
func (r *JSONRenderer) Extension() string { return ".json" }

// Render implements Renderer.
func (r *JSONRenderer) Render(doc *types.Documentation, w io.Writer) error {
	indent := r.Indent
	if indent <= 0 {
		indent = 2
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// ReadJSON decodes a Documentation previously written by JSONRenderer.
func ReadJSON(r io.Reader) (*types.Documentation, error) {
	var doc types.Documentation
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode documentation: %w", err)
	}
	if doc.Endpoints == nil {
		doc.Endpoints = []types.Endpoint{}
	}
	return &doc, nil
}

// ReadJSONFile reads a Documentation from a JSON file.
func ReadJSONFile(path string) (*types.Documentation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return ReadJSON(f)
}
