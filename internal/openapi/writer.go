// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/routedoc/routedoc/pkg/types"
)

// Encoding is the serialization of an OpenAPI document.
type Encoding string

const (
	EncodingYAML Encoding = "yaml"
	EncodingJSON Encoding = "json"
)

// EncodingForPath picks the encoding from a file extension, defaulting to
// YAML.
func EncodingForPath(path string) Encoding {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return EncodingJSON
	}
	return EncodingYAML
}

// Writer serializes OpenAPI documents.
type Writer struct {
	// Indent is the number of spaces per level (default: 2)
	Indent int
}

// NewWriter creates a new Writer with default settings.
func NewWriter() *Writer {
	return &Writer{
		Indent: 2,
	}
}

// Write encodes doc to out.
func (w *Writer) Write(doc *types.OpenAPI, out io.Writer, enc Encoding) error {
	switch enc {
	case EncodingYAML, "yml", "":
		return w.WriteYAML(doc, out)
	case EncodingJSON:
		return w.WriteJSON(doc, out)
	}
	return fmt.Errorf("unsupported encoding: %s", enc)
}

// WriteYAML writes an OpenAPI document as YAML to the given writer.
func (w *Writer) WriteYAML(doc *types.OpenAPI, out io.Writer) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(w.indent())
	defer encoder.Close()

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// WriteJSON writes an OpenAPI document as JSON to the given writer.
func (w *Writer) WriteJSON(doc *types.OpenAPI, out io.Writer) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", w.indent()))

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// Marshal returns the encoded document.
func (w *Writer) Marshal(doc *types.OpenAPI, enc Encoding) ([]byte, error) {
	var buf bytes.Buffer
	if err := w.Write(doc, &buf, enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes an OpenAPI document to path, creating parent
// directories. The encoding follows the file extension.
func (w *Writer) WriteFile(doc *types.OpenAPI, path string) error {
	data, err := w.Marshal(doc, EncodingForPath(path))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (w *Writer) indent() int {
	if w.Indent <= 0 {
		return 2
	}
	return w.Indent
}

// ReadFile reads an OpenAPI document from a file.
// The format is inferred from the file extension.
func ReadFile(path string) (*types.OpenAPI, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var doc types.OpenAPI
	switch EncodingForPath(path) {
	case EncodingJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	return &doc, nil
}
