// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package render

import (
	"io"

	"github.com/routedoc/routedoc/internal/openapi"
	"github.com/routedoc/routedoc/pkg/types"
)

// OpenAPIRenderer writes an OpenAPI 3.0 document.
type OpenAPIRenderer struct {
	Builder  *openapi.Builder
	Writer   *openapi.Writer
	Encoding openapi.Encoding
}

// NewOpenAPIRenderer creates a YAML OpenAPI renderer.
func NewOpenAPIRenderer() *OpenAPIRenderer {
	return &OpenAPIRenderer{
		Builder:  openapi.NewBuilder(),
		Writer:   openapi.NewWriter(),
		Encoding: openapi.EncodingYAML,
	}
}

func (r *OpenAPIRenderer) Name() string      { return "openapi" }
func (r *OpenAPIRenderer) Aliases() []string { return []string{"swagger"} }

// Extension implements Renderer.
func (r *OpenAPIRenderer) Extension() string {
	if r.Encoding == openapi.EncodingJSON {
		return ".json"
	}
	return ".yaml"
}

// WithEncoding returns a copy of r that writes enc.
func (r *OpenAPIRenderer) WithEncoding(enc openapi.Encoding) *OpenAPIRenderer {
	cp := *r
	cp.Encoding = enc
	return &cp
}

// Render implements Renderer.
func (r *OpenAPIRenderer) Render(doc *types.Documentation, w io.Writer) error {
	spec, err := r.Builder.Build(doc)
	if err != nil {
		return err
	}
	return r.Writer.Write(spec, w, r.Encoding)
}
