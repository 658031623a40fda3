// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package openapi converts a Documentation into an OpenAPI 3.0 document and
// reads, writes and validates such documents.
package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/routedoc/routedoc/internal/scanner"
	"github.com/routedoc/routedoc/internal/util"
	"github.com/routedoc/routedoc/pkg/types"
)

// DefaultVersion is the OpenAPI version emitted by the Builder.
const DefaultVersion = "3.0.3"

// Security scheme names used in components.
const (
	BearerScheme = "bearerAuth"
	APIKeyScheme = "apiKeyAuth"
	BasicScheme  = "basicAuth"
)

// ignoredHeaders are described by the OpenAPI document itself rather than as
// header parameters.
var ignoredHeaders = map[string]bool{
	"authorization": true,
	"content-type":  true,
	"accept":        true,
}

// Builder constructs OpenAPI documents from a Documentation.
type Builder struct {
	// Version is the OpenAPI version string
	Version string

	// ServerURL is the single server entry; paths are relative to it
	ServerURL string
}

// NewBuilder creates a Builder emitting OpenAPI 3.0.3 with the API root as
// the server URL.
func NewBuilder() *Builder {
	return &Builder{
		Version:   DefaultVersion,
		ServerURL: scanner.APIRoot,
	}
}

// Build creates an OpenAPI document. Paths are stripped of the API root.
// When two endpoints share a method and path, the first one wins.
func (b *Builder) Build(doc *types.Documentation) (*types.OpenAPI, error) {
	out := &types.OpenAPI{
		OpenAPI: b.Version,
		Info: types.OpenAPIInfo{
			Title:       doc.Info.Title,
			Description: doc.Info.Description,
			Version:     doc.Info.Version,
		},
		Servers: []types.Server{{URL: b.ServerURL, Description: "API root"}},
		Paths:   make(map[string]types.PathItem),
	}

	schemes := make(map[string]types.SecurityScheme)
	tagSet := make(map[string]bool)

	for _, ep := range doc.Endpoints {
		path := StripRoot(ep.Path)
		item := out.Paths[path]

		slot, err := operationSlot(&item, ep.Method)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s: %w", ep.Key(), err)
		}
		if *slot != nil {
			continue
		}

		op := b.endpointToOperation(ep, path)
		if name, scheme, ok := securityScheme(ep.Authentication); ok {
			schemes[name] = scheme
			op.Security = []map[string][]string{{name: {}}}
		}
		for _, tag := range ep.Tags {
			tagSet[tag] = true
		}

		*slot = op
		out.Paths[path] = item
	}

	if len(schemes) > 0 {
		out.Components = &types.Components{SecuritySchemes: schemes}
	}
	out.Tags = buildTags(tagSet)

	return out, nil
}

// StripRoot removes the API root prefix from a route template, leaving "/"
// for the root itself.
func StripRoot(path string) string {
	if path == scanner.APIRoot {
		return "/"
	}
	if strings.HasPrefix(path, scanner.APIRoot+"/") {
		return strings.TrimPrefix(path, scanner.APIRoot)
	}
	return path
}

func operationSlot(item *types.PathItem, method string) (**types.Operation, error) {
	switch strings.ToUpper(method) {
	case types.MethodGet:
		return &item.Get, nil
	case types.MethodPost:
		return &item.Post, nil
	case types.MethodPut:
		return &item.Put, nil
	case types.MethodDelete:
		return &item.Delete, nil
	case types.MethodPatch:
		return &item.Patch, nil
	case types.MethodOptions:
		return &item.Options, nil
	case types.MethodHead:
		return &item.Head, nil
	}
	return nil, fmt.Errorf("unsupported HTTP method: %s", method)
}

// endpointToOperation converts an Endpoint to an OpenAPI Operation.
func (b *Builder) endpointToOperation(ep types.Endpoint, path string) *types.Operation {
	op := &types.Operation{
		Tags:        ep.Tags,
		Summary:     ep.Title,
		Description: ep.Description,
		OperationID: util.OperationID(ep.Method, path),
		Responses:   make(map[string]types.ResponseObject),
		XSourceFile: ep.File,
	}

	for _, p := range ep.Parameters {
		if p.In != types.InPath && p.In != types.InQuery {
			continue
		}
		op.Parameters = append(op.Parameters, types.ParameterObject{
			Name:        p.Name,
			In:          p.In,
			Description: p.Description,
			Required:    p.Required || p.In == types.InPath,
			Schema:      parameterSchema(p.Type),
			Example:     p.Example,
		})
	}
	for _, h := range ep.Headers {
		if ignoredHeaders[strings.ToLower(h.Name)] {
			continue
		}
		param := types.ParameterObject{
			Name:        h.Name,
			In:          types.InHeader,
			Description: h.Description,
			Required:    h.Required,
			Schema:      &types.Schema{Type: "string"},
		}
		if h.Example != "" {
			param.Example = types.String(h.Example).Ptr()
		}
		op.Parameters = append(op.Parameters, param)
	}

	if rb := ep.RequestBody; rb != nil {
		contentType := rb.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		schema := rb.Schema
		if schema == nil {
			schema = types.ObjectSchema()
		}
		op.RequestBody = &types.RequestBodyObject{
			Required: true,
			Content: map[string]types.MediaType{
				contentType: {Schema: schema, Example: rb.Example},
			},
		}
	}

	for code, resp := range ep.Responses {
		obj := types.ResponseObject{Description: resp.Description}
		if obj.Description == "" {
			obj.Description = "Response " + code
		}
		if resp.Example != nil {
			obj.Content = map[string]types.MediaType{
				"application/json": {Example: resp.Example},
			}
		}
		op.Responses[code] = obj
	}
	if len(op.Responses) == 0 {
		op.Responses["default"] = types.ResponseObject{Description: "Default response"}
	}

	return op
}

// parameterSchema maps an inferred type tag to a parameter schema.
func parameterSchema(typ string) *types.Schema {
	switch t := strings.ToLower(typ); t {
	case "string", "number", "integer", "boolean", "object":
		return &types.Schema{Type: t}
	case "array":
		return &types.Schema{Type: "array", Items: &types.Schema{Type: "string"}}
	case "int", "float":
		return &types.Schema{Type: "number"}
	case "bool":
		return &types.Schema{Type: "boolean"}
	}
	return &types.Schema{Type: "string"}
}

// securityScheme returns the component scheme for a required auth record.
func securityScheme(auth types.AuthSpec) (string, types.SecurityScheme, bool) {
	if !auth.Required {
		return "", types.SecurityScheme{}, false
	}
	switch auth.Type {
	case types.AuthAPIKey:
		name := auth.HeaderName
		if name == "" {
			name = "X-API-Key"
		}
		return APIKeyScheme, types.SecurityScheme{
			Type:        "apiKey",
			Name:        name,
			In:          "header",
			Description: auth.Description,
		}, true
	case types.AuthBasic:
		return BasicScheme, types.SecurityScheme{
			Type:        "http",
			Scheme:      "basic",
			Description: auth.Description,
		}, true
	}
	return BearerScheme, types.SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: "JWT",
		Description:  auth.Description,
	}, true
}

func buildTags(set map[string]bool) []types.Tag {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	tags := make([]types.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, types.Tag{Name: name})
	}
	return tags
}

// SortedPaths returns a sorted list of path keys for deterministic output.
func SortedPaths(paths map[string]types.PathItem) []string {
	keys := make([]string, 0, len(paths))
	for k := range paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
