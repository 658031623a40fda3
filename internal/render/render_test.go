// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package render

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routedoc/routedoc/internal/openapi"
	"github.com/routedoc/routedoc/pkg/types"
)

func sampleDocumentation() *types.Documentation {
	endpoints := []types.Endpoint{
		{
			Method:      "GET",
			Path:        "/api/users/{id}",
			File:        "app/api/users/[id]/route.ts",
			Title:       "Get Users by ID",
			Description: "Fetch one user | by id",
			Parameters: []types.Parameter{
				{Name: "id", Type: "string", Required: true, In: types.InPath, Description: "The id path parameter"},
			},
			Headers: []types.HeaderSpec{
				{Name: "Authorization", Required: true, Description: "Bearer token"},
			},
			Responses: map[string]types.ResponseSpec{
				"200": {
					Description: "Successful response",
					Example:     types.Object(types.M("id", types.String("123"))).Ptr(),
				},
				"404": {Description: "Not found"},
			},
			Tags: []string{"users"},
			Authentication: types.AuthSpec{
				Required:      true,
				Type:          types.AuthBearer,
				HeaderName:    "Authorization",
				HeaderExample: "Bearer <token>",
				Steps:         []string{"Sign in", "Send the token"},
			},
		},
		{
			Method:     "POST",
			Path:       "/api/users",
			File:       "app/api/users/route.ts",
			Title:      "Create Users",
			Parameters: []types.Parameter{},
			RequestBody: &types.RequestBodySpec{
				ContentType: "application/json",
				Schema:      types.ObjectSchema(),
				Example:     types.Object(types.M("name", types.String("John Doe"))).Ptr(),
			},
			Responses: map[string]types.ResponseSpec{
				"201": {Description: "Resource created"},
			},
			Tags:           []string{"users"},
			Authentication: types.AuthSpec{Type: types.AuthNone},
		},
		{
			Method:         "GET",
			Path:           "/api/health",
			File:           "app/api/health/route.ts",
			Title:          "Get Health",
			Parameters:     []types.Parameter{},
			Responses:      map[string]types.ResponseSpec{},
			Authentication: types.AuthSpec{Type: types.AuthNone},
		},
	}
	return &types.Documentation{
		Info:           types.Info{Title: "Acme API", Version: "2.0.0", Description: "Internal endpoints"},
		Endpoints:      endpoints,
		TotalEndpoints: len(endpoints),
		GeneratedAt:    time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}
}

func renderString(t *testing.T, r Renderer, doc *types.Documentation) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(doc, &buf))
	return buf.String()
}

func TestJSONRenderer_RoundTrip(t *testing.T) {
	doc := sampleDocumentation()

	out := renderString(t, NewJSONRenderer(), doc)
	back, err := ReadJSON(strings.NewReader(out))

	require.NoError(t, err)
	assert.Equal(t, doc.TotalEndpoints, back.TotalEndpoints)
	assert.Len(t, back.Endpoints, len(doc.Endpoints))
	assert.True(t, doc.GeneratedAt.Equal(back.GeneratedAt))
	assert.Equal(t, "Get Users by ID", back.Endpoints[0].Title)
	require.NotNil(t, back.Endpoints[0].Responses["200"].Example)
	assert.True(t, doc.Endpoints[0].Responses["200"].Example.Equal(*back.Endpoints[0].Responses["200"].Example))
}

func TestJSONRenderer_FieldNames(t *testing.T) {
	out := renderString(t, NewJSONRenderer(), sampleDocumentation())

	for _, key := range []string{`"totalEndpoints": 3`, `"generatedAt"`, `"requestBody"`, `"authentication"`, `"in": "path"`} {
		assert.Contains(t, out, key)
	}
	assert.True(t, strings.HasPrefix(out, "{\n  \"info\""))
}

func TestJSONRenderer_EmptyDocumentation(t *testing.T) {
	doc := &types.Documentation{Endpoints: []types.Endpoint{}}

	out := renderString(t, NewJSONRenderer(), doc)
	back, err := ReadJSON(strings.NewReader(out))

	require.NoError(t, err)
	assert.Contains(t, out, `"endpoints": []`)
	assert.Empty(t, back.Endpoints)
	assert.NotNil(t, back.Endpoints)
}

func TestReadJSON_Errors(t *testing.T) {
	_, err := ReadJSON(strings.NewReader("{not json"))
	assert.Error(t, err)

	_, err = ReadJSONFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestReadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.json")
	var buf bytes.Buffer
	require.NoError(t, NewJSONRenderer().Render(sampleDocumentation(), &buf))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	doc, err := ReadJSONFile(path)

	require.NoError(t, err)
	assert.Len(t, doc.Endpoints, 3)
}

func TestMarkdownRenderer_Structure(t *testing.T) {
	out := renderString(t, NewMarkdownRenderer(), sampleDocumentation())

	assert.True(t, strings.HasPrefix(out, "# Acme API\n"))
	assert.Contains(t, out, "**Version:** 2.0.0")
	assert.Contains(t, out, "**Endpoints:** 3")
	assert.Contains(t, out, "| GET | 2 |")
	assert.Contains(t, out, "| POST | 1 |")
	assert.Contains(t, out, "## Table of Contents")
	assert.Contains(t, out, "[GET /api/users/{id}](#get-apiusersid)")
	assert.Contains(t, out, "## users")
	assert.Contains(t, out, "## General")
	assert.Contains(t, out, "Fetch one user | by id")
	assert.Contains(t, out, "| `id` | path | string | yes |")
	assert.Contains(t, out, "Content-Type: `application/json`")
	assert.Contains(t, out, "```json\n{\n  \"name\": \"John Doe\"\n}\n```")
	assert.Contains(t, out, "header `Authorization: Bearer <token>`")
	assert.Contains(t, out, "1. Sign in\n2. Send the token")
}

func TestMarkdownRenderer_EndpointCount(t *testing.T) {
	doc := sampleDocumentation()

	out := renderString(t, NewMarkdownRenderer(), doc)

	assert.Equal(t, doc.TotalEndpoints, strings.Count(out, "\n### "))
}

func TestMarkdownRenderer_NoEndpoints(t *testing.T) {
	doc := &types.Documentation{Info: types.Info{Title: "Empty", Version: "1.0.0"}}

	out := renderString(t, NewMarkdownRenderer(), doc)

	assert.Contains(t, out, "_No endpoints found._")
	assert.NotContains(t, out, "### ")
}

func TestOpenAPIRenderer_EndpointCount(t *testing.T) {
	tests := []struct {
		name string
		enc  openapi.Encoding
		ext  string
	}{
		{"yaml", openapi.EncodingYAML, ".yaml"},
		{"json", openapi.EncodingJSON, ".json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := sampleDocumentation()
			r := NewOpenAPIRenderer().WithEncoding(tt.enc)
			assert.Equal(t, tt.ext, r.Extension())

			path := filepath.Join(t.TempDir(), "openapi"+tt.ext)
			require.NoError(t, os.WriteFile(path, []byte(renderString(t, r, doc)), 0644))

			spec, err := openapi.ReadFile(path)
			require.NoError(t, err)

			ops := 0
			for _, item := range spec.Paths {
				ops += len(item.Operations())
			}
			assert.Equal(t, doc.TotalEndpoints, ops)
			assert.Contains(t, spec.Paths, "/users/{id}")
			assert.Contains(t, spec.Paths, "/health")
		})
	}
}

func TestOpenAPIRenderer_WithEncodingCopies(t *testing.T) {
	r := NewOpenAPIRenderer()
	j := r.WithEncoding(openapi.EncodingJSON)

	assert.Equal(t, openapi.EncodingYAML, r.Encoding)
	assert.Equal(t, openapi.EncodingJSON, j.Encoding)
}

func TestReactRenderer(t *testing.T) {
	doc := sampleDocumentation()

	out := renderString(t, NewReactRenderer(), doc)

	assert.Contains(t, out, "export default function ApiDocumentation()")
	assert.Contains(t, out, "export const documentation: Documentation = {")
	assert.Contains(t, out, `"totalEndpoints": 3`)
	assert.Contains(t, out, `style={{ border: "1px solid #e2e8f0"`)
	assert.NotContains(t, out, "[[")
}

func TestReactRenderer_ComponentName(t *testing.T) {
	tests := []struct {
		component string
		wantErr   bool
	}{
		{"UsersApi", false},
		{"", false},
		{"usersApi", true},
		{"Users-Api", true},
	}

	for _, tt := range tests {
		t.Run(tt.component, func(t *testing.T) {
			r := &ReactRenderer{Component: tt.component}
			err := r.Render(sampleDocumentation(), io.Discard)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
