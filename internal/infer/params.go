// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package infer

import (
	"regexp"
	"strings"

	"github.com/routedoc/routedoc/internal/scanner"
	"github.com/routedoc/routedoc/pkg/types"
)

var (
	// queryMarkerRegex matches references to the query string.
	queryMarkerRegex = regexp.MustCompile(`searchParams|\b(?:req|request)\.query\b|nextUrl\.search|URLSearchParams`)

	// bodyMarkerRegex matches reads of the request body.
	bodyMarkerRegex = regexp.MustCompile(`\b(?:req|request)\.body\b|await\s+\w+\.json\(\s*\)|\.formData\(\s*\)|\}\s*=\s*body\b`)

	// searchParamGetRegex matches searchParams.get('name').
	searchParamGetRegex = regexp.MustCompile("searchParams\\.get\\(\\s*['\"`]([\\w.-]+)['\"`]\\s*\\)")

	// paramAnnotationRegex matches "@param {type} name description" with
	// optional "[name]" or "[name=default]" brackets.
	paramAnnotationRegex = regexp.MustCompile(`@param\s+\{([^}]+)\}\s+(\[[^\]]+\]|[\w.$-]+)[ \t]*(?:-[ \t]*)?([^\n]*)`)
)

// numericQueryNames are query parameters documented as numbers.
var numericQueryNames = map[string]bool{
	"page":     true,
	"limit":    true,
	"offset":   true,
	"size":     true,
	"pageSize": true,
	"per_page": true,
	"count":    true,
}

// paramAnnotation is one parsed @param line.
type paramAnnotation struct {
	Name        string
	Type        string
	Location    string
	Required    bool
	Description string
}

// parseParamAnnotations returns the @param annotations in text.
// A "query." or "body." name prefix sets Location; otherwise it is empty.
func parseParamAnnotations(text string) []paramAnnotation {
	var out []paramAnnotation
	for _, m := range paramAnnotationRegex.FindAllStringSubmatch(text, -1) {
		a := paramAnnotation{
			Type:        strings.ToLower(strings.TrimSpace(m[1])),
			Required:    true,
			Description: strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(m[3]), "*/")),
		}

		name := m[2]
		if strings.HasPrefix(name, "[") {
			a.Required = false
			name = strings.Trim(name, "[]")
			name, _, _ = strings.Cut(name, "=")
		}
		switch {
		case strings.HasPrefix(name, "query."):
			a.Location = types.InQuery
			name = strings.TrimPrefix(name, "query.")
		case strings.HasPrefix(name, "body."):
			a.Location = types.InBody
			name = strings.TrimPrefix(name, "body.")
		}
		a.Name = strings.TrimSpace(name)
		if a.Name != "" {
			out = append(out, a)
		}
	}
	return out
}

// extractPathParams emits one required string parameter per {name} token.
func extractPathParams(ctx *Context) {
	described := make(map[string]string)
	for _, a := range parseParamAnnotations(ctx.annotationSource()) {
		if a.Location == "" {
			described[a.Name] = a.Description
		}
	}

	for _, name := range scanner.PathParams(ctx.Route.URL) {
		desc := described[name]
		if desc == "" {
			desc = "The " + name + " path parameter"
		}
		ctx.Endpoint.Parameters = append(ctx.Endpoint.Parameters, types.Parameter{
			Name:        name,
			Type:        "string",
			Required:    true,
			In:          types.InPath,
			Description: desc,
			Example:     exampleForName(name).Ptr(),
		})
	}
}

// queryTriggered reports whether the handler reads the query string.
func queryTriggered(ctx *Context) bool {
	return queryMarkerRegex.MatchString(ctx.Source)
}

// bodyTriggered reports whether a mutating handler reads the request body.
func bodyTriggered(ctx *Context) bool {
	return types.IsMutating(ctx.Route.Method) && bodyMarkerRegex.MatchString(ctx.Source)
}

// annotationsFor returns the @param annotations that belong to location.
// Unprefixed annotations belong to the first triggered location, query before
// body, and never to a path parameter.
func annotationsFor(ctx *Context, location string) []paramAnnotation {
	pathNames := make(map[string]bool)
	for _, name := range scanner.PathParams(ctx.Route.URL) {
		pathNames[name] = true
	}

	fallback := types.InBody
	if queryTriggered(ctx) {
		fallback = types.InQuery
	}

	var out []paramAnnotation
	for _, a := range parseParamAnnotations(ctx.annotationSource()) {
		loc := a.Location
		if loc == "" {
			if pathNames[a.Name] {
				continue
			}
			loc = fallback
		}
		if loc == location {
			out = append(out, a)
		}
	}
	return out
}

// queryParamStrategies are tried in order; the first non-empty result wins.
var queryParamStrategies = []func(*Context) []types.Parameter{
	queryParamsFromAnnotations,
	queryParamsFromSearchParams,
	queryPlaceholder,
}

func extractQueryParams(ctx *Context) {
	if !queryTriggered(ctx) {
		return
	}
	for _, strategy := range queryParamStrategies {
		if params := strategy(ctx); len(params) > 0 {
			ctx.Endpoint.Parameters = append(ctx.Endpoint.Parameters, params...)
			return
		}
	}
}

func queryParamsFromAnnotations(ctx *Context) []types.Parameter {
	return annotationParams(annotationsFor(ctx, types.InQuery), types.InQuery)
}

func queryParamsFromSearchParams(ctx *Context) []types.Parameter {
	var params []types.Parameter
	seen := make(map[string]bool)
	for _, m := range searchParamGetRegex.FindAllStringSubmatch(ctx.Source, -1) {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true

		typ := "string"
		if numericQueryNames[name] {
			typ = "number"
		}
		params = append(params, types.Parameter{
			Name:        name,
			Type:        typ,
			Required:    false,
			In:          types.InQuery,
			Description: "Query parameter " + name,
			Example:     exampleForQuery(name).Ptr(),
		})
	}
	return params
}

func queryPlaceholder(*Context) []types.Parameter {
	return []types.Parameter{{
		Name:        "query",
		Type:        "object",
		Required:    false,
		In:          types.InQuery,
		Description: "Query string parameters",
	}}
}

// extractBodyParams documents body fields as parameters, or emits a single
// placeholder when the body is read but no annotation describes it.
func extractBodyParams(ctx *Context) {
	if !bodyTriggered(ctx) {
		return
	}
	params := annotationParams(annotationsFor(ctx, types.InBody), types.InBody)
	if len(params) == 0 {
		params = []types.Parameter{{
			Name:        "body",
			Type:        "object",
			Required:    true,
			In:          types.InBody,
			Description: "Request body",
		}}
	}
	ctx.Endpoint.Parameters = append(ctx.Endpoint.Parameters, params...)
}

func annotationParams(annotations []paramAnnotation, location string) []types.Parameter {
	params := make([]types.Parameter, 0, len(annotations))
	for _, a := range annotations {
		params = append(params, types.Parameter{
			Name:        a.Name,
			Type:        a.Type,
			Required:    a.Required,
			In:          location,
			Description: a.Description,
		})
	}
	return params
}
