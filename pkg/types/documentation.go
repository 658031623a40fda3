// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package types provides the documentation model produced by a route scan and
// the OpenAPI structures it is rendered into.
package types

import "time"

// HTTP methods recognised as route handlers, in canonical order.
const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodDelete  = "DELETE"
	MethodPatch   = "PATCH"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
)

// HTTPMethods is the closed set of handler verbs.
var HTTPMethods = []string{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodPatch,
	MethodHead,
	MethodOptions,
}

// IsHTTPMethod reports whether m is one of HTTPMethods.
func IsHTTPMethod(m string) bool {
	for _, method := range HTTPMethods {
		if method == m {
			return true
		}
	}
	return false
}

// IsMutating reports whether requests with method m may carry a body.
func IsMutating(m string) bool {
	switch m {
	case MethodPost, MethodPut, MethodPatch, MethodDelete:
		return true
	}
	return false
}

// Parameter locations.
const (
	InPath   = "path"
	InQuery  = "query"
	InBody   = "body"
	InHeader = "header"
)

// Authentication types.
const (
	AuthBearer = "bearer"
	AuthAPIKey = "apiKey"
	AuthBasic  = "basic"
	AuthNone   = "none"
)

// RouteFile is a discovered handler file.
type RouteFile struct {
	// Path is the slash-separated file path
	Path string

	// Content is the raw source text
	Content string
}

// ParsedRoute is one (file, verb) pair found by the method extractor.
type ParsedRoute struct {
	Method     string
	URL        string
	SourceFile string
	Content    string

	// RoutePath is SourceFile extended up to the api anchor when the scan
	// root lies below it; empty means SourceFile already carries the anchor
	RoutePath string
}

// Documentation is the root aggregate of a scan.
type Documentation struct {
	Info           Info       `json:"info" yaml:"info"`
	Endpoints      []Endpoint `json:"endpoints" yaml:"endpoints"`
	TotalEndpoints int        `json:"totalEndpoints" yaml:"totalEndpoints"`
	GeneratedAt    time.Time  `json:"generatedAt" yaml:"generatedAt"`
}

// Info is the summary block of a Documentation.
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Endpoint is a single (verb, route) pair with its inferred metadata.
type Endpoint struct {
	// Method is the HTTP verb
	Method string `json:"method" yaml:"method"`

	// Path is the route template, e.g. "/api/users/{id}"
	Path string `json:"path" yaml:"path"`

	// File is the handler file the endpoint was extracted from
	File string `json:"file" yaml:"file"`

	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Parameters  []Parameter             `json:"parameters" yaml:"parameters"`
	Headers     []HeaderSpec            `json:"headers,omitempty" yaml:"headers,omitempty"`
	RequestBody *RequestBodySpec        `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]ResponseSpec `json:"responses" yaml:"responses"`
	Tags        []string                `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Authentication is always present; Type is "none" when no marker was found
	Authentication AuthSpec `json:"authentication" yaml:"authentication"`
}

// Key identifies an endpoint within a Documentation.
func (e Endpoint) Key() string {
	return e.Method + " " + e.Path
}

// Parameter describes a path, query, body or header parameter.
type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Required    bool   `json:"required" yaml:"required"`
	In          string `json:"in" yaml:"in"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Example     *Value `json:"example,omitempty" yaml:"example,omitempty"`
}

// HeaderSpec describes a request header the handler reads.
type HeaderSpec struct {
	Name        string `json:"name" yaml:"name"`
	Required    bool   `json:"required" yaml:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Example     string `json:"example,omitempty" yaml:"example,omitempty"`
}

// RequestBodySpec describes the request payload of a mutating endpoint.
type RequestBodySpec struct {
	ContentType string  `json:"contentType" yaml:"contentType"`
	Schema      *Schema `json:"schema" yaml:"schema"`
	Example     *Value  `json:"example,omitempty" yaml:"example,omitempty"`
}

// ResponseSpec describes one response status.
type ResponseSpec struct {
	Description    string   `json:"description" yaml:"description"`
	Example        *Value   `json:"example,omitempty" yaml:"example,omitempty"`
	RequiredFields []string `json:"requiredFields,omitempty" yaml:"requiredFields,omitempty"`
	OptionalFields []string `json:"optionalFields,omitempty" yaml:"optionalFields,omitempty"`
}

// AuthSpec describes the authentication an endpoint expects.
type AuthSpec struct {
	Required      bool     `json:"required" yaml:"required"`
	Type          string   `json:"type" yaml:"type"`
	HeaderName    string   `json:"headerName,omitempty" yaml:"headerName,omitempty"`
	HeaderExample string   `json:"headerExample,omitempty" yaml:"headerExample,omitempty"`
	LoginEndpoint string   `json:"loginEndpoint,omitempty" yaml:"loginEndpoint,omitempty"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	Steps         []string `json:"steps,omitempty" yaml:"steps,omitempty"`
}
