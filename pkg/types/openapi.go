// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package types

// OpenAPI represents a complete OpenAPI 3.0 specification document.
type OpenAPI struct {
	// OpenAPI is the OpenAPI specification version (e.g., "3.0.3")
	OpenAPI string `json:"openapi" yaml:"openapi"`

	// Info provides metadata about the API
	Info OpenAPIInfo `json:"info" yaml:"info"`

	// Servers is a list of server objects
	Servers []Server `json:"servers,omitempty" yaml:"servers,omitempty"`

	// Paths holds the available paths and operations
	Paths map[string]PathItem `json:"paths" yaml:"paths"`

	// Components holds reusable objects
	Components *Components `json:"components,omitempty" yaml:"components,omitempty"`

	// Tags is a list of tags used by the specification
	Tags []Tag `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// OpenAPIInfo provides metadata about the API.
type OpenAPIInfo struct {
	// Title is the title of the API
	Title string `json:"title" yaml:"title"`

	// Description is a description of the API
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Version is the version of the API
	Version string `json:"version" yaml:"version"`
}

// Server represents an API server.
type Server struct {
	// URL is the URL of the server
	URL string `json:"url" yaml:"url"`

	// Description is a description of the server
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// PathItem represents an API path.
type PathItem struct {
	// Get is the GET operation
	Get *Operation `json:"get,omitempty" yaml:"get,omitempty"`

	// Put is the PUT operation
	Put *Operation `json:"put,omitempty" yaml:"put,omitempty"`

	// Post is the POST operation
	Post *Operation `json:"post,omitempty" yaml:"post,omitempty"`

	// Delete is the DELETE operation
	Delete *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`

	// Options is the OPTIONS operation
	Options *Operation `json:"options,omitempty" yaml:"options,omitempty"`

	// Head is the HEAD operation
	Head *Operation `json:"head,omitempty" yaml:"head,omitempty"`

	// Patch is the PATCH operation
	Patch *Operation `json:"patch,omitempty" yaml:"patch,omitempty"`
}

// MethodOperation pairs an operation with its HTTP method.
type MethodOperation struct {
	Method    string
	Operation *Operation
}

// Operations returns the non-nil operations of the path item in canonical
// method order.
func (p PathItem) Operations() []MethodOperation {
	all := []MethodOperation{
		{MethodGet, p.Get},
		{MethodPost, p.Post},
		{MethodPut, p.Put},
		{MethodDelete, p.Delete},
		{MethodPatch, p.Patch},
		{MethodHead, p.Head},
		{MethodOptions, p.Options},
	}
	ops := make([]MethodOperation, 0, len(all))
	for _, op := range all {
		if op.Operation != nil {
			ops = append(ops, op)
		}
	}
	return ops
}

// Operation represents an API operation.
type Operation struct {
	// Tags is a list of tags
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Summary is a brief summary
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Description is a detailed description
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// OperationID is a unique identifier
	OperationID string `json:"operationId,omitempty" yaml:"operationId,omitempty"`

	// Parameters is a list of parameters
	Parameters []ParameterObject `json:"parameters,omitempty" yaml:"parameters,omitempty"`

	// RequestBody is the request body
	RequestBody *RequestBodyObject `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`

	// Responses is a map of responses
	Responses map[string]ResponseObject `json:"responses" yaml:"responses"`

	// Security is a list of security requirements
	Security []map[string][]string `json:"security,omitempty" yaml:"security,omitempty"`

	// XSourceFile records the handler file the operation came from
	XSourceFile string `json:"x-source-file,omitempty" yaml:"x-source-file,omitempty"`
}

// Components holds reusable objects.
type Components struct {
	// SecuritySchemes is a map of security scheme objects
	SecuritySchemes map[string]SecurityScheme `json:"securitySchemes,omitempty" yaml:"securitySchemes,omitempty"`
}

// SecurityScheme represents a security scheme.
type SecurityScheme struct {
	// Type is the type of security scheme
	Type string `json:"type" yaml:"type"`

	// Description is a description
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Name is the name of the header, query, or cookie parameter
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// In is the location of the API key (query, header, cookie)
	In string `json:"in,omitempty" yaml:"in,omitempty"`

	// Scheme is the HTTP authorization scheme
	Scheme string `json:"scheme,omitempty" yaml:"scheme,omitempty"`

	// BearerFormat is the format of the bearer token
	BearerFormat string `json:"bearerFormat,omitempty" yaml:"bearerFormat,omitempty"`
}

// Tag represents a tag object.
type Tag struct {
	// Name is the name of the tag
	Name string `json:"name" yaml:"name"`

	// Description is a description of the tag
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
