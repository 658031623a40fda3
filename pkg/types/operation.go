// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package types

// ParameterObject represents an OpenAPI parameter.
type ParameterObject struct {
	// Name is the parameter name
	Name string `json:"name" yaml:"name"`

	// In is the location of the parameter (path, query, header, cookie)
	In string `json:"in" yaml:"in"`

	// Description is a brief description of the parameter
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Required indicates if the parameter is required
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Schema defines the type of the parameter
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`

	// Example is an example value for the parameter
	Example *Value `json:"example,omitempty" yaml:"example,omitempty"`
}

// RequestBodyObject represents an OpenAPI request body.
type RequestBodyObject struct {
	// Description is a brief description of the request body
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Required indicates if the request body is required
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Content maps media types to their schemas
	Content map[string]MediaType `json:"content" yaml:"content"`
}

// ResponseObject represents an OpenAPI response.
type ResponseObject struct {
	// Description is a brief description of the response
	Description string `json:"description" yaml:"description"`

	// Content maps media types to their schemas
	Content map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// MediaType represents an OpenAPI media type.
type MediaType struct {
	// Schema defines the structure of the content
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`

	// Example is an example of the content
	Example *Value `json:"example,omitempty" yaml:"example,omitempty"`
}
