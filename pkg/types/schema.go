// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package types

// Schema represents a JSON schema for request and response payloads.
// It is the subset of the OpenAPI schema object that inference produces.
type Schema struct {
	// Ref is a reference to another schema ($ref)
	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`

	// Type is the data type (string, number, integer, boolean, array, object)
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Format is the data format (date-time, email, uuid, etc.)
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Title is a short title for the schema
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Description is a detailed description of the schema
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Example is an example value
	Example *Value `json:"example,omitempty" yaml:"example,omitempty"`

	// Enum is a list of allowed string values
	Enum []string `json:"enum,omitempty" yaml:"enum,omitempty"`

	// Nullable indicates if the value can be null
	Nullable bool `json:"nullable,omitempty" yaml:"nullable,omitempty"`

	// Items is the schema for array items
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`

	// Properties maps property names to their schemas
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`

	// Required is a list of required property names
	Required []string `json:"required,omitempty" yaml:"required,omitempty"`
}

// ObjectSchema returns an object schema with an empty, non-nil property map.
func ObjectSchema() *Schema {
	return &Schema{
		Type:       "object",
		Properties: make(map[string]*Schema),
	}
}
