// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument_BuiltDocumentIsValid(t *testing.T) {
	doc, err := NewBuilder().Build(sampleDocumentation())
	require.NoError(t, err)

	assert.NoError(t, ValidateDocument(context.Background(), doc))
}

func TestValidate_YAML(t *testing.T) {
	doc, err := NewBuilder().Build(sampleDocumentation())
	require.NoError(t, err)

	data, err := NewWriter().Marshal(doc, EncodingYAML)
	require.NoError(t, err)

	assert.NoError(t, Validate(context.Background(), data))
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not a document", "{"},
		{"missing title", "openapi: 3.0.3\ninfo:\n  version: 1.0.0\npaths: {}\n"},
		{"undeclared path parameter", `
openapi: 3.0.3
info:
  title: x
  version: 1.0.0
paths:
  /users/{id}:
    get:
      responses:
        "200":
          description: ok
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Validate(context.Background(), []byte(tt.data)))
		})
	}
}
