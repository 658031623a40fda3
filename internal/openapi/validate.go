// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/routedoc/routedoc/pkg/types"
)

// Validate checks an encoded OpenAPI document (YAML or JSON) against the
// OpenAPI 3 rules. Inferred examples are illustrative, so they are not
// checked against their schemas.
func Validate(ctx context.Context, data []byte) error {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	if err := doc.Validate(loader.Context, openapi3.DisableExamplesValidation()); err != nil {
		return fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return nil
}

// ValidateDocument validates a built document.
func ValidateDocument(ctx context.Context, doc *types.OpenAPI) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode OpenAPI document: %w", err)
	}
	return Validate(ctx, data)
}
