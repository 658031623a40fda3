// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package render turns a Documentation into an output format.
package render

import (
	"io"

	"github.com/routedoc/routedoc/pkg/types"
)

// Renderer writes a Documentation in one output format.
// Renderers treat the Documentation as read-only.
type Renderer interface {
	// Name returns the format identifier (e.g., "json", "markdown").
	Name() string

	// Extension returns the default file extension, including the dot.
	Extension() string

	// Render writes doc to w.
	Render(doc *types.Documentation, w io.Writer) error
}

// Aliaser is an optional interface for renderers reachable by more than one name.
type Aliaser interface {
	Aliases() []string
}
