// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package render

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routedoc/routedoc/pkg/types"
)

// mockRenderer is a test implementation of Renderer.
type mockRenderer struct {
	name    string
	aliases []string
}

func (m *mockRenderer) Name() string      { return m.name }
func (m *mockRenderer) Extension() string { return ".txt" }
func (m *mockRenderer) Aliases() []string { return m.aliases }

func (m *mockRenderer) Render(doc *types.Documentation, w io.Writer) error {
	_, err := io.WriteString(w, doc.Info.Title)
	return err
}

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name        string
		renderer    Renderer
		wantErr     bool
		errContains string
	}{
		{
			name:     "register valid renderer",
			renderer: &mockRenderer{name: "text"},
		},
		{
			name:        "register nil renderer",
			renderer:    nil,
			wantErr:     true,
			errContains: "nil renderer",
		},
		{
			name:        "register renderer with empty name",
			renderer:    &mockRenderer{name: ""},
			wantErr:     true,
			errContains: "name cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(tt.renderer)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, r.Count())
		})
	}
}

func TestRegistry_Register_Conflicts(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockRenderer{name: "text", aliases: []string{"txt"}}))

	err := r.Register(&mockRenderer{name: "TEXT"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	err = r.Register(&mockRenderer{name: "plain", aliases: []string{"txt"}})
	require.Error(t, err)
	assert.False(t, r.Has("plain"), "failed registration must not leave a partial entry")

	err = r.Register(&mockRenderer{name: "txt"})
	assert.Error(t, err)
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(&mockRenderer{name: "text"})

	assert.Panics(t, func() { r.MustRegister(&mockRenderer{name: "text"}) })
}

func TestRegistry_GetByAlias(t *testing.T) {
	r := NewRegistry()
	text := &mockRenderer{name: "text", aliases: []string{"Plain"}}
	require.NoError(t, r.Register(text))

	assert.Same(t, text, r.Get("text"))
	assert.Same(t, text, r.Get("plain"))
	assert.Same(t, text, r.Get("TEXT"))
	assert.Nil(t, r.Get("html"))
	assert.Equal(t, []string{"text"}, r.List())
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockRenderer{name: "text"}))

	_, err := r.Lookup("html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "html"`)
	assert.Contains(t, err.Error(), "available: text")
}

func TestGlobalRegistry_BuiltIns(t *testing.T) {
	assert.Equal(t, []string{"json", "markdown", "openapi", "react"}, List())

	tests := []struct {
		lookup string
		want   string
	}{
		{"json", "json"},
		{"markdown", "markdown"},
		{"md", "markdown"},
		{"openapi", "openapi"},
		{"swagger", "openapi"},
		{"react", "react"},
		{"tsx", "react"},
	}

	for _, tt := range tests {
		t.Run(tt.lookup, func(t *testing.T) {
			r, err := Lookup(tt.lookup)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Name())
			assert.True(t, Has(tt.lookup))
		})
	}

	assert.Same(t, Global(), globalRegistry)
	assert.Nil(t, Get("pdf"))
}
