// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package infer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDocBlock(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		lines []string
	}{
		{
			name:  "attached block",
			src:   "/**\n * Fetch a user\n * @api-title Get user\n */\nexport async function GET() {}",
			lines: []string{"", "Fetch a user", "@api-title Get user", ""},
		},
		{
			name:  "single line block",
			src:   "/** List users */\n\nexport function GET() {}",
			lines: []string{"List users"},
		},
		{
			name: "code between block and handler",
			src:  "/** Helper */\nconst x = 1\nexport function GET() {}",
		},
		{
			name:  "glob inside block",
			src:   "/**\n * Forwards /api/proxy/* to upstream\n * @api-title Proxy everything\n */\nexport async function GET() {}",
			lines: []string{"", "Forwards /api/proxy/* to upstream", "@api-title Proxy everything", ""},
		},
		{
			name: "plain block after closed doc block",
			src:  "/** Old */\n/* note */\nexport function GET() {}",
		},
		{
			name: "plain block comment",
			src:  "/* not a doc */\nexport function GET() {}",
		},
		{
			name: "no comment",
			src:  "export function GET() {}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := FindDocBlock(tt.src, strings.Index(tt.src, "export"))
			if tt.lines == nil {
				assert.Nil(t, block)
				return
			}
			require.NotNil(t, block)
			assert.Equal(t, tt.lines, block.Lines)
		})
	}
}

func TestFindDocBlock_NegativeOffset(t *testing.T) {
	assert.Nil(t, FindDocBlock("/** doc */ export function GET() {}", -1))
}

func TestFindDocBlock_NearestBlockWins(t *testing.T) {
	src := `
/** Fetch one user */
export async function GET() {}

/** Replace a user */
export async function PUT() {}
`
	block := FindDocBlock(src, strings.Index(src, "export async function PUT"))
	require.NotNil(t, block)
	assert.Equal(t, []string{"Replace a user"}, block.Prose())
}

func TestExtractSummary_GlobInComment(t *testing.T) {
	code := `
/**
 * Forwards /api/proxy/* to upstream
 * @api-title Proxy everything
 */
export async function GET() {}
`
	ep := inferRoute(t, "GET", "app/api/proxy/[...path]/route.ts", code)
	assert.Equal(t, "Proxy everything", ep.Title)
}

func TestExtractSummary_Annotations(t *testing.T) {
	code := `
/**
 * @api-title List all users
 * @api-description Returns every user in the workspace
 */
export async function GET() {}
`
	ep := inferRoute(t, "GET", "app/api/users/route.ts", code)

	assert.Equal(t, "List all users", ep.Title)
	assert.Equal(t, "Returns every user in the workspace", ep.Description)
}

func TestExtractSummary_Prose(t *testing.T) {
	code := `
/**
 * Fetch a user
 * Returns the user record
 * including the profile.
 */
export async function GET() {}
`
	ep := inferRoute(t, "GET", "app/api/users/[id]/route.ts", code)

	assert.Equal(t, "Fetch a user", ep.Title)
	assert.Equal(t, "Returns the user record including the profile.", ep.Description)
}

func TestExtractSummary_PerVerbComments(t *testing.T) {
	code := `
/** Fetch one user */
export async function GET() {}

/** Remove a user */
export async function DELETE() {}
`
	get := inferRoute(t, "GET", "app/api/users/[id]/route.ts", code)
	del := inferRoute(t, "DELETE", "app/api/users/[id]/route.ts", code)

	assert.Equal(t, "Fetch one user", get.Title)
	assert.Equal(t, "Remove a user", del.Title)
}

func TestExtractSummary_Synthesized(t *testing.T) {
	ep := inferRoute(t, "PATCH", "app/api/tasks/[id]/route.ts", "export async function PATCH() {}")

	assert.Equal(t, "Update Tasks by ID", ep.Title)
	assert.Equal(t, "Handles PATCH requests to /api/tasks/{id}", ep.Description)
}

func TestSynthesizeTitle(t *testing.T) {
	tests := []struct {
		method string
		url    string
		want   string
	}{
		{"GET", "/api/users", "List Users"},
		{"GET", "/api/users/{id}", "Get Users by ID"},
		{"GET", "/api/users/me", "Get Users Me"},
		{"POST", "/api/users", "Create Users"},
		{"POST", "/api/users/invite", "Create Users Invite"},
		{"PUT", "/api/users/{id}", "Update Users by ID"},
		{"PATCH", "/api/user-profiles/{id}", "Update User Profiles by ID"},
		{"DELETE", "/api/workspaces/{id}/members", "Delete Workspaces Members by ID"},
		{"HEAD", "/api/health", "Check Health"},
		{"OPTIONS", "/api/uploads", "Options Uploads"},
		{"GET", "/api", "List API"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, SynthesizeTitle(tt.method, tt.url))
		})
	}
}
