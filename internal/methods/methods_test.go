// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package methods

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routedoc/routedoc/pkg/types"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected []string
	}{
		{
			name:     "async function export",
			src:      `export async function GET(request: Request) { return Response.json([]) }`,
			expected: []string{"GET"},
		},
		{
			name:     "plain function export",
			src:      "export function POST(req) {}\nexport function DELETE(req) {}",
			expected: []string{"POST", "DELETE"},
		},
		{
			name:     "const export",
			src:      `export const PATCH = async (req: NextRequest) => {}`,
			expected: []string{"PATCH"},
		},
		{
			name:     "typed const export",
			src:      `export const PUT: RouteHandler = withAuth(handler)`,
			expected: []string{"PUT"},
		},
		{
			name:     "named re-export",
			src:      "const handler = auth()\nexport { handler as GET, handler as POST }",
			expected: []string{"GET", "POST"},
		},
		{
			name:     "bare named export",
			src:      "export { HEAD, OPTIONS } from './shared'",
			expected: []string{"HEAD", "OPTIONS"},
		},
		{
			name:     "renamed away is not exported",
			src:      "export { GET as legacyGet }",
			expected: []string{},
		},
		{
			name:     "case insensitive export keyword",
			src:      `EXPORT async function GET() {}`,
			expected: []string{"GET"},
		},
		{
			name:     "verb names are exact",
			src:      "export async function get() {}\nexport const GETTER = 1",
			expected: []string{},
		},
		{
			name:     "no exports",
			src:      `const GET = () => {}`,
			expected: []string{},
		},
		{
			name: "duplicate signatures reported once",
			src: "export async function GET() {}\n" +
				"export { GET }",
			expected: []string{"GET"},
		},
		{
			name: "canonical order",
			src: "export async function DELETE() {}\n" +
				"export async function GET() {}\n" +
				"export async function POST() {}",
			expected: []string{"GET", "POST", "DELETE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Extract(tt.src))
		})
	}
}

func TestExtract_OnlyKnownVerbs(t *testing.T) {
	src := "export async function TRACE() {}\nexport async function CONNECT() {}\nexport async function GET() {}"

	got := Extract(src)
	seen := make(map[string]bool)
	for _, verb := range got {
		assert.True(t, types.IsHTTPMethod(verb), verb)
		assert.False(t, seen[verb], "duplicate verb %s", verb)
		seen[verb] = true
	}
	assert.Equal(t, []string{"GET"}, got)
}

func TestLocate(t *testing.T) {
	src := "import x from 'y'\n\n/** List users */\nexport async function GET() {}\n"

	offset := Locate(src, "GET")
	assert.Equal(t, len("import x from 'y'\n\n/** List users */\n"), offset)
	assert.Equal(t, -1, Locate(src, "POST"))
	assert.Equal(t, -1, Locate(src, "TRACE"))
}
