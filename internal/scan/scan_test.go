// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package scan

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routedoc/routedoc/internal/scanner"
	"github.com/routedoc/routedoc/pkg/types"
)

// setupTestDir creates a temporary directory with test files.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()

	tmpDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tmpDir, path)
		err := os.MkdirAll(filepath.Dir(fullPath), 0o755)
		require.NoError(t, err)
		err = os.WriteFile(fullPath, []byte(content), 0o644)
		require.NoError(t, err)
	}

	return tmpDir
}

var fixedClock = func() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

// projectFiles is a small App Router tree with one Pages Router file.
var projectFiles = map[string]string{
	"app/api/users/route.ts": `
export async function GET() { return NextResponse.json({ users }) }
export async function POST(request: Request) {
  const { name, email } = await request.json()
  return NextResponse.json({ user }, { status: 201 })
}
`,
	"app/api/users/[id]/route.ts": `
export async function GET() {}
export const DELETE = async () => {}
export { handler as PATCH }
`,
	"app/api/health/route.js": `export function GET() { return Response.json({ success: true }) }`,
	"app/api/lib/helpers.ts":  `export function GET() {}`,
	"app/api/empty/route.ts":  `export const config = { runtime: 'edge' }`,
	"pages/api/legacy.ts":     `export async function GET(req, res) { res.json({ message: 'ok' }) }`,
	"app/dashboard/page.tsx":  `export default function Page() {}`,
}

func TestRun_Project(t *testing.T) {
	root := setupTestDir(t, projectFiles)

	doc, err := Run(Options{RootPath: root, Clock: fixedClock})
	require.NoError(t, err)

	var keys []string
	for _, ep := range doc.Endpoints {
		keys = append(keys, ep.Key())
	}
	assert.Equal(t, []string{
		"GET /api/health",
		"GET /api/users/{id}",
		"DELETE /api/users/{id}",
		"PATCH /api/users/{id}",
		"GET /api/users",
		"POST /api/users",
		"GET /api/legacy",
	}, keys)

	assert.Equal(t, len(doc.Endpoints), doc.TotalEndpoints)
	assert.Equal(t, fixedClock(), doc.GeneratedAt)
	assert.Equal(t, DefaultTitle, doc.Info.Title)
	assert.Equal(t, DefaultVersion, doc.Info.Version)
}

func TestRun_RootAtOrBelowAnchor(t *testing.T) {
	root := setupTestDir(t, map[string]string{
		"src/app/api/users/route.ts":      "export async function GET() {}",
		"src/app/api/users/[id]/route.ts": "export async function GET() {}",
	})

	tests := []struct {
		name  string
		root  string
		paths []string
		files []string
	}{
		{
			name:  "project root",
			root:  root,
			paths: []string{"/api/users/{id}", "/api/users"},
			files: []string{"src/app/api/users/[id]/route.ts", "src/app/api/users/route.ts"},
		},
		{
			name:  "app directory",
			root:  filepath.Join(root, "src", "app"),
			paths: []string{"/api/users/{id}", "/api/users"},
			files: []string{"api/users/[id]/route.ts", "api/users/route.ts"},
		},
		{
			name:  "api directory",
			root:  filepath.Join(root, "src", "app", "api"),
			paths: []string{"/api/users/{id}", "/api/users"},
			files: []string{"users/[id]/route.ts", "users/route.ts"},
		},
		{
			name:  "below api directory",
			root:  filepath.Join(root, "src", "app", "api", "users"),
			paths: []string{"/api/users/{id}", "/api/users"},
			files: []string{"[id]/route.ts", "route.ts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Run(Options{RootPath: tt.root})
			require.NoError(t, err)
			require.Equal(t, 2, doc.TotalEndpoints)

			var paths, files []string
			for _, ep := range doc.Endpoints {
				paths = append(paths, ep.Path)
				files = append(files, ep.File)
				assert.Equal(t, []string{"users"}, ep.Tags)
			}
			assert.Equal(t, tt.paths, paths)
			assert.Equal(t, tt.files, files)
		})
	}
}

func TestRun_RouteGroupIsNotATag(t *testing.T) {
	root := setupTestDir(t, map[string]string{
		"app/api/(admin)/users/route.ts": "export async function GET() {}",
	})

	doc, err := Run(Options{RootPath: root})
	require.NoError(t, err)

	require.Len(t, doc.Endpoints, 1)
	assert.Equal(t, "/api/users", doc.Endpoints[0].Path)
	assert.Equal(t, []string{"users"}, doc.Endpoints[0].Tags)
}

func TestRun_FileWithoutVerbsIsDropped(t *testing.T) {
	root := setupTestDir(t, map[string]string{
		"app/api/empty/route.ts": `export const runtime = 'edge'`,
	})

	doc, err := Run(Options{RootPath: root})
	require.NoError(t, err)

	assert.Empty(t, doc.Endpoints)
	assert.NotNil(t, doc.Endpoints)
	assert.Equal(t, 0, doc.TotalEndpoints)
}

func TestRun_MissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	doc, err := Run(Options{RootPath: missing})

	require.Error(t, err)
	assert.Nil(t, doc)
	assert.True(t, errors.Is(err, ErrRootNotFound))
	assert.Contains(t, err.Error(), "path does not exist")

	var scanErr *ScanError
	assert.False(t, errors.As(err, &scanErr))
}

func TestRun_InfoDefaultsAndOverrides(t *testing.T) {
	root := setupTestDir(t, map[string]string{})

	doc, err := Run(Options{
		RootPath: root,
		Info:     types.Info{Title: "Acme API", Description: "Internal"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme API", doc.Info.Title)
	assert.Equal(t, DefaultVersion, doc.Info.Version)
	assert.Equal(t, "Internal", doc.Info.Description)
}

func TestRun_WorkersKeepOrder(t *testing.T) {
	files := map[string]string{}
	for _, name := range []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel"} {
		files["app/api/"+name+"/route.ts"] = "export async function GET() {}\nexport async function POST() {}\n"
	}
	root := setupTestDir(t, files)

	sequential, err := Run(Options{RootPath: root, Clock: fixedClock})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		parallel, err := Run(Options{RootPath: root, Clock: fixedClock, Workers: 4})
		require.NoError(t, err)
		assert.Equal(t, sequential, parallel)
	}
	assert.Equal(t, 16, sequential.TotalEndpoints)
}

func TestRun_IgnorePatterns(t *testing.T) {
	root := setupTestDir(t, map[string]string{
		"app/api/users/route.ts":    "export async function GET() {}",
		"app/api/internal/route.ts": "export async function GET() {}",
	})

	doc, err := Run(Options{RootPath: root, Ignore: []string{"**/internal/**"}})
	require.NoError(t, err)

	require.Len(t, doc.Endpoints, 1)
	assert.Equal(t, "/api/users", doc.Endpoints[0].Path)
}

// flakyFS fails to read files whose path contains a marker.
type flakyFS struct {
	scanner.OSFileSystem
	marker string
}

func (f flakyFS) ReadText(path string) (string, error) {
	if strings.Contains(path, f.marker) {
		return "", errors.New("permission denied")
	}
	return f.OSFileSystem.ReadText(path)
}

func TestRun_UnreadableFileIsSkipped(t *testing.T) {
	root := setupTestDir(t, map[string]string{
		"app/api/users/route.ts":  "export async function GET() {}",
		"app/api/secret/route.ts": "export async function GET() {}",
	})

	doc, err := Run(Options{RootPath: root, FS: flakyFS{marker: "secret"}})
	require.NoError(t, err)

	require.Len(t, doc.Endpoints, 1)
	assert.Equal(t, "/api/users", doc.Endpoints[0].Path)
}

func TestRun_EndpointsCarryMandatoryFields(t *testing.T) {
	root := setupTestDir(t, projectFiles)

	doc, err := Run(Options{RootPath: root})
	require.NoError(t, err)

	for _, ep := range doc.Endpoints {
		assert.True(t, types.IsHTTPMethod(ep.Method), ep.Method)
		assert.True(t, strings.HasPrefix(ep.Path, "/api"), ep.Path)
		assert.NotEmpty(t, ep.File)
		assert.NotEmpty(t, ep.Title)
		assert.NotEmpty(t, ep.Authentication.Type)
	}
}

func TestScanError(t *testing.T) {
	inner := errors.New("walk failed")
	err := &ScanError{Op: "locate", Err: inner}

	assert.Equal(t, "scan failed during locate: walk failed", err.Error())
	assert.True(t, errors.Is(err, inner))
}
