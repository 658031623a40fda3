// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routedoc/routedoc/pkg/types"
)

func TestParseDestructuring(t *testing.T) {
	got := parseDestructuring(" name, email?, role = 'member', title: heading, ...rest, ")
	assert.Equal(t, []destructuredProperty{
		{Name: "name", Required: true},
		{Name: "email", Required: false},
		{Name: "role", Required: false},
		{Name: "title", Required: true},
	}, got)
}

func TestRequestBody_DestructuringWithInterface(t *testing.T) {
	code := `
interface CreateTaskRequest {
  title: string;
  priority: 'low' | 'medium' | 'high';
  estimate?: number;
  labels: string[];
}

export async function POST(request: Request) {
  const body: CreateTaskRequest = await request.json()
  const { title, priority, estimate?, labels } = body
  return NextResponse.json({ task }, { status: 201 })
}
`
	ep := inferRoute(t, "POST", "app/api/tasks/route.ts", code)

	require.NotNil(t, ep.RequestBody)
	assert.Equal(t, "application/json", ep.RequestBody.ContentType)

	schema := ep.RequestBody.Schema
	assert.Equal(t, []string{"title", "priority", "labels"}, schema.Required)
	assert.Equal(t, "string", schema.Properties["title"].Type)
	assert.Equal(t, []string{"low", "medium", "high"}, schema.Properties["priority"].Enum)
	assert.Equal(t, "number", schema.Properties["estimate"].Type)
	assert.Equal(t, "array", schema.Properties["labels"].Type)

	require.NotNil(t, ep.RequestBody.Example)
	assert.Equal(t, []string{"title", "priority", "estimate", "labels"}, ep.RequestBody.Example.Keys())
	priority, _ := ep.RequestBody.Example.Get("priority")
	assert.Equal(t, types.String("low"), priority)
}

func TestRequestBody_ReqBodyDestructuring(t *testing.T) {
	code := `
export default async function handler(req, res) {
  const { email, password, remember = false } = req.body
}
export async function POST(req, res) {}
`
	ep := inferRoute(t, "POST", "pages/api/auth/login.ts", code)

	require.NotNil(t, ep.RequestBody)
	assert.Equal(t, []string{"email", "password"}, ep.RequestBody.Schema.Required)
	assert.Len(t, ep.RequestBody.Schema.Properties, 3)
}

func TestRequestBody_JSONReferences(t *testing.T) {
	code := `
export async function PUT(request: Request) {
  const { title, isPublished } = await request.json()
  const id = (await request.json()).projectId
}
`
	ep := inferRoute(t, "PUT", "app/api/projects/[id]/route.ts", code)

	require.NotNil(t, ep.RequestBody)
	schema := ep.RequestBody.Schema
	assert.Equal(t, []string{"title", "isPublished", "projectId"}, schema.Required)
	assert.Equal(t, "string", schema.Properties["title"].Type)
	assert.Equal(t, "boolean", schema.Properties["isPublished"].Type)

	example := ep.RequestBody.Example
	require.NotNil(t, example)
	title, _ := example.Get("title")
	assert.Equal(t, types.String("Sample Title"), title)
	published, _ := example.Get("isPublished")
	assert.Equal(t, types.Bool(true), published)
	projectID, _ := example.Get("projectId")
	assert.Equal(t, types.String("123"), projectID)
}

func TestRequestBody_DotAccess(t *testing.T) {
	code := `
export async function PATCH(request: Request) {
  const data = await request.json()
  await update(data.description, data?.email)
}
`
	ep := inferRoute(t, "PATCH", "app/api/profile/route.ts", code)

	require.NotNil(t, ep.RequestBody)
	assert.Equal(t, []string{"description", "email"}, ep.RequestBody.Schema.Required)
}

func TestRequestBody_InterfaceFallback(t *testing.T) {
	code := `
type Task = {
  id: string
}

interface UpdateTaskInput {
  title?: string
  done: boolean
  dueAt: Date
}

export async function PUT(request: Request) {
  const payload = await request.json()
  await save(payload)
}
`
	ep := inferRoute(t, "PUT", "app/api/tasks/[id]/route.ts", code)

	require.NotNil(t, ep.RequestBody)
	schema := ep.RequestBody.Schema
	assert.Equal(t, []string{"done", "dueAt"}, schema.Required)
	assert.Equal(t, "boolean", schema.Properties["done"].Type)
	assert.Equal(t, "date-time", schema.Properties["dueAt"].Format)
	assert.NotContains(t, schema.Properties, "id")
}

func TestRequestBody_EmptyObjectWhenNothingMatches(t *testing.T) {
	code := `
export async function POST(request: Request) {
  const raw = await request.json()
  await queue.push(raw)
}
`
	ep := inferRoute(t, "POST", "app/api/events/route.ts", code)

	require.NotNil(t, ep.RequestBody)
	assert.Equal(t, "object", ep.RequestBody.Schema.Type)
	assert.Empty(t, ep.RequestBody.Schema.Properties)
	assert.Nil(t, ep.RequestBody.Example)
}

func TestRequestBody_FormData(t *testing.T) {
	code := `
export async function POST(request: Request) {
  const form = await request.formData()
}
`
	ep := inferRoute(t, "POST", "app/api/uploads/route.ts", code)

	require.NotNil(t, ep.RequestBody)
	assert.Equal(t, "multipart/form-data", ep.RequestBody.ContentType)
}

func TestRequestBody_OnlyMutatingVerbs(t *testing.T) {
	code := `
export async function GET(request: Request) {
  const { name } = await request.json()
}
`
	ep := inferRoute(t, "GET", "app/api/users/route.ts", code)
	assert.Nil(t, ep.RequestBody)
}
