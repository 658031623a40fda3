// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routedoc/routedoc/pkg/types"
)

func headerNames(headers []types.HeaderSpec) []string {
	names := make([]string, 0, len(headers))
	for _, h := range headers {
		names = append(names, h.Name)
	}
	return names
}

func TestHeaders_NotTriggered(t *testing.T) {
	ep := inferRoute(t, "GET", "app/api/users/route.ts", "export async function GET() {}")
	assert.Empty(t, ep.Headers)
}

func TestHeaders_Catalog(t *testing.T) {
	code := `
import { headers } from 'next/headers'

export async function GET() {
  const h = headers()
}
`
	ep := inferRoute(t, "GET", "app/api/users/route.ts", code)

	assert.Equal(t, []string{
		"Authorization", "Content-Type", "Accept", "User-Agent", "X-API-Key", "X-Request-ID",
	}, headerNames(ep.Headers))
	for _, h := range ep.Headers {
		assert.False(t, h.Required, h.Name)
	}
}

func TestHeaders_BracketAndGetAccess(t *testing.T) {
	code := `
export default function handler(req, res) {
  const tenant = req.headers['x-tenant-id']
  const trace = req.headers["x-request-id"]
  const sig = request.headers.get('Stripe-Signature')
  const again = req.headers['X-Tenant-ID']
}
export async function POST(req, res) {}
`
	ep := inferRoute(t, "POST", "pages/api/webhooks.ts", code)

	names := headerNames(ep.Headers)
	assert.Equal(t, []string{
		"Authorization", "Content-Type", "Accept", "User-Agent", "X-API-Key", "X-Request-ID",
		"x-tenant-id", "Stripe-Signature",
	}, names)
}

func TestHeaders_NextHeadersCall(t *testing.T) {
	code := `
import { headers } from 'next/headers'

export async function GET() {
  const ip = headers().get('x-forwarded-for')
  const lang = headers( ).get("Accept-Language")
}
`
	ep := inferRoute(t, "GET", "app/api/geo/route.ts", code)

	names := headerNames(ep.Headers)
	assert.Contains(t, names, "x-forwarded-for")
	assert.Contains(t, names, "Accept-Language")
}

func TestHeaders_AuthPrependsRequiredAuthorization(t *testing.T) {
	code := `
export async function GET(request: Request) {
  const session = await getServerSession()
  const agent = request.headers.get('user-agent')
}
`
	ep := inferRoute(t, "GET", "app/api/me/route.ts", code)

	require.NotEmpty(t, ep.Headers)
	assert.Equal(t, "Authorization", ep.Headers[0].Name)
	assert.True(t, ep.Headers[0].Required)

	count := 0
	for _, h := range ep.Headers {
		if h.Name == "Authorization" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Len(t, ep.Headers, len(commonHeaders))
}

func TestRequireAuthorization_AlreadyRequired(t *testing.T) {
	headers := []types.HeaderSpec{
		{Name: "Accept"},
		{Name: "authorization", Required: true},
	}
	got := requireAuthorization(headers, authTemplates[types.AuthBearer])
	assert.Equal(t, headers, got)
}
