// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package infer

import (
	"regexp"
	"strings"

	"github.com/routedoc/routedoc/pkg/types"
)

var (
	headerMarkerRegex = regexp.MustCompile(`\bheaders\(\s*\)|\b(?:req|request)\.headers\b|headers\.get\(`)

	// headerIndexRegex matches headers['X-Name'], headers.get('X-Name') and
	// the next/headers form headers().get('X-Name').
	headerIndexRegex = regexp.MustCompile("headers(?:\\(\\s*\\))?(?:\\[\\s*|\\.get\\(\\s*)['\"`]([A-Za-z0-9-]+)['\"`]")
)

// commonHeaders is emitted whenever a handler reads request headers.
var commonHeaders = []types.HeaderSpec{
	{Name: "Authorization", Description: "Credentials for the request", Example: "Bearer <token>"},
	{Name: "Content-Type", Description: "Media type of the request body", Example: "application/json"},
	{Name: "Accept", Description: "Media types acceptable for the response", Example: "application/json"},
	{Name: "User-Agent", Description: "Client identification string", Example: "Mozilla/5.0"},
	{Name: "X-API-Key", Description: "API key for service access", Example: "<api-key>"},
	{Name: "X-Request-ID", Description: "Identifier used to trace the request", Example: "req_123456"},
}

func extractHeaders(ctx *Context) {
	if !headerMarkerRegex.MatchString(ctx.Source) {
		return
	}

	headers := append([]types.HeaderSpec(nil), commonHeaders...)
	seen := make(map[string]bool, len(headers))
	for _, h := range headers {
		seen[strings.ToLower(h.Name)] = true
	}
	for _, m := range headerIndexRegex.FindAllStringSubmatch(ctx.Source, -1) {
		key := strings.ToLower(m[1])
		if seen[key] {
			continue
		}
		seen[key] = true
		headers = append(headers, types.HeaderSpec{
			Name:        m[1],
			Description: "Read by the handler",
		})
	}

	if ctx.Endpoint.Authentication.Required {
		headers = requireAuthorization(headers, ctx.Endpoint.Authentication)
	}
	ctx.Endpoint.Headers = headers
}

// requireAuthorization moves Authorization to the front and marks it
// required, unless it is already required.
func requireAuthorization(headers []types.HeaderSpec, auth types.AuthSpec) []types.HeaderSpec {
	out := make([]types.HeaderSpec, 0, len(headers)+1)
	for _, h := range headers {
		if strings.EqualFold(h.Name, "Authorization") {
			if h.Required {
				return headers
			}
			continue
		}
		out = append(out, h)
	}

	example := "Bearer <token>"
	if auth.HeaderName == "Authorization" && auth.HeaderExample != "" {
		example = auth.HeaderExample
	}
	return append([]types.HeaderSpec{{
		Name:        "Authorization",
		Required:    true,
		Description: "Credentials for the request",
		Example:     example,
	}}, out...)
}
